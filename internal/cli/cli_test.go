package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

const paperTOML = `title = "Paper"
author = "Ada"
packages = ["amsmath"]

[[content]]
type = "section"
title = "Introduction"
  [[content.children]]
  type = "text"
  text = "hello"
`

// newTestCLI returns a CLI whose config and cache live under t.TempDir.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)
	return c, &out
}

func run(t *testing.T, c *CLI, stdin string, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	want := []string{"build", "inspect", "outline", "letter", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestBuildWritesTeX(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "paper.toml", paperTOML)

	if err := run(t, c, "", "build", src); err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "paper.tex"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	tex := string(data)
	for _, want := range []string{
		"\\documentclass{article}\n",
		"\\usepackage{amsmath}\n",
		"\\section{Introduction}\nhello\n\n",
		"\\end{document}\n",
	} {
		if !strings.Contains(tex, want) {
			t.Errorf("output missing %q:\n%s", want, tex)
		}
	}
	if !strings.Contains(out.String(), "paper.tex") {
		t.Errorf("summary should name the output file:\n%s", out.String())
	}
}

func TestBuildStdinToStdout(t *testing.T) {
	c, out := newTestCLI(t)

	err := run(t, c, "# Notes\n\nSome text.\n", "build", "-", "--format", "markdown", "--stdout", "--class", "report")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "\\documentclass{report}\n") {
		t.Errorf("stdout should start with the preamble:\n%s", got)
	}
	if !strings.Contains(got, "\\section{Notes}\nSome text.\n") {
		t.Errorf("markdown heading not rendered:\n%s", got)
	}
}

func TestBuildStdinRequiresFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := run(t, c, paperTOML, "build", "-", "--stdout"); err == nil {
		t.Fatal("expected error without --format")
	}
}

func TestBuildAppend(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "paper.toml", paperTOML)
	out := filepath.Join(dir, "both.tex")

	for i := 0; i < 2; i++ {
		if err := run(t, c, "", "build", src, "-o", out, "--append", "--no-cache"); err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
	}
	data, _ := os.ReadFile(out)
	if n := strings.Count(string(data), "\\begin{document}"); n != 2 {
		t.Errorf("appended output has %d documents, want 2", n)
	}
}

func TestBuildWithOutlineDOT(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "paper.toml", paperTOML)
	dot := filepath.Join(dir, "paper.dot")

	if err := run(t, c, "", "build", src, "--outline", dot); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(dot)
	if err != nil {
		t.Fatalf("read outline: %v", err)
	}
	if !strings.Contains(string(data), "section: Introduction") {
		t.Errorf("outline missing section label:\n%s", data)
	}
}

func TestBuildInvalidManifest(t *testing.T) {
	c, _ := newTestCLI(t)
	src := writeFile(t, t.TempDir(), "bad.toml", "[[content]]\ntype = \"nope\"\n")

	err := run(t, c, "", "build", src, "--stdout")
	if err == nil || !strings.Contains(err.Error(), "content[0]") {
		t.Fatalf("error = %v, want node path content[0]", err)
	}
}

func TestInspect(t *testing.T) {
	c, out := newTestCLI(t)
	src := writeFile(t, t.TempDir(), "paper.toml", paperTOML)

	if err := run(t, c, "", "inspect", src); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"Paper", "amsmath", "section: Introduction", "hello"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, out.String())
		}
	}
}

func TestOutlineToStdout(t *testing.T) {
	c, out := newTestCLI(t)
	src := writeFile(t, t.TempDir(), "paper.toml", paperTOML)

	if err := run(t, c, "", "outline", src, "-o", "-", "--leaves"); err != nil {
		t.Fatalf("outline: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "digraph") || !strings.Contains(got, "hello") {
		t.Errorf("unexpected DOT:\n%s", got)
	}
}

func TestLetterFromFlags(t *testing.T) {
	c, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "letter.tex")

	err := run(t, c, "", "letter", "-o", out, "--answer", "French,Ada,compilers,networks,Operating Systems")
	if err != nil {
		t.Fatalf("letter: %v", err)
	}
	data, _ := os.ReadFile(out)
	tex := string(data)
	for _, want := range []string{
		"\\title{Cover Letter}\n",
		"\\author{Ada}\n",
		"I am a French student in Computer Science, interested in compilers and networks.",
		"the course on Operating Systems",
		"\\paragraph{}\nRespectfully,\n",
	} {
		if !strings.Contains(tex, want) {
			t.Errorf("letter missing %q", want)
		}
	}
}

func TestLetterMissingAnswers(t *testing.T) {
	c, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "letter.tex")
	if err := run(t, c, "", "letter", "-o", out, "--answer", "French,Ada"); err == nil {
		t.Fatal("expected error for missing answers")
	}
}

func TestLetterModel(t *testing.T) {
	var m tea.Model = newLetterModel()
	typeLine := func(s string) {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	typeLine("French")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Adx")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if view := m.View(); !strings.Contains(view, "first interest") {
		t.Errorf("view should prompt for the third question:\n%s", view)
	}

	typeLine("compilers")
	typeLine("networks")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("OS")})
	if cmd != nil {
		t.Error("typing should not quit")
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("last answer should quit the program")
	}

	lm := m.(letterModel)
	want := []string{"French", "Ada", "compilers", "networks", "OS"}
	if strings.Join(lm.answers, "|") != strings.Join(want, "|") {
		t.Errorf("answers = %v, want %v", lm.answers, want)
	}
}

func TestLetterModelCancel(t *testing.T) {
	m, _ := newLetterModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(letterModel).cancelled {
		t.Error("esc should cancel")
	}
}

func TestCachePathUsesConfig(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", "[cache]\ndir = \""+filepath.ToSlash(filepath.Join(dir, "builds"))+"\"\n")

	if err := run(t, c, "", "--config", cfg, "cache", "path"); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != filepath.ToSlash(filepath.Join(dir, "builds")) {
		t.Errorf("cache path = %q", got)
	}
}

func TestCacheClearAfterBuild(t *testing.T) {
	c, out := newTestCLI(t)
	src := writeFile(t, t.TempDir(), "paper.toml", paperTOML)

	if err := run(t, c, "", "build", src, "--stdout"); err != nil {
		t.Fatalf("build: %v", err)
	}
	out.Reset()
	if err := run(t, c, "", "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 1 cached entries") {
		t.Errorf("cache clear output:\n%s", out.String())
	}
}

func TestServeOptsMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Redis.Addr = "localhost:6379"
	cfg.Server.APIKey = "secret"

	got := serveOpts{addr: ":9000"}.merge(cfg)
	if got.addr != ":9000" {
		t.Errorf("flag addr should win, got %q", got.addr)
	}
	if got.redis != "localhost:6379" || got.apiKey != "secret" {
		t.Errorf("config values not applied: %+v", got)
	}
	if got.mongo != "" {
		t.Errorf("mongo = %q, want empty", got.mongo)
	}
}
