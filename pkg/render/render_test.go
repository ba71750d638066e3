package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/texweave/texweave/pkg/content"
	texerrors "github.com/texweave/texweave/pkg/errors"
)

func TestRenderScenarios(t *testing.T) {
	intro := content.NewSection("Intro")
	intro.Append(content.NewText("hello"))

	tests := []struct {
		name string
		node content.Node
		want string
	}{
		{
			name: "section with text",
			node: intro,
			want: "\\section{Intro}\nhello\n\n",
		},
		{
			name: "equation",
			node: content.NewEquation(content.Term("a"), content.Equals, content.Term("b")),
			want: "\\begin{equation}\n\\displaystyle a  =  b \n\\end{equation}\n",
		},
		{
			name: "item",
			node: content.Item(content.NewText("France")),
			want: "\\item France\n",
		},
		{
			name: "table",
			node: content.MustTable(content.Rows{
				{content.NewText("0"), content.NewText("1")},
				{content.NewText("2"), content.NewText("3")},
			}),
			want: "\\begin{tabular}{| c | c |}\n" +
				"\\hline\n0 & 1 \\\\\n" +
				"\\hline\n2 & 3 \\\\\n" +
				"\\hline\n\\end{tabular}\n",
		},
		{
			name: "text verbatim",
			node: content.NewText(`50% of $x & y_1`),
			want: `50% of $x & y_1`,
		},
		{
			name: "math",
			node: content.NewMath("x^2"),
			want: "$x^2$",
		},
		{
			name: "empty block",
			node: content.NewBlock("center"),
			want: "\\begin{center}\n\\end{center}\n",
		},
		{
			name: "paragraph",
			node: content.NewParagraph(""),
			want: "\\paragraph{}\n\n\n",
		},
		{
			name: "operator inside equation",
			node: content.NewEquation(
				content.Term("x"),
				content.Equals,
				content.NewSum(content.Var("i"), content.Int(0), content.Var("n")),
				content.Term("i"),
			),
			want: "\\begin{equation}\n\\displaystyle x  =  \\sum_{i = 0}^{n} i \n\\end{equation}\n",
		},
		{
			name: "symbol codes",
			node: content.EquationFromTokens("1", ">=", "0", "<>", "x"),
			want: "\\begin{equation}\n\\displaystyle 1  \\geq  0  \\neq  x \n\\end{equation}\n",
		},
		{
			name: "figure",
			node: content.NewFigure("plot.png", "A plot"),
			want: "\\begin{figure}\n\t\\includegraphics[scale=1]{plot.png}\n\t\\caption{A plot}\n\\end{figure}\n",
		},
		{
			name: "listing",
			node: content.NewListing("main.go", "Go"),
			want: "\\lstinputlisting[language=Go]{main.go}\n",
		},
		{
			name: "tag with inline math",
			node: content.NewTag("textbf", content.NewMath("n")),
			want: "\\textbf $n$\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.node); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderNested(t *testing.T) {
	sec := content.NewSection("Examples")
	list := content.NewBlock("itemize")
	for _, c := range []string{"France", "UK"} {
		list.Append(content.Item(content.NewText(c)))
	}
	sec.Append(content.NewText("Some countries\n"), list)
	sub := content.NewSubsection("More")
	sub.Append(content.NewText("end"))
	sec.Append(sub)

	want := "\\section{Examples}\n" +
		"Some countries\n" +
		"\\begin{itemize}\n\\item France\n\\item UK\n\\end{itemize}\n" +
		"\\subsection{More}\nend\n\n" +
		"\n\n"

	if got := String(sec); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderChildOrder(t *testing.T) {
	b := content.NewBlock("enumerate")
	var want strings.Builder
	want.WriteString("\\begin{enumerate}\n")
	for _, s := range []string{"c", "a", "d", "b", "e"} {
		b.Append(content.Item(content.NewText(s)))
		want.WriteString("\\item " + s + "\n")
	}
	want.WriteString("\\end{enumerate}\n")

	if got := String(b); got != want.String() {
		t.Errorf("String() =\n%q\nwant\n%q", got, want.String())
	}
}

var envRe = regexp.MustCompile(`\\(begin|end)\{([^}]*)\}`)

// balanced checks that \begin/\end pairs nest properly.
func balanced(s string) bool {
	var stack []string
	for _, m := range envRe.FindAllStringSubmatch(s, -1) {
		if m[1] == "begin" {
			stack = append(stack, m[2])
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != m[2] {
			return false
		}
		stack = stack[:len(stack)-1]
	}
	return len(stack) == 0
}

func TestRenderBalancedDelimiters(t *testing.T) {
	root := content.NewSection("root")
	outer := content.NewBlock("center")
	inner := content.NewBlock("minipage")
	inner.Append(content.EquationFromTokens("a", "<", "b"))
	inner.Append(content.MustTable(content.Row{content.NewText("x"), content.NewBlock("quote")}))
	outer.Append(inner, content.NewFigure("f.png", "f"))
	root.Append(outer, content.NewBlock("verbatim"))

	out := String(root)
	if !balanced(out) {
		t.Errorf("unbalanced output:\n%s", out)
	}
	if !strings.HasSuffix(out, "\\end{verbatim}\n\n\n") {
		t.Errorf("last block should close right before the section trailer:\n%q", out)
	}
}

func TestRenderRaggedTable(t *testing.T) {
	tbl := content.MustTable(content.Rows{
		{content.NewText("a"), content.NewText("b")},
		{content.NewText("c"), content.NewText("d"), content.NewText("e")},
		{content.NewText("f")},
	})
	want := "\\begin{tabular}{| c | c |}\n" +
		"\\hline\na & b \\\\\n" +
		"\\hline\nc & d & e \\\\\n" +
		"\\hline\nf \\\\\n" +
		"\\hline\n\\end{tabular}\n"
	if got := String(tbl); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestColumnSpec(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "| c |"},
		{2, "| c | c |"},
		{4, "| c | c | c | c |"},
	}
	for _, tt := range tests {
		if got := ColumnSpec(tt.n); got != tt.want {
			t.Errorf("ColumnSpec(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderNilPointers(t *testing.T) {
	var (
		sec *content.Section
		blk *content.Block
		tag *content.Tag
		tab *content.Table
		fig *content.Figure
		lst *content.Listing
	)
	for _, n := range []content.Node{nil, sec, blk, tag, tab, fig, lst} {
		var buf bytes.Buffer
		if err := Render(&buf, n); err != nil {
			t.Errorf("Render(%T) error: %v", n, err)
		}
		if buf.Len() != 0 {
			t.Errorf("Render(%T) wrote %q, want nothing", n, buf.String())
		}
	}

	tagged := content.NewTag("emph", sec)
	if got := String(tagged); got != "\\emph \n" {
		t.Errorf("String(tag of nil section) = %q", got)
	}
}

func TestRenderEveryKind(t *testing.T) {
	samples := map[content.Kind]content.Node{
		content.KindText:     content.NewText("t"),
		content.KindMath:     content.NewMath("m"),
		content.KindEquation: content.EquationFromTokens("e"),
		content.KindSection:  content.NewSection("s"),
		content.KindBlock:    content.NewBlock("b"),
		content.KindTag:      content.Item(content.NewText("i")),
		content.KindTable:    content.MustTable(content.Row{content.NewText("c")}),
		content.KindFigure:   content.NewFigure("f", "c"),
		content.KindListing:  content.NewListing("l", "Go"),
	}
	for _, k := range content.Kinds() {
		n, ok := samples[k]
		if !ok {
			t.Errorf("no sample for kind %v; add one and a renderer case", k)
			continue
		}
		var buf bytes.Buffer
		if err := Render(&buf, n); err != nil {
			t.Errorf("Render(%v) error: %v", k, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Render(%v) wrote nothing", k)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	sec := content.NewSection("s")
	sec.Append(content.NewText("a"), content.NewText("b"))
	first := String(sec)
	second := String(sec)
	if first != second || sec.Len() != 2 {
		t.Error("rendering twice should produce identical output and keep the tree intact")
	}
}

type failingWriter struct {
	after int
	n     int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.after {
		return 0, errDiskFull
	}
	w.n += len(p)
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	sec := content.NewSection("Intro")
	sec.Append(content.NewText("hello"))

	err := Render(&failingWriter{after: 5}, sec)
	if err == nil {
		t.Fatal("Render() should report the sink error")
	}
	if !texerrors.Is(err, texerrors.ErrCodeIO) {
		t.Errorf("error code = %v, want IO_ERROR", texerrors.GetCode(err))
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("error should wrap the sink error, got %v", err)
	}
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	n, err := RenderAll(&buf, content.NewText("a"), content.NewMath("b"), content.Item(content.NewText("c")))
	if err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	if buf.String() != "a$b$\\item c\n" {
		t.Errorf("RenderAll() = %q", buf.String())
	}
	if n != int64(buf.Len()) {
		t.Errorf("RenderAll() n = %d, want %d", n, buf.Len())
	}
}
