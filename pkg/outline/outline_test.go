package outline

import (
	"strings"
	"testing"

	"github.com/texweave/texweave/pkg/content"
)

func sampleTree() []content.Node {
	intro := content.NewSection("Intro")
	intro.Append(content.NewText("hello"))
	list := content.NewBlock("itemize")
	list.Append(content.Item(content.NewText("one")))
	intro.Append(list)
	return []content.Node{intro, content.NewFigure("plot.png", "A plot")}
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT("Example", sampleTree(), Options{})

	for _, want := range []string{
		`"root" [label="Example", fillcolor=lightgrey];`,
		`"n0" [label="section: Intro", fillcolor=lightblue];`,
		`"n1" [label="itemize"];`,
		`"n2" [label="\\item"];`,
		`"n3" [label="figure: plot.png"];`,
		`"root" -> "n0";`,
		`"n0" -> "n1";`,
		`"n1" -> "n2";`,
		`"root" -> "n3";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "hello") {
		t.Error("text leaves should be omitted by default")
	}
}

func TestToDOTLeaves(t *testing.T) {
	dot := ToDOT("", sampleTree(), Options{Leaves: true})
	for _, want := range []string{
		`"root" [label="document", fillcolor=lightgrey];`,
		`"n1" [label="hello", style="rounded,dashed"];`,
		`"n0" -> "n1";`,
		`"n0" -> "n2";`,
		`"n3" -> "n4";`,
		`"root" -> "n5";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
}

func TestLabelTruncates(t *testing.T) {
	got := Label(content.NewText(strings.Repeat("a", 40)), 10)
	if got != strings.Repeat("a", 9)+"…" {
		t.Errorf("Label() = %q", got)
	}
	if got := Label(content.MustTable(content.Row{content.NewText("a"), content.NewText("b")}), 10); got != "tabular 1x2" {
		t.Errorf("Label(table) = %q", got)
	}
}

func TestLabelNonPositiveWidth(t *testing.T) {
	long := strings.Repeat("b", 40)
	for _, max := range []int{0, -1, -50} {
		if got := Label(content.NewText("hello"), max); got != "hello" {
			t.Errorf("Label(hello, %d) = %q", max, got)
		}
		if got := Label(content.NewMath(long), max); got != "$"+strings.Repeat("b", 30)+"…" {
			t.Errorf("Label(math, %d) = %q, want default width", max, got)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}
}
