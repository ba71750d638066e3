package content

import (
	"testing"
)

func TestWalkPreOrder(t *testing.T) {
	sec := NewSection("s")
	list := NewBlock("itemize")
	list.Append(Item(NewText("a")), Item(NewText("b")))
	sec.Append(NewText("intro"), list, MustTable(Row{NewText("c")}))

	var kinds []Kind
	var depths []int
	Walk(sec, func(n Node, d int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, d)
		return true
	})

	wantKinds := []Kind{KindSection, KindText, KindBlock, KindTag, KindText, KindTag, KindText, KindTable, KindText}
	wantDepths := []int{0, 1, 1, 2, 3, 2, 3, 1, 2}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(wantKinds))
	}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] || depths[i] != wantDepths[i] {
			t.Errorf("visit %d = (%v, %d), want (%v, %d)", i, kinds[i], depths[i], wantKinds[i], wantDepths[i])
		}
	}
}

func TestWalkSkip(t *testing.T) {
	sec := NewSection("s")
	inner := NewBlock("center")
	inner.Append(NewText("hidden"))
	sec.Append(inner, NewText("shown"))

	count := 0
	Walk(sec, func(n Node, _ int) bool {
		count++
		return n.Kind() != KindBlock
	})
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

func TestCountAndDepth(t *testing.T) {
	if Count(NewText("a")) != 1 || Depth(NewText("a")) != 1 {
		t.Error("a leaf has count 1 and depth 1")
	}
	sec := NewSection("s")
	sub := NewSubsection("t")
	sub.Append(NewText("x"))
	sec.Append(sub, NewText("y"))
	if got := Count(sec); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if got := Depth(sec); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
}
