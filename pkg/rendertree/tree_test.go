package rendertree

import "testing"

func buildSampleTree(t *testing.T) *Tree {
	t.Helper()
	tree := New()
	root := tree.Root()
	if tree.AppendText(root, "first", "Times New Roman", 37.0, true) == nil {
		t.Fatal("append first failed")
	}
	if tree.AppendText(root, "second", "Times New Roman", 18.5, false) == nil {
		t.Fatal("append second failed")
	}
	return tree
}

func TestTreeRootKind(t *testing.T) {
	tree := New()
	if tree.Root() == nil {
		t.Fatal("expected a root")
	}
	if tree.Root().Kind() != KindRoot {
		t.Errorf("expected root kind, got %v", tree.Root().Kind())
	}
}

func TestAppendRefusesReparenting(t *testing.T) {
	tree := New()
	text := tree.AppendText(tree.Root(), "x", "f", 10, false)
	if text == nil {
		t.Fatal("append failed")
	}
	other := New()
	if other.Append(other.Root(), text) {
		t.Error("expected append of an already-parented node to be refused")
	}
}

func TestAppendRefusesSelfAndNil(t *testing.T) {
	tree := New()
	root := tree.Root()
	if tree.Append(root, root) {
		t.Error("expected self-append to be refused")
	}
	if tree.Append(nil, NewTextNode("x", "f", 1, false)) {
		t.Error("expected nil parent to be refused")
	}
	if tree.Append(root, nil) {
		t.Error("expected nil child to be refused")
	}
}

func TestAppendRefusesCycle(t *testing.T) {
	tree := New()
	root := tree.Root()
	text := tree.AppendText(root, "x", "f", 10, false)
	if text == nil {
		t.Fatal("append failed")
	}

	// Attaching an ancestor under its own descendant must be refused.
	if tree.Append(text, root) {
		t.Fatal("expected cycle-forming append to be refused")
	}
	if len(text.Children()) != 0 {
		t.Errorf("text gained children from refused append: %v", text.Children())
	}
	if root.Parent() != nil {
		t.Error("root parent link changed by refused append")
	}

	// The tree stays walkable with the original two nodes.
	if got := tree.Count(); got != 2 {
		t.Errorf("expected count 2, got %d", got)
	}

	// Deeper cycles are refused too.
	inner := tree.AppendText(text, "y", "f", 10, false)
	if inner == nil {
		t.Fatal("append failed")
	}
	if tree.Append(inner, root) {
		t.Error("expected deep cycle-forming append to be refused")
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	tree := New()
	root := tree.Root()
	first := tree.AppendText(root, "a", "f", 1, false)
	tree.AppendText(first, "a1", "f", 1, false)
	tree.AppendText(root, "b", "f", 1, false)

	it := tree.Walk()
	var values []string
	for node := it.Next(); node != nil; node = it.Next() {
		if node.Kind() == KindText {
			values = append(values, TextValue(node))
		}
	}
	want := []string{"a", "a1", "b"}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], values[i])
		}
	}
}

func TestWalkFirstNodeIsRoot(t *testing.T) {
	tree := buildSampleTree(t)
	it := tree.Walk()
	if it.CurrentKind() != KindRoot {
		t.Errorf("expected KindRoot before first Next, got %v", it.CurrentKind())
	}
	first := it.Next()
	if first == nil || first.Kind() != KindRoot {
		t.Fatalf("expected the root first, got %v", first)
	}
	second := it.Next()
	if second == nil || second.Kind() != KindText {
		t.Fatalf("expected a text node second, got %v", second)
	}
	if it.CurrentKind() != KindText {
		t.Errorf("expected CurrentKind to track the yielded node, got %v", it.CurrentKind())
	}
}

func TestWalkExhaustion(t *testing.T) {
	tree := buildSampleTree(t)
	it := tree.Walk()
	count := 0
	for it.Next() != nil {
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 nodes, got %d", count)
	}
	if it.Next() != nil {
		t.Error("expected nil after exhaustion")
	}
	if it.CurrentKind() != KindRoot {
		t.Errorf("expected KindRoot after exhaustion, got %v", it.CurrentKind())
	}
}

func TestTreeCount(t *testing.T) {
	tree := buildSampleTree(t)
	if got := tree.Count(); got != 3 {
		t.Errorf("expected count 3, got %d", got)
	}
}

func TestTreeRelease(t *testing.T) {
	tree := buildSampleTree(t)
	text := tree.Root().Children()[0].(*TextNode)

	tree.Release()

	if tree.Root() != nil {
		t.Error("expected root to be dropped")
	}
	if tree.Count() != 0 {
		t.Errorf("expected empty tree, got %d nodes", tree.Count())
	}
	if text.Value != "" || text.Font != "" {
		t.Error("expected payloads disposed on release")
	}
	// Releasing again is a no-op.
	tree.Release()
}
