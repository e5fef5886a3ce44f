package html

import (
	"testing"

	"github.com/go-skiff/skiff/pkg/dom"
)

// treeShape walks the document and returns "type:name-or-text" entries in
// document order, skipping the root.
func treeShape(t *testing.T, doc *dom.Document) []string {
	t.Helper()
	var shape []string
	doc.Walk(func(n *dom.Node) bool {
		switch data := n.Data.(type) {
		case dom.DocumentData:
		case dom.ElementData:
			shape = append(shape, "element:"+n.Name)
		case dom.TextData:
			shape = append(shape, "text:"+data.Value)
		case dom.CommentData:
			shape = append(shape, "comment:"+data.Value)
		}
		return true
	})
	return shape
}

func assertShape(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes %v, got %d nodes %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseSimpleDocument(t *testing.T) {
	doc, err := Parse(`<html><h1>Title</h1><p>Body text</p></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertShape(t, treeShape(t, doc), []string{
		"element:html",
		"element:h1",
		"text:Title",
		"element:p",
		"text:Body text",
	})
}

func TestParseNesting(t *testing.T) {
	doc, err := Parse(`<html><body><div><p>deep</p></div></body></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pNode *dom.Node
	doc.Walk(func(n *dom.Node) bool {
		if n.Name == "p" {
			pNode = n
			return false
		}
		return true
	})
	if pNode == nil {
		t.Fatal("expected to find the p element")
	}
	div := doc.Node(pNode.Parent)
	if div == nil || div.Name != "div" {
		t.Fatalf("expected p's parent to be div, got %+v", div)
	}
}

func TestParseImplicitClose(t *testing.T) {
	doc, err := Parse(`<html><h1>open`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertShape(t, treeShape(t, doc), []string{
		"element:html",
		"element:h1",
		"text:open",
	})
}

func TestParseStrayEndTagIgnored(t *testing.T) {
	doc, err := Parse(`<html></span><p>ok</p></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertShape(t, treeShape(t, doc), []string{
		"element:html",
		"element:p",
		"text:ok",
	})
}

func TestParseVoidElementTakesNoChildren(t *testing.T) {
	doc, err := Parse(`<p>before<br>after</p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var brNode *dom.Node
	doc.Walk(func(n *dom.Node) bool {
		if n.Name == "br" {
			brNode = n
		}
		return true
	})
	if brNode == nil {
		t.Fatal("expected a br element")
	}
	if len(brNode.Children) != 0 {
		t.Errorf("expected br to have no children, got %v", brNode.Children)
	}
	// The text after <br> belongs to the paragraph, not the void element.
	after := doc.Node(brNode.Parent)
	if after == nil || after.Name != "p" {
		t.Fatalf("expected br's parent to be p, got %+v", after)
	}
	if len(after.Children) != 3 {
		t.Errorf("expected p to have 3 children, got %d", len(after.Children))
	}
}

func TestParseWhitespaceOnlyTextDropped(t *testing.T) {
	doc, err := Parse("<html>\n  <p>kept</p>\n</html>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertShape(t, treeShape(t, doc), []string{
		"element:html",
		"element:p",
		"text:kept",
	})
}

func TestParseCommentPreserved(t *testing.T) {
	doc, err := Parse(`<html><!--note--><p>x</p></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertShape(t, treeShape(t, doc), []string{
		"element:html",
		"comment:note",
		"element:p",
		"text:x",
	})
}

func TestParseErrorPropagates(t *testing.T) {
	_, err := Parse(`<p attr=">`)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
