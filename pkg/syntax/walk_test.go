package syntax_test

import (
	"errors"
	"testing"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/syntax"
)

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var kinds []syntax.SyntaxKind
	err := syntax.Walk(sampleDocument(), func(n syntax.SyntaxNode) error {
		kinds = append(kinds, n.Kind())
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []syntax.SyntaxKind{
		syntax.Document,
		syntax.Text,
		syntax.Whitespace,
		syntax.Italic,
		syntax.Slash,
		syntax.Text,
		syntax.Slash,
		syntax.Whitespace,
		syntax.Text,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(kinds))
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("node %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	visited := 0

	err := syntax.Walk(sampleDocument(), func(n syntax.SyntaxNode) error {
		visited++
		if n.Kind() == syntax.Italic {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if visited != 4 {
		t.Errorf("expected walk to stop after 4 nodes, visited %d", visited)
	}
}

func TestWalkWithContext(t *testing.T) {
	t.Parallel()

	var events []string
	enter := func(n syntax.SyntaxNode) error {
		if n.IsInner() {
			events = append(events, "enter "+n.Kind().String())
		}
		return nil
	}
	leave := func(n syntax.SyntaxNode) error {
		if n.IsInner() {
			events = append(events, "leave "+n.Kind().String())
		}
		return nil
	}

	if err := syntax.WalkWithContext(sampleDocument(), enter, leave); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"enter DOCUMENT", "enter ITALIC", "leave ITALIC", "leave DOCUMENT"}
	if len(events) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d: expected %q, got %q", i, expected[i], events[i])
		}
	}

	if err := syntax.WalkWithContext(sampleDocument(), nil, nil); err != nil {
		t.Errorf("nil callbacks: unexpected error %v", err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()

	texts := syntax.FindByKind(doc, syntax.Text)
	if len(texts) != 3 {
		t.Errorf("expected 3 text nodes, got %d", len(texts))
	}

	found, ok := syntax.FindFirst(doc, func(n syntax.SyntaxNode) bool {
		return n.Kind().IsPaired()
	})
	if !ok || found.Text() != "hi" {
		t.Errorf("expected to find italic node, got %v (ok=%v)", found, ok)
	}

	_, ok = syntax.FindFirst(doc, func(n syntax.SyntaxNode) bool {
		return n.Kind() == syntax.Heading
	})
	if ok {
		t.Error("expected no heading")
	}
}
