package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n SyntaxNode) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error, the walk stops immediately and
// returns that error.
func Walk(root SyntaxNode, walkFunc WalkFunc) error {
	if err := walkFunc(root); err != nil {
		return err
	}

	for i := range root.ChildCount() {
		if err := Walk(root.Child(i), walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(root SyntaxNode, enter, leave WalkFunc) error {
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for i := range root.ChildCount() {
		if err := WalkWithContext(root.Child(i), enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate in pre-order.
func FindAll(root SyntaxNode, predicate func(n SyntaxNode) bool) []SyntaxNode {
	var result []SyntaxNode

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node SyntaxNode) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate. The second
// result is false if none matches.
func FindFirst(root SyntaxNode, predicate func(n SyntaxNode) bool) (SyntaxNode, bool) {
	var found SyntaxNode
	var ok bool

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node SyntaxNode) error {
		if predicate(node) {
			found, ok = node, true
			return errStopWalk
		}
		return nil
	})

	return found, ok
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root SyntaxNode, kind SyntaxKind) []SyntaxNode {
	return FindAll(root, func(n SyntaxNode) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
