package vdom

// If returns the node if condition is true, nil otherwise.
// Nil content is dropped by H, so If composes directly into element calls.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *VNode) *VNode {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes. Passing the result as content to H or an
// element factory splices the nodes in place.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Walk visits node and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(node *VNode, fn func(n *VNode, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node *VNode, depth int, fn func(n *VNode, depth int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range node.Content {
		walk(child, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node *VNode) int {
	n := 0
	Walk(node, func(*VNode, int) bool {
		n++
		return true
	})
	return n
}

// TextContent concatenates the payloads of all text nodes under node.
func TextContent(node *VNode) string {
	var out []byte
	Walk(node, func(n *VNode, _ int) bool {
		if n.IsText() {
			out = append(out, n.Text()...)
		}
		return true
	})
	return string(out)
}
