// Package render materializes vdom trees onto a host surface.
//
// Render walks a VNode tree depth-first and, for each node, creates the
// matching host node, applies its attributes, renders its children into it
// in order, and finally appends it to the parent. A node's subtree is
// complete before the node is attached and before its next sibling starts.
//
// # Attributes
//
// Every attribute except "children" is applied to the host node. Keys
// starting with "on" whose value is a supported callable are registered with
// Surface.Listen; everything else, including malformed handler values, goes
// through Surface.SetProperty unvalidated. Keys are applied in sorted order.
//
// Text nodes are created empty and receive their payload as the "nodeValue"
// property during the same attribute pass.
//
// # Errors
//
// An error from Surface.CreateElement aborts the render and is returned
// unchanged. Nodes already attached stay attached; the caller clears the
// mount point before the next cycle.
package render
