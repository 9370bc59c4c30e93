package search

import "fmt"

// formatStateID renders a state's process-tree back-reference (or its own
// value, if that back-reference is itself nil) as a stable string for use
// in log and trace output. Identity, not content, is all that matters
// here, so a pointer-derived representation is sufficient.
func formatStateID(ptreeNode any) string {
	return fmt.Sprintf("%p", ptreeNode)
}
