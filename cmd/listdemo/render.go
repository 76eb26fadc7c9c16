package main

import (
	"fmt"
	"strings"

	"github.com/graxinc/arraylist"
)

// renderList formats a list's logical contents along with its length and
// capacity, e.g. "List (count: 3, capacity: 4): [10, 20, 30]".
func renderList[T comparable](l *arraylist.List[T]) string {
	if l.IsEmpty() {
		return "List is empty (count: 0)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "List (count: %d, capacity: %d): [", l.Len(), l.Cap())
	for i, v := range l.Slice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")
	return sb.String()
}
