// Package outline converts between task trees and the asterisk-indented
// outline text used for the local todo document.
package outline

import (
	"strings"

	"org-tasks-sync/internal/tasktree"
)

const (
	headlineMark = "*"
	doneKeyword  = "DONE "
)

// Encode renders the tree as outline text. A non-empty result always ends
// with a newline; an empty tree renders as "".
func Encode(t *tasktree.Tree) string {
	var b strings.Builder
	encodeNodes(&b, t.Children, 1)
	return b.String()
}

func encodeNodes(b *strings.Builder, nodes []*tasktree.Node, depth int) {
	for _, n := range nodes {
		b.WriteString(strings.Repeat(headlineMark, depth))
		b.WriteByte(' ')
		if n.Completed() {
			b.WriteString(doneKeyword)
		}
		b.WriteString(n.Title)
		b.WriteByte('\n')

		if n.Notes != nil {
			for _, line := range strings.Split(*n.Notes, "\n") {
				// a notes line must never read back as a headline
				if strings.HasPrefix(line, headlineMark) {
					b.WriteByte(' ')
				}
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}

		encodeNodes(b, n.Children, depth+1)
	}
}
