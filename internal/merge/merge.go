// Package merge reconciles a locally edited task tree and a remotely edited
// one against their last common version.
package merge

import (
	"fmt"

	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/tasktree"
	"org-tasks-sync/pkg/diff3"
)

// Conflict marker labels. The local side is always MINE.
const (
	LocalLabel  = "MINE"
	RemoteLabel = "THEIRS"
)

// Result is a merged tree. Text is the merged outline exactly as produced by
// the text merge, conflict markers included.
type Result struct {
	Tree     *tasktree.Tree
	Text     string
	Conflict bool
}

// ThreeWay merges local and remote, both derived from base, line by line on
// their outline encodings and reparses the merged text into a new tree.
// Conflicting regions are kept between markers and become notes text. If the
// merged text cannot be reparsed the error is returned together with a
// Result carrying Text and Conflict.
func ThreeWay(local, base, remote *tasktree.Tree) (Result, error) {
	text, res := diff3.MergeText(
		outline.Encode(local),
		outline.Encode(base),
		outline.Encode(remote),
		diff3.Labels{Mine: LocalLabel, Theirs: RemoteLabel},
	)

	out := Result{Text: text, Conflict: res.Conflicted()}
	tree, err := outline.Decode(text)
	if err != nil {
		return out, fmt.Errorf("reparse merged outline: %w", err)
	}
	out.Tree = tree
	return out, nil
}
