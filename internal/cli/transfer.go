package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/tasktree"
)

// ConflictSuffix is appended to the outline path for the conflict file.
const ConflictSuffix = ".conflict"

func (o *rootOptions) validateMode() error {
	n := 0
	for _, set := range []bool{o.pull, o.push, o.sync} {
		if set {
			n++
		}
	}
	if n != 1 {
		return usageErrorf("exactly one of --pull, --push or --sync is required")
	}
	if (o.push || o.sync) && o.orgFile == "" {
		return usageErrorf("--push and --sync require --orgfile")
	}
	return nil
}

func runTransfer(cmd *cobra.Command, o *rootOptions) error {
	if err := o.validateMode(); err != nil {
		return err
	}

	var local *tasktree.Tree
	if o.push || o.sync {
		tree, err := readOutline(o.orgFile)
		if err != nil {
			return err
		}
		local = tree
	}

	ctx, a, err := o.bootstrap(cmd)
	if err != nil {
		return err
	}
	list := o.list(a.cfg)

	switch {
	case o.pull:
		return a.pull(ctx, cmd.OutOrStdout(), list, o.orgFile)
	case o.push:
		return a.push(ctx, list, o.orgFile, local)
	default:
		return a.sync(ctx, list, o.orgFile, local)
	}
}

func (a *app) pull(ctx context.Context, stdout io.Writer, list, orgFile string) error {
	out, err := a.uc.Pull(ctx, sync.PullInput{ListName: list, SaveSnapshot: orgFile != ""})
	if err != nil {
		return err
	}
	if orgFile == "" {
		_, err := io.WriteString(stdout, out.Outline)
		return err
	}
	if err := writeFile(orgFile, out.Outline); err != nil {
		return err
	}
	a.l.Infof(ctx, "cli: pulled %d tasks into %s", out.Tree.Len(), orgFile)
	return nil
}

func (a *app) push(ctx context.Context, list, orgFile string, local *tasktree.Tree) error {
	out, err := a.uc.Push(ctx, sync.PushInput{ListName: list, Tree: local})
	if err != nil {
		return err
	}
	a.l.Infof(ctx, "cli: pushed %d tasks from %s to %s", out.TaskCount, orgFile, out.ListID)
	return nil
}

func (a *app) sync(ctx context.Context, list, orgFile string, local *tasktree.Tree) error {
	out, err := a.uc.Sync(ctx, sync.SyncInput{ListName: list, Local: local})
	if err != nil {
		return err
	}

	if out.Conflict {
		path := orgFile + ConflictSuffix
		if err := writeFile(path, out.Outline); err != nil {
			return err
		}
		return &conflictError{path: path}
	}

	if err := writeFile(orgFile, out.Outline); err != nil {
		return err
	}
	if out.FirstSync {
		a.l.Infof(ctx, "cli: first sync of %s", orgFile)
	}
	a.l.Infof(ctx, "cli: synced %s (%d tasks)", orgFile, out.Tree.Len())
	return nil
}

func readOutline(path string) (*tasktree.Tree, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, usageErrorf("org file %s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree, err := outline.DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func writeFile(path, text string) error {
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
