package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"

	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync/repository"
	"org-tasks-sync/internal/tasktree"
)

const (
	defaultKey = "@default"
	fileExt    = ".org"
	lockExt    = ".lock"
	listExt    = ".sync.lock"

	lockRetryDelay = 50 * time.Millisecond
)

func (r *implRepository) Load(ctx context.Context, listName string) (*tasktree.Tree, error) {
	path, lockPath, _ := r.paths(listName)
	if _, err := os.Stat(r.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrSnapshotNotFound
	}

	lock := flock.New(lockPath)
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock snapshot %s: %w", lockPath, err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	tree, err := outline.Decode(string(data))
	if err != nil {
		r.l.Errorf(ctx, "snapshot repository: corrupt snapshot %s: %v", path, err)
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return tree, nil
}

func (r *implRepository) Save(ctx context.Context, listName string, tree *tasktree.Tree) error {
	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	path, lockPath, _ := r.paths(listName)

	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock snapshot %s: %w", lockPath, err)
	}
	defer lock.Unlock()

	if err := atomic.WriteFile(path, strings.NewReader(outline.Encode(tree))); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	r.l.Debugf(ctx, "snapshot repository: saved %d tasks to %s", tree.Len(), path)
	return nil
}

// Lock holds a file lock separate from the one Load and Save take, so both
// can run while the list is held.
func (r *implRepository) Lock(ctx context.Context, listName string) (func(), error) {
	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	_, _, listPath := r.paths(listName)

	lock := flock.New(listPath)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock list %s: %w", listPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock list %s: not acquired", listPath)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			r.l.Warnf(ctx, "snapshot repository: unlock %s: %v", listPath, err)
		}
	}, nil
}

func (r *implRepository) paths(listName string) (string, string, string) {
	key := defaultKey
	if listName != "" {
		key = url.PathEscape(listName)
	}
	base := filepath.Join(r.dir, key)
	return base + fileExt, base + lockExt, base + listExt
}
