package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/sync/repository"
	"org-tasks-sync/internal/sync/usecase"
	"org-tasks-sync/internal/tasktree"
)

func mustDecode(t *testing.T, text string) *tasktree.Tree {
	t.Helper()
	tree, err := outline.Decode(text)
	if err != nil {
		t.Fatalf("decode %q: %v", text, err)
	}
	return tree
}

func TestLists(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newFakeRemote(), newFakeSnapshots(), 0)
	lists, err := uc.Lists(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 2 {
		t.Errorf("expected 2 lists, got %d", len(lists))
	}
}

func TestPull(t *testing.T) {
	const text = "* a\nnote\n** b\n** DONE c\n*** c1\n* d\n"
	ctx := context.Background()

	t.Run("children listed before parents", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed(text)
		remote.reversed = true
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		out, err := uc.Pull(ctx, sync.PullInput{ListName: "Work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outline != text {
			t.Errorf("want %q, got %q", text, out.Outline)
		}
		if out.ListID != "list-work" {
			t.Errorf("unexpected list id %q", out.ListID)
		}
		if out.Tree.Children[0].ID == "" {
			t.Error("expected remote ids on pulled nodes")
		}
		if snaps.saves != 0 {
			t.Error("pull without SaveSnapshot must not save")
		}
	})

	t.Run("save snapshot", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed(text)
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		if _, err := uc.Pull(ctx, sync.PullInput{ListName: "Work", SaveSnapshot: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snaps.saved["Work"] != text {
			t.Errorf("unexpected snapshot %q", snaps.saved["Work"])
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newFakeRemote(), newFakeSnapshots(), 0)
		_, err := uc.Pull(ctx, sync.PullInput{ListName: "Nope"})
		if !errors.Is(err, sync.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})
}

func TestPullMalformedRemote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		seed   string
		extra  []model.RemoteTask
		budget int
	}{
		{
			name:  "missing parent",
			seed:  "* a\n",
			extra: []model.RemoteTask{{ID: "x", ParentID: "missing", Title: "orphan"}},
		},
		{
			name: "cycle",
			seed: "* a\n",
			extra: []model.RemoteTask{
				{ID: "x", ParentID: "y", Title: "x"},
				{ID: "y", ParentID: "x", Title: "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			remote.seed(tt.seed)
			remote.reversed = true
			remote.extra = tt.extra
			uc := usecase.New(&mockLogger{}, remote, newFakeSnapshots(), tt.budget)

			_, err := uc.Pull(ctx, sync.PullInput{})
			if !errors.Is(err, sync.ErrMalformedRemoteList) {
				t.Errorf("expected ErrMalformedRemoteList, got %v", err)
			}
		})
	}
}

func TestPullLargeList(t *testing.T) {
	var b strings.Builder
	for p := 0; p < 20; p++ {
		fmt.Fprintf(&b, "* parent %d\n", p)
		for c := 0; c < 60; c++ {
			fmt.Fprintf(&b, "** child %d.%d\n", p, c)
		}
	}
	b.WriteString("* deep\n** d1\n*** d2\n**** d3\n")
	text := b.String()

	tests := []struct {
		name     string
		reversed bool
		budget   int
	}{
		{"api order", false, 0},
		{"children first", true, 0},
		{"budget below list size", true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			remote.seed(text)
			remote.reversed = tt.reversed
			uc := usecase.New(&mockLogger{}, remote, newFakeSnapshots(), tt.budget)

			out, err := uc.Pull(context.Background(), sync.PullInput{ListName: "Work"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Tree.Len() != 20*61+4 {
				t.Errorf("expected %d tasks, got %d", 20*61+4, out.Tree.Len())
			}
			if out.Outline != text {
				t.Error("pulled outline differs from the remote list")
			}
		})
	}
}

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the remote list", func(t *testing.T) {
		const text = "* a\n** b\n** c\n* DONE d\nnotes\n"
		remote := newFakeRemote()
		remote.seed("* old\n** older\n")
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		tree := mustDecode(t, text)
		out, err := uc.Push(ctx, sync.PushInput{ListName: "Work", Tree: tree})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 4 {
			t.Errorf("expected 4 tasks, got %d", out.TaskCount)
		}
		if got := remote.outlineText(); got != text {
			t.Errorf("remote: want %q, got %q", text, got)
		}
		if tree.Children[0].ID == "" || tree.Children[0].Children[1].ID == "" {
			t.Error("expected remote ids written back to the tree")
		}
		if snaps.saved["Work"] != text {
			t.Errorf("unexpected snapshot %q", snaps.saved["Work"])
		}
	})

	t.Run("placeholder pushed as needsAction", func(t *testing.T) {
		remote := newFakeRemote()
		uc := usecase.New(&mockLogger{}, remote, newFakeSnapshots(), 0)

		if _, err := uc.Push(ctx, sync.PushInput{Tree: mustDecode(t, "preamble\n* a\n")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := remote.tasks[remote.children[""][0]]
		if first.Title != "" || first.Status != "needsAction" || first.Notes != "preamble" {
			t.Errorf("unexpected placeholder %+v", first)
		}
	})

	t.Run("nil tree", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newFakeRemote(), newFakeSnapshots(), 0)
		_, err := uc.Push(ctx, sync.PushInput{})
		if !errors.Is(err, sync.ErrNilTree) {
			t.Errorf("expected ErrNilTree, got %v", err)
		}
	})

	t.Run("insert failure keeps the snapshot", func(t *testing.T) {
		remote := newFakeRemote()
		remote.insertErr = repository.ErrFailedToInsert
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		_, err := uc.Push(ctx, sync.PushInput{Tree: mustDecode(t, "* a\n")})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
		if snaps.saves != 0 {
			t.Error("snapshot must not be saved after a failed push")
		}
	})
}

func TestSync(t *testing.T) {
	ctx := context.Background()

	t.Run("first sync uses the remote as base", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed("* a\n* b\n")
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		out, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: mustDecode(t, "* a\n* b\n* c\n")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "* a\n* b\n* c\n"
		if !out.FirstSync || out.Conflict {
			t.Errorf("unexpected flags %+v", out)
		}
		if out.Outline != want {
			t.Errorf("want %q, got %q", want, out.Outline)
		}
		if got := remote.outlineText(); got != want {
			t.Errorf("remote: want %q, got %q", want, got)
		}
		if snaps.saved["Work"] != want {
			t.Errorf("unexpected snapshot %q", snaps.saved["Work"])
		}
	})

	t.Run("disjoint edits merge cleanly", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed("* DONE Buy milk\n* Call mom\n* Write report\n")
		snaps := newFakeSnapshots()
		snaps.saved["Work"] = "* Buy milk\n* Call mom\n* Write report\n"
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		local := mustDecode(t, "* Buy milk\n* Call mom\n* Write report\n* Book flights\n")
		out, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: local})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "* DONE Buy milk\n* Call mom\n* Write report\n* Book flights\n"
		if out.Conflict || out.FirstSync {
			t.Errorf("unexpected flags %+v", out)
		}
		if out.Outline != want {
			t.Errorf("want %q, got %q", want, out.Outline)
		}
		if got := remote.outlineText(); got != want {
			t.Errorf("remote: want %q, got %q", want, got)
		}
		if snaps.saved["Work"] != want {
			t.Errorf("unexpected snapshot %q", snaps.saved["Work"])
		}
	})

	t.Run("conflict leaves remote and snapshot alone", func(t *testing.T) {
		remote := newFakeRemote()
		const base = "* Buy milk\n* Call mom\n* Write report\n"
		remote.seed("* Buy milk\n* Call mom tonight\n* Write report\n")
		snaps := newFakeSnapshots()
		snaps.saved["Work"] = base
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		local := mustDecode(t, "* Buy milk\n* Write report\n* Call mom\n")
		out, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: local})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Conflict {
			t.Fatal("expected a conflict")
		}
		if !strings.Contains(out.Outline, "<<<<<<< MINE") {
			t.Errorf("expected conflict markers, got %q", out.Outline)
		}
		if remote.inserts != 0 || remote.deletes != 0 {
			t.Errorf("remote modified: %d inserts, %d deletes", remote.inserts, remote.deletes)
		}
		if snaps.saves != 0 || snaps.saved["Work"] != base {
			t.Error("snapshot modified on conflict")
		}
	})

	t.Run("corrupt snapshot is not blamed on the caller", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed("* a\n")
		snaps := newFakeSnapshots()
		snaps.saved["Work"] = "* a\n*** c\n"
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		_, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: mustDecode(t, "* a\n* b\n")})
		if !errors.Is(err, sync.ErrCorruptState) {
			t.Fatalf("expected ErrCorruptState, got %v", err)
		}
		if errors.Is(err, outline.ErrMalformedOutline) {
			t.Errorf("error must not read as a malformed request: %v", err)
		}
		if remote.inserts != 0 || remote.deletes != 0 {
			t.Errorf("remote modified: %d inserts, %d deletes", remote.inserts, remote.deletes)
		}
		if snaps.unlocks != snaps.locks {
			t.Errorf("list left held: %d locks, %d unlocks", snaps.locks, snaps.unlocks)
		}
	})

	t.Run("nil local tree", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newFakeRemote(), newFakeSnapshots(), 0)
		_, err := uc.Sync(ctx, sync.SyncInput{})
		if !errors.Is(err, sync.ErrNilTree) {
			t.Errorf("expected ErrNilTree, got %v", err)
		}
	})
}

func TestListLock(t *testing.T) {
	ctx := context.Background()

	t.Run("writes happen while the list is held", func(t *testing.T) {
		remote := newFakeRemote()
		remote.seed("* a\n")
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		if _, err := uc.Push(ctx, sync.PushInput{ListName: "Work", Tree: mustDecode(t, "* b\n")}); err != nil {
			t.Fatalf("push: %v", err)
		}
		if _, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: mustDecode(t, "* b\n* c\n")}); err != nil {
			t.Fatalf("sync: %v", err)
		}
		if _, err := uc.Pull(ctx, sync.PullInput{ListName: "Work", SaveSnapshot: true}); err != nil {
			t.Fatalf("pull: %v", err)
		}
		if snaps.locks != 3 || snaps.unlocks != 3 {
			t.Errorf("expected 3 locks and unlocks, got %d and %d", snaps.locks, snaps.unlocks)
		}
		if snaps.unheldSaves != 0 {
			t.Errorf("%d snapshot saves outside the lock", snaps.unheldSaves)
		}
	})

	t.Run("plain pull does not lock", func(t *testing.T) {
		snaps := newFakeSnapshots()
		uc := usecase.New(&mockLogger{}, newFakeRemote(), snaps, 0)
		if _, err := uc.Pull(ctx, sync.PullInput{ListName: "Work"}); err != nil {
			t.Fatalf("pull: %v", err)
		}
		if snaps.locks != 0 {
			t.Errorf("expected no lock, got %d", snaps.locks)
		}
	})

	t.Run("busy list is left alone", func(t *testing.T) {
		busy := errors.New("list busy")
		remote := newFakeRemote()
		remote.seed("* a\n")
		snaps := newFakeSnapshots()
		snaps.lockErr = busy
		uc := usecase.New(&mockLogger{}, remote, snaps, 0)

		if _, err := uc.Push(ctx, sync.PushInput{ListName: "Work", Tree: mustDecode(t, "* b\n")}); !errors.Is(err, busy) {
			t.Errorf("push: expected lock error, got %v", err)
		}
		if _, err := uc.Sync(ctx, sync.SyncInput{ListName: "Work", Local: mustDecode(t, "* b\n")}); !errors.Is(err, busy) {
			t.Errorf("sync: expected lock error, got %v", err)
		}
		if _, err := uc.Pull(ctx, sync.PullInput{ListName: "Work", SaveSnapshot: true}); !errors.Is(err, busy) {
			t.Errorf("pull: expected lock error, got %v", err)
		}
		if remote.inserts != 0 || remote.deletes != 0 || snaps.saves != 0 {
			t.Errorf("list written without the lock: %d inserts, %d deletes, %d saves", remote.inserts, remote.deletes, snaps.saves)
		}
	})
}
