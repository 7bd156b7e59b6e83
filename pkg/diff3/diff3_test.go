package diff3_test

import (
	"strings"
	"testing"

	"org-tasks-sync/pkg/diff3"
)

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		mine     string
		base     string
		theirs   string
		want     string
		conflict bool
	}{
		{"all equal", "a,b,c", "a,b,c", "a,b,c", "a,b,c", false},
		{"only mine changed", "a,x,c", "a,b,c", "a,b,c", "a,x,c", false},
		{"only theirs changed", "a,b,c", "a,b,c", "a,y,c", "a,y,c", false},
		{"same change both sides", "a,x,c", "a,b,c", "a,x,c", "a,x,c", false},
		{"disjoint changes", "a,x,c,d,e", "a,b,c,d,e", "a,b,c,d,y", "a,x,c,d,y", false},
		{"append and edit", "a,b,c,d", "a,b,c", "a,B,c", "a,B,c,d", false},
		{"delete on one side", "a,c", "a,b,c", "a,b,c", "a,c", false},
		{"insert at head", "z,a,b", "a,b", "a,b,y", "z,a,b,y", false},
		{"empty base", "a", "", "", "a", false},
		{"conflicting edit", "a,x,c", "a,b,c", "a,y,c", "a,<<<<<<< MINE,x,=======,y,>>>>>>> THEIRS,c", true},
		{"conflicting inserts", "x", "", "y", "<<<<<<< MINE,x,=======,y,>>>>>>> THEIRS", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := diff3.Merge(lines(tc.mine), lines(tc.base), lines(tc.theirs), diff3.Labels{})
			if got := strings.Join(res.Lines, ","); got != tc.want {
				t.Errorf("want %q, got %q", tc.want, got)
			}
			if res.Conflicted() != tc.conflict {
				t.Errorf("conflict: want %v, got %v", tc.conflict, res.Conflicted())
			}
		})
	}
}

func TestMergeReorderVersusEdit(t *testing.T) {
	base := lines("A,B,C")
	mine := lines("A,C,B")
	theirs := lines("A,B2,C")

	res := diff3.Merge(mine, base, theirs, diff3.Labels{})
	if !res.Conflicted() {
		t.Fatalf("expected a conflict, got %q", res.Lines)
	}
	joined := strings.Join(res.Lines, "\n")
	if !strings.Contains(joined, "<<<<<<< MINE") {
		t.Errorf("missing start marker in %q", joined)
	}
	if !strings.Contains(joined, "B2") {
		t.Errorf("theirs side lost in %q", joined)
	}
}

func TestMergeLabels(t *testing.T) {
	res := diff3.Merge(lines("x"), lines("b"), lines("y"), diff3.Labels{Mine: "local", Theirs: "remote"})
	if res.Lines[0] != "<<<<<<< local" || res.Lines[len(res.Lines)-1] != ">>>>>>> remote" {
		t.Errorf("unexpected markers %q", res.Lines)
	}
}

func TestMergeText(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		got, res := diff3.MergeText("a\nx\n", "a\nb\n", "a\nb\n", diff3.Labels{})
		if got != "a\nx\n" || res.Conflicted() {
			t.Errorf("unexpected merge %q (conflicts %d)", got, res.Conflicts)
		}
	})

	t.Run("all deleted", func(t *testing.T) {
		got, res := diff3.MergeText("", "a\n", "a\n", diff3.Labels{})
		if got != "" || res.Conflicted() {
			t.Errorf("expected empty merge, got %q", got)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		got, res := diff3.MergeText("x\n", "b\n", "y\n", diff3.Labels{})
		want := "<<<<<<< MINE\nx\n=======\ny\n>>>>>>> THEIRS\n"
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
		if res.Conflicts != 1 {
			t.Errorf("expected 1 conflict, got %d", res.Conflicts)
		}
	})
}
