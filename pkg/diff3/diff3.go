// Package diff3 implements a line-oriented three-way merge in the style of
// diff3 -m: regions changed on only one side are taken from that side,
// regions changed identically on both sides are taken once, and anything
// else is emitted between conflict markers.
package diff3

import "strings"

// Merge merges mine and theirs, both derived from base.
func Merge(mine, base, theirs []string, labels Labels) Result {
	labels = withDefaults(labels)
	matchMine := matchLines(base, mine)
	matchTheirs := matchLines(base, theirs)

	var res Result
	io, im, it := 0, 0, 0
	for io < len(base) || im < len(mine) || it < len(theirs) {
		if io < len(base) && matchMine[io] == im && matchTheirs[io] == it {
			res.Lines = append(res.Lines, base[io])
			io++
			im++
			it++
			continue
		}

		// next base line kept unchanged by both sides
		eo, em, et := len(base), len(mine), len(theirs)
		for o := io; o < len(base); o++ {
			if matchMine[o] >= im && matchTheirs[o] >= it {
				eo, em, et = o, matchMine[o], matchTheirs[o]
				break
			}
		}

		o, m, t := base[io:eo], mine[im:em], theirs[it:et]
		switch {
		case equal(m, o):
			res.Lines = append(res.Lines, t...)
		case equal(t, o), equal(m, t):
			res.Lines = append(res.Lines, m...)
		default:
			res.Conflicts++
			res.Lines = append(res.Lines, markerStart+" "+labels.Mine)
			res.Lines = append(res.Lines, m...)
			res.Lines = append(res.Lines, markerSep)
			res.Lines = append(res.Lines, t...)
			res.Lines = append(res.Lines, markerEnd+" "+labels.Theirs)
		}
		io, im, it = eo, em, et
	}
	return res
}

// MergeText merges newline-terminated texts. The result is newline
// terminated unless it is empty.
func MergeText(mine, base, theirs string, labels Labels) (string, Result) {
	res := Merge(splitLines(mine), splitLines(base), splitLines(theirs), labels)
	if len(res.Lines) == 0 {
		return "", res
	}
	return strings.Join(res.Lines, "\n") + "\n", res
}

func withDefaults(l Labels) Labels {
	if l.Mine == "" {
		l.Mine = DefaultMineLabel
	}
	if l.Theirs == "" {
		l.Theirs = DefaultTheirsLabel
	}
	return l
}

// matchLines returns, for every line of a, the index of the line of b it is
// paired with in a longest common subsequence, or -1.
func matchLines(a, b []string) []int {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				lcs[i][j] = lcs[i+1][j+1] + 1
			case lcs[i+1][j] >= lcs[i][j+1]:
				lcs[i][j] = lcs[i+1][j]
			default:
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			match[i] = j
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}
	return match
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
