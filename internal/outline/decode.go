package outline

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"org-tasks-sync/internal/tasktree"
)

var headlineRegex = regexp.MustCompile(`^(\*+ )( *)(DONE )?`)

// pending is a task whose headline has been read but whose notes may still
// be growing.
type pending struct {
	title  string
	status tasktree.Status
	notes  []string
	indent int
}

func (p *pending) node() *tasktree.Node {
	n := &tasktree.Node{Title: p.title, Status: p.status}
	if p.notes != nil {
		n.Notes = tasktree.Notes(strings.Join(p.notes, "\n"))
	}
	return n
}

type decoder struct {
	tree *tasktree.Tree
	// open[d] is the most recently opened container at depth d.
	open     []tasktree.Container
	cur      *pending
	preamble []string
	lastIdx  int
}

// Decode parses outline text into a new tree. A headline may be at most one
// level deeper than the headline before it; anything else fails with a
// *SyntaxError.
func Decode(text string) (*tasktree.Tree, error) {
	d := &decoder{tree: tasktree.New(), lastIdx: -1}
	d.open = []tasktree.Container{d.tree}

	for i, line := range splitLines(text) {
		if err := d.line(i+1, line); err != nil {
			return nil, err
		}
	}
	d.finish()
	return d.tree, nil
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader) (*tasktree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return Decode(string(data))
}

func (d *decoder) line(lineNo int, line string) error {
	m := headlineRegex.FindStringSubmatch(line)
	if m == nil {
		if d.cur == nil {
			d.preamble = append(d.preamble, line)
			return nil
		}
		d.cur.notes = append(d.cur.notes, line)
		return nil
	}

	indent := len(m[1]) - 2
	if d.cur == nil {
		d.flushPreamble()
	}
	if indent > d.lastIdx+1 {
		return &SyntaxError{
			Line:   lineNo,
			Reason: fmt.Sprintf("headline at depth %d has no parent at depth %d", indent+1, indent),
		}
	}
	d.commit()

	p := &pending{indent: indent, status: tasktree.StatusNeedsAction}
	rest := line[len(m[1]):]
	if m[3] != "" {
		p.status = tasktree.StatusCompleted
		rest = rest[len(m[2])+len(m[3]):]
	}
	p.title = rest
	d.cur = p
	d.lastIdx = indent
	return nil
}

// flushPreamble turns text seen before the first headline into an untitled
// placeholder task so it survives a round trip.
func (d *decoder) flushPreamble() {
	blank := true
	for _, l := range d.preamble {
		if strings.TrimSpace(l) != "" {
			blank = false
			break
		}
	}
	if !blank {
		d.cur = &pending{notes: d.preamble, indent: 0}
		d.commit()
		d.lastIdx = 0
	}
	d.preamble = nil
}

func (d *decoder) commit() {
	if d.cur == nil {
		return
	}
	node := d.cur.node()
	parentDepth := d.cur.indent
	d.open[parentDepth].Append(node)
	d.open = append(d.open[:parentDepth+1], node)
	d.cur = nil
}

func (d *decoder) finish() {
	if d.cur == nil {
		d.flushPreamble()
	}
	d.commit()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
