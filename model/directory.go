package model

import "errors"

var (
	// ErrFrozen is returned when adding a child to a frozen directory.
	ErrFrozen = errors.New("directory is frozen")
	// ErrCycle is returned when adding a node whose subtree already contains
	// the receiving directory.
	ErrCycle = errors.New("directory cannot contain itself")
)

// Directory is the composite node: an ordered list of child FileNodes, files
// and nested directories interleaved in any order. The child order set by
// AddFile is the traversal order used by every visitor.
//
// A Directory has a two-phase lifecycle: children may be added while it is
// being built, then Freeze marks the whole subtree read-only before it is
// published to visitors.
type Directory struct {
	title  string
	level  int
	frozen bool
	files  []FileNode
}

// NewDirectory creates an empty directory at the given nesting level
// (0 for the root).
func NewDirectory(title string, level int) *Directory {
	return &Directory{title: title, level: level}
}

func (d *Directory) Title() string { return d.title }

// Level reports the nesting depth, 0 meaning root.
func (d *Directory) Level() int { return d.level }

// Files returns the ordered child list. Callers must not mutate it.
func (d *Directory) Files() []FileNode { return d.files }

// AddFile appends a node to the child list. It fails on a frozen directory
// and rejects nodes that would turn the tree into a graph.
func (d *Directory) AddFile(n FileNode) error {
	if d.frozen {
		return ErrFrozen
	}
	if sub, ok := n.(*Directory); ok && sub.contains(d) {
		return ErrCycle
	}
	d.files = append(d.files, n)
	return nil
}

// contains reports whether target is d or any directory in d's subtree.
func (d *Directory) contains(target *Directory) bool {
	if d == target {
		return true
	}
	for _, f := range d.files {
		if sub, ok := f.(*Directory); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// Freeze marks the directory and every nested directory read-only.
// It is idempotent.
func (d *Directory) Freeze() {
	d.frozen = true
	for _, f := range d.files {
		if sub, ok := f.(*Directory); ok {
			sub.Freeze()
		}
	}
}

// Size sums the sizes of all direct children, resolving nested directories
// recursively. It recomputes on every call so the total always reflects the
// current children.
func (d *Directory) Size() int64 {
	var total int64
	for _, f := range d.files {
		total += f.Size()
	}
	return total
}

func (d *Directory) Accept(v Visitor) string { return v.VisitDirectory(d) }
