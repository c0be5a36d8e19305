package store

import (
	"github.com/google/btree"
)

// item is one slot of a sequence. Values stored in an item are never
// modified after insertion.
type item struct {
	I     int // position in the sequence
	Value any
}

func itemLess(a, b item) bool {
	return a.I < b.I
}

// sequence is an immutable, index-addressed list of records. Every mutation
// returns a new sequence sharing untouched nodes with the previous one, so
// readers holding an older version keep seeing it unchanged.
type sequence struct {
	tree *btree.BTreeG[item]
}

func newSequence() *sequence {
	return &sequence{
		tree: btree.NewG(32, itemLess),
	}
}

func sequenceOf(values []any) *sequence {
	s := newSequence()
	for i, v := range values {
		s.tree.ReplaceOrInsert(item{I: i, Value: v})
	}
	return s
}

func (s *sequence) Len() int {
	return s.tree.Len()
}

func (s *sequence) At(i int) (any, bool) {
	if i < 0 || i >= s.tree.Len() {
		return nil, false
	}
	it, ok := s.tree.Get(item{I: i})
	if !ok {
		return nil, false
	}
	return it.Value, true
}

// Append returns a new version with v as last element.
func (s *sequence) Append(v any) *sequence {
	tree := s.tree.Clone()
	tree.ReplaceOrInsert(item{I: tree.Len(), Value: v})
	return &sequence{tree: tree}
}

// Replace returns a new version with position i holding v. Out of range
// positions return the receiver untouched.
func (s *sequence) Replace(i int, v any) *sequence {
	if i < 0 || i >= s.tree.Len() {
		return s
	}
	tree := s.tree.Clone()
	tree.ReplaceOrInsert(item{I: i, Value: v})
	return &sequence{tree: tree}
}

// Delete returns a new version without position i; following elements move
// one position down. Out of range positions return the receiver untouched.
func (s *sequence) Delete(i int) *sequence {
	n := s.tree.Len()
	if i < 0 || i >= n {
		return s
	}
	tree := s.tree.Clone()
	for j := i + 1; j < n; j++ {
		next, _ := tree.Get(item{I: j})
		tree.ReplaceOrInsert(item{I: j - 1, Value: next.Value})
	}
	tree.Delete(item{I: n - 1})
	return &sequence{tree: tree}
}

// Traverse visits elements in index order until f returns false.
func (s *sequence) Traverse(f func(i int, v any) bool) {
	s.tree.Ascend(func(it item) bool {
		return f(it.I, it.Value)
	})
}

func (s *sequence) Values() []any {
	values := make([]any, 0, s.tree.Len())
	s.Traverse(func(i int, v any) bool {
		values = append(values, v)
		return true
	})
	return values
}
