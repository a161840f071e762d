// Package treemset implement an ordered multiset on the rbt engine.
// Duplicate values are permitted and keep their insertion order among
// equals, per-value counting and bulk removal-by-value run in
// O(log n + m) for m equal values.
package treemset

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/rbt"
import s "github.com/bnclabs/gosettings"

// Multiset manage a single instance of an ordered multiset. Depends
// only on the api.Tree capability interface, refer package rbt for
// system settings.
type Multiset[V any] struct {
	tree api.Tree[V]
}

// New multiset named name, values ordered by cmp.
func New[V any](name string, cmp api.CompareFn[V], setts s.Settings) *Multiset[V] {
	if cmp == nil {
		panic("treemset.New(): nil compare function, call the programmer")
	}
	setts = (s.Settings{}).Mixin(setts, s.Settings{"dups": true})
	return &Multiset[V]{tree: rbt.New[V](name, cmp, nil, setts)}
}

// ID return the name of this multiset.
func (mset *Multiset[V]) ID() string {
	return mset.tree.ID()
}

// Count return the number of values, duplicates included.
func (mset *Multiset[V]) Count() int64 {
	return mset.tree.Count()
}

// Add value to the multiset. Always inserts, the new node lands
// immediately after the last equal value, the returned cursor
// designates it.
func (mset *Multiset[V]) Add(value V) api.Cursor[V] {
	ref, _ := mset.tree.Insert(value)
	return api.NewCursor(mset.tree, ref)
}

// Has return whether at least one equal value is present.
func (mset *Multiset[V]) Has(value V) bool {
	return mset.tree.Find(value).IsEnd() == false
}

// CountOf number of values equal to value, O(log n + m).
func (mset *Multiset[V]) CountOf(value V) int64 {
	return mset.tree.CountEqual(value)
}

// Delete remove the earliest inserted value equal to value, false if
// absent.
func (mset *Multiset[V]) Delete(value V) bool {
	ref := mset.tree.Find(value)
	if ref.IsEnd() {
		return false
	}
	mset.tree.Remove(ref)
	return true
}

// DeleteAll remove every value equal to value, returning how many
// were removed, O(m log n).
func (mset *Multiset[V]) DeleteAll(value V) int64 {
	return mset.tree.RemoveEqual(value)
}

//---- cursors and ranges

// Begin cursor at the smallest value.
func (mset *Multiset[V]) Begin() api.Cursor[V] {
	return api.NewCursor(mset.tree, mset.tree.Begin())
}

// End past-the-end cursor.
func (mset *Multiset[V]) End() api.Cursor[V] {
	return api.NewCursor(mset.tree, mset.tree.End())
}

// Find cursor at the earliest inserted value equal to value,
// past-the-end if absent.
func (mset *Multiset[V]) Find(value V) api.Cursor[V] {
	return api.NewCursor(mset.tree, mset.tree.Find(value))
}

// Belongs whether cur was issued by this multiset and is still live.
func (mset *Multiset[V]) Belongs(cur api.Cursor[V]) bool {
	return mset.tree.Belongs(cur.Ref())
}

// Order relative in-order position of two cursors, ranking equal
// valued positions correctly.
func (mset *Multiset[V]) Order(a, b api.Cursor[V]) api.Ordering {
	return mset.tree.NodeOrder(a.Ref(), b.Ref())
}

// RemoveAt remove the value under cur, returning a cursor to its
// in-order successor. Other cursors stay valid.
func (mset *Multiset[V]) RemoveAt(cur api.Cursor[V]) (api.Cursor[V], error) {
	next, err := mset.tree.Remove(cur.Ref())
	if err != nil {
		return api.Cursor[V]{}, err
	}
	return api.NewCursor(mset.tree, next), nil
}

// Range construct [begin, end) over this multiset from two cursors.
func (mset *Multiset[V]) Range(begin, end api.Cursor[V]) (api.Range[V], error) {
	return api.NewRange(mset.tree, begin.Ref(), end.Ref())
}

// RangeValues construct [low, high) resolving each endpoint to the
// earliest inserted equal value, every endpoint must be present,
// ErrorInvalidRange otherwise.
func (mset *Multiset[V]) RangeValues(low, high V) (api.Range[V], error) {
	bref, href := mset.tree.Find(low), mset.tree.Find(high)
	if bref.IsEnd() || href.IsEnd() {
		return api.Range[V]{}, api.ErrorInvalidRange
	}
	return api.NewRange(mset.tree, bref, href)
}

// RemoveRange remove every value in [begin, end), returning how many
// were removed.
func (mset *Multiset[V]) RemoveRange(begin, end api.Cursor[V]) (int64, error) {
	removed := int64(0)
	err := api.Purge(mset.tree, begin.Ref(), end.Ref(),
		func(V) (bool, error) {
			removed++
			return true, nil
		})
	return removed, err
}

//---- purge and bulk operations

// Purge walk the whole multiset presenting each value to fn, flagged
// values are removed without disturbing the walk, fn's error
// terminates early and is returned as-is.
func (mset *Multiset[V]) Purge(fn api.PurgeFn[V]) error {
	return api.Purge(mset.tree, mset.tree.Begin(), mset.tree.End(), fn)
}

// PurgeRange like Purge over [begin, end) only.
func (mset *Multiset[V]) PurgeRange(begin, end api.Cursor[V], fn api.PurgeFn[V]) error {
	return api.Purge(mset.tree, begin.Ref(), end.Ref(), fn)
}

// AddAll add every value from seq. Feeding this multiset's own
// Sequence() back is rejected with ErrorSelfFeed.
func (mset *Multiset[V]) AddAll(seq api.Sequence[V]) (int64, error) {
	return api.AddAll(mset.tree, seq)
}

// RetainOnly keep only values matching some probe from seq, removing
// the rest, every copy of a probed value is kept.
func (mset *Multiset[V]) RetainOnly(seq api.Sequence[V]) (int64, error) {
	return api.RetainOnly(mset.tree, seq)
}

// Sequence stream this multiset's values front to back.
func (mset *Multiset[V]) Sequence() *api.CursorSequence[V] {
	return api.NewCursorSequence(mset.tree, mset.tree.Begin(), mset.tree.End())
}

//---- lifecycle

// Clone produce an independently owned copy, no cursor from this
// multiset is recognized by the copy.
func (mset *Multiset[V]) Clone(name string) (*Multiset[V], error) {
	tree, err := mset.tree.Clone(name)
	if err != nil {
		return nil, err
	}
	return &Multiset[V]{tree: tree}, nil
}

// Clear discard all values, outstanding cursors stop belonging.
func (mset *Multiset[V]) Clear() {
	mset.tree.Clear()
}

// Destroy release the multiset.
func (mset *Multiset[V]) Destroy() error {
	return mset.tree.Destroy()
}

// Validate walk the backing tree checking its invariants.
func (mset *Multiset[V]) Validate() {
	mset.tree.Validate()
}

// Stats return the backing tree's statistics.
func (mset *Multiset[V]) Stats() map[string]interface{} {
	return mset.tree.Stats()
}

// Log stats via the configured logger.
func (mset *Multiset[V]) Log() {
	mset.tree.Log()
}
