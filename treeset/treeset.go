// Package treeset implement an ordered set of unique values on the
// rbt engine. Duplicate adds are rejected outright, the held value
// and its node are left untouched.
package treeset

import "fmt"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/rbt"
import s "github.com/bnclabs/gosettings"

// Set manage a single instance of an ordered set. Depends only on
// the api.Tree capability interface, refer package rbt for system
// settings.
type Set[V any] struct {
	tree api.Tree[V]
}

// New set named name, values ordered by cmp.
func New[V any](name string, cmp api.CompareFn[V], setts s.Settings) *Set[V] {
	if cmp == nil {
		panic("treeset.New(): nil compare function, call the programmer")
	}
	keepold := func(old, elem V) V {
		return old
	}
	setts = (s.Settings{}).Mixin(setts, s.Settings{"dups": false})
	return &Set[V]{tree: rbt.New[V](name, cmp, keepold, setts)}
}

// ID return the name of this set.
func (set *Set[V]) ID() string {
	return set.tree.ID()
}

// Count return the number of values.
func (set *Set[V]) Count() int64 {
	return set.tree.Count()
}

// Add value to the set, false if an equal value is already present,
// in which case nothing changes.
func (set *Set[V]) Add(value V) bool {
	_, inserted := set.tree.Insert(value)
	return inserted
}

// Has return whether value is present.
func (set *Set[V]) Has(value V) bool {
	return set.tree.Find(value).IsEnd() == false
}

// Delete remove value from the set, false if absent.
func (set *Set[V]) Delete(value V) bool {
	ref := set.tree.Find(value)
	if ref.IsEnd() {
		return false
	}
	if _, err := set.tree.Remove(ref); err != nil {
		panic(fmt.Errorf("treeset.Delete(): %v, call the programmer", err))
	}
	return true
}

//---- cursors and ranges

// Begin cursor at the smallest value.
func (set *Set[V]) Begin() api.Cursor[V] {
	return api.NewCursor(set.tree, set.tree.Begin())
}

// End past-the-end cursor.
func (set *Set[V]) End() api.Cursor[V] {
	return api.NewCursor(set.tree, set.tree.End())
}

// Find cursor at value, past-the-end if absent.
func (set *Set[V]) Find(value V) api.Cursor[V] {
	return api.NewCursor(set.tree, set.tree.Find(value))
}

// Belongs whether cur was issued by this set and is still live.
func (set *Set[V]) Belongs(cur api.Cursor[V]) bool {
	return set.tree.Belongs(cur.Ref())
}

// RemoveAt remove the value under cur, returning a cursor to its
// in-order successor. Other cursors stay valid.
func (set *Set[V]) RemoveAt(cur api.Cursor[V]) (api.Cursor[V], error) {
	next, err := set.tree.Remove(cur.Ref())
	if err != nil {
		return api.Cursor[V]{}, err
	}
	return api.NewCursor(set.tree, next), nil
}

// Range construct [begin, end) over this set from two cursors.
func (set *Set[V]) Range(begin, end api.Cursor[V]) (api.Range[V], error) {
	return api.NewRange(set.tree, begin.Ref(), end.Ref())
}

// RangeValues construct [low, high) resolving both endpoints by
// value, every endpoint must be present, ErrorInvalidRange otherwise.
func (set *Set[V]) RangeValues(low, high V) (api.Range[V], error) {
	bref, href := set.tree.Find(low), set.tree.Find(high)
	if bref.IsEnd() || href.IsEnd() {
		return api.Range[V]{}, api.ErrorInvalidRange
	}
	return api.NewRange(set.tree, bref, href)
}

// RemoveRange remove every value in [begin, end), returning how many
// were removed.
func (set *Set[V]) RemoveRange(begin, end api.Cursor[V]) (int64, error) {
	removed := int64(0)
	err := api.Purge(set.tree, begin.Ref(), end.Ref(),
		func(V) (bool, error) {
			removed++
			return true, nil
		})
	return removed, err
}

//---- purge and bulk operations

// Purge walk the whole set presenting each value to fn, flagged
// values are removed without disturbing the walk, fn's error
// terminates early and is returned as-is.
func (set *Set[V]) Purge(fn api.PurgeFn[V]) error {
	return api.Purge(set.tree, set.tree.Begin(), set.tree.End(), fn)
}

// PurgeRange like Purge over [begin, end) only.
func (set *Set[V]) PurgeRange(begin, end api.Cursor[V], fn api.PurgeFn[V]) error {
	return api.Purge(set.tree, begin.Ref(), end.Ref(), fn)
}

// AddAll add every value from seq, one Add per value. Feeding this
// set's own Sequence() back is rejected with ErrorSelfFeed.
func (set *Set[V]) AddAll(seq api.Sequence[V]) (int64, error) {
	return api.AddAll(set.tree, seq)
}

// RetainOnly keep only values matching some probe from seq, removing
// the rest, O(m log n) for m probes.
func (set *Set[V]) RetainOnly(seq api.Sequence[V]) (int64, error) {
	return api.RetainOnly(set.tree, seq)
}

// Sequence stream this set's values front to back.
func (set *Set[V]) Sequence() *api.CursorSequence[V] {
	return api.NewCursorSequence(set.tree, set.tree.Begin(), set.tree.End())
}

//---- lifecycle

// Clone produce an independently owned copy, no cursor from this set
// is recognized by the copy.
func (set *Set[V]) Clone(name string) (*Set[V], error) {
	tree, err := set.tree.Clone(name)
	if err != nil {
		return nil, err
	}
	return &Set[V]{tree: tree}, nil
}

// Clear discard all values, outstanding cursors stop belonging.
func (set *Set[V]) Clear() {
	set.tree.Clear()
}

// Destroy release the set.
func (set *Set[V]) Destroy() error {
	return set.tree.Destroy()
}

// Validate walk the backing tree checking its invariants.
func (set *Set[V]) Validate() {
	set.tree.Validate()
}

// Stats return the backing tree's statistics.
func (set *Set[V]) Stats() map[string]interface{} {
	return set.tree.Stats()
}

// Log stats via the configured logger.
func (set *Set[V]) Log() {
	set.tree.Log()
}
