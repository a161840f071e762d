// Package treemap implement an ordered unique-key map on the rbt
// engine. Entries are (key, value) items ordered by key alone, a
// duplicate-key Set resolves through the update rule on the existing
// node, the key half is always preserved and the node keeps its
// identity and position.
package treemap

import "fmt"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/rbt"
import s "github.com/bnclabs/gosettings"

// Item one key,value entry of a Map, ordered by Key alone.
type Item[K, V any] struct {
	Key   K
	Value V
}

// Map manage a single instance of an ordered map. Depends only on
// the api.Tree capability interface, refer package rbt for system
// settings.
type Map[K, V any] struct {
	tree api.Tree[Item[K, V]]
}

// New map named name, keys ordered by cmp. upd resolves duplicate-key
// sets from the held value and the incoming one, nil means overwrite.
func New[K, V any](
	name string, cmp api.CompareFn[K], upd api.UpdateFn[V],
	setts s.Settings) *Map[K, V] {

	if cmp == nil {
		panic("treemap.New(): nil compare function, call the programmer")
	}
	itemcmp := func(a, b Item[K, V]) int {
		return cmp(a.Key, b.Key)
	}
	itemupd := func(old, elem Item[K, V]) Item[K, V] {
		if upd == nil {
			return Item[K, V]{Key: old.Key, Value: elem.Value}
		}
		return Item[K, V]{Key: old.Key, Value: upd(old.Value, elem.Value)}
	}
	setts = (s.Settings{}).Mixin(setts, s.Settings{"dups": false})
	return &Map[K, V]{
		tree: rbt.New[Item[K, V]](name, itemcmp, itemupd, setts),
	}
}

// ID return the name of this map.
func (m *Map[K, V]) ID() string {
	return m.tree.ID()
}

// Count return the number of entries.
func (m *Map[K, V]) Count() int64 {
	return m.tree.Count()
}

// Set key to value. Return true if a fresh entry was created, false
// if an existing entry was updated in place, node identity and
// position unchanged.
func (m *Map[K, V]) Set(key K, value V) bool {
	_, inserted := m.tree.Insert(Item[K, V]{Key: key, Value: value})
	return inserted
}

// Get return the value under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	ref := m.tree.Find(Item[K, V]{Key: key})
	if ref.IsEnd() {
		return value, false
	}
	item, err := m.tree.Elem(ref)
	if err != nil {
		return value, false
	}
	return item.Value, true
}

// Has return whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Find(Item[K, V]{Key: key}).IsEnd() == false
}

// Delete remove the entry under key, false if absent.
func (m *Map[K, V]) Delete(key K) bool {
	ref := m.tree.Find(Item[K, V]{Key: key})
	if ref.IsEnd() {
		return false
	}
	if _, err := m.tree.Remove(ref); err != nil {
		panic(fmt.Errorf("treemap.Delete(): %v, call the programmer", err))
	}
	return true
}

//---- cursors and ranges

// Begin cursor at the smallest key.
func (m *Map[K, V]) Begin() api.Cursor[Item[K, V]] {
	return api.NewCursor(m.tree, m.tree.Begin())
}

// End past-the-end cursor.
func (m *Map[K, V]) End() api.Cursor[Item[K, V]] {
	return api.NewCursor(m.tree, m.tree.End())
}

// Find cursor at key, past-the-end if absent.
func (m *Map[K, V]) Find(key K) api.Cursor[Item[K, V]] {
	return api.NewCursor(m.tree, m.tree.Find(Item[K, V]{Key: key}))
}

// Belongs whether cur was issued by this map and is still live.
func (m *Map[K, V]) Belongs(cur api.Cursor[Item[K, V]]) bool {
	return m.tree.Belongs(cur.Ref())
}

// RemoveAt remove the entry under cur, returning a cursor to its
// in-order successor. Other cursors stay valid.
func (m *Map[K, V]) RemoveAt(cur api.Cursor[Item[K, V]]) (api.Cursor[Item[K, V]], error) {
	next, err := m.tree.Remove(cur.Ref())
	if err != nil {
		return api.Cursor[Item[K, V]]{}, err
	}
	return api.NewCursor(m.tree, next), nil
}

// Range construct [begin, end) over this map from two cursors.
func (m *Map[K, V]) Range(begin, end api.Cursor[Item[K, V]]) (api.Range[Item[K, V]], error) {
	return api.NewRange(m.tree, begin.Ref(), end.Ref())
}

// RangeKeys construct [low, high) resolving both endpoints by key,
// every endpoint must be present, ErrorInvalidRange otherwise.
func (m *Map[K, V]) RangeKeys(low, high K) (api.Range[Item[K, V]], error) {
	bref := m.tree.Find(Item[K, V]{Key: low})
	href := m.tree.Find(Item[K, V]{Key: high})
	if bref.IsEnd() || href.IsEnd() {
		return api.Range[Item[K, V]]{}, api.ErrorInvalidRange
	}
	return api.NewRange(m.tree, bref, href)
}

// RemoveRange remove every entry in [begin, end), returning how many
// were removed.
func (m *Map[K, V]) RemoveRange(begin, end api.Cursor[Item[K, V]]) (int64, error) {
	removed := int64(0)
	err := api.Purge(m.tree, begin.Ref(), end.Ref(),
		func(Item[K, V]) (bool, error) {
			removed++
			return true, nil
		})
	return removed, err
}

//---- purge and bulk operations

// Purge walk the whole map presenting each key and value to fn, the
// key is a copy, mutating it has no effect on the map. Flagged
// entries are removed without disturbing the walk, fn's error
// terminates early and is returned as-is.
func (m *Map[K, V]) Purge(fn func(key K, value V) (bool, error)) error {
	return m.PurgeRange(m.Begin(), m.End(), fn)
}

// PurgeRange like Purge over [begin, end) only.
func (m *Map[K, V]) PurgeRange(
	begin, end api.Cursor[Item[K, V]],
	fn func(key K, value V) (bool, error)) error {

	return api.Purge(m.tree, begin.Ref(), end.Ref(),
		func(item Item[K, V]) (bool, error) {
			return fn(item.Key, item.Value)
		})
}

// SetItems add every item from seq, one Set per item. Feeding this
// map's own Sequence() back is rejected with ErrorSelfFeed.
func (m *Map[K, V]) SetItems(seq api.Sequence[Item[K, V]]) (int64, error) {
	return api.AddAll(m.tree, seq)
}

// RetainKeys keep only entries whose key matches some probe from seq,
// removing the rest, O(m log n) for m probes.
func (m *Map[K, V]) RetainKeys(seq api.Sequence[K]) (int64, error) {
	return api.RetainOnly(m.tree, &keyseq[K, V]{keys: seq})
}

// Sequence stream this map's items front to back.
func (m *Map[K, V]) Sequence() *api.CursorSequence[Item[K, V]] {
	return api.NewCursorSequence(m.tree, m.tree.Begin(), m.tree.End())
}

//---- lifecycle

// Clone produce an independently owned copy, no cursor from this map
// is recognized by the copy.
func (m *Map[K, V]) Clone(name string) (*Map[K, V], error) {
	tree, err := m.tree.Clone(name)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// Clear discard all entries, outstanding cursors stop belonging.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Destroy release the map.
func (m *Map[K, V]) Destroy() error {
	return m.tree.Destroy()
}

// Validate walk the backing tree checking its invariants.
func (m *Map[K, V]) Validate() {
	m.tree.Validate()
}

// Stats return the backing tree's statistics.
func (m *Map[K, V]) Stats() map[string]interface{} {
	return m.tree.Stats()
}

// Log stats via the configured logger.
func (m *Map[K, V]) Log() {
	m.tree.Log()
}

// keyseq project a key sequence into probe items with zero values,
// items order by key alone.
type keyseq[K, V any] struct {
	keys api.Sequence[K]
}

func (seq *keyseq[K, V]) Next() (item Item[K, V], ok bool) {
	key, ok := seq.keys.Next()
	if ok == false {
		return item, false
	}
	return Item[K, V]{Key: key}, true
}
