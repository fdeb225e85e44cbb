package storage

// Ordered is an insertion-ordered collection keyed by id. Replacing an
// existing id keeps its position; new ids are appended. Records are kept as
// stored, so a repeated id is not merged: lookups and replacement hit the
// first occurrence and Delete removes every occurrence.
type Ordered[T any] struct {
	key   func(T) string
	items []T
	index map[string]int
}

func NewOrdered[T any](items []T, key func(T) string) *Ordered[T] {
	o := &Ordered[T]{
		key:   key,
		items: make([]T, len(items)),
	}
	copy(o.items, items)
	o.reindex()
	return o
}

// reindex maps each id to its first position.
func (o *Ordered[T]) reindex() {
	o.index = make(map[string]int, len(o.items))
	for i, it := range o.items {
		id := o.key(it)
		if _, seen := o.index[id]; !seen {
			o.index[id] = i
		}
	}
}

func (o *Ordered[T]) Get(id string) (T, bool) {
	i, ok := o.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return o.items[i], true
}

// Upsert reports whether an existing entry was replaced.
func (o *Ordered[T]) Upsert(item T) bool {
	id := o.key(item)
	if i, ok := o.index[id]; ok {
		o.items[i] = item
		return true
	}
	o.index[id] = len(o.items)
	o.items = append(o.items, item)
	return false
}

// Delete reports whether any entry was removed.
func (o *Ordered[T]) Delete(id string) bool {
	if _, ok := o.index[id]; !ok {
		return false
	}
	kept := o.items[:0]
	for _, it := range o.items {
		if o.key(it) != id {
			kept = append(kept, it)
		}
	}
	o.items = kept
	o.reindex()
	return true
}

func (o *Ordered[T]) Len() int { return len(o.items) }

// Values returns a copy in stored order.
func (o *Ordered[T]) Values() []T {
	out := make([]T, len(o.items))
	copy(out, o.items)
	return out
}
