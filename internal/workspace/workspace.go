package workspace

import (
	"fmt"
	"sort"
)

// NotFoundError is returned when no item has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %s is not loaded", e.Name)
}

// WrongKindError is returned when a name resolves to an item of another kind.
type WrongKindError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("item %s is a %s, not a %s", e.Name, e.Got, e.Want)
}

// Workspace maps unique names to items. Names are shared across kinds.
//
// A Workspace is not safe for concurrent use; callers serialize access.
type Workspace struct {
	items map[string]Item
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{items: make(map[string]Item)}
}

// Add stores item under its name, replacing any previous binding.
func (w *Workspace) Add(item Item) {
	w.items[item.ItemName()] = item
}

// Get looks up name.
func (w *Workspace) Get(name string) (Item, error) {
	item, ok := w.items[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return item, nil
}

// Has reports whether name is bound.
func (w *Workspace) Has(name string) bool {
	_, ok := w.items[name]
	return ok
}

// Sequence looks up name and requires a sequence.
func (w *Workspace) Sequence(name string) (*Sequence, error) {
	item, err := w.Get(name)
	if err != nil {
		return nil, err
	}
	seq, ok := item.(*Sequence)
	if !ok {
		return nil, &WrongKindError{Name: name, Want: KindSequence, Got: item.Kind()}
	}
	return seq, nil
}

// Table looks up name and requires a table.
func (w *Workspace) Table(name string) (*Table, error) {
	item, err := w.Get(name)
	if err != nil {
		return nil, err
	}
	tbl, ok := item.(*Table)
	if !ok {
		return nil, &WrongKindError{Name: name, Want: KindTable, Got: item.Kind()}
	}
	return tbl, nil
}

// Names returns every item name, sorted.
func (w *Workspace) Names() []string {
	names := make([]string, 0, len(w.items))
	for name := range w.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesOfKind returns the sorted names of items of kind.
func (w *Workspace) NamesOfKind(kind Kind) []string {
	names := make([]string, 0)
	for name, item := range w.items {
		if item.Kind() == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Items returns every item ordered by name.
func (w *Workspace) Items() []Item {
	names := w.Names()
	out := make([]Item, len(names))
	for i, name := range names {
		out[i] = w.items[name]
	}
	return out
}

// Sequences returns every sequence ordered by name.
func (w *Workspace) Sequences() []*Sequence {
	names := w.NamesOfKind(KindSequence)
	out := make([]*Sequence, len(names))
	for i, name := range names {
		out[i] = w.items[name].(*Sequence)
	}
	return out
}

// Len returns the number of stored items.
func (w *Workspace) Len() int {
	return len(w.items)
}

// Clear removes every item.
func (w *Workspace) Clear() {
	w.items = make(map[string]Item)
}
