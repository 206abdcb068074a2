// Package reducer computes the next todo list from the current one and an
// action.
//
// Transition never mutates the list it is given and never fails: unknown
// actions and ids that match no item leave the list as it was.
package reducer

import (
	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

// Reducer applies actions. NewID supplies identifiers for added items; a nil
// NewID falls back to UUIDs.
type Reducer struct {
	NewID IDFunc
}

// New returns a Reducer drawing ids from ids.
func New(ids IDFunc) Reducer {
	return Reducer{NewID: ids}
}

var defaultReducer = New(UUIDs())

// Transition applies a with the default reducer.
func Transition(items model.List, a action.Action) model.List {
	return defaultReducer.Transition(items, a)
}

// Transition returns the list that results from applying a to items.
func (r Reducer) Transition(items model.List, a action.Action) model.List {
	switch a := a.(type) {
	case action.AddItem:
		return r.add(items, a.Text)
	case action.ToggleItem:
		return toggle(items, a.ID)
	case action.DeleteItem:
		return remove(items, a.ID)
	default:
		return items
	}
}

func (r Reducer) add(items model.List, text string) model.List {
	out := make(model.List, len(items), len(items)+1)
	copy(out, items)
	return append(out, model.Item{ID: r.freshID(items), Text: text})
}

// maxDraws bounds how often NewID is asked before falling back to UUIDs.
const maxDraws = 16

// freshID draws ids until one is not already held by items.
func (r Reducer) freshID(items model.List) string {
	if r.NewID != nil {
		for i := 0; i < maxDraws; i++ {
			if id := r.NewID(); id != "" && !items.Has(id) {
				return id
			}
		}
	}
	for {
		if id := uuid.NewString(); !items.Has(id) {
			return id
		}
	}
}

func toggle(items model.List, id string) model.List {
	i := items.IndexOf(id)
	if i < 0 {
		return items
	}
	out := items.Clone()
	out[i].Complete = !out[i].Complete
	return out
}

func remove(items model.List, id string) model.List {
	i := items.IndexOf(id)
	if i < 0 {
		return items
	}
	out := make(model.List, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
