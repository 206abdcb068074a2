package model

// Item is the domain model for a todo entry.
// ID and Text are fixed at creation; only Complete changes afterwards.
type Item struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

// List is an ordered sequence of items. Order is insertion order.
type List []Item

// IndexOf returns the position of the item with the given id, or -1.
func (l List) IndexOf(id string) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l List) Has(id string) bool { return l.IndexOf(id) >= 0 }

// At returns the item at a 1-based position.
func (l List) At(n int) (Item, bool) {
	if n < 1 || n > len(l) {
		return Item{}, false
	}
	return l[n-1], true
}

// Clone returns a copy that shares no backing array with l.
// A nil list clones to an empty, non-nil list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Stats counts complete and pending items.
func (l List) Stats() (done, pending int) {
	for _, it := range l {
		if it.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}
