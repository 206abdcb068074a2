// Package action defines the closed set of requests that change a todo list.
//
// Every variant implements Action through an unexported marker method, so no
// other package can add a variant and a type switch over the four types below
// is exhaustive.
package action

// Wire tags for each variant.
const (
	TagAdd    = "add-todo"
	TagToggle = "toggle-todo"
	TagDelete = "delete-todo"
)

// Action is a description of one requested list change.
type Action interface {
	Kind() string
	isAction()
}

// AddItem appends a new item with the given text.
type AddItem struct {
	Text string
}

// ToggleItem flips the completion flag of the item with ID.
type ToggleItem struct {
	ID string
}

// DeleteItem removes the item with ID.
type DeleteItem struct {
	ID string
}

// Unknown carries a tag that was not recognised when decoding.
// It never changes a list.
type Unknown struct {
	Tag string
}

func (AddItem) Kind() string    { return TagAdd }
func (ToggleItem) Kind() string { return TagToggle }
func (DeleteItem) Kind() string { return TagDelete }
func (u Unknown) Kind() string  { return u.Tag }

func (AddItem) isAction()    {}
func (ToggleItem) isAction() {}
func (DeleteItem) isAction() {}
func (Unknown) isAction()    {}

// Validate reports whether a carries the payload its kind requires.
// An empty AddItem text is accepted; rejecting it is a caller policy.
func Validate(a Action) error {
	switch a := a.(type) {
	case nil:
		return invalidf("", "nil action")
	case AddItem:
		return nil
	case Unknown:
		if a.Tag == "" {
			return invalidf("", "missing type")
		}
	case ToggleItem:
		if a.ID == "" {
			return invalidf(TagToggle, "missing id")
		}
	case DeleteItem:
		if a.ID == "" {
			return invalidf(TagDelete, "missing id")
		}
	}
	return nil
}
