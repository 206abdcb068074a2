package action

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// envelope is the dynamic form an action takes outside the process:
//
//	{"type": "add-todo", "payload": {"name": "buy milk"}}
//	{"type": "toggle-todo", "payload": {"id": "..."}}
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type payload struct {
	Name *string         `json:"name,omitempty"`
	ID   json.RawMessage `json:"id,omitempty"`
}

// Decode parses an envelope. Unrecognised types decode to Unknown without
// error; a missing type or malformed payload yields ErrInvalidAction.
func Decode(b []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, &Error{Kind: ErrInvalidAction, Msg: fmt.Sprintf("json unmarshal: %v", err)}
	}
	if env.Type == "" {
		return nil, invalidf("", "missing type")
	}

	var p payload
	switch env.Type {
	case TagAdd, TagToggle, TagDelete:
		if len(env.Payload) == 0 || bytes.Equal(env.Payload, []byte("null")) {
			return nil, invalidf(env.Type, "missing payload")
		}
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, invalidf(env.Type, "payload: %v", err)
		}
	default:
		return Unknown{Tag: env.Type}, nil
	}

	switch env.Type {
	case TagAdd:
		if p.Name == nil {
			return nil, invalidf(TagAdd, "missing name")
		}
		return AddItem{Text: *p.Name}, nil
	case TagToggle:
		id, err := decodeID(env.Type, p.ID)
		if err != nil {
			return nil, err
		}
		return ToggleItem{ID: id}, nil
	default:
		id, err := decodeID(env.Type, p.ID)
		if err != nil {
			return nil, err
		}
		return DeleteItem{ID: id}, nil
	}
}

// decodeID accepts a JSON string or number. Numeric ids keep their literal
// text so clients that use timestamps still round-trip.
func decodeID(tag string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", invalidf(tag, "missing id")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", invalidf(tag, "missing id")
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", invalidf(tag, "id must be a string or number")
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return "", invalidf(tag, "id must be a string or number")
	}
	return n.String(), nil
}

// Encode renders a into its envelope form.
func Encode(a Action) ([]byte, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	env := struct {
		Type    string `json:"type"`
		Payload any    `json:"payload,omitempty"`
	}{Type: a.Kind()}

	switch a := a.(type) {
	case AddItem:
		env.Payload = map[string]string{"name": a.Text}
	case ToggleItem:
		env.Payload = map[string]string{"id": a.ID}
	case DeleteItem:
		env.Payload = map[string]string{"id": a.ID}
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
