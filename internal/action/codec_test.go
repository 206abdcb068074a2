package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Action
		wantErr bool
	}{
		{name: "add", in: `{"type":"add-todo","payload":{"name":"buy milk"}}`, want: AddItem{Text: "buy milk"}},
		{name: "add_empty_name", in: `{"type":"add-todo","payload":{"name":""}}`, want: AddItem{}},
		{name: "toggle_string_id", in: `{"type":"toggle-todo","payload":{"id":"abc"}}`, want: ToggleItem{ID: "abc"}},
		{name: "toggle_numeric_id", in: `{"type":"toggle-todo","payload":{"id":1700000000000}}`, want: ToggleItem{ID: "1700000000000"}},
		{name: "delete", in: `{"type":"delete-todo","payload":{"id":"abc"}}`, want: DeleteItem{ID: "abc"}},
		{name: "unknown_tag", in: `{"type":"share-todo","payload":{"id":"abc"}}`, want: Unknown{Tag: "share-todo"}},
		{name: "unknown_tag_no_payload", in: `{"type":"increment"}`, want: Unknown{Tag: "increment"}},
		{name: "not_json", in: `add buy milk`, wantErr: true},
		{name: "missing_type", in: `{"payload":{"name":"x"}}`, wantErr: true},
		{name: "add_missing_payload", in: `{"type":"add-todo"}`, wantErr: true},
		{name: "add_null_payload", in: `{"type":"add-todo","payload":null}`, wantErr: true},
		{name: "add_missing_name", in: `{"type":"add-todo","payload":{}}`, wantErr: true},
		{name: "add_name_not_string", in: `{"type":"add-todo","payload":{"name":3}}`, wantErr: true},
		{name: "toggle_missing_id", in: `{"type":"toggle-todo","payload":{}}`, wantErr: true},
		{name: "toggle_empty_id", in: `{"type":"toggle-todo","payload":{"id":""}}`, wantErr: true},
		{name: "delete_bool_id", in: `{"type":"delete-todo","payload":{"id":true}}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidAction), "err=%v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	b, err := Encode(AddItem{Text: "buy milk"})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"add-todo","payload":{"name":"buy milk"}}`, string(b))

	b, err = Encode(DeleteItem{ID: "abc"})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"delete-todo","payload":{"id":"abc"}}`, string(b))

	_, err = Encode(ToggleItem{})
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestEncodeUnknown(t *testing.T) {
	b, err := Encode(Unknown{Tag: "share-todo"})
	require.NoError(t, err)
	got, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, Unknown{Tag: "share-todo"}, got)

	_, err = Encode(Unknown{})
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestEncodeDecodeToggle(t *testing.T) {
	b, err := Encode(ToggleItem{ID: "abc"})
	require.NoError(t, err)
	got, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, ToggleItem{ID: "abc"}, got)
}
