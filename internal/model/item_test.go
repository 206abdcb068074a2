package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sample() List {
	return List{
		{ID: "a", Text: "buy milk"},
		{ID: "b", Text: "walk dog", Complete: true},
		{ID: "c", Text: "buy milk"},
	}
}

func TestList_IndexOf(t *testing.T) {
	l := sample()
	require.Equal(t, 0, l.IndexOf("a"))
	require.Equal(t, 2, l.IndexOf("c"))
	require.Equal(t, -1, l.IndexOf("zzz"))
	require.True(t, l.Has("b"))
	require.False(t, List(nil).Has("b"))
}

func TestList_At(t *testing.T) {
	l := sample()
	tests := []struct {
		name   string
		n      int
		wantID string
		wantOK bool
	}{
		{name: "first", n: 1, wantID: "a", wantOK: true},
		{name: "last", n: 3, wantID: "c", wantOK: true},
		{name: "zero", n: 0},
		{name: "past_end", n: 4},
		{name: "negative", n: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := l.At(tt.n)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantID, it.ID)
		})
	}
}

func TestList_CloneIsIndependent(t *testing.T) {
	l := sample()
	c := l.Clone()
	c[0].Complete = true
	require.False(t, l[0].Complete)

	require.NotNil(t, List(nil).Clone())
	require.Empty(t, List(nil).Clone())
}

func TestList_Stats(t *testing.T) {
	done, pending := sample().Stats()
	require.Equal(t, 1, done)
	require.Equal(t, 2, pending)
}
