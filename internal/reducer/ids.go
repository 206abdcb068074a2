package reducer

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc returns a new item identifier on every call.
type IDFunc func() string

// UUIDs returns random v4 UUID strings.
func UUIDs() IDFunc {
	return uuid.NewString
}

// Counter returns decimal ids counting up from start. Safe for concurrent use.
func Counter(start uint64) IDFunc {
	var n atomic.Uint64
	n.Store(start)
	return func() string {
		return strconv.FormatUint(n.Add(1)-1, 10)
	}
}

// ParseSource maps a config name to an id source.
func ParseSource(name string) (IDFunc, bool) {
	switch name {
	case "", "uuid":
		return UUIDs(), true
	case "counter":
		return Counter(1), true
	}
	return nil, false
}
