package ids

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator hands out entry ids.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }

// Scheme names accepted by ByScheme.
const (
	SchemeTimestamp = "timestamp"
	SchemeUUID      = "uuid"
	SchemeSequence  = "seq"
)

// Timestamp returns ids made of the clock's milliseconds since epoch.
// Two calls inside the same millisecond return the same id; callers that
// need distinct ids under bursty input should use UUID instead.
func Timestamp(clock func() time.Time) Generator {
	if clock == nil {
		clock = time.Now
	}
	return Func(func() string {
		return strconv.FormatInt(clock().UnixMilli(), 10)
	})
}

// UUID returns random v4 uuids.
func UUID() Generator {
	return Func(uuid.NewString)
}

// Sequence returns prefix1, prefix2, ... in call order.
func Sequence(prefix string) Generator {
	n := 0
	return Func(func() string {
		n++
		return prefix + strconv.Itoa(n)
	})
}

// ByScheme builds the generator for a configured scheme name.
func ByScheme(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeTimestamp:
		return Timestamp(time.Now), nil
	case SchemeUUID:
		return UUID(), nil
	case SchemeSequence:
		return Sequence(""), nil
	}
	return nil, fmt.Errorf("unknown id scheme %q (want %s, %s or %s)",
		name, SchemeTimestamp, SchemeUUID, SchemeSequence)
}
