package trajectory

import (
	"fmt"
	"strings"
)

// Step is one consecutive (From, To) move of a trajectory.
type Step[N comparable] struct {
	From, To N
}

// Pairwise returns every consecutive pair of path, self-transitions
// included. Paths shorter than two elements yield an empty slice.
func Pairwise[N comparable](path []N) []Step[N] {
	if len(path) < 2 {
		return []Step[N]{}
	}
	out := make([]Step[N], 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		out = append(out, Step[N]{From: path[i-1], To: path[i]})
	}

	return out
}

// Transitions returns the distinct transitions x→y with x != y traversed by
// path, in order of first occurrence.
func Transitions[N comparable](path []N) []Step[N] {
	seen := make(map[Step[N]]struct{})
	out := make([]Step[N], 0)
	for _, s := range Pairwise(path) {
		if s.From == s.To {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// KeySeparator joins labels in Key.
const KeySeparator = " -> "

// Key renders path as its labels (formatted with %v) joined by KeySeparator.
// Equal paths give equal keys; the empty path gives "".
func Key[N comparable](path []N) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, KeySeparator)
}

// LoopErasureClassifier returns a classifier keying a trajectory by the Key
// of its loop erasure. It never fails; the error return lets it plug into
// fallible classifier slots.
func LoopErasureClassifier[N comparable]() func([]N) (string, error) {
	return func(path []N) (string, error) {
		return Key(EraseLoops(path)), nil
	}
}
