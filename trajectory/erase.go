package trajectory

// EraseLoops returns the loop-erased version of path.
//
// Starting at the first element, the cursor jumps to one past the last
// occurrence of the current value and keeps the element found there, until
// it reaches a value equal to the final element of path. The final element
// is always kept, so the retained indices end exactly at len(path)-1: the
// result starts with path[0], ends with path[len-1] and has no internal
// repeats. First and last may coincide, e.g. (a,b,a) and (a,a) both erase
// to (a,a).
//
// The result is a fresh slice; an empty path yields an empty, non-nil slice.
//
// Complexity: O(n) time and memory.
func EraseLoops[N comparable](path []N) []N {
	if len(path) == 0 {
		return []N{}
	}

	last := make(map[N]int, len(path))
	for i, v := range path {
		last[v] = i
	}

	end := len(path) - 1
	out := make([]N, 0, len(last))
	cur := 0
	out = append(out, path[cur])
	for path[cur] != path[end] {
		cur = last[path[cur]] + 1
		out = append(out, path[cur])
	}
	if cur != end {
		out = append(out, path[end])
	}

	return out
}
