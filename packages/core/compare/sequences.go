package compare

// Contains reports whether s contains v under the given strategy.
func Contains[T any](s []T, v T, eq Strategy) bool {
	return IndexOf(s, v, eq) >= 0
}

// IndexOf returns the index of the first element of s equal to v under
// the given strategy, or -1.
func IndexOf[T any](s []T, v T, eq Strategy) int {
	for i, item := range s {
		if eq.Equal(item, v) {
			return i
		}
	}
	return -1
}

// CountOf returns how many elements of s are equal to v under the
// given strategy.
func CountOf[T any](s []T, v T, eq Strategy) int {
	count := 0
	for _, item := range s {
		if eq.Equal(item, v) {
			count++
		}
	}
	return count
}

// MultisetDiff computes the multiset difference between actual and
// expected: missing holds expected elements not found in actual,
// unexpected holds actual elements not accounted for by expected.
// Duplicates matter: [1, 1] does not satisfy expected [1, 1, 1].
func MultisetDiff[T any](actual, expected []T, eq Strategy) (missing, unexpected []T) {
	used := make([]bool, len(actual))

	for _, want := range expected {
		found := false
		for i, got := range actual {
			if used[i] {
				continue
			}
			if eq.Equal(got, want) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}

	for i, got := range actual {
		if !used[i] {
			unexpected = append(unexpected, got)
		}
	}

	return missing, unexpected
}

// HasPrefix reports whether s starts with prefix under the strategy.
func HasPrefix[T any](s, prefix []T, eq Strategy) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, v := range prefix {
		if !eq.Equal(s[i], v) {
			return false
		}
	}
	return true
}

// HasSuffix reports whether s ends with suffix under the strategy.
func HasSuffix[T any](s, suffix []T, eq Strategy) bool {
	if len(suffix) > len(s) {
		return false
	}
	offset := len(s) - len(suffix)
	for i, v := range suffix {
		if !eq.Equal(s[offset+i], v) {
			return false
		}
	}
	return true
}

// EqualSlices reports element-wise equality in order under the strategy.
func EqualSlices[T any](a, b []T, eq Strategy) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsSubsequence reports whether sub appears within s in order, not
// necessarily contiguously.
func IsSubsequence[T any](s, sub []T, eq Strategy) bool {
	if len(sub) == 0 {
		return true
	}
	j := 0
	for _, v := range s {
		if eq.Equal(v, sub[j]) {
			j++
			if j == len(sub) {
				return true
			}
		}
	}
	return false
}

// IsSortedBy reports whether s is sorted according to less.
func IsSortedBy[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// CountMatching returns how many elements of s satisfy pred.
func CountMatching[T any](s []T, pred func(T) bool) int {
	count := 0
	for _, v := range s {
		if pred(v) {
			count++
		}
	}
	return count
}
