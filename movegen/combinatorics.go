package movegen

// Combinations and permutations are stepped one at a time instead of being
// materialized, so a search can stop early without paying for the full
// enumeration. Step functions never mutate their input.

// FirstCombination returns the lexicographically first selection of k
// indices, or nil for k <= 0.
func FirstCombination(k int) []int {
	if k <= 0 {
		return nil
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	return combo
}

// NextCombination returns the selection after the given one, drawn from a
// population of n indices. Returns nil when the sequence is exhausted.
func NextCombination(selection []int, n int) []int {
	k := len(selection)
	for i := k - 1; i >= 0; i-- {
		if selection[i] < n-(k-i) {
			next := make([]int, k)
			copy(next, selection)
			next[i]++
			for j := i + 1; j < k; j++ {
				next[j] = next[j-1] + 1
			}
			return next
		}
	}
	return nil
}

// FirstPermutation returns the identity ordering of n indices, or nil for
// n <= 0.
func FirstPermutation(n int) []int {
	if n <= 0 {
		return nil
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// NextPermutation returns the ordering after the given one in lexicographic
// order. Returns nil when the sequence is exhausted.
func NextPermutation(perm []int) []int {
	n := len(perm)
	pivot := n - 2
	for pivot >= 0 && perm[pivot] >= perm[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return nil
	}
	next := make([]int, n)
	copy(next, perm)
	swap := n - 1
	for next[swap] <= next[pivot] {
		swap--
	}
	next[pivot], next[swap] = next[swap], next[pivot]
	for i, j := pivot+1, n-1; i < j; i, j = i+1, j-1 {
		next[i], next[j] = next[j], next[i]
	}
	return next
}
