package splu

// Det returns the determinant of the factorized matrix: the product of
// the U diagonal adjusted by the parities of the row and column
// permutations. Complexity: O(n).
func (f *Factorization[T]) Det() T {
	det := T(1)
	for k := 0; k < f.n; k++ {
		det *= f.ux[f.up[k+1]-1]
	}
	if (permutationSwaps(f.pinv)+permutationSwaps(f.q))%2 == 1 {
		det = -det
	}

	return det
}

// permutationSwaps counts the transpositions of a permutation via its
// cycle decomposition: a cycle of length L contributes L-1 swaps.
func permutationSwaps(perm []int) int {
	swaps := 0
	visited := make([]bool, len(perm))
	for i := range perm {
		if visited[i] {
			continue
		}
		cycle := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycle++
		}
		if cycle > 1 {
			swaps += cycle - 1
		}
	}

	return swaps
}
