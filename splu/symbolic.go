package splu

// Symbolic analysis: for each factorized column, the nonzero pattern of
// the triangular solve L \ A(:,col) is the set of rows reachable from the
// column's pattern through the directed graph of the partially built L.
// The reach is computed by an iterative depth-first search and emitted in
// topological order, so the numeric update can be applied in one pass.

// reach fills xi[top:n] with the reach of column col of A, topologically
// ordered. Visited marks are set during the walk and cleared before
// returning, leaving the bitset empty for the next column.
func (f *factorizer[T]) reach(col int) (top int) {
	top = f.n
	rows, _ := f.a.Col(col)
	for _, i := range rows {
		if !f.marked.Test(uint(i)) {
			top = f.dfs(i, top)
		}
	}
	for p := top; p < f.n; p++ {
		f.marked.Clear(uint(f.xi[p]))
	}

	return top
}

// dfs walks the L pattern from root without recursion. stack holds the
// vertex path, pstack the resume position inside each vertex's L column,
// so the walk is O(edges examined) overall.
func (f *factorizer[T]) dfs(root, top int) int {
	head := 0
	f.stack[0] = root
	for head >= 0 {
		j := f.stack[head]
		jn := f.pinv[j] // L column owned by row j; -1 while j is not pivotal
		if !f.marked.Test(uint(j)) {
			f.marked.Set(uint(j))
			if jn < 0 {
				f.pstack[head] = 0
			} else {
				f.pstack[head] = f.lp[jn]
			}
		}

		done := true
		if jn >= 0 {
			end := f.lp[jn+1]
			for p := f.pstack[head]; p < end; p++ {
				i := f.li[p]
				if f.marked.Test(uint(i)) {
					continue
				}
				// pause j, descend into i
				f.pstack[head] = p + 1
				head++
				f.stack[head] = i
				done = false
				break
			}
		}
		if done {
			head--
			top--
			f.xi[top] = j
		}
	}

	return top
}

// spSolve computes x = L \ A(:,col) sparsely: symbolic reach, scatter of
// the column values, then the left-looking update in topological order.
// On return xi[top:n] is the pattern of x; x outside the pattern is zero.
func (f *factorizer[T]) spSolve(col int) (top int) {
	top = f.reach(col)

	rows, vals := f.a.Col(col)
	for t, i := range rows {
		f.x[i] = vals[t]
	}

	for px := top; px < f.n; px++ {
		j := f.xi[px]
		jn := f.pinv[j]
		if jn < 0 {
			continue // row j not yet pivotal: no L column to apply
		}
		xj := f.x[j]
		if xj == 0 {
			continue
		}
		// skip the unit diagonal stored first in each L column
		for p := f.lp[jn] + 1; p < f.lp[jn+1]; p++ {
			f.x[f.li[p]] -= f.lx[p] * xj
		}
	}

	return top
}
