package splu_test

import (
	"fmt"

	"github.com/felipemarkson/sparse-complex/coo"
	"github.com/felipemarkson/sparse-complex/splu"
)

// ExampleFactorize factors a 2x2 diagonal complex system and reuses the
// factorization for two right-hand sides.
func ExampleFactorize() {
	m, _ := coo.New[complex128](coo.WithDimension(2))
	_ = m.AddElement(0, 0, complex(1, -1))
	_ = m.AddElement(1, 1, complex(-1, 1))

	c, _ := m.Compress()
	f, err := splu.Factorize(c)
	if err != nil {
		fmt.Println(err)
		return
	}

	b1 := []complex128{complex(1, 0), complex(0, 1)}
	_ = f.Solve(b1)
	fmt.Println(b1[0], b1[1])

	b2 := []complex128{complex(2, 0), complex(0, 2)}
	_ = f.Solve(b2)
	fmt.Println(b2[0], b2[1])

	// Output:
	// (0.5+0.5i) (0.5-0.5i)
	// (1+1i) (1-1i)
}

// ExampleFactorization_SolveMany solves several right-hand sides against
// one factorization.
func ExampleFactorization_SolveMany() {
	m, _ := coo.New[complex128](coo.WithDimension(2))
	_ = m.AddElement(0, 0, complex(2, 0))
	_ = m.AddElement(1, 1, complex(4, 0))

	c, _ := m.Compress()
	f, _ := splu.Factorize(c)

	cols := [][]complex128{
		{complex(2, 2), complex(4, 0)},
		{complex(4, 0), complex(8, 4)},
	}
	_ = f.SolveMany(cols)
	fmt.Println(cols[0])
	fmt.Println(cols[1])

	// Output:
	// [(1+1i) (1+0i)]
	// [(2+0i) (2+1i)]
}
