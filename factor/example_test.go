package factor_test

import (
	"fmt"

	"github.com/pgmgo/pgmgo/factor"
	"github.com/pgmgo/pgmgo/randvar"
)

// ExampleSumOutVar demonstrates marginalizing one variable out of a
// pairwise factor that favours agreement.
func ExampleSumOutVar() {
	x, _ := randvar.New("X", []randvar.Value{0, 1})
	y, _ := randvar.New("Y", []randvar.Value{0, 1})

	f, _ := factor.New("agree", []*randvar.Variable{x, y},
		func(a factor.Assignment) (float64, error) {
			xv, _ := a.Get("X")
			yv, _ := a.Get("Y")
			if xv == yv {
				return 3, nil
			}

			return 1, nil
		})

	marg, _ := factor.SumOutVar(f, "Y")
	for _, row := range marg.Rows() {
		v, _ := marg.Phi(row)
		fmt.Printf("%s -> %.0f\n", row, v)
	}
	fmt.Printf("Z=%.0f\n", marg.Z())
	// Output:
	// X=0 -> 4
	// X=1 -> 4
	// Z=8
}

// ExampleProduct demonstrates joining two chain factors and reading the
// running normalization constant.
func ExampleProduct() {
	a, _ := randvar.New("A", []randvar.Value{0, 1})
	b, _ := randvar.New("B", []randvar.Value{0, 1})
	c, _ := randvar.New("C", []randvar.Value{0, 1})

	agree := func(u, v string) factor.PotentialFunc {
		return func(as factor.Assignment) (float64, error) {
			uv, _ := as.Get(u)
			vv, _ := as.Get(v)
			if uv == vv {
				return 3, nil
			}

			return 1, nil
		}
	}

	fab, _ := factor.New("ab", []*randvar.Variable{a, b}, agree("A", "B"))
	fbc, _ := factor.New("bc", []*randvar.Variable{b, c}, agree("B", "C"))

	joint, acc, _ := factor.Product(fab, fbc)
	fmt.Println("scope:", joint.Scope().IDs())
	fmt.Printf("acc=%.0f\n", acc)
	// Output:
	// scope: [A B C]
	// acc=64
}
