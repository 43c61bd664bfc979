package matrix_test

import (
	"fmt"

	"github.com/henry-gaudet-pub/matrix-library/matrix"
)

// ExampleMatrix_Transpose demonstrates the transpose of a rectangular matrix.
func ExampleMatrix_Transpose() {
	m := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6})
	fmt.Print(m.Transpose())

	// Output:
	// 1 4
	// 2 5
	// 3 6
}

// ExampleMul demonstrates a chained product through the three equivalent
// call forms.
func ExampleMul() {
	a := matrix.Literal([]int{1, 2, 3})
	b := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	c := matrix.Literal([]int{1}, []int{2}, []int{3})

	product, err := matrix.Mul(a, b) // free-function form
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	product, err = product.Mul(c) // method form, same kernel
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Print(product)
	fmt.Println(a.MustMul(b).MustMul(c).Equal(product)) // chainable form agrees

	// Output:
	// 228
	// true
}

// ExampleDot demonstrates the exported dot-product primitive.
func ExampleDot() {
	v, err := matrix.Dot([]int{1, 2, 3}, []int{4, 5, 6})
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(v)

	// Output:
	// 32
}

// ExampleFromRows demonstrates fail-fast rectangularity validation.
func ExampleFromRows() {
	_, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5}})
	fmt.Println(err)

	// Output:
	// FromRows: ValidateRectangular: matrix: rows have unequal lengths
}

// ExampleIdentity demonstrates the identity facade together with Mul.
func ExampleIdentity() {
	ident, err := matrix.Identity[int](3)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	m := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	fmt.Println(m.MustMul(ident).Equal(m))

	// Output:
	// true
}
