package gemm

// View is a non-owning, strided view into a slice of float64 elements. It
// is the module's stand-in for the raw (base pointer, row stride, column
// stride) triples a BLAS-style C API would pass: row-major, column-major,
// transposed, and sub-matrix views of the same backing storage are all
// expressed by choosing Base, RS and CS, without copying.
//
// Element (row, col) lives at Data[Base+row*RS+col*CS]. RS and CS may be
// negative. A View does not know its own extent; callers supply m, n, k to
// every operation that reads or writes one.
type View struct {
	Data []float64
	Base int
	RS   int
	CS   int
}

func (v View) index(row, col int) int {
	return v.Base + row*v.RS + col*v.CS
}

// Get reads the element at (row, col).
func (v View) Get(row, col int) float64 {
	return v.Data[v.index(row, col)]
}

// Set writes x to the element at (row, col).
func (v View) Set(row, col int, x float64) {
	v.Data[v.index(row, col)] = x
}

// Sub returns a view of the sub-matrix whose (0,0) element is v's
// (row, col) element, sharing the same backing storage and strides.
func (v View) Sub(row, col int) View {
	return View{Data: v.Data, Base: v.index(row, col), RS: v.RS, CS: v.CS}
}

// RowMajor views data as an m x n matrix stored row by row (unit column
// stride, row stride n).
func RowMajor(data []float64, n int) View {
	return View{Data: data, RS: n, CS: 1}
}

// ColMajor views data as an m x n matrix stored column by column (unit row
// stride, column stride m).
func ColMajor(data []float64, m int) View {
	return View{Data: data, RS: 1, CS: m}
}
