// Package reduce implements mean and variance reductions over arbitrary axis
// subsets of dense strided arrays.
//
// A call runs in three steps. The axis specification is normalized into an
// AxisSet. A Plan is resolved from the set and the array geometry: either a
// flat path (all axes of a contiguous array) or a loop nest whose kept axes
// enumerate output slots and whose reduced axes are walked per slot. The plan
// then picks specialized walkers by nest depth and runs them, on one goroutine
// or split across workers.
//
// Inner runs are accumulated in float64 with SIMD block kernels, and parallel
// chunks produce partial sums combined in chunk order. Summation order therefore
// differs between the serial, SIMD and parallel paths: results agree within
// floating-point error bounds but are not bit-identical across worker counts or
// vector widths.
//
// Reductions over zero elements produce NaN unless WithEmptyCheck is given.
// A corrected variance over one element divides 0 by 0 and is NaN as well.
package reduce
