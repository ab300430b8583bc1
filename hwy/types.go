// Package hwy provides portable vector-lane operations with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against a width-agnostic vector type and the lane count follows the
// widest register file detected at startup. The image kernels in
// hwy/contrib use it for their batched fixed-point reducers; every operation
// here has an exact scalar equivalent, so a kernel may always fall back to a
// plain loop and produce bit-identical results.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-cv/hwy"
//
//	// Widen 8-bit pixels and scale them
//	px := hwy.Load(row)
//	lo := hwy.PromoteLowerU8ToI16(px)
//	lo = hwy.Mul(lo, hwy.Set[int16](16))
//
//	// Store results
//	hwy.Store(lo, scratch)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Only integer lanes are provided; the fixed-point kernels never touch
// floating point.
type Lanes interface {
	Integers
}

// maxLanes is the largest lane count of any target: the 64 uint8 lanes of
// a 512-bit register.
const maxLanes = 64

// Vec is a portable vector handle.
// In base (scalar) mode, it holds its lanes in a fixed array so vectors
// live on the stack; only the first NumLanes elements are meaningful.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data [maxLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}
