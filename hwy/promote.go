package hwy

// This file provides pure Go (scalar) implementations of the widening and
// narrowing conversions used by the fixed-point kernels.
//
// Promote operations widen types (e.g., uint8 -> int16, int16 -> int32).
// Demote operations narrow types with saturation.
//
// Note: Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions.

// PromoteLowerU8ToI16 zero-extends the lower half of the uint8 lanes to int16.
// Input: 16 uint8 lanes -> Output: 8 int16 lanes (from lower 8 uint8).
func PromoteLowerU8ToI16(v Vec[uint8]) Vec[int16] {
	var r Vec[int16]
	r.n = (v.n + 1) / 2
	for i := range r.n {
		r.data[i] = int16(v.data[i])
	}
	return r
}

// PromoteUpperU8ToI16 zero-extends the upper half of the uint8 lanes to int16.
// Input: 16 uint8 lanes -> Output: 8 int16 lanes (from upper 8 uint8).
func PromoteUpperU8ToI16(v Vec[uint8]) Vec[int16] {
	var r Vec[int16]
	half := (v.n + 1) / 2
	r.n = v.n - half
	for i := range r.n {
		r.data[i] = int16(v.data[half+i])
	}
	return r
}

// PromoteLowerI16ToI32 sign-extends the lower half of the int16 lanes to int32.
func PromoteLowerI16ToI32(v Vec[int16]) Vec[int32] {
	var r Vec[int32]
	r.n = (v.n + 1) / 2
	for i := range r.n {
		r.data[i] = int32(v.data[i])
	}
	return r
}

// PromoteUpperI16ToI32 sign-extends the upper half of the int16 lanes to int32.
func PromoteUpperI16ToI32(v Vec[int16]) Vec[int32] {
	var r Vec[int32]
	half := (v.n + 1) / 2
	r.n = v.n - half
	for i := range r.n {
		r.data[i] = int32(v.data[half+i])
	}
	return r
}

// DemoteTwoI32ToI16 demotes two int32 vectors to a single int16 vector (saturating).
// The lanes of lo come first, followed by the lanes of hi.
func DemoteTwoI32ToI16(lo, hi Vec[int32]) Vec[int16] {
	var r Vec[int16]
	r.n = lo.n + hi.n
	for i, val := range lo.data[:lo.n] {
		r.data[i] = SaturateI32ToI16(val)
	}
	for i, val := range hi.data[:hi.n] {
		r.data[lo.n+i] = SaturateI32ToI16(val)
	}
	return r
}

// DemoteI16ToU8 narrows int16 to uint8 (saturating).
// Negative values become 0 and values > 255 become 255.
func DemoteI16ToU8(v Vec[int16]) Vec[uint8] {
	var r Vec[uint8]
	r.n = v.n
	for i, val := range v.data[:v.n] {
		r.data[i] = SaturateI16ToU8(val)
	}
	return r
}

// SaturateI32ToI16 narrows one int32 lane to int16 (saturating), the
// per-lane step of DemoteTwoI32ToI16.
func SaturateI32ToI16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// SaturateI16ToU8 is the scalar form of DemoteI16ToU8 for one lane.
func SaturateI16ToU8(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
