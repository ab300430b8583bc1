//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. The check keeps the fallback honest.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, 16) // NEON is 128-bit (16 bytes)
	} else {
		setScalarMode()
	}
}
