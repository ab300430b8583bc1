//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the scalar loops.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setScalarMode()
}
