package hwy

import (
	"os"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if NoSimdEnv() && HasLanes() {
		t.Errorf("HWY_NO_SIMD=%q but HasLanes() is true", os.Getenv("HWY_NO_SIMD"))
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, w)
	}
	if got := MaxLanes[int16](); got != w/2 {
		t.Errorf("MaxLanes[int16]() = %d, want %d", got, w/2)
	}
	if got := MaxLanes[int32](); got != w/4 {
		t.Errorf("MaxLanes[int32]() = %d, want %d", got, w/4)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[int16]()
	size := 2*lanes + 3

	var full []int
	var tailOffset, tailCount int
	ProcessWithTail[int16](size,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)

	if len(full) != 2 || full[0] != 0 || full[1] != lanes {
		t.Errorf("full offsets: got %v, want [0 %d]", full, lanes)
	}
	if tailOffset != 2*lanes || tailCount != 3 {
		t.Errorf("tail: got (%d, %d), want (%d, 3)", tailOffset, tailCount, 2*lanes)
	}
	if got := AlignedSize[int16](size); got != 3*lanes {
		t.Errorf("AlignedSize(%d) = %d, want %d", size, got, 3*lanes)
	}
	if got := AlignedSize[int16](2 * lanes); got != 2*lanes {
		t.Errorf("AlignedSize(%d) = %d, want %d", 2*lanes, got, 2*lanes)
	}
}
