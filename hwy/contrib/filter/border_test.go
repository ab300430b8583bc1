package filter

import (
	"slices"
	"testing"
)

var allPolicies = []BorderPolicy{Replicate, Wrap, Reflect}

func TestResolveOffsets3Tap(t *testing.T) {
	const extent = 5
	tests := []struct {
		policy BorderPolicy
		class  PositionClass
		want   []int
	}{
		{Replicate, TopLeft, []int{0, 0, 1}},
		{Replicate, Middle, []int{-1, 0, 1}},
		{Replicate, BottomRight, []int{-1, 0, 0}},
		{Wrap, TopLeft, []int{extent - 1, 0, 1}},
		{Wrap, Middle, []int{-1, 0, 1}},
		{Wrap, BottomRight, []int{-1, 0, -(extent - 1)}},
		{Reflect, TopLeft, []int{1, 0, 1}},
		{Reflect, Middle, []int{-1, 0, 1}},
		{Reflect, BottomRight, []int{-1, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			var buf [3]int
			got := ResolveOffsets(tt.policy, tt.class, extent, buf[:])
			if !slices.Equal(got, tt.want) {
				t.Errorf("class %d: got %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}

func TestResolveOffsets5Tap(t *testing.T) {
	const extent = 6
	tests := []struct {
		policy BorderPolicy
		class  PositionClass
		want   []int
	}{
		{Replicate, 0, []int{0, 0, 0, 1, 2}},
		{Replicate, 1, []int{-1, -1, 0, 1, 2}},
		{Replicate, 2, []int{-2, -1, 0, 1, 2}},
		{Replicate, 3, []int{-2, -1, 0, 1, 1}},
		{Replicate, 4, []int{-2, -1, 0, 0, 0}},
		{Wrap, 0, []int{4, 5, 0, 1, 2}},
		{Wrap, 4, []int{-2, -1, 0, -5, -4}},
		{Reflect, 0, []int{2, 1, 0, 1, 2}},
		{Reflect, 1, []int{0, -1, 0, 1, 2}},
		{Reflect, 3, []int{-2, -1, 0, 1, 0}},
		{Reflect, 4, []int{-2, -1, 0, -1, -2}},
	}
	for _, tt := range tests {
		var buf [5]int
		got := ResolveOffsets(tt.policy, tt.class, extent, buf[:])
		if !slices.Equal(got, tt.want) {
			t.Errorf("%v class %d: got %v, want %v", tt.policy, tt.class, got, tt.want)
		}
	}
}

// Every dereferenced index stays on the axis and matches the policy's
// remapping of the nominal neighbour.
func TestResolveOffsetsInRange(t *testing.T) {
	for _, policy := range allPolicies {
		remap := policy.remap()
		for _, taps := range []int{3, 5, 7} {
			radius := taps / 2
			for extent := 1; extent <= 12; extent++ {
				for index := 0; index < extent; index++ {
					class := classFor(index, extent, taps)
					var buf [MaxTaps]int
					off := ResolveOffsets(policy, class, extent, buf[:taps])
					for i, d := range off {
						got := index + d
						if got < 0 || got >= extent {
							t.Fatalf("%v taps=%d extent=%d index=%d tap %d: index %d out of range",
								policy, taps, extent, index, i, got)
						}
						if want := remap(index+i-radius, extent); got != want {
							t.Errorf("%v taps=%d extent=%d index=%d tap %d: got %d, want %d",
								policy, taps, extent, index, i, got, want)
						}
					}
				}
			}
		}
	}
}

func TestBorderSemantics(t *testing.T) {
	for extent := 3; extent <= 9; extent++ {
		var first, last [3]int
		ResolveOffsets(Replicate, TopLeft, extent, first[:])
		ResolveOffsets(Replicate, BottomRight, extent, last[:])
		if first[0] != 0 || extent-1+last[2] != extent-1 {
			t.Errorf("Replicate extent %d: edge sample should repeat, got %v / %v", extent, first, last)
		}

		ResolveOffsets(Wrap, TopLeft, extent, first[:])
		ResolveOffsets(Wrap, BottomRight, extent, last[:])
		if first[0] != extent-1 || extent-1+last[2] != 0 {
			t.Errorf("Wrap extent %d: ends should neighbour each other, got %v / %v", extent, first, last)
		}

		ResolveOffsets(Reflect, TopLeft, extent, first[:])
		ResolveOffsets(Reflect, BottomRight, extent, last[:])
		if first[0] != 1 || extent-1+last[2] != extent-2 {
			t.Errorf("Reflect extent %d: edge should mirror the first interior sample, got %v / %v", extent, first, last)
		}
	}
}

func TestClassFor(t *testing.T) {
	tests := []struct {
		index, extent, taps int
		want                PositionClass
	}{
		{0, 10, 3, TopLeft},
		{5, 10, 3, Middle},
		{9, 10, 3, BottomRight},
		{0, 1, 3, TopLeft},
		{0, 10, 5, 0},
		{1, 10, 5, 1},
		{2, 10, 5, 2},
		{8, 10, 5, 3},
		{9, 10, 5, 4},
		{7, 10, 7, 4},
		{9, 10, 7, 6},
	}
	for _, tt := range tests {
		if got := classFor(tt.index, tt.extent, tt.taps); got != tt.want {
			t.Errorf("classFor(%d, %d, %d) = %d, want %d", tt.index, tt.extent, tt.taps, got, tt.want)
		}
	}
}

func TestResolveOffsetsPanics(t *testing.T) {
	tests := []struct {
		name   string
		policy BorderPolicy
		class  PositionClass
		extent int
		taps   int
	}{
		{"unknown policy", BorderPolicy(7), Middle, 5, 3},
		{"negative policy", BorderPolicy(-1), TopLeft, 5, 3},
		{"even taps", Replicate, Middle, 5, 4},
		{"class out of range", Replicate, 3, 5, 3},
		{"class outside extent", Replicate, 4, 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("ResolveOffsets should panic")
				}
			}()
			ResolveOffsets(tt.policy, tt.class, tt.extent, make([]int, tt.taps))
		})
	}
}

func TestParseBorderPolicy(t *testing.T) {
	for _, p := range allPolicies {
		got, err := ParseBorderPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseBorderPolicy(%q) = %v, %v; want %v", p.String(), got, err, p)
		}
	}
	if got, err := ParseBorderPolicy(" Mirror "); err != nil || got != Reflect {
		t.Errorf("ParseBorderPolicy(\" Mirror \") = %v, %v; want reflect", got, err)
	}
	if _, err := ParseBorderPolicy("constant"); err == nil {
		t.Error("ParseBorderPolicy(\"constant\") should fail")
	}
	if BorderPolicy(9).Valid() {
		t.Error("BorderPolicy(9).Valid() = true")
	}
	if got := BorderPolicy(9).String(); got != "BorderPolicy(9)" {
		t.Errorf("String() = %q", got)
	}
}
