package hwy

import "testing"

// vecOf builds a vector holding exactly the given lanes.
func vecOf[T Lanes](lanes ...T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:], lanes)
	return v
}

func TestLoad(t *testing.T) {
	data := make([]uint8, MaxLanes[uint8]()+3)
	for i := range data {
		data[i] = uint8(i * 7)
	}
	v := Load(data)

	if v.NumLanes() != MaxLanes[uint8]() {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint8]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]int16{1, 2, 3})
	if v.NumLanes() != 3 {
		t.Errorf("Load short slice: got %d lanes, want 3", v.NumLanes())
	}
}

func TestSet(t *testing.T) {
	v := Set[int16](42)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Set[int32](10)
	b := Set[int32](-4)

	tests := []struct {
		name string
		got  Vec[int32]
		want int32
	}{
		{"Add", Add(a, b), 6},
		{"Mul", Mul(a, b), -40},
		{"MulAdd", MulAdd(a, b, a), -30},
		{"ShiftRight", ShiftRight(b, 1), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.got.NumLanes(); i++ {
				if tt.got.data[i] != tt.want {
					t.Errorf("%s: lane %d: got %d, want %d", tt.name, i, tt.got.data[i], tt.want)
				}
			}
		})
	}
}

func TestMulWraps(t *testing.T) {
	// int16 lanes keep the low 16 bits like the scalar expression does.
	got := Mul(Set[int16](300), Set[int16](300))
	want := int16(300)
	want *= 300
	for i := 0; i < got.NumLanes(); i++ {
		if got.data[i] != want {
			t.Errorf("Mul: lane %d: got %d, want %d", i, got.data[i], want)
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := vecOf[int32](1, 2, 3, 4)
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum: got %d, want 10", got)
	}
}

func TestShiftRightUnsigned(t *testing.T) {
	v := ShiftRight(Set[uint16](0x8000), 15)
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 1 {
			t.Errorf("ShiftRight uint16: lane %d: got %d, want 1", i, v.data[i])
		}
	}
}

func TestStoreShort(t *testing.T) {
	dst := []int16{9, 9, 9, 9}
	Store(vecOf[int16](1, 2), dst)
	want := []int16{1, 2, 9, 9}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Store: index %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestOpsDoNotAllocate(t *testing.T) {
	src := make([]uint8, MaxLanes[uint8]())
	dst := make([]uint8, MaxLanes[uint8]())
	w16, w32 := Set[int16](3), Set[int32](5)
	allocs := testing.AllocsPerRun(100, func() {
		px := Load(src)
		lo := MulAdd(PromoteLowerU8ToI16(px), w16, PromoteUpperU8ToI16(px))
		a := Mul(PromoteLowerI16ToI32(lo), w32)
		b := Add(PromoteUpperI16ToI32(lo), w32)
		Store(DemoteI16ToU8(DemoteTwoI32ToI16(ShiftRight(a, 2), b)), dst)
	})
	if allocs != 0 {
		t.Errorf("lane operations allocated %v times per run, want 0", allocs)
	}
}
