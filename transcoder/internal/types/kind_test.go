package types //nolint:revive // package name is used by internal consumers

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"bool", KindBool},
		{"s8", KindS8},
		{"s64", KindS64},
		{"u8", KindU8},
		{"u64", KindU64},
		{"f32", KindF32},
		{"c128", KindC128},
		{"string", KindString},
		{"func", KindFunc},
		{"array", KindArray},
		{"list", KindList},
		{"map", KindMap},
		{"option", KindOption},
		{"object", KindObject},
		{"dynamic", KindDynamic},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindWidth(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindBool, 1},
		{KindS8, 1},
		{KindU16, 2},
		{KindS32, 4},
		{KindF32, 4},
		{KindU64, 8},
		{KindF64, 8},
		{KindC64, 8},
		{KindC128, 16},
		{KindString, 0},
		{KindObject, 0},
	}
	for _, tc := range tests {
		if got := tc.kind.Width(); got != tc.want {
			t.Errorf("%s.Width() = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestKindCategory(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindBool, CategoryBool},
		{KindS16, CategoryScalar},
		{KindF64, CategoryScalar},
		{KindC64, CategoryScalar},
		{KindString, CategoryString},
		{KindFunc, CategoryFunc},
		{KindArray, CategorySequence},
		{KindList, CategorySequence},
		{KindMap, CategoryMap},
		{KindOption, CategoryNullable},
		{KindObject, CategoryObject},
		{KindDynamic, CategoryDynamic},
	}
	for _, tc := range tests {
		if got := tc.kind.Category(); got != tc.want {
			t.Errorf("%s.Category() = %s, want %s", tc.kind, got, tc.want)
		}
	}
}

func TestKindSignedness(t *testing.T) {
	if !KindS8.IsSigned() || KindU8.IsSigned() {
		t.Error("IsSigned wrong for 8-bit kinds")
	}
	if !KindU64.IsUnsigned() || KindS64.IsUnsigned() || KindF32.IsUnsigned() {
		t.Error("IsUnsigned wrong")
	}
}
