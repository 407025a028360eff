package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTypeMismatch,
				Path:     []string{"user", "address", "zip"},
				GoType:   "string",
				WireType: "u32",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "type_mismatch", "user.address.zip", "string", "u32", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindIO,
				Detail: "disk full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "io", "disk full", "caused by", "underlying error"},
		},
		{
			name:     "wire type only",
			err:      &Error{Phase: PhaseCompile, Kind: KindUnsupported, WireType: "object"},
			contains: []string{"[compile]", "wire type object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}
}

func TestErrSizeNotSupported(t *testing.T) {
	err := SizeNotSupported([]string{"items"}, 1<<62)
	if !errors.Is(err, ErrSizeNotSupported) {
		t.Fatal("SizeNotSupported should match ErrSizeNotSupported")
	}
	if err.Value != uint64(1<<62) {
		t.Errorf("Value = %v, want %d", err.Value, uint64(1<<62))
	}
	if !strings.Contains(err.Error(), "items") {
		t.Errorf("error %q should contain path", err.Error())
	}

	var wrapped error = Wrap(PhaseEncode, KindInvalidData, err, "outer")
	if !errors.Is(wrapped, ErrSizeNotSupported) {
		t.Error("errors.Is should find size error through Cause")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindTypeMismatch).
		Path("user", "name").
		GoType("string").
		WireType("u32").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.GoType != "string" || err.WireType != "u32" {
		t.Errorf("GoType=%v WireType=%v", err.GoType, err.WireType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"TypeMismatch", TypeMismatch(PhaseDecode, nil, "int", "string"), PhaseDecode, KindTypeMismatch},
		{"Unsupported", Unsupported(PhaseCompile, "chan"), PhaseCompile, KindUnsupported},
		{"UnsupportedType", UnsupportedType(PhaseCompile, nil, "chan int"), PhaseCompile, KindUnsupported},
		{"OutOfBounds", OutOfBounds(PhaseDecode, nil, 10, 5), PhaseDecode, KindOutOfBounds},
		{"Truncated", Truncated(nil, 4, 1), PhaseDecode, KindOutOfBounds},
		{"NilPointer", NilPointer(PhaseDecode, nil, "*User"), PhaseDecode, KindNilPointer},
		{"Overflow", Overflow(PhaseDecode, nil, 300, "u8"), PhaseDecode, KindOverflow},
		{"FieldUnknown", FieldUnknown(PhaseDecode, nil, 9), PhaseDecode, KindFieldUnknown},
		{"InvalidData", InvalidData(PhaseDecode, nil, "bad bool"), PhaseDecode, KindInvalidData},
		{"IO", IO(PhaseEncode, nil, errors.New("eof")), PhaseEncode, KindIO},
		{"NotFound", NotFound(PhaseRegister, "schema", "T"), PhaseRegister, KindNotFound},
		{"InvalidInput", InvalidInput(PhaseConfig, "bad"), PhaseConfig, KindInvalidInput},
		{"Registration", Registration("schema", "T", nil), PhaseRegister, KindRegistration},
		{"Sealed", Sealed("type", "T"), PhaseRegister, KindRegistration},
		{"Incompatible", Incompatible("aa", "bb"), PhaseHandshake, KindIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}

	t.Run("OutOfBounds value", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, []string{"list"}, 10, 5)
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})
}
