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
				Phase:    PhaseParse,
				Kind:     KindNumberFormat,
				Path:     []string{"param[1]"},
				TypeName: "u32",
				Token:    "abc",
				Detail:   "parse base-10 integer",
			},
			contains: []string{"[parse]", "number_format", "param[1]", "u32", `"abc"`, "parse base-10 integer"},
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
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "truncated section",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "truncated section", "caused by", "underlying error"},
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
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindHexDecode,
		Path:  []string{"param[0]"},
	}

	// Same phase and kind matches regardless of context fields
	if !errors.Is(err, &Error{Phase: PhaseParse, Kind: KindHexDecode}) {
		t.Error("expected match on phase+kind")
	}

	if errors.Is(err, &Error{Phase: PhaseParse, Kind: KindNumberFormat}) {
		t.Error("unexpected match on different kind")
	}

	if errors.Is(err, errors.New("plain")) {
		t.Error("unexpected match on plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("strconv failure")
	err := New(PhaseParse, KindNumberFormat).
		Path("param[2]").
		TypeName("i16").
		Token("99999").
		Detail("value out of range for %s", "i16").
		Cause(cause).
		Build()

	if err.Phase != PhaseParse || err.Kind != KindNumberFormat {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "value out of range for i16" {
		t.Errorf("unexpected detail %q", err.Detail)
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Kind
	}{
		{"unsupported type", UnsupportedType("[{str:u8}]"), KindUnsupportedType},
		{"hex decode", HexDecode("zz", errors.New("bad digit")), KindHexDecode},
		{"number format", NumberFormat("u8", "256", errors.New("range")), KindNumberFormat},
		{"invalid map entry", InvalidMapEntry("orphan"), KindInvalidMapEntry},
		{"arity mismatch", ArityMismatch("transfer", 2, 3), KindArityMismatch},
		{"not found", NotFound(PhaseLoad, "custom section", "ir-abi"), KindNotFound},
		{"out of bounds", OutOfBounds(PhaseDecode, 4, 1), KindOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.want {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.want)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestArityMismatch_Message(t *testing.T) {
	err := ArityMismatch("transfer", 2, 0)
	for _, s := range []string{"transfer", "2", "0"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("message %q missing %q", err.Error(), s)
		}
	}
}
