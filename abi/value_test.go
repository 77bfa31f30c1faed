package abi

import (
	"errors"
	"math/big"
	"reflect"
	"testing"

	irerrors "github.com/smartir/irabi/errors"
)

func mustDescriptor(t *testing.T, typeName string) *Descriptor {
	t.Helper()
	d, err := ParseDescriptor(typeName)
	if err != nil {
		t.Fatalf("ParseDescriptor(%q): %v", typeName, err)
	}
	return d
}

func TestParseValue_Bool(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"true", true},
		{"false", false},
		// Anything other than "true" parses as false.
		{"TRUE", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}

	d := mustDescriptor(t, "bool")
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v, err := ParseValue(d, tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Bool != tt.want {
				t.Errorf("ParseValue(bool, %q) = %v, want %v", tt.token, v.Bool, tt.want)
			}
		})
	}
}

func TestParseValue_Str(t *testing.T) {
	d := mustDescriptor(t, "str")
	for _, token := range []string{"", "hello", "with spaces", `with "quotes"`, "with\\backslash"} {
		v, err := ParseValue(d, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Str != token {
			t.Errorf("str not copied verbatim: got %q, want %q", v.Str, token)
		}
	}
}

func TestParseValue_Parampack(t *testing.T) {
	d := mustDescriptor(t, "parampack")

	v, err := ParseValue(d, "deadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Bytes, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("bytes = %x", v.Bytes)
	}

	for _, token := range []string{"abc", "zz", "0x12"} {
		_, err := ParseValue(d, token)
		if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseParse, Kind: irerrors.KindHexDecode}) {
			t.Errorf("ParseValue(parampack, %q) error = %v, want hex_decode", token, err)
		}
	}
}

func TestParseValue_Integers(t *testing.T) {
	tests := []struct {
		typeName string
		token    string
		wantU    uint64
		wantI    int64
		wantErr  bool
	}{
		{typeName: "u8", token: "0", wantU: 0},
		{typeName: "u8", token: "255", wantU: 255},
		{typeName: "u8", token: "256", wantErr: true},
		{typeName: "u8", token: "-1", wantErr: true},
		{typeName: "i8", token: "-128", wantI: -128},
		{typeName: "i8", token: "127", wantI: 127},
		{typeName: "i8", token: "128", wantErr: true},
		{typeName: "u16", token: "65535", wantU: 65535},
		{typeName: "i16", token: "-32768", wantI: -32768},
		{typeName: "u32", token: "4294967295", wantU: 4294967295},
		{typeName: "i32", token: "-2147483648", wantI: -2147483648},
		{typeName: "u64", token: "18446744073709551615", wantU: 18446744073709551615},
		{typeName: "i64", token: "-9223372036854775808", wantI: -9223372036854775808},
		{typeName: "u64", token: "18446744073709551616", wantErr: true},
		{typeName: "u32", token: "abc", wantErr: true},
		{typeName: "i32", token: "", wantErr: true},
		{typeName: "u8", token: "0x10", wantErr: true}, // base-10 only
		{typeName: "u8", token: " 7", wantErr: true},   // no trimming
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.token, func(t *testing.T) {
			d := mustDescriptor(t, tt.typeName)
			v, err := ParseValue(d, tt.token)
			if tt.wantErr {
				if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseParse, Kind: irerrors.KindNumberFormat}) {
					t.Fatalf("error = %v, want number_format", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Kind.Signed() {
				if v.I64 != tt.wantI {
					t.Errorf("value = %d, want %d", v.I64, tt.wantI)
				}
			} else if v.U64 != tt.wantU {
				t.Errorf("value = %d, want %d", v.U64, tt.wantU)
			}
		})
	}
}

func TestParseValue_128Bit(t *testing.T) {
	u128Max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	i128Min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	tests := []struct {
		typeName string
		token    string
		want     *big.Int
		wantErr  bool
	}{
		{typeName: "u128", token: "0", want: big.NewInt(0)},
		{typeName: "u128", token: u128Max.String(), want: u128Max},
		{typeName: "u128", token: "-1", wantErr: true},
		{typeName: "u128", token: new(big.Int).Add(u128Max, big.NewInt(1)).String(), wantErr: true},
		{typeName: "i128", token: i128Min.String(), want: i128Min},
		{typeName: "i128", token: new(big.Int).Sub(i128Min, big.NewInt(1)).String(), wantErr: true},
		{typeName: "i128", token: "12345678901234567890123456789", want: bigFromString(t, "12345678901234567890123456789")},
		{typeName: "u128", token: "ff", wantErr: true},
		{typeName: "i128", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.token, func(t *testing.T) {
			d := mustDescriptor(t, tt.typeName)
			v, err := ParseValue(d, tt.token)
			if tt.wantErr {
				if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseParse, Kind: irerrors.KindNumberFormat}) {
					t.Fatalf("error = %v, want number_format", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Big.Cmp(tt.want) != 0 {
				t.Errorf("value = %s, want %s", v.Big, tt.want)
			}
		})
	}
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big literal %q", s)
	}
	return n
}

func TestParseValue_Array(t *testing.T) {
	d := mustDescriptor(t, "[u8]")

	v, err := ParseValue(d, "1,2,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Elems) != 3 {
		t.Fatalf("len = %d, want 3", len(v.Elems))
	}
	for i, want := range []uint64{1, 2, 3} {
		if v.Elems[i].U64 != want {
			t.Errorf("elem[%d] = %d, want %d", i, v.Elems[i].U64, want)
		}
	}

	// First invalid element aborts the whole call.
	if _, err := ParseValue(d, "1,x,3"); err == nil {
		t.Error("expected error for malformed element")
	}
}

func TestParseValue_ArrayEmptyTokenQuirk(t *testing.T) {
	// Splitting "" on ',' yields one empty piece: a str array parses to
	// a single empty string, and a u8 array fails rather than producing
	// an empty array.
	strs := mustDescriptor(t, "[str]")
	v, err := ParseValue(strs, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Elems) != 1 || v.Elems[0].Str != "" {
		t.Errorf("got %d elems, want exactly one empty string", len(v.Elems))
	}

	nums := mustDescriptor(t, "[u8]")
	if _, err := ParseValue(nums, ""); err == nil {
		t.Error("expected number_format error for empty u8 array token")
	}
}

func TestParseValue_Map(t *testing.T) {
	d := mustDescriptor(t, "{str:u8}")

	v, err := ParseValue(d, "a:1,b:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Map) != 2 || v.Map["a"].U64 != 1 || v.Map["b"].U64 != 2 {
		t.Errorf("map = %v", v.Map)
	}

	_, err = ParseValue(d, "a:1,b")
	if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseParse, Kind: irerrors.KindInvalidMapEntry}) {
		t.Errorf("error = %v, want invalid_map_entry", err)
	}
}

func TestParseValue_MapExtraColonIgnored(t *testing.T) {
	// Only the first two pieces of a pair are consulted.
	d := mustDescriptor(t, "{str:u8}")
	v, err := ParseValue(d, "a:1:junk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Map["a"].U64 != 1 {
		t.Errorf("map = %v", v.Map)
	}
}

func TestParseValue_MapDuplicateKeyLastWins(t *testing.T) {
	d := mustDescriptor(t, "{str:u8}")
	v, err := ParseValue(d, "a:1,a:9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Map) != 1 || v.Map["a"].U64 != 9 {
		t.Errorf("map = %v, want {a:9}", v.Map)
	}
}

func TestParseValue_MapValueError(t *testing.T) {
	d := mustDescriptor(t, "{str:u8}")
	if _, err := ParseValue(d, "a:1,b:x"); err == nil {
		t.Error("expected error for malformed map value")
	}
}
