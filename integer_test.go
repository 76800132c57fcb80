package asn1flat

import (
	"math/big"
	"testing"
)

func TestIntegerDecodeBasic(t *testing.T) {
	var i Integer
	if err := DecodeDER([]byte{0x02, 0x01, 0x7f}, &i); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := i.Int64()
	if got != 127 {
		t.Fatalf("got %d, want 127", got)
	}
}

func TestIntegerDERRejectsRedundantLeadingZero(t *testing.T) {
	var i Integer
	err := DecodeDER([]byte{0x02, 0x02, 0x00, 0x7f}, &i)
	if err == nil {
		t.Fatal("expected non-minimal integer error")
	}
	e, ok := AsError(err)
	if !ok || e.Kind() != KindInvalidASN1IntegerEncoding {
		t.Fatalf("got %v", err)
	}
}

func TestIntegerBERAllowsRedundantLeadingZero(t *testing.T) {
	var i Integer
	if err := DecodeBER([]byte{0x02, 0x02, 0x00, 0x7f}, &i); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := i.Int64()
	if got != 127 {
		t.Fatalf("got %d, want 127", got)
	}
}

func TestIntegerNegativeRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, 128, -128, -129, 1000000, -1000000}
	for _, v := range cases {
		src := NewInteger(v)
		enc, err := EncodeDER(&src)
		if err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		var out Integer
		if err := DecodeDER(enc, &out); err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		got, err := out.Int64()
		if err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		if got != v {
			t.Fatalf("v=%d: got %d", v, got)
		}
	}
}

func TestNewIntegerFromGenericWidths(t *testing.T) {
	if got, _ := NewIntegerFromSigned(int8(-5)).Int64(); got != -5 {
		t.Fatalf("got %d, want -5", got)
	}
	if got, _ := NewIntegerFromUnsigned(uint16(500)).Int64(); got != 500 {
		t.Fatalf("got %d, want 500", got)
	}
}

func TestIntegerRangeCheckedBridge(t *testing.T) {
	hugeVal := new(big.Int).Lsh(big.NewInt(1), 100)
	huge := NewIntegerFromBig(hugeVal)
	if _, err := huge.Int64(); err == nil {
		t.Fatal("expected out-of-range error for a value beyond int64")
	}
	if _, err := huge.Int(); err == nil {
		t.Fatal("expected out-of-range error for a value beyond int")
	}
}
