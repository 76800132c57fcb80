package asn1flat

import "testing"

func TestEnumeratedRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, 128, 1000} {
		src := Enumerated(v)
		enc, err := EncodeDER(&src)
		if err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		var out Enumerated
		if err := DecodeDER(enc, &out); err != nil {
			t.Fatalf("v=%d: %v", v, err)
		}
		if int64(out) != v {
			t.Fatalf("v=%d: got %d", v, out)
		}
	}
}

func TestEnumeratedDERRejectsNonMinimal(t *testing.T) {
	var e Enumerated
	if err := DecodeDER([]byte{0x0a, 0x02, 0x00, 0x7f}, &e); err == nil {
		t.Fatal("expected non-minimal ENUMERATED to be rejected under DER")
	}
}
