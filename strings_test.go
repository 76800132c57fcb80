package asn1flat

import "testing"

func TestNumericStringCharsetValidation(t *testing.T) {
	var s NumericString
	if err := DecodeDER([]byte{0x12, 0x03, '1', ' ', '2'}, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DecodeDER([]byte{0x12, 0x01, 'a'}, &s); err == nil {
		t.Fatal("expected charset violation")
	}
}

func TestPrintableStringCharsetValidation(t *testing.T) {
	var s PrintableString
	if err := DecodeDER([]byte{0x13, 0x01, '='}, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DecodeDER([]byte{0x13, 0x01, '@'}, &s); err == nil {
		t.Fatal("expected charset violation for '@'")
	}
}

func TestIA5StringCharsetValidation(t *testing.T) {
	var s IA5String
	if err := DecodeDER([]byte{0x16, 0x01, 0x7f}, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DecodeDER([]byte{0x16, 0x01, 0x80}, &s); err == nil {
		t.Fatal("expected charset violation for byte > 0x7F")
	}
}

func TestUTF8StringValidation(t *testing.T) {
	var s UTF8String
	if err := DecodeDER([]byte{0x0c, 0x03, 0xe2, 0x82, 0xac}, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "€" {
		t.Fatalf("got %q", s)
	}
	if err := DecodeDER([]byte{0x0c, 0x01, 0xff}, &s); err == nil {
		t.Fatal("expected invalid UTF-8 to be rejected")
	}
}

func TestPrintableStringConstructedBERConcatenation(t *testing.T) {
	frag1 := []byte{0x13, 0x02, 'a', 'b'}
	frag2 := []byte{0x13, 0x01, 'c'}
	content := append(append([]byte{}, frag1...), frag2...)
	buf := append([]byte{0x33, byte(len(content))}, content...)

	var s PrintableString
	if err := DecodeBER(buf, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "abc" {
		t.Fatalf("got %q", s)
	}
	if err := DecodeDER(buf, &s); err == nil {
		t.Fatal("expected constructed PrintableString to be rejected under DER")
	}
}
