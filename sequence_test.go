package asn1flat

import "testing"

func TestSequenceOptionalAbsentVsPresent(t *testing.T) {
	// spec.md §8: SEQUENCE {i: INTEGER, b: OPTIONAL BOOLEAN}
	decode := func(buf []byte) (Integer, Boolean, bool, error) {
		var i Integer
		var b Boolean
		var present bool
		err := SequenceDecode(mustParseDER(t, buf), Universal(TagSequence), func(children *NodeCursor) error {
			child, ok := children.Next()
			if !ok {
				return errTruncatedContent
			}
			if err := Decode(&i, child, DER); err != nil {
				return err
			}
			bv, ok, err := Optional(children, DER, func() *Boolean { return new(Boolean) })
			if err != nil {
				return err
			}
			if ok {
				present = true
				b = *bv
			}
			return nil
		})
		return i, b, present, err
	}

	i, _, present, err := decode([]byte{0x30, 0x03, 0x02, 0x01, 0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Fatal("expected BOOLEAN to be absent")
	}
	if got, _ := i.Int64(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}

	i, b, present, err := decode([]byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present || !bool(b) {
		t.Fatalf("expected BOOLEAN present and true, got present=%v b=%v", present, b)
	}
	if got, _ := i.Int64(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestSequenceOptionalPresent(t *testing.T) {
	var i Integer
	var b *Boolean
	var present bool
	node := mustParseDER(t, []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xff})
	err := SequenceDecode(node, Universal(TagSequence), func(children *NodeCursor) error {
		child, ok := children.Next()
		if !ok {
			return errTruncatedContent
		}
		if err := Decode(&i, child, DER); err != nil {
			return err
		}
		var err error
		b, present, err = Optional(children, DER, func() *Boolean { return new(Boolean) })
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present || !bool(*b) {
		t.Fatalf("expected BOOLEAN present and true, got present=%v b=%v", present, b)
	}
}

func TestSequenceOfDecodeAndEncode(t *testing.T) {
	items := []Integer{NewInteger(1), NewInteger(2), NewInteger(3)}
	b := NewEncoder()
	if err := SequenceOfEncode(b, Universal(TagSequence), items, func(cb *Encoder, v Integer) error {
		return cb.Serialize(&v)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc := b.Finalize()

	root := mustParseDER(t, enc)
	out, err := SequenceOfDecode(root, Universal(TagSequence), DER, func(n LogicalNode, rule EncodingRule) (int64, error) {
		var v Integer
		if err := Decode(&v, n, rule); err != nil {
			return 0, err
		}
		return v.Int64()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("got %v", out)
	}
}

func TestSequenceUnconsumedNodesRejected(t *testing.T) {
	node := mustParseDER(t, []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xff})
	err := SequenceDecode(node, Universal(TagSequence), func(children *NodeCursor) error {
		_, _ = children.Next() // consume only the INTEGER, leave the BOOLEAN
		return nil
	})
	if err == nil {
		t.Fatal("expected unconsumed-nodes error")
	}
}

func TestGenericSequenceValue(t *testing.T) {
	i := NewInteger(5)
	b := Boolean(true)
	s := Sequence{Fields: []Codec{&i, &b}}
	enc, err := EncodeDER(&s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var outI Integer
	var outB Boolean
	out := Sequence{Fields: []Codec{&outI, &outB}}
	if err := DecodeDER(enc, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := outI.Int64()
	if got != 5 || !outB {
		t.Fatalf("got i=%d b=%v", got, outB)
	}
}

func mustParseDER(t *testing.T, buf []byte) LogicalNode {
	t.Helper()
	n, err := ParseDER(buf)
	if err != nil {
		t.Fatalf("ParseDER: %v", err)
	}
	return n
}
