package asn1flat

/*
bitstring.go implements the ASN.1 BIT STRING type (tag 3), including
the BER constructed-fragment form (spec.md §4.5's "BER constructed
string concatenation" row, BIT STRING variant). Grounded on the
teacher's bs.go for the unused-bits/content shape, reworked onto the
[Codec] interface; the fragment-walking logic instead follows
original_source/src/asn1.rs's bit-string reader, since the teacher's
bs.go never implements the constructed form.
*/

// BitString implements the ASN.1 BIT STRING type.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// NewBitString builds a [BitString] from raw bytes and a bit count.
func NewBitString(bytes []byte, bitLength int) BitString {
	return BitString{Bytes: bytes, BitLength: bitLength}
}

func (BitString) DefaultIdentifier() Identifier { return Universal(TagBitString) }

func (r *BitString) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	bytes, unused, err := decodeBitStringValue(n, rule)
	if err != nil {
		return err
	}
	r.Bytes = bytes
	r.BitLength = len(bytes)*8 - unused
	return nil
}

func (r BitString) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		remainder := r.BitLength % 8
		unused := 0
		if remainder != 0 {
			unused = 8 - remainder
		}
		w.Raw([]byte{byte(unused)})
		w.Raw(r.Bytes)
		return nil
	})
}

/*
decodeBitStringValue handles both the primitive form and BER's
constructed fragment form (each fragment itself a BIT STRING; every
fragment but the last must carry zero unused bits).
*/
func decodeBitStringValue(n LogicalNode, rule EncodingRule) (bytes []byte, unused int, err error) {
	if !n.Constructed {
		content, _ := n.Primitive()
		return parseBitStringContent(content, rule)
	}
	if rule.requiresMinimal() {
		return nil, 0, errNotPrimitive
	}

	children := n.Children()
	var fragments []LogicalNode
	for {
		child, ok := children.Next()
		if !ok {
			break
		}
		fragments = append(fragments, child)
	}
	if len(fragments) == 0 {
		return nil, 0, errEmptyContent
	}

	for i, frag := range fragments {
		if !frag.Identifier.Eq(Universal(TagBitString)) {
			return nil, 0, errUnexpectedIdentifier(Universal(TagBitString), frag.Identifier)
		}
		var fbytes []byte
		var funused int
		if frag.Constructed {
			fbytes, funused, err = decodeBitStringValue(frag, rule)
		} else {
			content, _ := frag.Primitive()
			fbytes, funused, err = parseBitStringContent(content, rule)
		}
		if err != nil {
			return nil, 0, err
		}
		if i < len(fragments)-1 && funused != 0 {
			return nil, 0, errNonZeroUnusedBits
		}
		bytes = append(bytes, fbytes...)
		unused = funused
	}
	return bytes, unused, nil
}

/*
parseBitStringContent validates and splits one BIT STRING content
octet string. The trailing-padding-bits-must-be-zero rule is an "Extra
DER rule" (spec.md §4.5's per-type table): DER rejects non-zero padding
bits, BER allows them.
*/
func parseBitStringContent(content []byte, rule EncodingRule) (bytes []byte, unused int, err error) {
	if len(content) == 0 {
		return nil, 0, errBadBitStringUnused
	}
	unused = int(content[0])
	if unused < 0 || unused > 7 {
		return nil, 0, errBadBitStringUnused
	}
	bytes = content[1:]
	if len(bytes) == 0 && unused != 0 {
		return nil, 0, errBadBitStringUnused
	}
	if rule.requiresMinimal() && unused > 0 && len(bytes) > 0 {
		last := bytes[len(bytes)-1]
		if last&((1<<uint(unused))-1) != 0 {
			return nil, 0, errNonZeroUnusedBits
		}
	}
	return bytes, unused, nil
}
