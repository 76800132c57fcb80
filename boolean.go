package asn1flat

/*
boolean.go implements the ASN.1 BOOLEAN type (tag 1). Adapted from
the teacher's bool.go; content rules per spec.md §4.5: exactly one
content octet, DER requires 0x00 or 0xFF, BER accepts any non-zero
octet as true.
*/

// Boolean implements the ASN.1 BOOLEAN type.
type Boolean bool

func (Boolean) DefaultIdentifier() Identifier { return Universal(TagBoolean) }

func (r *Boolean) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	if len(content) != 1 {
		return errBadBooleanLength
	}

	b := content[0]
	if rule.requiresMinimal() && b != 0x00 && b != 0xFF {
		return errNonDERBoolean
	}
	*r = Boolean(b != 0x00)
	return nil
}

func (r Boolean) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		var v byte
		if r {
			v = 0xFF
		}
		w.Raw([]byte{v})
		return nil
	})
}
