package asn1flat

/*
enumerated.go implements the ASN.1 ENUMERATED type (tag 10), whose
content rules spec.md §4.5 defines as identical to INTEGER. Grounded
on the teacher's enum.go, which likewise delegates its wire format to
the INTEGER codec.
*/

// Enumerated implements the ASN.1 ENUMERATED type.
type Enumerated int64

func (Enumerated) DefaultIdentifier() Identifier { return Universal(TagEnumerated) }

func (r *Enumerated) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	v, err := decodeTwosComplement(content, rule)
	if err != nil {
		return err
	}
	if !v.IsInt64() {
		return errValueOutOfRange
	}
	*r = Enumerated(v.Int64())
	return nil
}

func (r Enumerated) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		w.Raw(minimalTwosComplementBytes(NewInteger(int64(r)).BigInt()))
		return nil
	})
}
