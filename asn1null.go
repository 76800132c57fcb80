package asn1flat

/*
asn1null.go implements the ASN.1 NULL type (tag 5). Grounded on the
teacher's null.go. Named asn1null.go rather than null.go to avoid
colliding with any built-in expectations around a bare "null" file.
*/

// Null implements the ASN.1 NULL type. The zero value is the only value.
type Null struct{}

func (Null) DefaultIdentifier() Identifier { return Universal(TagNull) }

func (r *Null) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	if len(content) != 0 {
		return errBadNullContent
	}
	return nil
}

func (r Null) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { return nil })
}
