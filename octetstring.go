package asn1flat

/*
octetstring.go implements the ASN.1 OCTET STRING type (tag 4).
Grounded on the teacher's oct.go (a bare []byte alias), extended with
the BER constructed-concatenation form via [decodeConstructedOctets].
*/

// OctetString implements the ASN.1 OCTET STRING type.
type OctetString []byte

func (OctetString) DefaultIdentifier() Identifier { return Universal(TagOctetString) }

func (r *OctetString) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	content, err := decodeConstructedOctets(n, Universal(TagOctetString), rule)
	if err != nil {
		return err
	}
	*r = OctetString(content)
	return nil
}

func (r OctetString) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { w.Raw([]byte(r)); return nil })
}
