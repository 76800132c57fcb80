package asn1flat

/*
strings.go implements the restricted character string types spec.md's
per-type table scopes in: NumericString, PrintableString, IA5String,
and UTF8String. Each is a thin string wrapper that validates its
charset on decode and supports BER's constructed-concatenation form via
[decodeConstructedOctets]. Grounded on the teacher's ns.go/ps.go/ia5.go/
utf8.go for the charset definitions (X.680 §41 and T.50); content
validation is rebuilt against the [Codec] interface instead of the
teacher's Constraint/ConstraintGroup machinery.
*/

// NumericString implements the ASN.1 NumericString type (tag 18):
// digits 0-9 and space.
type NumericString string

func (NumericString) DefaultIdentifier() Identifier { return Universal(TagNumericString) }

func (r *NumericString) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	content, err := decodeConstructedOctets(n, Universal(TagNumericString), rule)
	if err != nil {
		return err
	}
	for _, c := range content {
		if !(c == ' ' || (c >= '0' && c <= '9')) {
			return errInvalidCharset
		}
	}
	*r = NumericString(content)
	return nil
}

func (r NumericString) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { w.Raw([]byte(r)); return nil })
}

/*
PrintableString implements the ASN.1 PrintableString type (tag 19),
per X.680 §41.4: letters, digits, space, and a fixed set of
punctuation.
*/
type PrintableString string

func (PrintableString) DefaultIdentifier() Identifier { return Universal(TagPrintableString) }

func (r *PrintableString) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	content, err := decodeConstructedOctets(n, Universal(TagPrintableString), rule)
	if err != nil {
		return err
	}
	for _, c := range content {
		if !isPrintableStringChar(c) {
			return errInvalidCharset
		}
	}
	*r = PrintableString(content)
	return nil
}

func (r PrintableString) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { w.Raw([]byte(r)); return nil })
}

func isPrintableStringChar(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// IA5String implements the ASN.1 IA5String type (tag 22): the full
// International Alphabet No. 5 range, i.e. any byte 0x00-0x7F.
type IA5String string

func (IA5String) DefaultIdentifier() Identifier { return Universal(TagIA5String) }

func (r *IA5String) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	content, err := decodeConstructedOctets(n, Universal(TagIA5String), rule)
	if err != nil {
		return err
	}
	for _, c := range content {
		if c > 0x7f {
			return errInvalidCharset
		}
	}
	*r = IA5String(content)
	return nil
}

func (r IA5String) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { w.Raw([]byte(r)); return nil })
}

// UTF8String implements the ASN.1 UTF8String type (tag 12): any
// well-formed UTF-8 byte sequence.
type UTF8String string

func (UTF8String) DefaultIdentifier() Identifier { return Universal(TagUTF8String) }

func (r *UTF8String) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	content, err := decodeConstructedOctets(n, Universal(TagUTF8String), rule)
	if err != nil {
		return err
	}
	if !utf8OK(string(content)) {
		return errInvalidUTF8
	}
	*r = UTF8String(content)
	return nil
}

func (r UTF8String) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error { w.Raw([]byte(r)); return nil })
}
