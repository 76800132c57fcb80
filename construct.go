package asn1flat

/*
construct.go implements the generic BER constructed-concatenation rule
shared by OCTET STRING and the restricted character string types
(spec.md §4.5): a constructed value of the same identifier whose
children, decoded and concatenated in order, yield the flat content.
BIT STRING does not use this helper since each fragment carries its
own unused-bits framing byte (see bitstring.go). No teacher equivalent;
grounded in original_source/src/asn1.rs's constructed-string handling.
*/

/*
decodeConstructedOctets returns n's content bytes, transparently
flattening BER's constructed form (nested arbitrarily deep) under
identifier id. DER never permits the constructed form for these types.
*/
func decodeConstructedOctets(n LogicalNode, id Identifier, rule EncodingRule) ([]byte, error) {
	if !n.Constructed {
		content, _ := n.Primitive()
		return content, nil
	}
	if rule.requiresMinimal() {
		return nil, errNotPrimitive
	}

	children := n.Children()
	var out []byte
	for {
		child, ok := children.Next()
		if !ok {
			break
		}
		if !child.Identifier.Eq(id) {
			return nil, errUnexpectedIdentifier(id, child.Identifier)
		}
		chunk, err := decodeConstructedOctets(child, id, rule)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}
