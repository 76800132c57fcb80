package asn1flat

/*
sequence.go contains the generic SEQUENCE / SEQUENCE OF / SET / OPTIONAL
helpers spec.md §4.4 calls out as capabilities shared by every
composite type, plus the concrete SEQUENCE/SET value used when a
caller just wants "a constructed value built from other [Codec]s"
without hand-writing a struct. Grounded in the teacher's seq.go/set.go
for naming, but built around closures over [NodeCursor] (per spec.md
§9's design notes) instead of the teacher's reflect/struct-tag
machinery — see DESIGN.md for why that machinery was not carried
forward as-is.
*/

/*
SequenceDecode validates that n is a constructed value bearing
identifier id, then runs build against a cursor over n's children.
After build returns (without error), every child must have been
consumed; leftover nodes are an unconsumed-sequence-node error
(spec.md §4.3).
*/
func SequenceDecode(n LogicalNode, id Identifier, build func(children *NodeCursor) error) error {
	if !n.Identifier.Eq(id) {
		return errUnexpectedIdentifier(id, n.Identifier)
	}
	if !n.Constructed {
		return errNotConstructed
	}
	children := n.Children()
	if err := build(&children); err != nil {
		return err
	}
	if !children.Empty() {
		return errUnconsumedNodes
	}
	return nil
}

/*
SequenceEncode appends a constructed TLV under id whose content is
whatever write appends to the nested [Encoder] (spec.md §4.4's
"Encoder for SEQUENCE").
*/
func SequenceEncode(b *Encoder, id Identifier, write func(*Encoder) error) error {
	return b.AppendConstructed(id, write)
}

/*
SequenceOfDecode validates that n is constructed with identifier id,
then decodes each child with decodeElem, collecting results in
document order (spec.md §4.4's SEQUENCE OF decoder).
*/
func SequenceOfDecode[T any](n LogicalNode, id Identifier, rule EncodingRule, decodeElem func(LogicalNode, EncodingRule) (T, error)) ([]T, error) {
	if !n.Identifier.Eq(id) {
		return nil, errUnexpectedIdentifier(id, n.Identifier)
	}
	if !n.Constructed {
		return nil, errNotConstructed
	}

	children := n.Children()
	var out []T
	for {
		child, ok := children.Next()
		if !ok {
			break
		}
		v, err := decodeElem(child, rule)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

/*
SequenceOfEncode appends a constructed TLV under id containing each
item's encoding, in slice order.
*/
func SequenceOfEncode[T any](b *Encoder, id Identifier, items []T, encodeElem func(*Encoder, T) error) error {
	return b.AppendConstructed(id, func(cb *Encoder) error {
		for _, it := range items {
			if err := encodeElem(cb, it); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
Optional implements spec.md §4.4's OPTIONAL decoder: it peeks
children without consuming, and only decodes+advances if the next
node's identifier matches newDst()'s default identifier. newDst
constructs a fresh, empty destination value so its identifier can be
queried before any bytes are touched, per spec.md §9's design note.
*/
func Optional[T Codec](children *NodeCursor, rule EncodingRule, newDst func() T) (value T, present bool, err error) {
	next, ok := children.Peek()
	if !ok {
		return value, false, nil
	}

	dst := newDst()
	if !next.Identifier.Eq(dst.DefaultIdentifier()) {
		return value, false, nil
	}

	children.Next()
	if err = Decode(dst, next, rule); err != nil {
		return value, false, err
	}
	return dst, true, nil
}

/*
Sequence is a generic ASN.1 SEQUENCE of heterogeneous [Codec] fields,
useful when a caller doesn't want to declare a named Go struct. Each
element's own identifier is preserved; Sequence itself never overrides
a field's identifier (use [Implicit]/[Explicit] per field for that).
*/
type Sequence struct {
	Fields []Codec
}

func (Sequence) DefaultIdentifier() Identifier { return Universal(TagSequence) }

func (s *Sequence) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	children := n.Children()
	for _, f := range s.Fields {
		child, ok := children.Next()
		if !ok {
			return errTruncatedContent
		}
		if err := Decode(f, child, rule); err != nil {
			return err
		}
	}
	if !children.Empty() {
		return errUnconsumedNodes
	}
	return nil
}

func (s Sequence) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendConstructed(id, func(cb *Encoder) error {
		for _, f := range s.Fields {
			if err := cb.Serialize(f); err != nil {
				return err
			}
		}
		return nil
	})
}

/*
Set is the SET analogue of [Sequence]: same wire shape (constructed,
tag 17), same field-order semantics. spec.md's per-type table lists no
additional DER canonical-ordering rule for SET beyond SEQUENCE's, so
none is enforced here.
*/
type Set struct {
	Fields []Codec
}

func (Set) DefaultIdentifier() Identifier { return Universal(TagSet) }

func (s *Set) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	children := n.Children()
	for _, f := range s.Fields {
		child, ok := children.Next()
		if !ok {
			return errTruncatedContent
		}
		if err := Decode(f, child, rule); err != nil {
			return err
		}
	}
	if !children.Empty() {
		return errUnconsumedNodes
	}
	return nil
}

func (s Set) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendConstructed(id, func(cb *Encoder) error {
		for _, f := range s.Fields {
			if err := cb.Serialize(f); err != nil {
				return err
			}
		}
		return nil
	})
}
