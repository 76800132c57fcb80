package asn1flat

/*
codec.go contains the typed codec capability system (spec.md §4.4):
the Identifiable/Codec capability pair every domain type implements,
the Encoder object that accumulates DER-encoded bytes, implicit- and
explicit-tag wrapping, and the package's public Parse/Decode/Encode
entry points (spec.md §6). Adapted from the teacher's Packet/TLV
encode-side (tlv.go's encodeTLV/writeTLV) reshaped around the
[LogicalNode]/[NodeCursor] model instead of an offset-tracking buffer.
*/

/*
Identifiable is implemented by every domain type and reports its
canonical ASN.1 identifier. The OPTIONAL decoder (see [Optional]) must
be able to ask an inner type for this identifier before consuming any
bytes from the cursor.
*/
type Identifiable interface {
	DefaultIdentifier() Identifier
}

/*
Codec is the capability triple spec.md §4.4 requires of every domain
type: a default identifier, decode-from-node, and encode-into-builder.

DecodeFrom receives a node whose identifier has already been checked
by [Decode]/[DecodeDER]/[DecodeBER] against either the type's default
identifier or an implicit-tag override; it validates only the node's
primitive/constructed shape and content bytes.

EncodeTo appends the receiver's full TLV encoding to b under the given
identifier, which is either the type's own default or an override
supplied by an implicit/explicit tagging wrapper. It returns an error
if the receiver's own state violates a constructor-side invariant
(spec.md §4.5) that only surfaces once encoding is attempted, such as
an [ObjectIdentifier] with too few arcs.
*/
type Codec interface {
	Identifiable
	DecodeFrom(n LogicalNode, rule EncodingRule) error
	EncodeTo(b *Encoder, id Identifier) error
}

/*
Decode validates n's identifier against id (the type's default unless
an implicit-tag override applies) and, if it matches, populates dst
from n's content under rule. This is the single point where every
typed decoder enforces spec.md §4.4's "identifier matches" rule.
*/
func Decode(dst Codec, n LogicalNode, rule EncodingRule) error {
	id := dst.DefaultIdentifier()
	if !n.Identifier.Eq(id) {
		return errUnexpectedIdentifier(id, n.Identifier)
	}
	return dst.DecodeFrom(n, rule)
}

/*
DecodeDER parses data under DER (requiring exactly one root value) and
decodes it into dst.
*/
func DecodeDER(data []byte, dst Codec) error {
	root, err := ParseDER(data)
	if err != nil {
		return err
	}
	return Decode(dst, root, DER)
}

/*
DecodeBER parses data under BER and decodes the root value into dst.
*/
func DecodeBER(data []byte, dst Codec) error {
	root, err := ParseBER(data)
	if err != nil {
		return err
	}
	return Decode(dst, root, BER)
}

/*
ParseDER decodes data into a single root [LogicalNode] under DER,
failing if data does not contain exactly one root value (spec.md §6).
*/
func ParseDER(data []byte) (LogicalNode, error) {
	nodes, err := parseNodes(data, DER, true)
	if err != nil {
		return LogicalNode{}, err
	}
	return buildLogical(nodes, 0), nil
}

/*
ParseBER decodes data into a single root [LogicalNode] under BER.
*/
func ParseBER(data []byte) (LogicalNode, error) {
	nodes, err := parseNodes(data, BER, false)
	if err != nil {
		return LogicalNode{}, err
	}
	if len(nodes) == 0 {
		return LogicalNode{}, errTruncatedContent
	}
	return buildLogical(nodes, 0), nil
}

/*
Encoder accumulates a DER-encoded byte sequence. It is the "Encoder
object" of spec.md §6: New via [NewEncoder], fed through
AppendPrimitive/AppendConstructed/WriteSequence/Serialize, and
finished with Finalize.
*/
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty [Encoder].
func NewEncoder() *Encoder { return &Encoder{} }

/*
AppendPrimitive writes a primitive TLV: id's header, the content
produced by write into a side buffer, and that content's length. An
error from write aborts before anything is appended to b.
*/
func (b *Encoder) AppendPrimitive(id Identifier, write func(*Encoder) error) error {
	return b.appendTLV(id, false, write)
}

/*
AppendConstructed writes a constructed TLV whose content is whatever
write appends to the nested [Encoder] it receives. An error from write
aborts before anything is appended to b.
*/
func (b *Encoder) AppendConstructed(id Identifier, write func(*Encoder) error) error {
	return b.appendTLV(id, true, write)
}

/*
WriteSequence is AppendConstructed specialized to the universal
SEQUENCE identifier, matching the convenience method spec.md §4.4
names explicitly.
*/
func (b *Encoder) WriteSequence(write func(*Encoder) error) error {
	return b.AppendConstructed(Universal(TagSequence), write)
}

func (b *Encoder) appendTLV(id Identifier, constructed bool, write func(*Encoder) error) error {
	child := NewEncoder()
	if err := write(child); err != nil {
		return err
	}
	b.buf = appendIdentifier(b.buf, id, constructed)
	b.buf = encodeLength(b.buf, uint64(len(child.buf)))
	b.buf = append(b.buf, child.buf...)
	return nil
}

// Raw appends already-encoded content bytes verbatim.
func (b *Encoder) Raw(p []byte) { b.buf = append(b.buf, p...) }

/*
Serialize appends v's full DER encoding under its default identifier.
*/
func (b *Encoder) Serialize(v Codec) error { return v.EncodeTo(b, v.DefaultIdentifier()) }

/*
Finalize returns the accumulated bytes as an owned, independent copy.
*/
func (b *Encoder) Finalize() []byte { return append([]byte(nil), b.buf...) }

/*
EncodeDER returns v's canonical DER encoding. It is shorthand for
NewEncoder + Serialize + Finalize, failing if v.EncodeTo does.
*/
func EncodeDER(v Codec) ([]byte, error) {
	b := NewEncoder()
	if err := b.Serialize(v); err != nil {
		return nil, err
	}
	return b.Finalize(), nil
}

func appendIdentifier(dst []byte, id Identifier, constructed bool) []byte {
	b := byte(id.Class) << 6
	if constructed {
		b |= 0x20
	}
	if id.Tag < 31 {
		b |= byte(id.Tag)
		return append(dst, b)
	}
	b |= 0x1f
	dst = append(dst, b)
	return encodeBase128(dst, uint64(id.Tag))
}

/*
implicitCodec overrides a wrapped [Codec]'s identifier while leaving
its content rules untouched (spec.md §4.4's implicit-tag override).
*/
type implicitCodec struct {
	id    Identifier
	inner Codec
}

/*
Implicit returns a [Codec] that behaves exactly like inner except that
its identifier (on both decode and encode) is id instead of inner's
own default identifier. Content validation is delegated to inner
unchanged, matching spec.md §3's definition of implicit tagging.
*/
func Implicit(id Identifier, inner Codec) Codec { return implicitCodec{id: id, inner: inner} }

func (w implicitCodec) DefaultIdentifier() Identifier { return w.id }
func (w implicitCodec) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	return w.inner.DecodeFrom(n, rule)
}
func (w implicitCodec) EncodeTo(b *Encoder, id Identifier) error { return w.inner.EncodeTo(b, id) }

/*
explicitCodec wraps inner's entire encoding inside an additional
constructed tag, rather than merely renaming inner's own tag. This is
the "explicit tag helper" spec.md's expansion restores from
original_source/ (rust-asn1's explicit-tag combinator), distinct from
[Implicit].
*/
type explicitCodec struct {
	id    Identifier
	inner Codec
}

// Explicit returns a [Codec] that wraps inner's encoding inside a new
// constructed tag id, leaving inner's own identifier as its content.
func Explicit(id Identifier, inner Codec) Codec { return explicitCodec{id: id, inner: inner} }

func (w explicitCodec) DefaultIdentifier() Identifier { return w.id }

func (w explicitCodec) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if !n.Constructed {
		return errNotConstructed
	}
	children := n.Children()
	child, ok := children.Next()
	if !ok {
		return errTruncatedContent
	}
	if !children.Empty() {
		return errUnconsumedNodes
	}
	return Decode(w.inner, child, rule)
}

func (w explicitCodec) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendConstructed(id, func(cb *Encoder) error { return cb.Serialize(w.inner) })
}
