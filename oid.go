package asn1flat

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER type (tag 6): a sequence
of base-128 VLQ-encoded sub-identifiers, the first two of which are
folded into a single leading arc as X*40+Y. Grounded on the teacher's
oid.go for the public shape (a slice type over the arcs), rebuilt
around [readBase128Uint]/[encodeBase128] from cursor.go instead of the
teacher's big.Int-per-arc representation, since every [Integer] bridge
already lives in integer.go.

spec.md §9 calls out, as a deliberate open ambiguity not to be
"corrected": the first sub-identifier is always split as (v/40, v%40),
with no special case for v >= 80. That naive arithmetic is preserved
here exactly, so the split inverts the encoder's X*40+Y only while the
second arc is below 40. The constructor-side rules bound the second arc
only when the first is 0 or 1, so an OID with first arc 2 and second
arc 40 or more is accepted and encoded but does not round-trip: 2.999
encodes its leading sub-identifier as 1079, which decodes as 26.39.
*/

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type.
type ObjectIdentifier []uint64

/*
NewObjectIdentifier builds an [ObjectIdentifier] from its arcs,
enforcing spec.md §4.5's constructor-side rules: at least two
components, first arc in {0,1,2}, and (only when first is 0 or 1)
second arc at most 39.
*/
func NewObjectIdentifier(arcs ...uint64) (ObjectIdentifier, error) {
	if err := validateObjectIdentifier(arcs); err != nil {
		return nil, err
	}
	return ObjectIdentifier(arcs), nil
}

func (r ObjectIdentifier) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = fmtUint(a, 10)
	}
	return join(parts, ".")
}

func (r ObjectIdentifier) Eq(o ObjectIdentifier) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

func (ObjectIdentifier) DefaultIdentifier() Identifier { return Universal(TagOID) }

func (r *ObjectIdentifier) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	if len(content) == 0 {
		return errEmptyContent
	}

	cur := &byteCursor{buf: content}
	canonical := rule.requiresMinimal()

	first, err := readBase128Uint(cur, canonical)
	if err != nil {
		return err
	}

	arcs := []uint64{first / 40, first % 40}
	for cur.remaining() > 0 {
		v, err := readBase128Uint(cur, canonical)
		if err != nil {
			return err
		}
		arcs = append(arcs, v)
	}

	*r = ObjectIdentifier(arcs)
	return nil
}

/*
EncodeTo re-validates the receiver against spec.md §4.5's constructor-
side rules before emitting anything, since an [ObjectIdentifier] can be
built directly as a slice literal (bypassing [NewObjectIdentifier]). A
malformed value fails here rather than silently emitting a bogus or
empty-content TLV.
*/
func (r ObjectIdentifier) EncodeTo(b *Encoder, id Identifier) error {
	if err := validateObjectIdentifier(r); err != nil {
		return err
	}
	return b.AppendPrimitive(id, func(w *Encoder) error {
		first := r[0]*40 + r[1]
		w.buf = encodeBase128(w.buf, first)
		for _, a := range r[2:] {
			w.buf = encodeBase128(w.buf, a)
		}
		return nil
	})
}

/*
validateObjectIdentifier enforces spec.md §4.5's OID constructor-side
rules. It runs in [NewObjectIdentifier] and again in EncodeTo;
decoding never applies it; see the package comment above.
*/
func validateObjectIdentifier(arcs []uint64) error {
	if len(arcs) < 2 {
		return errTooFewOIDComponents
	}
	if arcs[0] > 2 {
		return errBadOIDFirstArc
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return errBadOIDSecondArc
	}
	return nil
}
