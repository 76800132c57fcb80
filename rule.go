package asn1flat

/*
rule.go contains the EncodingRule abstraction. Adapted from the
teacher's er.go: this package implements only the two rules spec.md
scopes in (BER and its DER subset); CER, PER and the teacher's
per-rule build-tag toggles are dropped since no [MODULE] in the spec
names them (see DESIGN.md).
*/

/*
EncodingRule selects which ASN.1 encoding rule a parse or decode
operation honors. [Encoder] takes no rule; it always emits DER.
*/
type EncodingRule uint8

const (
	BER EncodingRule = iota
	DER
)

func (r EncodingRule) String() string {
	if r == DER {
		return "DER"
	}
	return "BER"
}

/*
allowsIndefinite reports whether the receiver permits indefinite-length
constructed encodings (spec.md §3: "Indefinite is only permitted under
BER").
*/
func (r EncodingRule) allowsIndefinite() bool { return r == BER }

/*
requiresMinimal reports whether the receiver enforces DER's minimal-
encoding canonical-form rules (length, integer, BIT STRING padding).
*/
func (r EncodingRule) requiresMinimal() bool { return r == DER }
