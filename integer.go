package asn1flat

/*
integer.go implements the ASN.1 INTEGER type (tag 2) as an unbounded
value, plus the fixed-width integer bridges spec.md §4.4 calls for.
Adapted from the teacher's int.go (which keeps an int64 fast path and
falls back to *big.Int on overflow); this version always holds a
*big.Int since spec.md's content-validation rules (minimal two's-
complement encoding) are most directly expressed against the byte
encoding either way, and a single representation keeps that logic in
one place.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Integer implements the unbounded ASN.1 INTEGER type.
type Integer struct {
	v *big.Int
}

// NewInteger wraps an int64 as an [Integer].
func NewInteger(x int64) Integer { return Integer{v: big.NewInt(x)} }

// NewIntegerFromBig wraps x (which is not retained; a copy is made).
func NewIntegerFromBig(x *big.Int) Integer { return Integer{v: new(big.Int).Set(x)} }

/*
NewIntegerFromSigned builds an [Integer] from any signed integer type,
so a caller bridging a domain-specific width (int8, int32, ...) doesn't
have to hand-widen to int64 first.
*/
func NewIntegerFromSigned[T constraints.Signed](x T) Integer {
	return Integer{v: big.NewInt(int64(x))}
}

// NewIntegerFromUnsigned builds an [Integer] from any unsigned integer type.
func NewIntegerFromUnsigned[T constraints.Unsigned](x T) Integer {
	return Integer{v: new(big.Int).SetUint64(uint64(x))}
}

func (r Integer) BigInt() *big.Int {
	if r.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(r.v)
}

func (r Integer) String() string {
	if r.v == nil {
		return "0"
	}
	return r.v.String()
}

func (Integer) DefaultIdentifier() Identifier { return Universal(TagInteger) }

func (r *Integer) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	v, err := decodeTwosComplement(content, rule)
	if err != nil {
		return err
	}
	r.v = v
	return nil
}

func (r Integer) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		w.Raw(minimalTwosComplementBytes(r.BigInt()))
		return nil
	})
}

/*
decodeTwosComplement validates and decodes INTEGER content bytes.
DER requires the minimal two's-complement form (spec.md §4.5): the
first byte may not be 0x00 followed by a byte whose high bit is clear,
nor 0xFF followed by a byte whose high bit is set. BER permits
non-minimal encodings.
*/
func decodeTwosComplement(content []byte, rule EncodingRule) (*big.Int, error) {
	if len(content) == 0 {
		return nil, errEmptyContent
	}
	if rule.requiresMinimal() && len(content) > 1 {
		if content[0] == 0x00 && content[1]&0x80 == 0 {
			return nil, errNonMinimalInteger
		}
		if content[0] == 0xFF && content[1]&0x80 != 0 {
			return nil, errNonMinimalInteger
		}
	}

	neg := content[0]&0x80 != 0
	v := new(big.Int).SetBytes(content)
	if neg {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(content)))
		v.Sub(v, mod)
	}
	return v, nil
}

/*
minimalTwosComplementBytes returns the minimal big-endian two's-
complement encoding of v, per spec.md §4.5's "Constructor-side rules".
*/
func minimalTwosComplementBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	n := 1
	for {
		lowerBound := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(8*n-1)))
		if v.Cmp(lowerBound) >= 0 {
			break
		}
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	t := new(big.Int).Add(mod, v)
	b := t.Bytes()
	for len(b) < n {
		b = append([]byte{0}, b...)
	}
	return b
}

/*
Int64 range-checks r into an int64, returning [KindValueOutOfRange]
if it does not fit (spec.md §4.4's "integer bridges").
*/
func (r Integer) Int64() (int64, error) {
	if r.v == nil {
		return 0, nil
	}
	if !r.v.IsInt64() {
		return 0, errValueOutOfRange
	}
	return r.v.Int64(), nil
}

// Uint64 range-checks r into a uint64.
func (r Integer) Uint64() (uint64, error) {
	if r.v == nil {
		return 0, nil
	}
	if !r.v.IsUint64() {
		return 0, errValueOutOfRange
	}
	return r.v.Uint64(), nil
}

// Int range-checks r into a platform int.
func (r Integer) Int() (int, error) {
	i64, err := r.Int64()
	if err != nil {
		return 0, err
	}
	if int64(int(i64)) != i64 {
		return 0, errValueOutOfRange
	}
	return int(i64), nil
}
