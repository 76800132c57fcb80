package asn1flat

/*
time.go implements the ASN.1 UTCTime (tag 23) and GeneralizedTime
(tag 24) types. Grounded on the teacher's time.go for the layout-string
approach to parsing, narrowed to the subset spec.md's per-type table
actually requires: both syntaxes are accepted only in their
Z-terminated (UTC, zero-offset) form; explicit numeric-offset suffixes
are rejected rather than normalized, since spec.md treats the offset
forms as out of scope.
*/

import (
	"strconv"
	"time"
)

const (
	utcTimeLayoutShort = "0601021504Z"
	utcTimeLayoutLong  = "060102150405Z"
	genTimeLayout      = "20060102150405Z"
	genTimeLayoutFrac  = "20060102150405.999999999Z"
)

// UTCTime implements the ASN.1 UTCTime type. Two-digit years below 50
// are taken as 20YY; 50 and above as 19YY, matching common PKIX
// practice.
type UTCTime time.Time

func (UTCTime) DefaultIdentifier() Identifier { return Universal(TagUTCTime) }

func (r *UTCTime) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	s := string(content)
	if len(s) == 0 || s[len(s)-1] != 'Z' {
		return errInvalidTimeFormat
	}

	layout := utcTimeLayoutLong
	if len(s) == len(utcTimeLayoutShort) {
		layout = utcTimeLayoutShort
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return errInvalidTimeFormat
	}

	// time.Parse's own "06" pivot (0-68 -> 20xx, 69-99 -> 19xx) does not
	// match spec.md's 50/50 split, so the year is recomputed directly
	// from the two leading digits instead of trusting t.Year().
	yy, err := strconv.Atoi(s[0:2])
	if err != nil {
		return errInvalidTimeFormat
	}
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}
	*r = UTCTime(time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC))
	return nil
}

func (r UTCTime) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		t := time.Time(r).UTC()
		w.Raw([]byte(t.Format(utcTimeLayoutLong)))
		return nil
	})
}

// GeneralizedTime implements the ASN.1 GeneralizedTime type, with an
// optional fractional-seconds component.
type GeneralizedTime time.Time

func (GeneralizedTime) DefaultIdentifier() Identifier { return Universal(TagGeneralizedTime) }

func (r *GeneralizedTime) DecodeFrom(n LogicalNode, rule EncodingRule) error {
	if n.Constructed {
		return errNotPrimitive
	}
	content, _ := n.Primitive()
	s := string(content)
	if len(s) == 0 || s[len(s)-1] != 'Z' {
		return errInvalidTimeFormat
	}

	layout := genTimeLayout
	if containsDot(s) {
		layout = genTimeLayoutFrac
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return errInvalidTimeFormat
	}
	*r = GeneralizedTime(t.UTC())
	return nil
}

func (r GeneralizedTime) EncodeTo(b *Encoder, id Identifier) error {
	return b.AppendPrimitive(id, func(w *Encoder) error {
		t := time.Time(r).UTC()
		w.Raw([]byte(t.Format(genTimeLayout)))
		return nil
	})
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
