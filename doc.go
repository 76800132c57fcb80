/*
Package asn1flat implements a decoder and encoder for ASN.1 values under
the Basic Encoding Rules (BER) and its canonical subset, the Distinguished
Encoding Rules (DER), per [ITU-T Rec. X.690].

The package is built from two tightly coupled subsystems: a depth- and
size-bounded TLV parser that turns a byte buffer into a flat, shareable
vector of nodes ([ParseBER], [ParseDER], [NodeCursor]), and a typed
codec layer that binds domain ASN.1 types (INTEGER, BIT STRING,
SEQUENCE, and so on) to that tree via the [Codec]/[Encoder]/
[Identifiable] capability trio.

PEM framing, file I/O, and X.509/PKI schema are explicitly out of scope;
callers supply raw DER/BER bytes and receive either a validated node
tree or a typed domain value, and vice versa.

[ITU-T Rec. X.690]: https://www.itu.int/rec/T-REC-X.690
*/
package asn1flat
