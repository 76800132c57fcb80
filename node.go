package asn1flat

/*
node.go implements the TLV tree builder (spec.md §4.2): recursive
descent that turns a byte buffer into the flat, pre-order node vector
described in spec.md §3. Adapted from the teacher's getTLV/parseBody
logic in pkt.go and tlv.go, restructured around the flat-vector
representation spec.md requires instead of the teacher's per-node
offset-tracking Packet.
*/

/*
MaxDepth bounds how deeply nested a TLV tree may be before a decode is
rejected as an InvalidASN1Object violation (spec.md §4.2). Exported so
an embedding program may tune it; the default of 50 matches the
teacher corpus's resource-bound conventions.
*/
var MaxDepth = 50

/*
MaxNodes bounds how many nodes a single decode may emit before it is
rejected as an InvalidASN1Object violation (spec.md §4.2). Exported for
the same reason as [MaxDepth].
*/
var MaxNodes = 100000

/*
Node is the flat, pre-order representation of one parsed TLV element
(spec.md §3). A node's logical children are the maximal run of
subsequent nodes whose Depth is strictly greater than its own; see
[NodeCursor] for the cursor that walks that relationship.
*/
type Node struct {
	Identifier  Identifier
	Depth       int
	Constructed bool
	Full        []byte // the node's complete TLV encoding (header+length+value[+EOC])
	Content     []byte // primitive content only; nil for constructed nodes
}

/*
parseNodes decodes buf into a flat node vector under the given rule,
returning the first rule violation encountered. DER additionally
requires the buffer to contain exactly one root value (spec.md §6);
BER has no such restriction at this layer (callers of [ParseBER] that
want single-root behavior enforce it themselves).
*/
func parseNodes(buf []byte, rule EncodingRule, requireSingleRoot bool) ([]Node, error) {
	cur := newByteCursor(buf)
	var nodes []Node
	if err := parseOneNode(cur, rule, 1, &nodes); err != nil {
		return nil, err
	}
	if requireSingleRoot && cur.remaining() != 0 {
		return nil, errTrailingBytes
	}
	return nodes, nil
}

func checkNodeCount(n int) error {
	if n > MaxNodes {
		return errNodeCountExceeded
	}
	return nil
}

/*
parseIdentifier reads the identifier octet(s) at the cursor: class from
the high two bits, the constructed flag from 0x20, and the tag number
from either the low five bits (short form, <31) or a base-128
continuation (long form, mandatory when the low five bits are all 1).
A long-form encoding that decodes to a value <31 is rejected as
non-canonical (spec.md §4.2 step 2).
*/
func parseIdentifier(cur *byteCursor) (Identifier, bool, error) {
	b, err := cur.takeOne()
	if err != nil {
		return Identifier{}, false, errTruncatedTag
	}

	class := Class((b >> 6) & 0x03)
	constructed := b&0x20 != 0
	low := int(b & 0x1f)

	if low != 0x1f {
		return Identifier{Class: class, Tag: low}, constructed, nil
	}

	v, err := readBase128Uint(cur, false)
	if err != nil {
		return Identifier{}, false, err
	}
	if v < 31 {
		return Identifier{}, false, errNonCanonicalTag
	}
	if v > 1<<40 {
		return Identifier{}, false, errTagTooLarge
	}

	return Identifier{Class: class, Tag: int(v)}, constructed, nil
}

/*
parseOneNode implements one call of the per-node algorithm in
spec.md §4.2, appending the parsed node (and, for constructed values,
all of its descendants) to *nodes in pre-order.
*/
func parseOneNode(cur *byteCursor, rule EncodingRule, depth int, nodes *[]Node) error {
	if depth > MaxDepth {
		return errDepthExceeded
	}

	start := cur.pos
	id, constructed, err := parseIdentifier(cur)
	if err != nil {
		return err
	}

	length, err := readLength(cur, rule)
	if err != nil {
		return err
	}

	if !length.IsIndefinite {
		if length.Value > uint64(cur.remaining()) {
			return errTruncatedContent
		}
		content, err := cur.take(int(length.Value))
		if err != nil {
			return err
		}

		if !constructed {
			*nodes = append(*nodes, Node{
				Identifier: id,
				Depth:      depth,
				Full:       cur.sliceFrom(start),
				Content:    content,
			})
			return checkNodeCount(len(*nodes))
		}

		idx := len(*nodes)
		*nodes = append(*nodes, Node{Identifier: id, Depth: depth, Constructed: true})
		if err := checkNodeCount(len(*nodes)); err != nil {
			return err
		}
		(*nodes)[idx].Full = cur.sliceFrom(start)

		childCur := newByteCursor(content)
		for childCur.remaining() > 0 {
			if err := parseOneNode(childCur, rule, depth+1, nodes); err != nil {
				return err
			}
		}
		return nil
	}

	// Indefinite length: BER-only, constructed-only (spec.md §4.2 step 4).
	if !rule.allowsIndefinite() {
		return errIndefiniteUnderDER
	}
	if !constructed {
		return errIndefiniteOnPrimitive
	}

	idx := len(*nodes)
	*nodes = append(*nodes, Node{Identifier: id, Depth: depth, Constructed: true})
	if err := checkNodeCount(len(*nodes)); err != nil {
		return err
	}

	for {
		if cur.remaining() == 0 {
			return errTruncatedEOC
		}
		if err := parseOneNode(cur, rule, depth+1, nodes); err != nil {
			return err
		}
		last := (*nodes)[len(*nodes)-1]
		if last.Depth == depth+1 && !last.Constructed &&
			last.Identifier.Eq(Universal(0)) && len(last.Content) == 0 {
			*nodes = (*nodes)[:len(*nodes)-1]
			break
		}
	}

	(*nodes)[idx].Full = cur.sliceFrom(start)
	return nil
}
