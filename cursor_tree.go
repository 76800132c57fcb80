package asn1flat

/*
cursor_tree.go implements tree navigation over the flat node vector
(spec.md §4.3): a cursor that yields the logical children of a
constructed node as nested sub-cursors, with look-ahead for OPTIONAL
decoding. The teacher has no equivalent (its Packet type walks a raw
offset instead of a pre-parsed tree); this is grounded directly in
spec.md's own design notes (§9, "one owned Vec<Node>... a cursor
holding that handle plus an index range") and in the corresponding
rust-asn1 traversal in original_source/src/asn1.rs.
*/

/*
LogicalNode is the public view of one parsed value: an [Identifier]
plus either primitive content bytes or a constructed child cursor,
and the full encoded byte range it occupies (spec.md §3).
*/
type LogicalNode struct {
	Identifier  Identifier
	Constructed bool
	Full        []byte

	content  []byte
	children NodeCursor
}

/*
Primitive returns the node's content bytes and true if the node is
primitive. A constructed node's data is never exposed as raw bytes
here; ok is false and the children must be obtained via [LogicalNode.Children].
*/
func (n LogicalNode) Primitive() ([]byte, bool) {
	if n.Constructed {
		return nil, false
	}
	return n.content, true
}

/*
Children returns a fresh cursor over the receiver's logical children.
Valid to call only when n.Constructed is true; otherwise it returns an
already-exhausted cursor.
*/
func (n LogicalNode) Children() NodeCursor { return n.children }

/*
NodeCursor walks the logical children of one constructed node (or, at
the top level, the root value(s) of a decode). It holds a shared
reference to the flat node vector plus an index range — cloning is an
O(1) value copy, never a deep copy, since the underlying vector is
immutable once parsed (spec.md §3 Lifecycle).
*/
type NodeCursor struct {
	nodes    []Node
	pos, end int
}

/*
rootCursor returns a cursor over the top-level value(s) produced by
[parseNodes].
*/
func rootCursor(nodes []Node) NodeCursor {
	return NodeCursor{nodes: nodes, pos: 0, end: len(nodes)}
}

// subtreeEnd returns the first index after i whose depth is <= nodes[i]'s.
func subtreeEnd(nodes []Node, i int) int {
	d := nodes[i].Depth
	j := i + 1
	for j < len(nodes) && nodes[j].Depth > d {
		j++
	}
	return j
}

func buildLogical(nodes []Node, i int) LogicalNode {
	n := nodes[i]
	ln := LogicalNode{Identifier: n.Identifier, Constructed: n.Constructed, Full: n.Full}
	if n.Constructed {
		ln.children = NodeCursor{nodes: nodes, pos: i + 1, end: subtreeEnd(nodes, i)}
	} else {
		ln.content = n.Content
	}
	return ln
}

/*
Peek returns the next logical node without advancing the cursor. It is
required by OPTIONAL decoding (spec.md §4.4), which must decide
whether to consume a node purely from its identifier, before any of
its bytes are touched.
*/
func (c *NodeCursor) Peek() (LogicalNode, bool) {
	if c.pos >= c.end {
		return LogicalNode{}, false
	}
	return buildLogical(c.nodes, c.pos), true
}

/*
Next returns the next logical node and advances the cursor past it
(and, if constructed, past its entire subtree).
*/
func (c *NodeCursor) Next() (LogicalNode, bool) {
	ln, ok := c.Peek()
	if !ok {
		return LogicalNode{}, false
	}
	c.pos = subtreeEnd(c.nodes, c.pos)
	return ln, true
}

/*
Empty reports whether every logical node at this level has been
consumed. A SEQUENCE decoder that finishes its builder closure with a
non-empty cursor has left trailing garbage, which spec.md §4.3 treats
as a rule violation rather than permitted forward-compatibility slack.
*/
func (c NodeCursor) Empty() bool { return c.pos >= c.end }

/*
Clone returns an independent copy of the cursor's current position.
Because the underlying node vector is immutable, clones never
interfere with one another or with the receiver.
*/
func (c NodeCursor) Clone() NodeCursor { return c }
