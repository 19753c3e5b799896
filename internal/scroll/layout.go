package scroll

// Node is a laid-out element that reports its untransformed offset from its
// offset parent.
type Node interface {
	OffsetTop() float64
	OffsetHeight() float64
	// OffsetParent returns false at the root of the offset chain.
	OffsetParent() (Node, bool)
}

// Measure returns the box of n in document coordinates by summing offsets
// up the parent chain. Offsets ignore CSS transforms, so an element shifted
// by a reveal or hover transform measures at its resting position.
func Measure(n Node) Box {
	b := Box{Height: n.OffsetHeight()}
	for cur, ok := n, true; ok; cur, ok = cur.OffsetParent() {
		b.Top += cur.OffsetTop()
	}
	return b
}
