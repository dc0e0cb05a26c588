package pretty

import "unicode/utf8"

// Doc is an abstract, unrendered document: text with optional line breaks,
// indentation, and alternative layouts. Build one with the constructors and
// combinators, then render it with [Pretty], [Marshal], or [Write].
//
// Doc values are immutable; subtrees may be shared freely and a Doc is safe
// for concurrent use.
type Doc interface {
	node()
}

// The algebra is closed: six node kinds, nothing else. Union is deliberately
// unexported; every choice point must come from [Group], which is what
// guarantees both branches flatten to the same text.

type nilNode struct{}

type textNode struct {
	s string
}

type lineNode struct{}

type concatNode struct {
	left, right Doc
}

type nestNode struct {
	indent int
	doc    Doc
}

type unionNode struct {
	flat, broken Doc
}

func (nilNode) node()    {}
func (textNode) node()   {}
func (lineNode) node()   {}
func (concatNode) node() {}
func (nestNode) node()   {}
func (unionNode) node()  {}

// Nil returns the empty document, the identity for [Concat].
func Nil() Doc { return nilNode{} }

// Text returns a document holding a literal run of characters. The string
// must not contain line breaks; use [Line] for those. Text is never split
// during rendering, so a token wider than the target width overflows its
// line rather than being cut.
func Text(s string) Doc { return textNode{s: s} }

// Line returns a break point: a single space when the enclosing [Group] is
// rendered flat, otherwise a newline followed by indentation at the current
// nesting level.
func Line() Doc { return lineNode{} }

// Concat returns the concatenation of x followed by y. Concat is
// associative, with [Nil] as its identity.
func Concat(x, y Doc) Doc { return concatNode{left: x, right: y} }

// Nest renders x with its line breaks indented a further indent columns
// relative to the enclosing context. Nesting amounts add up across nested
// calls. Nest affects only breaks inside x, not the first fragment.
func Nest(indent int, x Doc) Doc { return nestNode{indent: indent, doc: x} }

// Group marks x as a unit to render on one line if it fits in the remaining
// width, and with x's own line breaks otherwise. Groups nest: an outer group
// that does not fit still allows inner groups to render flat.
func Group(x Doc) Doc { return unionNode{flat: flatten(x), broken: x} }

// flatten collapses every potential line break in d into a single space,
// yielding the one-line rendering. Choice points take their flat branch;
// both branches of a well-formed union flatten identically, so the pick is
// immaterial.
func flatten(d Doc) Doc {
	switch d := d.(type) {
	case concatNode:
		return concatNode{left: flatten(d.left), right: flatten(d.right)}
	case nestNode:
		// Irrelevant once no break remains, but kept for symmetry.
		return nestNode{indent: d.indent, doc: flatten(d.doc)}
	case lineNode:
		return textNode{s: " "}
	case unionNode:
		return flatten(d.flat)
	default:
		return d
	}
}

// width returns the column count of a literal text run. The unit is
// characters, not bytes.
func width(s string) int { return utf8.RuneCountInString(s) }
