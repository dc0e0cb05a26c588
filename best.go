package pretty

// The resolution engine turns a Doc, which may still contain choice points,
// into a segment list with every choice made. It threads an ordered worklist
// of (indent, Doc) pairs, the not-yet-resolved siblings in left-to-right
// order, and decides each choice greedily: the flat branch wins exactly when
// it fits in the width remaining on the current line, looking ahead no
// further than the next line break.

// frame is one entry of the worklist: a pending document tagged with the
// indentation in effect when it was introduced. Frames form an immutable
// singly linked list so both branches of a choice can share the same tail.
type frame struct {
	indent int
	doc    Doc
	next   *frame
}

// segment is one fragment of a fully resolved layout: either a literal text
// run or a line break carrying its indentation. Segments form a
// nil-terminated list; nil is the empty layout.
type segment struct {
	text    string
	isBreak bool
	indent  int
	next    *segment
}

// best resolves d against the given width starting at column zero.
func best(w int, d Doc) *segment {
	return be(w, 0, &frame{doc: d})
}

// be resolves the worklist at column col. The sequential node kinds run in
// a loop, pushing subtrees back onto the worklist; only a choice point
// recurses, because it needs a fully resolved alternative to measure.
// Stack depth is therefore bounded by [Group] nesting depth, not by
// document size or concat-chain shape.
func be(w, col int, work *frame) *segment {
	var head, tail *segment
	emit := func(s *segment) {
		if tail == nil {
			head = s
		} else {
			tail.next = s
		}
		tail = s
	}
	for work != nil {
		indent := work.indent
		doc := work.doc
		work = work.next
		switch d := doc.(type) {
		case nilNode:
			// Identity: nothing to emit.
		case concatNode:
			work = &frame{indent, d.left, &frame{indent, d.right, work}}
		case nestNode:
			work = &frame{indent + d.indent, d.doc, work}
		case textNode:
			emit(&segment{text: d.s})
			col += width(d.s)
		case lineNode:
			emit(&segment{isBreak: true, indent: indent})
			col = indent
		case unionNode:
			// Both alternatives resolve against the same remainder; the
			// broken one is only built when the flat one does not fit.
			flat := be(w, col, &frame{indent, d.flat, work})
			rest := better(w, col, flat, func() *segment {
				return be(w, col, &frame{indent, d.broken, work})
			})
			if tail == nil {
				return rest
			}
			tail.next = rest
			return head
		}
	}
	return head
}

// better picks the flat alternative when it fits in the width remaining at
// column col, and falls back to the broken one otherwise.
func better(w, col int, flat *segment, broken func() *segment) *segment {
	if fits(w-col, flat) {
		return flat
	}
	return broken()
}

// fits reports whether a resolved layout can occupy the remaining columns
// of the current line. It stops at the first line break: content after a
// newline draws on a fresh budget and never affects the decision for
// content before it. A negative remainder means "does not fit", never a
// fault.
func fits(remaining int, s *segment) bool {
	for {
		if remaining < 0 {
			return false
		}
		if s == nil || s.isBreak {
			return true
		}
		remaining -= width(s.text)
		s = s.next
	}
}
