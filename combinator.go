package pretty

import "strings"

// Derived combinators. Everything here is sugar over the six primitives;
// none of it touches the resolution engine directly.

// Space joins x and y with a single space.
func Space(x, y Doc) Doc {
	return Concat(x, Concat(Text(" "), y))
}

// JoinLine joins x and y with a break point: a space when flattened, a
// newline otherwise.
func JoinLine(x, y Doc) Doc {
	return Concat(x, Concat(Line(), y))
}

// FoldDoc right-folds the binary joiner over docs. An empty slice yields
// [Nil]; a single document is returned unchanged.
func FoldDoc(join func(x, y Doc) Doc, docs []Doc) Doc {
	switch len(docs) {
	case 0:
		return Nil()
	case 1:
		return docs[0]
	}
	return join(docs[0], FoldDoc(join, docs[1:]))
}

// Spread joins docs horizontally with single spaces.
func Spread(docs ...Doc) Doc {
	return FoldDoc(Space, docs)
}

// Stack joins docs vertically with break points.
func Stack(docs ...Doc) Doc {
	return FoldDoc(JoinLine, docs)
}

// Bracket wraps body between the left and right delimiters as a group:
// on one line when it fits, otherwise broken after left with the body
// indented two columns and a closing break before right.
func Bracket(left string, body Doc, right string) Doc {
	return Group(Concat(
		Text(left),
		Concat(
			Nest(2, Concat(Line(), body)),
			Concat(Line(), Text(right)),
		),
	))
}

// spaceOrBreak joins x and y with a choice: a single space when y still
// fits on the current line, a newline otherwise. Unlike wrapping the pair
// in [Group], each adjacent pair reconsiders the choice independently.
func spaceOrBreak(x, y Doc) Doc {
	return Concat(x, Concat(unionNode{flat: textNode{s: " "}, broken: lineNode{}}, y))
}

// FillWords splits s on single spaces and word-wraps the tokens: each
// space becomes a newline exactly when the following word would overflow
// the line.
func FillWords(s string) Doc {
	words := strings.Split(s, " ")
	docs := make([]Doc, len(words))
	for i, w := range words {
		docs[i] = Text(w)
	}
	return FoldDoc(spaceOrBreak, docs)
}

// Fill word-wraps arbitrary documents. At each adjacent pair it offers the
// choice between flattening the head and filling the flattened tail on the
// same line, or keeping the head as-is and breaking before filling the
// plain tail. Both continuations flatten to the same text, so the choice
// is a well-formed union.
func Fill(docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return Nil()
	case 1:
		return docs[0]
	}
	head, second, rest := docs[0], docs[1], docs[2:]
	flatTail := append([]Doc{flatten(second)}, rest...)
	plainTail := append([]Doc{second}, rest...)
	return unionNode{
		flat:   Space(flatten(head), Fill(flatTail...)),
		broken: JoinLine(head, Fill(plainTail...)),
	}
}
