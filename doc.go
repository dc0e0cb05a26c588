// Package pretty is a deterministic pretty-printing engine. Callers describe
// a document abstractly — text fragments, optional break points, indentation,
// and grouped alternatives — and the engine picks concrete line breaks so the
// output is as compact as possible without exceeding a target width.
//
// The package is a pure library: no I/O of its own, no configuration, no
// global state. Rendering is a referentially transparent function from
// (width, document) to text, and [Doc] values are immutable and safe to
// share across goroutines.
//
// # Primitives
//
// Six constructors form the whole algebra:
//
//   - [Nil] — the empty document
//   - [Text] — a literal, unsplittable run of characters
//   - [Line] — a break point: space when flat, newline plus indent otherwise
//   - [Concat] — sequence two documents
//   - [Nest] — add indentation to breaks inside a sub-document
//   - [Group] — render a sub-document flat when it fits, broken when not
//
// [Concat] is associative with [Nil] as identity, and [Nest] amounts add up
// across nested calls. [Group] is the only source of layout choices: it pairs
// the flattened form of its argument with the original, and the engine picks
// whichever fits. Both forms always print the same characters, differing only
// in where lines break.
//
// # Derived combinators
//
// Convenience helpers built from the primitives:
//
//   - [Space], [JoinLine] — binary joiners (space / break point)
//   - [FoldDoc] — fold a joiner over a slice
//   - [Spread], [Stack] — horizontal and vertical joining
//   - [Bracket] — delimiter, indented body, delimiter
//   - [FillWords], [Fill] — greedy word-wrap over strings or documents
//
// # Rendering
//
// [Pretty] returns the rendered string, [Marshal] the bytes, and [Write]
// streams to an [io.Writer]:
//
//	doc := pretty.Bracket("[", pretty.Stack(
//		pretty.Text("one,"),
//		pretty.Text("two,"),
//		pretty.Text("three"),
//	), "]")
//	fmt.Println(pretty.Pretty(20, doc))
//
// With width 20 the document fits on one line ("[ one, two, three ]"); at
// width 10 it breaks after "[", indents each element by two columns, and
// closes on its own line.
//
// # Width semantics
//
// Width is measured in characters (runes), not bytes and not terminal cells.
// The engine looks ahead only to the next break point when deciding whether
// a flat alternative fits, and it never revisits a decision — a greedy,
// single-pass policy rather than a globally optimal one. A [Text] token wider
// than the target width overflows its line; tokens are never split.
package pretty
