package pretty

import (
	"io"
	"strings"
)

// Pretty renders d, fitting as much as possible on each line of at most
// width characters. A line may still exceed width when it contains a single
// [Text] token wider than width; tokens are never split.
func Pretty(width int, d Doc) string {
	var sb strings.Builder
	for s := best(width, d); s != nil; s = s.next {
		if s.isBreak {
			sb.WriteByte('\n')
			writeIndent(&sb, s.indent)
		} else {
			sb.WriteString(s.text)
		}
	}
	return sb.String()
}

// Marshal renders d and returns the bytes.
func Marshal(width int, d Doc) []byte {
	return []byte(Pretty(width, d))
}

// Write renders d to w, streaming resolved fragments as they are walked.
// It returns the first write error; rendering itself cannot fail.
func Write(w io.Writer, width int, d Doc) error {
	for s := best(width, d); s != nil; s = s.next {
		if s.isBreak {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			if s.indent > 0 {
				if _, err := io.WriteString(w, strings.Repeat(" ", s.indent)); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := io.WriteString(w, s.text); err != nil {
			return err
		}
	}
	return nil
}

func writeIndent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}
