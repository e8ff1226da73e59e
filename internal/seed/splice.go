package seed

import (
	"fmt"
	"strings"

	"courseboard/internal/schema"
)

// BlockNotFoundError reports a marker line that is missing or ambiguous.
type BlockNotFoundError struct {
	Table string
	Count int // marker lines found: 0 or >1
}

func (e *BlockNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("BLOCK_NOT_FOUND: no marker line for table %q in seed script", e.Table)
	}
	return fmt.Sprintf("BLOCK_NOT_FOUND: %d marker lines for table %q in seed script, expected exactly one", e.Count, e.Table)
}

// marker is one marker line found in the document, with the byte offset of
// its line start.
type marker struct {
	name  string
	start int
}

// findMarkers scans the document for marker lines of any table.
func findMarkers(text string) []marker {
	var markers []marker
	offset := 0
	for offset <= len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		var line string
		next := len(text) + 1
		if end >= 0 {
			line = text[offset : offset+end]
			next = offset + end + 1
		} else {
			line = text[offset:]
		}
		if name := markerName(strings.TrimRight(line, "\r")); name != "" {
			markers = append(markers, marker{name: name, start: offset})
		}
		if end < 0 {
			break
		}
		offset = next
	}
	return markers
}

// SpliceBlock returns a copy of the seed document with exactly one table's
// block replaced by a freshly rendered one. The block extends from the
// table's marker line to the line before the next marker of any table, or
// to end of document. Every byte outside that range is preserved.
//
// Returns *BlockNotFoundError when the table's marker appears zero times
// or more than once.
func SpliceBlock(text, table string, rows []schema.CanonicalRow) (string, error) {
	markers := findMarkers(text)

	var hits []marker
	for _, m := range markers {
		if m.name == table {
			hits = append(hits, m)
		}
	}
	if len(hits) != 1 {
		return "", &BlockNotFoundError{Table: table, Count: len(hits)}
	}

	blockStart := hits[0].start
	blockEnd := len(text)
	for _, m := range markers {
		if m.start > blockStart {
			blockEnd = m.start
			break
		}
	}

	return text[:blockStart] + RenderBlock(table, rows) + text[blockEnd:], nil
}
