// Package table parses Markdown pipe tables and re-emits them with
// recomputed column widths and alignment.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotATable reports input whose first two lines do not form a pipe-table
// header and delimiter row.
var ErrNotATable = errors.New("table: input is not a pipe table")

// Table holds the raw cell text of one pipe table. Cells carry no pipes or
// delimiter syntax; surrounding whitespace is already trimmed.
type Table struct {
	Header    []string
	Delimiter []string
	Rows      [][]string
}

// Parse reads one table from lines: a header row, a delimiter row, then any
// number of body rows up to the first blank or pipe-free line. Body rows may
// have a different cell count than the header; raggedness is resolved at
// render time.
func Parse(lines []string) (*Table, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header row and a delimiter row", ErrNotATable)
	}
	header := strings.TrimSpace(lines[0])
	delimiter := strings.TrimSpace(lines[1])
	if !strings.Contains(header, "|") {
		return nil, fmt.Errorf("%w: header row has no pipe", ErrNotATable)
	}
	if !looksLikeDelimiterRow(delimiter) {
		return nil, fmt.Errorf("%w: second row is not a delimiter row", ErrNotATable)
	}

	headerCells := splitRow(header)
	delimiterCells := splitRow(delimiter)
	if len(headerCells) == 0 || len(headerCells) != len(delimiterCells) {
		return nil, fmt.Errorf("%w: header has %d cells, delimiter row has %d",
			ErrNotATable, len(headerCells), len(delimiterCells))
	}

	var rows [][]string
	for _, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		if !strings.Contains(line, "|") {
			break
		}
		rows = append(rows, splitRow(line))
	}

	return &Table{
		Header:    headerCells,
		Delimiter: delimiterCells,
		Rows:      rows,
	}, nil
}

func looksLikeDelimiterRow(line string) bool {
	parts := splitRow(line)
	if len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		if !strings.Contains(part, "-") {
			return false
		}
		if strings.IndexFunc(part, func(r rune) bool { return r != '-' && r != ':' }) != -1 {
			return false
		}
	}
	return true
}

func splitRow(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := splitPipes(line)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitPipes splits a row on pipes that are outside backtick code spans,
// honoring backslash escapes.
func splitPipes(line string) []string {
	var parts []string
	var buf []rune
	inCode := false
	backticks := 0
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) {
				buf = append(buf, runes[i+1])
				i++
				continue
			}
		case '`':
			if !inCode {
				backticks = countRepeat(runes[i:], '`')
				inCode = true
				buf = append(buf, runes[i:i+backticks]...)
				i += backticks - 1
				continue
			}
			if countRepeat(runes[i:], '`') == backticks {
				buf = append(buf, runes[i:i+backticks]...)
				i += backticks - 1
				inCode = false
				backticks = 0
				continue
			}
		case '|':
			if !inCode {
				parts = append(parts, string(buf))
				buf = buf[:0]
				continue
			}
		}
		buf = append(buf, r)
	}
	parts = append(parts, string(buf))
	return parts
}

// escapePipes re-escapes raw pipes outside backtick code spans so an
// emitted cell splits back into the same columns on the next parse.
// splitPipes strips the backslash from an escaped pipe at parse time;
// without this the rendered text would gain a column boundary.
func escapePipes(text string) string {
	if !strings.ContainsRune(text, '|') {
		return text
	}
	var b strings.Builder
	inCode := false
	backticks := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '`':
			run := countRepeat(runes[i:], '`')
			if !inCode {
				inCode = true
				backticks = run
			} else if run == backticks {
				inCode = false
				backticks = 0
			}
			b.WriteString(string(runes[i : i+run]))
			i += run - 1
			continue
		case '|':
			if !inCode {
				b.WriteByte('\\')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func countRepeat(runes []rune, r rune) int {
	count := 0
	for _, ru := range runes {
		if ru != r {
			break
		}
		count++
	}
	return count
}
