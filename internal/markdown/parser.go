package markdown

import (
	"iter"
	"regexp"
	"strings"
)

// separatorRow matches table separator rows like "|---|---|" or "| :-- | --: |".
var separatorRow = regexp.MustCompile(`^\|[\s\-:|]+\|$`)

// orderedMarkerWindow bounds how far into a line the ". " of an ordered list
// marker may appear ("1. " through "99. " style numbering).
const orderedMarkerWindow = 5

// Blocks returns a lazy, restartable sequence of blocks parsed from content.
// Each iteration re-scans the source; no state is shared between iterations.
func Blocks(content string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		lines := strings.Split(content, "\n")
		i := 0
		for i < len(lines) {
			trimmed := strings.TrimSpace(lines[i])

			switch {
			case trimmed == "":
				i++

			case isRule(trimmed):
				i++

			case headingLevel(trimmed) > 0:
				level := headingLevel(trimmed)
				text := strings.TrimSpace(trimmed[level+1:])
				if !yield(Heading{Level: level, Text: text}) {
					return
				}
				i++

			case isBoldLine(trimmed):
				// A line wrapped entirely in ** markers is treated as a phase
				// title even though it could be an emphasized paragraph.
				text := strings.TrimSpace(trimmed[2 : len(trimmed)-2])
				if !yield(Heading{Level: 3, Text: text}) {
					return
				}
				i++

			case strings.Contains(trimmed, "|") && !isUnorderedItem(trimmed):
				run := tableRun(lines, &i)
				if rows := parseTableRun(run); rows != nil {
					if !yield(Table{Rows: rows}) {
						return
					}
				} else {
					// Not really tabular: re-emit the run as paragraphs.
					for _, l := range run {
						if !yield(Paragraph{Spans: InlineSpans(strings.TrimSpace(l))}) {
							return
						}
					}
				}

			case isUnorderedItem(trimmed):
				if !yield(ListItem{Text: trimmed[2:]}) {
					return
				}
				i++

			case isOrderedItem(trimmed):
				if !yield(ListItem{Ordered: true, Text: trimmed}) {
					return
				}
				i++

			default:
				if !yield(Paragraph{Spans: InlineSpans(trimmed)}) {
					return
				}
				i++
			}
		}
	}
}

// Parse collects all blocks from content into a slice.
func Parse(content string) []Block {
	var blocks []Block
	for b := range Blocks(content) {
		blocks = append(blocks, b)
	}
	return blocks
}

// InlineSpans splits a line on ** markers into alternating regular and bold
// spans, starting regular. Empty segments are dropped, so "**X**" yields a
// single bold span with no empty neighbors.
func InlineSpans(line string) []Span {
	parts := strings.Split(line, "**")
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}

// tableRun consumes the contiguous run of pipe-containing lines starting at
// *i and advances *i past it.
func tableRun(lines []string, i *int) []string {
	var run []string
	for *i < len(lines) && strings.Contains(lines[*i], "|") {
		run = append(run, lines[*i])
		*i++
	}
	return run
}

// parseTableRun parses a run of pipe-delimited lines into rows, discarding
// separator rows. Returns nil unless at least two data rows remain.
func parseTableRun(run []string) [][]string {
	var rows [][]string
	for _, line := range run {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if separatorRow.MatchString(stripped) {
			continue
		}
		cells := strings.Split(stripped, "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		// A leading or trailing | produces one empty edge cell; drop exactly
		// one on each end so interior empty cells survive.
		if len(cells) > 0 && cells[0] == "" {
			cells = cells[1:]
		}
		if len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) < 2 {
		return nil
	}
	return rows
}

// headingLevel returns 1-4 for an ATX heading line, 0 otherwise. Deeper
// levels are checked first so "## x" never matches the level-1 prefix.
func headingLevel(line string) int {
	for level := 4; level >= 1; level-- {
		if strings.HasPrefix(line, strings.Repeat("#", level)+" ") {
			return level
		}
	}
	return 0
}

// isRule reports whether the line is a horizontal rule marker.
func isRule(line string) bool {
	switch line {
	case "---", "***", "___":
		return true
	}
	return false
}

// isBoldLine reports whether the trimmed line is wrapped in a ** pair with
// non-blank content between the markers.
func isBoldLine(line string) bool {
	if len(line) <= 4 {
		return false
	}
	if !strings.HasPrefix(line, "**") || !strings.HasSuffix(line, "**") {
		return false
	}
	return strings.TrimSpace(line[2:len(line)-2]) != ""
}

// isUnorderedItem reports whether the line starts with a "- " or "* " marker.
func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

// isOrderedItem reports whether the line starts with a digit and has a ". "
// marker within the first few characters ("1. task", "12. task").
func isOrderedItem(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}
	window := line
	if len(window) > orderedMarkerWindow {
		window = window[:orderedMarkerWindow]
	}
	return strings.Contains(window, ". ")
}
