// Package postproc cleans raw model output into standalone artifacts: it
// extracts the SVG diagram block and strips code fences from CSV payloads.
package postproc

import (
	"regexp"
	"strings"
)

// svgBlock matches the first complete svg element, tags included.
// (?s) lets . cross newlines; the lazy body stops at the first closing tag.
var svgBlock = regexp.MustCompile(`(?s)<svg[^>]*>.*?</svg>`)

// ExtractSVG returns the first <svg>...</svg> block in s. The second return
// is false when no block exists.
func ExtractSVG(s string) (string, bool) {
	block := svgBlock.FindString(s)
	if block == "" {
		return "", false
	}
	return block, true
}

// StripFences removes a surrounding triple-backtick code fence, including an
// optional language tag on the opening fence. Input without a fence comes
// back trimmed but otherwise unchanged.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := trimmed[3:]
	// Drop the language tag line ("csv", "svg", ...) if one follows the fence.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
