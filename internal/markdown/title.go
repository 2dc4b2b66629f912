package markdown

import "strings"

// ExtractTitle returns the content of the first level-1 heading line in raw,
// or fallback if none exists. The level-2 guard is kept explicit because the
// heading markers share a prefix.
func ExtractTitle(raw, fallback string) string {
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "# ") && !strings.HasPrefix(stripped, "## ") {
			return strings.TrimSpace(stripped[2:])
		}
	}
	return fallback
}

// StripFirstHeading removes exactly the first level-1 heading line from raw
// and returns the remainder unchanged, blank lines included. The title is
// shown on the cover page, so it must not repeat in the body.
func StripFirstHeading(raw string) string {
	lines := strings.Split(raw, "\n")
	result := make([]string, 0, len(lines))
	found := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if !found && strings.HasPrefix(stripped, "# ") && !strings.HasPrefix(stripped, "## ") {
			found = true
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
