package finding

import (
	"regexp"
	"strconv"
	"strings"
)

// findingPattern matches one scanner output line:
//
//	<path>:<line>: unused <kind> '<name>' (<confidence>% confidence[, <size> line(s)])
//
// The size clause is optional and accepts both singular and plural forms.
var findingPattern = regexp.MustCompile(
	`^(.*?):(\d+): unused (.+?) '(.+?)' \((\d+)% confidence(?:, (\d+) lines?)?\)$`,
)

// Parse converts one trimmed scanner output line into a Finding. Lines that do
// not match the grammar become Unstructured findings carrying the raw text
// verbatim; this is a recovery path, not an error, and Parse never fails.
func Parse(line string) Finding {
	trimmed := strings.TrimSpace(line)

	match := findingPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return Unstructured{RawLine: trimmed}
	}

	// The pattern guarantees the numeric groups parse.
	lineNumber, _ := strconv.Atoi(match[2])
	confidence, _ := strconv.Atoi(match[5])

	var size *int
	if match[6] != "" {
		parsed, _ := strconv.Atoi(match[6])
		size = &parsed
	}

	return Structured{
		RawLine:    trimmed,
		Path:       match[1],
		Line:       lineNumber,
		Kind:       match[3],
		Name:       match[4],
		Confidence: confidence,
		Size:       size,
	}
}

// ParseLines parses every non-blank line of one scan's output.
func ParseLines(lines []string) []Finding {
	findings := make([]Finding, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		findings = append(findings, Parse(line))
	}
	return findings
}
