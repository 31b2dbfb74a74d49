// Package diff renders line-oriented differences between two compiled
// stylesheets.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// GenerateUnifiedDiff returns a unified-style diff of before and after, or
// the empty string when they are identical. Lines are compared whole, so a
// changed declaration shows up as one removed and one added line.
func GenerateUnifiedDiff(before, after, beforeLabel, afterLabel string) string {
	out, _ := unified(before, after, beforeLabel, afterLabel)
	return out
}

// Compare returns the diff text together with line counts.
func Compare(before, after, beforeLabel, afterLabel string) (string, Stats) {
	return unified(before, after, beforeLabel, afterLabel)
}

func unified(before, after, beforeLabel, afterLabel string) (string, Stats) {
	var stats Stats
	if before == after {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", beforeLabel)
	fmt.Fprintf(&sb, "+++ %s\n", afterLabel)
	fmt.Fprintf(&sb, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
			if written >= maxDiffLines {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			written++
		}
	}

	if written >= maxDiffLines {
		sb.WriteString(truncateMessage)
		sb.WriteString("\n")
	}
	return sb.String(), stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
