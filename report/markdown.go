package report

import (
	"fmt"
	"strings"
)

// WriteMarkdown renders r as a Markdown document.
func WriteMarkdown(r Result) string {
	var sb strings.Builder

	sb.WriteString("# Subtraction\n\n")
	sb.WriteString("| a | b | a - b |\n")
	sb.WriteString("|---|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s | %s |\n\n", r.A, r.B, r.Difference)

	kind := "unsigned"
	if r.Signed {
		kind = "signed"
	}
	fmt.Fprintf(&sb, "Operands are %d-bit %s integers.\n", r.Width, kind)
	if r.Wrapped {
		sb.WriteString("\n**Overflow:** the difference wrapped around.\n")
	}

	return sb.String()
}
