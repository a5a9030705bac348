package core

import (
	"fmt"
	"strings"
	"time"
)

const reportTimeLayout = "2006-01-02 15:04:05"

// ReportFormatter renders a Result as the fixed-layout text report. Now is
// injectable so tests can freeze the timestamp line.
type ReportFormatter struct {
	Now func() time.Time
}

func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{Now: time.Now}
}

func (f *ReportFormatter) Format(result *Result) string {
	banner := strings.Repeat("=", 80)

	var b strings.Builder
	b.WriteString("\n" + banner + "\n")
	b.WriteString("                    TEXT RECONSTRUCTION REPORT\n")
	b.WriteString(banner + "\n\n")

	fmt.Fprintf(&b, "1. ORIGINAL FRAGMENT:\n   \"%s\"\n\n", result.OriginalText)
	fmt.Fprintf(&b, "2. AI-RECONSTRUCTED TEXT:\n   %s\n\n", result.ReconstructedText)
	b.WriteString("3. CONTEXTUAL SOURCES:\n")

	if len(result.Sources) > 0 {
		for i, source := range result.Sources {
			fmt.Fprintf(&b, "\n   %d. %s\n", i+1, source.Title)
			fmt.Fprintf(&b, "      Link: %s\n", source.Link)
			fmt.Fprintf(&b, "      Summary: %s\n", source.Snippet)
		}
	} else {
		b.WriteString("   No contextual sources found.\n")
	}

	b.WriteString("\n" + banner + "\n")
	fmt.Fprintf(&b, "Report generated on: %s\n", f.Now().Format(reportTimeLayout))
	b.WriteString(banner + "\n")

	return b.String()
}
