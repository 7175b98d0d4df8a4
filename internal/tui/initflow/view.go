package initflow

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-monogen/internal/tui"
)

// RenderSuccess renders a summary after the configuration was written.
func RenderSuccess(path string) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Configuration Created"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Wrote %s\n", path))
	b.WriteString(tui.SubtleStyle.Render(`Run "monogen synth" to generate the monorepo files.`))
	b.WriteString("\n")

	return b.String()
}
