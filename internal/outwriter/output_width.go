package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/scorecast/scorecast/internal/contract"
)

// GetMaxNotesWidth calculates the maximum width for free-text columns in
// table output based on terminal width and table configuration.
func GetMaxNotesWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (id, name, expression) plus table
	// borders, separators and padding.
	const baseWidth = 60

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 60 {
		return 60
	}
	return available
}
