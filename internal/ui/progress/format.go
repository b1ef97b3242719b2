package progress

import (
	"fmt"

	"github.com/bnema/addonscan/internal/ui/styles"
)

// PrintSlot prints a folder line with the appropriate icon and styling
func PrintSlot(state State, message string) {
	icon := StyledIcon(state)
	textStyle := SlotStyle(state)
	fmt.Printf("  %s %s\n", icon, textStyle.Render(message))
}

// PrintError prints a failed folder line
func PrintError(message string) {
	PrintSlot(StateError, message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	icons := GetIcons()
	icon := IconStyleWarning.Render(icons.Warning)
	fmt.Printf("  %s %s\n", icon, styles.WarningText.Render(message))
}

// PrintSummary prints a summary line with count
func PrintSummary(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("\n  %s\n", styles.MutedText.Render(message))
}

// FormatCount formats a progress count like "3/12"
func FormatCount(current, total int) string {
	return fmt.Sprintf("%d/%d", current, total)
}
