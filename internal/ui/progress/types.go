package progress

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/addonscan/internal/ui/styles"
)

// State represents the current state of one folder slot
type State int

const (
	StatePending State = iota
	StateScanning
	StateDone
	StateError
)

// Slot tracks one folder in a batch scan
type Slot struct {
	Name  string // Folder display name
	State State
	Err   error // Error if State == StateError
}

// Batch holds the progress of one batch scan
type Batch struct {
	Title     string
	Slots     []Slot
	Completed int
}

// NewBatch creates a Batch with one pending slot per folder name
func NewBatch(title string, names ...string) *Batch {
	slots := make([]Slot, len(names))
	for i, name := range names {
		slots[i] = Slot{Name: name, State: StatePending}
	}
	return &Batch{Title: title, Slots: slots}
}

// Start marks a slot as being scanned
func (b *Batch) Start(i int) {
	if i >= 0 && i < len(b.Slots) {
		b.Slots[i].State = StateScanning
	}
}

// Finish marks a slot as done or failed and advances the completed count
func (b *Batch) Finish(i int, err error) {
	if i < 0 || i >= len(b.Slots) {
		return
	}
	if err != nil {
		b.Slots[i].State = StateError
		b.Slots[i].Err = err
	} else {
		b.Slots[i].State = StateDone
	}
	b.Completed++
}

// IsComplete returns true once every slot has finished
func (b *Batch) IsComplete() bool {
	return b.Completed >= len(b.Slots)
}

// Failed returns the number of slots that ended in error
func (b *Batch) Failed() int {
	n := 0
	for _, s := range b.Slots {
		if s.State == StateError {
			n++
		}
	}
	return n
}

// Percent returns batch completion in the 0-1 range
func (b *Batch) Percent() float64 {
	if len(b.Slots) == 0 {
		return 1
	}
	return float64(b.Completed) / float64(len(b.Slots))
}

// Icons - Nerd Font with ASCII fallback
type Icons struct {
	Check   string
	Cross   string
	Pending string
	Warning string
	Spinner string
}

var (
	// NerdFontIcons uses Nerd Font glyphs
	NerdFontIcons = Icons{
		Check:   "",
		Cross:   "",
		Pending: "",
		Warning: "",
		Spinner: "",
	}

	// ASCIIIcons uses simple ASCII characters
	ASCIIIcons = Icons{
		Check:   "+",
		Cross:   "x",
		Pending: "o",
		Warning: "!",
		Spinner: "*",
	}
)

// GetIcons returns the appropriate icon set based on environment
func GetIcons() Icons {
	if os.Getenv("ADDONSCAN_NERD_FONTS") == "1" {
		return NerdFontIcons
	}
	return ASCIIIcons
}

// Icon styles
var (
	IconStyleCheck   = lipgloss.NewStyle().Foreground(styles.Success)
	IconStyleCross   = lipgloss.NewStyle().Foreground(styles.Error)
	IconStylePending = lipgloss.NewStyle().Foreground(styles.Muted)
	IconStyleWarning = lipgloss.NewStyle().Foreground(styles.Warning)
	IconStyleSpinner = lipgloss.NewStyle().Foreground(styles.Primary)
)

// StyledIcon returns a styled icon string for the given state
func StyledIcon(state State) string {
	icons := GetIcons()
	switch state {
	case StateDone:
		return IconStyleCheck.Render(icons.Check)
	case StateError:
		return IconStyleCross.Render(icons.Cross)
	case StateScanning:
		return IconStyleSpinner.Render(icons.Spinner)
	default:
		return IconStylePending.Render(icons.Pending)
	}
}

// SlotStyle returns the appropriate text style for a slot based on state
func SlotStyle(state State) lipgloss.Style {
	switch state {
	case StateDone:
		return styles.SuccessText
	case StateError:
		return styles.ErrorText
	case StateScanning:
		return styles.NormalText.Bold(true)
	default:
		return styles.MutedText
	}
}
