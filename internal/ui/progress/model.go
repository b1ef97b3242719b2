package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/addonscan/internal/ui/styles"
)

// Model is the bubbletea model for a batch folder scan display
type Model struct {
	batch       *Batch
	spinner     spinner.Model
	progressBar progress.Model
	width       int
}

// NewModel creates a new scan progress model with one slot per folder
func NewModel(title string, folderNames ...string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return Model{
		batch:       NewBatch(title, folderNames...),
		spinner:     s,
		progressBar: p,
		width:       80,
	}
}

// Messages for updating scan state
type (
	// FolderStartMsg signals a folder scan has been picked up by a worker
	FolderStartMsg struct{ Index int }

	// FolderDoneMsg signals a folder scan finished, possibly with an error
	FolderDoneMsg struct {
		Index int
		Err   error
	}

	// AllDoneMsg signals the whole batch is complete
	AllDoneMsg struct{}
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.WindowSize())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = minInt(msg.Width-10, 40)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd

	case FolderStartMsg:
		m.batch.Start(msg.Index)
		return m, nil

	case FolderDoneMsg:
		m.batch.Finish(msg.Index, msg.Err)
		cmd := m.progressBar.SetPercent(m.batch.Percent())
		if m.batch.IsComplete() {
			return m, tea.Sequence(cmd, tea.Quit)
		}
		return m, cmd

	case AllDoneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View renders the scan progress display
func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Text).
		Bold(true).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(m.batch.Title))
	b.WriteString("\n\n")

	indent := "  "
	for _, slot := range m.batch.Slots {
		icon := StyledIcon(slot.State)
		textStyle := SlotStyle(slot.State)

		// Active scans show the spinner instead of the static icon
		if slot.State == StateScanning {
			icon = m.spinner.View()
		}

		b.WriteString(fmt.Sprintf("%s%s %s", indent, icon, textStyle.Render(slot.Name)))

		if slot.State == StateError && slot.Err != nil {
			detailStyle := lipgloss.NewStyle().Foreground(styles.Muted)
			b.WriteString(detailStyle.Render(" - " + slot.Err.Error()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(indent + m.progressBar.View() + " " +
		styles.MutedText.Render(FormatCount(m.batch.Completed, len(m.batch.Slots))))
	b.WriteString("\n")

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
