package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/extract"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive scanning session",
	Long: `Start an interactive TUI for scanning cubes with live camera status
and styled results.

Keyboard shortcuts:
  space   - Scan the cube
  s       - Save the current camera frame to frame.png
  q/Esc   - Quit`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().IntVar(&camUp, "cam-up", 0, "Device ID of the upper camera")
	sessionCmd.Flags().IntVar(&camDown, "cam-down", 1, "Device ID of the lower camera")
	rootCmd.AddCommand(sessionCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type scanDoneMsg struct {
	facecube string
	elapsed  time.Duration
	err      error
}
type frameSavedMsg struct{ path string }
type sessionErrMsg struct{ err error }

// Model
type sessionModel struct {
	rig *scanRig

	scanning  bool
	scans     int
	successes int
	facecube  string
	elapsed   time.Duration

	width    int
	height   int
	err      error
	quitting bool
}

func newSessionModel(rig *scanRig) *sessionModel {
	return &sessionModel{rig: rig}
}

func (m *sessionModel) Init() tea.Cmd {
	return nil
}

func (m *sessionModel) doScan() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		facecube, err := m.rig.scanOnce()
		return scanDoneMsg{facecube: facecube, elapsed: time.Since(start), err: err}
	}
}

func (m *sessionModel) saveFrame() tea.Cmd {
	return func() tea.Msg {
		if err := m.rig.cam.SaveFrame("frame.png"); err != nil {
			return sessionErrMsg{err: err}
		}
		return frameSavedMsg{path: "frame.png"}
	}
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			if !m.scanning {
				m.scanning = true
				m.err = nil
				return m, m.doScan()
			}

		case "s":
			if !m.scanning {
				return m, m.saveFrame()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case scanDoneMsg:
		m.scanning = false
		m.elapsed = msg.elapsed
		if msg.err != nil {
			m.scans++
			m.facecube = ""
			m.err = msg.err
		} else if msg.facecube != "" {
			m.scans++
			m.successes++
			m.facecube = msg.facecube
			m.err = nil
		}

	case frameSavedMsg:
		m.err = nil

	case sessionErrMsg:
		m.err = msg.err
	}

	return m, nil
}

func (m *sessionModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Scanned %d cubes (%d matched).\n", m.scans, m.successes)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Scanner"))
	b.WriteString("\n\n")

	camera := "stopped"
	if m.rig.cam.Running() {
		camera = "streaming"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Cameras: %s  Scans: %d  Matched: %d", camera, m.scans, m.successes)))
	b.WriteString("\n\n")

	switch {
	case m.scanning:
		b.WriteString("Scanning...\n")
	case m.err != nil:
		if errors.Is(m.err, cubescan.ErrScan) {
			b.WriteString(errorStyle.Render("Scan Error. Adjust the cube and try again."))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
	case m.facecube != "":
		b.WriteString(RenderNet(m.facecube))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.facecube))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf("Matched in %s", m.elapsed.Round(time.Millisecond))))
		b.WriteString("\n")
	default:
		b.WriteString("Place a cube under the cameras and press SPACE.\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: SPACE=scan  s=save frame  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runSession(cmd *cobra.Command, args []string) error {
	matcher, err := loadMatcher()
	if err != nil {
		return err
	}
	rects, err := loadRects()
	if err != nil {
		return err
	}
	cam, err := extract.OpenDoubleCam(camUp, camDown)
	if err != nil {
		return err
	}
	defer cam.Close()
	cam.Start()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rig := &scanRig{cam: cam, rects: rects, matcher: matcher, db: db}
	model := newSessionModel(rig)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
