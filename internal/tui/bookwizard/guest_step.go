package bookwizard

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

const (
	guestFieldName = iota
	guestFieldEmail
	guestFieldPhone
	guestFieldDocument
	guestFieldNotes
	guestFieldCount
)

// GuestStep collects contact data. Only presence of name, email and phone is
// checked client-side; format rules are the backend's. Submission happens
// from this step, so it also owns the busy spinner and the inline server
// error display.
type GuestStep struct {
	inputs     [guestFieldCount]textinput.Model
	focusIndex int
	err        string
	busy       bool
	spinner    spinner.Model
	summary    string // Stay summary line shown above the form
	tmpFile    string
	width      int
	height     int
}

// NewGuestStep creates the guest form.
func NewGuestStep(summary string) *GuestStep {
	styles := inputStyles()

	placeholders := [guestFieldCount]string{
		"Nome completo",
		"email@exemplo.com",
		"(11) 99999-9999",
		"CPF ou passaporte (opcional)",
		"Observações (opcional)",
	}

	var inputs [guestFieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.SetStyles(styles)
		ti.SetWidth(50)
		inputs[i] = ti
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &GuestStep{
		inputs:  inputs,
		spinner: s,
		summary: summary,
		width:   60,
		height:  10,
	}
}

// Init focuses the name input.
func (g *GuestStep) Init() tea.Cmd {
	g.focusIndex = guestFieldName
	return tea.Batch(g.inputs[guestFieldName].Focus(), textinput.Blink)
}

// Focus gives focus to the first input.
func (g *GuestStep) Focus() tea.Cmd {
	return g.setFocus(guestFieldName)
}

// FocusLast gives focus to the last input.
func (g *GuestStep) FocusLast() tea.Cmd {
	return g.setFocus(guestFieldNotes)
}

// Blur removes focus from all inputs.
func (g *GuestStep) Blur() {
	for i := range g.inputs {
		g.inputs[i].Blur()
	}
}

// SetSize updates the dimensions for the guest step.
func (g *GuestStep) SetSize(width, height int) {
	g.width = width
	g.height = height
	for i := range g.inputs {
		g.inputs[i].SetWidth(width - 10)
	}
}

// SetSummary updates the stay summary line (room, dates, total).
func (g *GuestStep) SetSummary(summary string) {
	g.summary = summary
}

// SetBusy toggles the in-flight submission state. While busy all input is
// ignored so a second submission cannot start.
func (g *GuestStep) SetBusy(busy bool) tea.Cmd {
	g.busy = busy
	if busy {
		g.err = ""
		return g.spinner.Tick
	}
	return nil
}

// SetError installs a submission failure message.
func (g *GuestStep) SetError(msg string) {
	g.busy = false
	g.err = msg
}

// Busy reports whether a submission is in flight.
func (g *GuestStep) Busy() bool {
	return g.busy
}

// Update handles messages for the guest step.
func (g *GuestStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if g.busy {
			var cmd tea.Cmd
			g.spinner, cmd = g.spinner.Update(msg)
			return cmd
		}
		return nil

	case NotesEditedMsg:
		g.inputs[guestFieldNotes].SetValue(strings.TrimSpace(msg.Content))
		if g.tmpFile != "" {
			_ = os.Remove(g.tmpFile)
			g.tmpFile = ""
		}
		return nil

	case tea.KeyPressMsg:
		if g.busy {
			return nil
		}

		switch msg.String() {
		case "tab":
			if g.focusIndex == guestFieldNotes {
				return func() tea.Msg {
					return wizard.TabExitForwardMsg{}
				}
			}
			return g.setFocus(g.focusIndex + 1)

		case "shift+tab":
			if g.focusIndex == guestFieldName {
				return func() tea.Msg {
					return wizard.TabExitBackwardMsg{}
				}
			}
			return g.setFocus(g.focusIndex - 1)

		case "enter":
			return g.Submit()

		case "ctrl+e":
			if os.Getenv("EDITOR") != "" {
				return g.openEditor()
			}
			return nil

		default:
			if g.err != "" {
				g.err = ""
			}
		}
	}

	if g.busy {
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	g.inputs[g.focusIndex], cmd = g.inputs[g.focusIndex].Update(msg)
	return cmd
}

func (g *GuestStep) setFocus(i int) tea.Cmd {
	for j := range g.inputs {
		g.inputs[j].Blur()
	}
	g.focusIndex = i
	return g.inputs[i].Focus()
}

// Guest assembles the guest from the current input values.
func (g *GuestStep) Guest() booking.Guest {
	return booking.Guest{
		Name:     strings.TrimSpace(g.inputs[guestFieldName].Value()),
		Email:    strings.TrimSpace(g.inputs[guestFieldEmail].Value()),
		Phone:    strings.TrimSpace(g.inputs[guestFieldPhone].Value()),
		Document: strings.TrimSpace(g.inputs[guestFieldDocument].Value()),
		Notes:    strings.TrimSpace(g.inputs[guestFieldNotes].Value()),
	}
}

// Submit validates the form and emits GuestSubmittedMsg on success. The
// wizard reacts by starting the reservation submission.
func (g *GuestStep) Submit() tea.Cmd {
	if g.busy {
		return nil
	}
	guest := g.Guest()
	if err := guest.Validate(); err != nil {
		g.err = err.Error()
		return nil
	}
	g.err = ""
	return func() tea.Msg {
		return GuestSubmittedMsg{Guest: guest}
	}
}

// openEditor launches $EDITOR for the notes field.
func (g *GuestStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "maresia_notes_*.txt")
	if err != nil {
		return nil
	}

	if _, err := tmpfile.WriteString(g.inputs[guestFieldNotes].Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	g.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("maresia", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}
		return NotesEditedMsg{Content: string(content)}
	})
}

// View renders the guest step.
func (g *GuestStep) View() string {
	t := theme.Current()
	var b strings.Builder
	label := labelStyle()

	if g.summary != "" {
		summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
		b.WriteString(summaryStyle.Render(g.summary))
		b.WriteString("\n\n")
	}

	labels := [guestFieldCount]string{
		"Nome *",
		"E-mail *",
		"Telefone *",
		"Documento",
		"Observações",
	}

	for i := range g.inputs {
		b.WriteString(label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(g.inputs[i].View())
		b.WriteString("\n\n")
	}

	if g.busy {
		b.WriteString(fmt.Sprintf("%s Enviando reserva...\n\n", g.spinner.View()))
	} else if g.err != "" {
		b.WriteString(errorStyle().Render("✗ " + g.err))
		b.WriteString("\n\n")
	}

	if os.Getenv("EDITOR") != "" {
		b.WriteString(wizard.RenderHintBar(
			"tab", "próximo campo",
			"ctrl+e", "editar observações",
			"enter", "reservar",
			"esc", "voltar",
		))
	} else {
		b.WriteString(wizard.RenderHintBar(
			"tab", "próximo campo",
			"enter", "reservar",
			"esc", "voltar",
		))
	}

	return b.String()
}
