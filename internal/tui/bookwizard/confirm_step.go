package bookwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

// ConfirmStep is the terminal confirmation screen. It renders the created
// reservation as markdown in a scrollable viewport and offers saving a
// receipt file or leaving the wizard. There is no going back from here.
type ConfirmStep struct {
	viewport    viewport.Model
	content     string
	receiptPath string
	receiptErr  string
	width       int
	height      int
}

// NewConfirmStep creates the confirmation step from the final wizard state.
func NewConfirmStep(conf booking.Confirmation, stay booking.Stay, offer booking.RoomOffer, guest booking.Guest) *ConfirmStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true

	content := confirmationMarkdown(conf, stay, offer, guest)
	vp.SetContent(renderMarkdown(content, 60))
	vp.GotoTop()

	return &ConfirmStep{
		viewport: vp,
		content:  content,
		width:    60,
		height:   14,
	}
}

// confirmationMarkdown builds the receipt body shown to the guest.
func confirmationMarkdown(conf booking.Confirmation, stay booking.Stay, offer booking.RoomOffer, guest booking.Guest) string {
	nights := stay.Nights()
	nightsLabel := "noites"
	if nights == 1 {
		nightsLabel = "noite"
	}

	var b strings.Builder
	b.WriteString("# Reserva confirmada ✓\n\n")
	fmt.Fprintf(&b, "**Código:** %s\n\n", conf.ID)
	if conf.Status != "" {
		fmt.Fprintf(&b, "**Status:** %s\n\n", conf.Status)
	}
	b.WriteString("## Estadia\n\n")
	fmt.Fprintf(&b, "- Check-in: %s\n", stay.CheckIn)
	fmt.Fprintf(&b, "- Check-out: %s\n", stay.CheckOut)
	fmt.Fprintf(&b, "- %d %s · %d hóspede(s)\n\n", nights, nightsLabel, stay.Guests)
	b.WriteString("## Quarto\n\n")
	fmt.Fprintf(&b, "- Quarto %s (%s)\n", offer.Number, offer.Type)
	fmt.Fprintf(&b, "- %s/noite\n", booking.FormatBRL(offer.PricePerNight))
	fmt.Fprintf(&b, "- **Total: %s**\n\n", booking.FormatBRL(booking.TotalPrice(&offer, nights)))
	b.WriteString("## Hóspede\n\n")
	fmt.Fprintf(&b, "- %s\n", guest.Name)
	fmt.Fprintf(&b, "- %s · %s\n", guest.Email, guest.Phone)
	if guest.Notes != "" {
		fmt.Fprintf(&b, "\n> %s\n", guest.Notes)
	}
	return b.String()
}

// renderMarkdown renders markdown with glamour; on failure the raw text is
// shown instead.
func renderMarkdown(content string, width int) string {
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// Content returns the raw markdown receipt.
func (c *ConfirmStep) Content() string {
	return c.content
}

// SetSize updates the dimensions for the confirmation step.
func (c *ConfirmStep) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.SetWidth(width)

	vpHeight := height - 3
	if vpHeight < 5 {
		vpHeight = 5
	}
	c.viewport.SetHeight(vpHeight)
	c.viewport.SetContent(renderMarkdown(c.content, width))
}

// Update handles messages for the confirmation step.
func (c *ConfirmStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReceiptSavedMsg:
		c.receiptPath = msg.Path
		c.receiptErr = ""
		return nil

	case ReceiptErrorMsg:
		c.receiptErr = msg.Err.Error()
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "s":
			return func() tea.Msg {
				return SaveReceiptMsg{}
			}
		case "enter", "q":
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

// View renders the confirmation step.
func (c *ConfirmStep) View() string {
	t := theme.Current()
	var b strings.Builder

	b.WriteString(c.viewport.View())
	b.WriteString("\n")

	if c.receiptPath != "" {
		saved := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
		b.WriteString(saved.Render("Comprovante salvo em " + c.receiptPath))
		b.WriteString("\n")
	} else if c.receiptErr != "" {
		b.WriteString(errorStyle().Render("✗ " + c.receiptErr))
		b.WriteString("\n")
	}

	b.WriteString(wizard.RenderHintBar(
		"↑↓", "rolar",
		"s", "salvar comprovante",
		"enter", "concluir",
	))

	return b.String()
}

// SaveReceiptMsg is sent when the user asks to write the receipt to disk.
type SaveReceiptMsg struct{}
