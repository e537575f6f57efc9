package bookwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

// RoomsStep is the single-select room list with per-night and total price
// display. It starts in a loading state; the wizard feeds it the fetch
// result via SetOffers or SetError.
type RoomsStep struct {
	spinner    spinner.Model
	offers     []booking.RoomOffer
	nights     int
	cursor     int
	selectedID string
	loading    bool
	errMsg     string
	width      int
	height     int
}

// NewRoomsStep creates the rooms step in its loading state.
func NewRoomsStep() *RoomsStep {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &RoomsStep{
		spinner: s,
		loading: true,
		width:   60,
		height:  10,
	}
}

// Init starts the loading spinner.
func (r *RoomsStep) Init() tea.Cmd {
	return r.spinner.Tick
}

// SetLoading puts the step back into the loading state for a fresh fetch.
func (r *RoomsStep) SetLoading() {
	r.loading = true
	r.errMsg = ""
}

// SetOffers installs the fetch result. The cursor lands on the previously
// selected room when it is still in the list, otherwise on the first entry.
func (r *RoomsStep) SetOffers(offers []booking.RoomOffer, nights int, selectedID string) {
	r.loading = false
	r.errMsg = ""
	r.offers = offers
	r.nights = nights
	r.selectedID = selectedID
	r.cursor = 0
	for i := range offers {
		if offers[i].ID == selectedID {
			r.cursor = i
			break
		}
	}
}

// SetError installs a fetch failure. The user can retry or go back.
func (r *RoomsStep) SetError(msg string) {
	r.loading = false
	r.errMsg = msg
}

// SetSize updates the dimensions for the rooms step.
func (r *RoomsStep) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Update handles messages for the rooms step.
func (r *RoomsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if r.loading {
			var cmd tea.Cmd
			r.spinner, cmd = r.spinner.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyPressMsg:
		if r.loading {
			return nil
		}

		if r.errMsg != "" {
			if msg.String() == "r" {
				r.SetLoading()
				return tea.Batch(
					r.spinner.Tick,
					func() tea.Msg { return RetryFetchMsg{} },
				)
			}
			return nil
		}

		switch msg.String() {
		case "up", "k":
			if r.cursor > 0 {
				r.cursor--
			}
			return nil

		case "down", "j":
			if r.cursor < len(r.offers)-1 {
				r.cursor++
			}
			return nil

		case "enter", " ":
			if len(r.offers) == 0 {
				// Empty availability: the only affordance is changing dates.
				return func() tea.Msg {
					return ChangeDatesMsg{}
				}
			}
			offer := r.offers[r.cursor]
			r.selectedID = offer.ID
			return func() tea.Msg {
				return RoomSelectedMsg{RoomID: offer.ID}
			}
		}
	}

	return nil
}

// View renders the rooms step.
func (r *RoomsStep) View() string {
	t := theme.Current()
	var b strings.Builder

	if r.loading {
		b.WriteString(r.spinner.View())
		b.WriteString(" Buscando quartos disponíveis...\n")
		return b.String()
	}

	if r.errMsg != "" {
		b.WriteString(errorStyle().Render("✗ " + r.errMsg))
		b.WriteString("\n\n")
		b.WriteString(wizard.RenderHintBar("r", "tentar novamente", "esc", "voltar"))
		return b.String()
	}

	if len(r.offers) == 0 {
		muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
		b.WriteString(muted.Render("Nenhum quarto disponível para as datas selecionadas."))
		b.WriteString("\n\n")
		b.WriteString(wizard.RenderHintBar("enter/esc", "alterar datas"))
		return b.String()
	}

	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle))
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	checkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true)

	for i, offer := range r.offers {
		prefix := "  "
		if i == r.cursor {
			prefix = cursorStyle.Render("▸ ")
		}

		title := fmt.Sprintf("Quarto %s · %s", offer.Number, offer.Type)
		if offer.ID == r.selectedID {
			title += " " + checkStyle.Render("✓")
		}

		capacity := fmt.Sprintf("até %d hóspede", offer.Capacity)
		if offer.Capacity != 1 {
			capacity = fmt.Sprintf("até %d hóspedes", offer.Capacity)
		}

		price := fmt.Sprintf("%s/noite · %s por %d noites",
			booking.FormatBRL(offer.PricePerNight),
			booking.FormatBRL(booking.TotalPrice(&offer, r.nights)),
			r.nights,
		)

		b.WriteString(prefix)
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n  ")
		b.WriteString(detailStyle.Render(capacity))
		b.WriteString("\n  ")
		b.WriteString(priceStyle.Render(price))
		if offer.Description != "" {
			b.WriteString("\n  ")
			b.WriteString(detailStyle.Render(offer.Description))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(wizard.RenderHintBar(
		"↑↓/j/k", "navegar",
		"enter", "selecionar",
		"esc", "voltar",
	))

	return b.String()
}
