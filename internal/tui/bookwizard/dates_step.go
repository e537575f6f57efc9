package bookwizard

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

// DatesStep captures check-in, check-out and guest count. Range validity is
// only enforced on submit; the inputs accept anything while typing.
type DatesStep struct {
	checkInInput  textinput.Model
	checkOutInput textinput.Model
	guestsInput   textinput.Model
	focusIndex    int // 0=check-in, 1=check-out, 2=guests
	err           string
	width         int
	height        int
}

// NewDatesStep creates the dates step with the configured default party size.
func NewDatesStep(defaultGuests int) *DatesStep {
	styles := inputStyles()

	checkIn := textinput.New()
	checkIn.Placeholder = "AAAA-MM-DD"
	checkIn.Prompt = ""
	checkIn.CharLimit = 10
	checkIn.SetStyles(styles)
	checkIn.SetWidth(20)

	checkOut := textinput.New()
	checkOut.Placeholder = "AAAA-MM-DD"
	checkOut.Prompt = ""
	checkOut.CharLimit = 10
	checkOut.SetStyles(styles)
	checkOut.SetWidth(20)

	guests := textinput.New()
	guests.Placeholder = "2"
	guests.Prompt = ""
	guests.CharLimit = 1
	guests.SetStyles(styles)
	guests.SetWidth(20)
	guests.SetValue(strconv.Itoa(booking.ClampGuests(defaultGuests)))

	return &DatesStep{
		checkInInput:  checkIn,
		checkOutInput: checkOut,
		guestsInput:   guests,
		width:         60,
		height:        10,
	}
}

// Init initializes the dates step and focuses the check-in input.
func (d *DatesStep) Init() tea.Cmd {
	d.focusIndex = 0
	return tea.Batch(d.checkInInput.Focus(), textinput.Blink)
}

// Focus gives focus to the first input.
func (d *DatesStep) Focus() tea.Cmd {
	d.focusIndex = 0
	d.checkOutInput.Blur()
	d.guestsInput.Blur()
	return d.checkInInput.Focus()
}

// FocusLast gives focus to the last input.
func (d *DatesStep) FocusLast() tea.Cmd {
	d.focusIndex = 2
	d.checkInInput.Blur()
	d.checkOutInput.Blur()
	return d.guestsInput.Focus()
}

// Blur removes focus from all inputs.
func (d *DatesStep) Blur() {
	d.checkInInput.Blur()
	d.checkOutInput.Blur()
	d.guestsInput.Blur()
}

// SetSize updates the dimensions for the dates step.
func (d *DatesStep) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles messages for the dates step.
func (d *DatesStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if d.focusIndex == 2 {
				return func() tea.Msg {
					return wizard.TabExitForwardMsg{}
				}
			}
			d.setFocus(d.focusIndex + 1)
			return nil

		case "shift+tab":
			if d.focusIndex == 0 {
				return func() tea.Msg {
					return wizard.TabExitBackwardMsg{}
				}
			}
			d.setFocus(d.focusIndex - 1)
			return nil

		case "enter":
			return d.Submit()

		default:
			if d.err != "" {
				d.err = ""
			}
		}
	}

	var cmd tea.Cmd
	switch d.focusIndex {
	case 0:
		d.checkInInput, cmd = d.checkInInput.Update(msg)
	case 1:
		d.checkOutInput, cmd = d.checkOutInput.Update(msg)
	case 2:
		d.guestsInput, cmd = d.guestsInput.Update(msg)
	}
	return cmd
}

func (d *DatesStep) setFocus(i int) {
	d.focusIndex = i
	d.checkInInput.Blur()
	d.checkOutInput.Blur()
	d.guestsInput.Blur()
	switch i {
	case 0:
		d.checkInInput.Focus()
	case 1:
		d.checkOutInput.Focus()
	case 2:
		d.guestsInput.Focus()
	}
}

// Stay assembles the stay from the current input values. The guest count is
// clamped to the allowed range; a non-numeric value falls back to 1.
func (d *DatesStep) Stay() booking.Stay {
	guests, err := strconv.Atoi(strings.TrimSpace(d.guestsInput.Value()))
	if err != nil {
		guests = booking.MinGuests
	}
	return booking.Stay{
		CheckIn:  strings.TrimSpace(d.checkInInput.Value()),
		CheckOut: strings.TrimSpace(d.checkOutInput.Value()),
		Guests:   booking.ClampGuests(guests),
	}
}

// Submit validates the stay and emits DatesSubmittedMsg on success.
func (d *DatesStep) Submit() tea.Cmd {
	stay := d.Stay()
	if err := stay.Validate(); err != nil {
		d.err = err.Error()
		return nil
	}
	d.err = ""
	return func() tea.Msg {
		return DatesSubmittedMsg{Stay: stay}
	}
}

// View renders the dates step.
func (d *DatesStep) View() string {
	var b strings.Builder
	label := labelStyle()

	b.WriteString(label.Render("Check-in"))
	b.WriteString("\n")
	b.WriteString(d.checkInInput.View())
	b.WriteString("\n\n")

	b.WriteString(label.Render("Check-out"))
	b.WriteString("\n")
	b.WriteString(d.checkOutInput.View())
	b.WriteString("\n\n")

	b.WriteString(label.Render("Hóspedes (1-6)"))
	b.WriteString("\n")
	b.WriteString(d.guestsInput.View())
	b.WriteString("\n")

	if d.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle().Render("✗ " + d.err))
		b.WriteString("\n")
	}

	nights := d.Stay().Nights()
	if nights > 0 {
		muted := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().FgSubtle))
		b.WriteString("\n")
		if nights == 1 {
			b.WriteString(muted.Render("1 noite"))
		} else {
			b.WriteString(muted.Render(strconv.Itoa(nights) + " noites"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar(
		"tab", "próximo campo",
		"enter", "avançar",
		"esc", "sair",
	))

	return b.String()
}
