// Package bookwizard implements the public reservation flow: a linear
// four-step wizard (dates, room, guest, confirmation) over the pousada's
// REST backend. Steps gate their own validation; all remote calls run as
// commands so the model stays single-threaded.
package bookwizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/pousadamaresia/maresia/internal/api"
	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/config"
	"github.com/pousadamaresia/maresia/internal/logger"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

// Step enumeration for the wizard flow
const (
	StepDates   = 0 // Date range and party size
	StepRooms   = 1 // Availability list, single select
	StepGuest   = 2 // Contact form and submission
	StepConfirm = 3 // Terminal confirmation screen
)

// Modal layout constants
const (
	modalWidth        = 70
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

// Generic user-facing failure messages. Server-provided messages take
// precedence when present.
const (
	msgFetchFailed  = "Não foi possível buscar os quartos disponíveis. Tente novamente."
	msgSubmitFailed = "Não foi possível concluir a reserva. Tente novamente."
)

// BookingAPI is the backend surface the wizard needs. *api.Client satisfies
// it; tests substitute a fake.
type BookingAPI interface {
	AvailableRooms(ctx context.Context, stay booking.Stay) ([]booking.RoomOffer, error)
	CreateReservation(ctx context.Context, req booking.Request) (booking.Confirmation, error)
}

// Model is the BubbleTea model for the reservation wizard.
type Model struct {
	step      int
	cancelled bool
	width     int
	height    int
	cfg       *config.Config
	api       BookingAPI

	// Flow state
	stay         booking.Stay
	offers       []booking.RoomOffer
	selectedID   string // Room id; re-resolved against offers after each fetch
	guest        booking.Guest
	confirmation booking.Confirmation
	fetchedFP    string // Stay fingerprint the current offers were fetched under
	clientRef    string // Idempotency token; held across retries of one reservation

	// Step components, created lazily and kept so back-then-forward
	// navigation preserves entered data.
	datesStep   *DatesStep
	roomsStep   *RoomsStep
	guestStep   *GuestStep
	confirmStep *ConfirmStep

	// Button bar with focus tracking
	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	// Cached button bars per step (prevents focus reset on re-render)
	datesButtonBar *wizard.ButtonBar
	guestButtonBar *wizard.ButtonBar
}

// New creates a wizard model over the given backend.
func New(cfg *config.Config, backend BookingAPI) *Model {
	return &Model{
		step: StepDates,
		cfg:  cfg,
		api:  backend,
	}
}

// Run is the entry point for the reservation wizard.
func Run(cfg *config.Config) error {
	backend := api.New(cfg.APIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	m := New(cfg, backend)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if wizModel.cancelled {
		return fmt.Errorf("reserva cancelada")
	}

	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	m.datesStep = NewDatesStep(m.cfg.DefaultGuests)
	return m.datesStep.Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Ignore navigation while a submission is in flight; the guest
		// step still receives the message to animate its spinner.
		if m.step == StepGuest && m.guestStep != nil && m.guestStep.Busy() {
			return m.updateCurrentStep(msg)
		}

		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.focusStepContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.focusStepContentLast()
				}
				return m, nil
			case "enter", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = m.step != StepConfirm
			return m, tea.Quit
		case "esc":
			if m.step == StepDates {
				m.cancelled = true
				return m, tea.Quit
			}
			// Confirmation is terminal; the step handles its own keys.
			if m.step == StepConfirm {
				break
			}
			return m.retreat()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case DatesSubmittedMsg:
		m.stay = msg.Stay
		// Selection is only valid for the inputs it was fetched under.
		if m.stay.Fingerprint() != m.fetchedFP {
			m.selectedID = ""
			m.clientRef = ""
		}
		m.step = StepRooms
		m.buttonFocused = false
		m.buttonBar = nil
		if m.roomsStep == nil {
			m.roomsStep = NewRoomsStep()
		} else {
			m.roomsStep.SetLoading()
		}
		m.updateCurrentStepSize()
		return m, tea.Batch(m.roomsStep.Init(), m.fetchRooms())

	case RoomsLoadedMsg:
		m.offers = msg.Offers
		m.fetchedFP = m.stay.Fingerprint()
		if m.selectedID != "" && booking.FindOffer(m.offers, m.selectedID) == nil {
			m.selectedID = ""
		}
		if m.roomsStep != nil {
			m.roomsStep.SetOffers(m.offers, m.stay.Nights(), m.selectedID)
		}
		return m, nil

	case RoomsErrorMsg:
		logger.Error("Availability fetch failed: %v", msg.Err)
		m.offers = nil
		m.fetchedFP = ""
		if m.roomsStep != nil {
			m.roomsStep.SetError(msgFetchFailed)
		}
		return m, nil

	case RetryFetchMsg:
		return m, m.fetchRooms()

	case RoomSelectedMsg:
		if booking.FindOffer(m.offers, msg.RoomID) == nil {
			if m.roomsStep != nil {
				m.roomsStep.SetError(booking.ErrNoRoom.Error())
			}
			return m, nil
		}
		if msg.RoomID != m.selectedID {
			m.clientRef = ""
		}
		m.selectedID = msg.RoomID
		m.step = StepGuest
		m.buttonFocused = false
		m.buttonBar = nil
		var cmd tea.Cmd
		if m.guestStep == nil {
			m.guestStep = NewGuestStep(m.staySummary())
			cmd = m.guestStep.Init()
		} else {
			m.guestStep.SetSummary(m.staySummary())
			cmd = m.guestStep.Focus()
		}
		m.updateCurrentStepSize()
		return m, cmd

	case ChangeDatesMsg:
		return m.retreatTo(StepDates)

	case GuestSubmittedMsg:
		m.guest = msg.Guest
		busyCmd := m.guestStep.SetBusy(true)
		return m, tea.Batch(busyCmd, m.submitReservation())

	case ReservationCreatedMsg:
		m.confirmation = msg.Confirmation
		if m.guestStep != nil {
			m.guestStep.SetBusy(false)
		}
		m.step = StepConfirm
		m.buttonFocused = false
		m.buttonBar = nil
		offer := booking.FindOffer(m.offers, m.selectedID)
		if offer == nil {
			offer = &booking.RoomOffer{}
		}
		m.confirmStep = NewConfirmStep(m.confirmation, m.stay, *offer, m.guest)
		m.updateCurrentStepSize()
		return m, nil

	case SubmitErrorMsg:
		logger.Error("Reservation submission failed: %v", msg.Err)
		if m.guestStep != nil {
			m.guestStep.SetError(submitErrorMessage(msg.Err))
		}
		return m, nil

	case SaveReceiptMsg:
		return m, m.saveReceipt()

	case wizard.TabExitForwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusFirst()
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusLast()
		return m, nil
	}

	// Forward messages to current step
	return m.updateCurrentStep(msg)
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// Step returns the current step index.
func (m *Model) Step() int {
	return m.step
}

// Offers returns the current availability list.
func (m *Model) Offers() []booking.RoomOffer {
	return m.offers
}

// SelectedOffer returns the selected room, or nil when none is selected.
func (m *Model) SelectedOffer() *booking.RoomOffer {
	return booking.FindOffer(m.offers, m.selectedID)
}

// Confirmation returns the created reservation record.
func (m *Model) Confirmation() booking.Confirmation {
	return m.confirmation
}

// fetchRooms queries availability for the current stay. Filtering happens
// here so the rooms step only ever sees the final list.
func (m *Model) fetchRooms() tea.Cmd {
	backend := m.api
	stay := m.stay
	typeHint := m.cfg.RoomType
	return func() tea.Msg {
		offers, err := backend.AvailableRooms(context.Background(), stay)
		if err != nil {
			return RoomsErrorMsg{Err: err}
		}
		return RoomsLoadedMsg{Offers: booking.FilterOffers(offers, stay.Guests, typeHint)}
	}
}

// submitReservation posts the assembled reservation request.
func (m *Model) submitReservation() tea.Cmd {
	offer := booking.FindOffer(m.offers, m.selectedID)
	if offer == nil {
		return func() tea.Msg {
			return SubmitErrorMsg{Err: booking.ErrNoRoom}
		}
	}

	// One token per assembled reservation; a retry after a failure reuses
	// it so the backend can deduplicate.
	if m.clientRef == "" {
		m.clientRef = booking.NewClientRef()
	}

	backend := m.api
	req := booking.NewRequest(m.stay, *offer, m.guest, m.clientRef)
	return func() tea.Msg {
		conf, err := backend.CreateReservation(context.Background(), req)
		if err != nil {
			return SubmitErrorMsg{Err: err}
		}
		return ReservationCreatedMsg{Confirmation: conf}
	}
}

// saveReceipt writes the confirmation receipt to the configured directory.
func (m *Model) saveReceipt() tea.Cmd {
	offer := booking.FindOffer(m.offers, m.selectedID)
	if offer == nil {
		offer = &booking.RoomOffer{}
	}

	dir := m.cfg.ReceiptDir
	conf := m.confirmation
	stay := m.stay
	guest := m.guest
	roomOffer := *offer
	return func() tea.Msg {
		path, err := SaveReceipt(dir, conf, stay, roomOffer, guest)
		if err != nil {
			logger.Error("Failed to save receipt: %v", err)
			return ReceiptErrorMsg{Err: err}
		}
		logger.Info("Receipt saved to %s", path)
		return ReceiptSavedMsg{Path: path}
	}
}

// submitErrorMessage maps a submission failure to the inline message shown on
// the guest step. Server-provided messages are shown verbatim.
func submitErrorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var validationErr booking.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return msgSubmitFailed
}

// staySummary is the one-line recap shown above the guest form.
func (m *Model) staySummary() string {
	offer := booking.FindOffer(m.offers, m.selectedID)
	if offer == nil {
		return ""
	}
	nights := m.stay.Nights()
	return fmt.Sprintf("Quarto %s · %s → %s · Total %s",
		offer.Number,
		m.stay.CheckIn,
		m.stay.CheckOut,
		booking.FormatBRL(booking.TotalPrice(offer, nights)),
	)
}

// updateCurrentStep forwards a message to the current step.
func (m *Model) updateCurrentStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			cmd = m.datesStep.Update(msg)
		}
	case StepRooms:
		if m.roomsStep != nil {
			cmd = m.roomsStep.Update(msg)
		}
	case StepGuest:
		if m.guestStep != nil {
			cmd = m.guestStep.Update(msg)
		}
	case StepConfirm:
		if m.confirmStep != nil {
			cmd = m.confirmStep.Update(msg)
		}
	}

	return m, cmd
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 40 {
		height = 40
	}
	height = height - 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the current step.
func (m *Model) updateCurrentStepSize() {
	contentWidth, contentHeight := m.getModalContentSize()

	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			m.datesStep.SetSize(contentWidth, contentHeight)
		}
	case StepRooms:
		if m.roomsStep != nil {
			m.roomsStep.SetSize(contentWidth, contentHeight)
		}
	case StepGuest:
		if m.guestStep != nil {
			m.guestStep.SetSize(contentWidth, contentHeight)
		}
	case StepConfirm:
		if m.confirmStep != nil {
			m.confirmStep.SetSize(contentWidth, contentHeight)
		}
	}
}

// renderCurrentStep renders the content for the current step.
func (m *Model) renderCurrentStep() string {
	currentTheme := theme.Current()

	var stepTitle string
	switch m.step {
	case StepDates:
		stepTitle = "Reserva - Passo 1: Datas"
	case StepRooms:
		stepTitle = "Reserva - Passo 2: Quartos"
	case StepGuest:
		stepTitle = "Reserva - Passo 3: Seus dados"
	case StepConfirm:
		stepTitle = "Reserva - Confirmação"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(currentTheme.Primary)).
		MarginBottom(1)

	title := titleStyle.Render(stepTitle)

	var stepContent string
	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			stepContent = m.datesStep.View()
		}
	case StepRooms:
		if m.roomsStep != nil {
			stepContent = m.roomsStep.View()
		}
	case StepGuest:
		if m.guestStep != nil {
			stepContent = m.guestStep.View()
		}
	case StepConfirm:
		if m.confirmStep != nil {
			stepContent = m.confirmStep.View()
		}
	}

	var buttonBarContent string
	if m.hasButtons() {
		m.ensureButtonBar()
		buttonBarContent = m.buttonBar.Render()
	}

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(currentTheme.BorderDefault))

	var content string
	if buttonBarContent != "" {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			stepContent,
			"",
			buttonBarContent,
		)
	} else {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			stepContent,
		)
	}

	return modalStyle.Render(content)
}

// hasButtons returns true if the current step uses the wizard's button bar.
// The rooms list and the confirmation screen navigate themselves.
func (m *Model) hasButtons() bool {
	if m.step == StepGuest && m.guestStep != nil && m.guestStep.Busy() {
		return false
	}
	return m.step == StepDates || m.step == StepGuest
}

// ensureButtonBar creates the button bar if needed, using cached instance per step.
func (m *Model) ensureButtonBar() {
	var cachedBar *wizard.ButtonBar
	switch m.step {
	case StepDates:
		cachedBar = m.datesButtonBar
	case StepGuest:
		cachedBar = m.guestButtonBar
	}

	if cachedBar != nil {
		m.buttonBar = cachedBar
		return
	}

	var newBar *wizard.ButtonBar
	switch m.step {
	case StepDates:
		newBar = wizard.NewButtonBar(wizard.CreateBackNextButtons(false, "Avançar →"))
		m.datesButtonBar = newBar
	case StepGuest:
		newBar = wizard.NewButtonBar(wizard.CreateBackNextButtons(true, "Reservar"))
		m.guestButtonBar = newBar
	default:
		newBar = wizard.NewButtonBar(nil)
	}

	newBar.SetWidth(modalContentWidth)
	m.buttonBar = newBar
}

// activateButton handles button activation.
func (m *Model) activateButton(btnID wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch btnID {
	case wizard.ButtonBack:
		return m.retreat()
	case wizard.ButtonNext:
		return m.advance()
	}
	return m, nil
}

// advance validates the current step and moves forward via the step's
// submit message.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			return m, m.datesStep.Submit()
		}
	case StepGuest:
		if m.guestStep != nil {
			return m, m.guestStep.Submit()
		}
	}
	return m, nil
}

// retreat moves one step back. The dates step and the confirmation screen
// stay where they are. Entered data is preserved.
func (m *Model) retreat() (tea.Model, tea.Cmd) {
	if m.step == StepDates || m.step == StepConfirm {
		return m, nil
	}
	return m.retreatTo(m.step - 1)
}

func (m *Model) retreatTo(step int) (tea.Model, tea.Cmd) {
	m.step = step
	m.buttonFocused = false
	m.buttonBar = nil
	m.updateCurrentStepSize()

	var cmd tea.Cmd
	switch step {
	case StepDates:
		if m.datesStep != nil {
			cmd = m.datesStep.Focus()
		}
	case StepRooms:
		// Offers and selection are kept as fetched; no refetch on the way back.
	}
	return m, cmd
}

// focusStepContentFirst focuses the first element in step content.
func (m *Model) focusStepContentFirst() tea.Cmd {
	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			return m.datesStep.Focus()
		}
	case StepGuest:
		if m.guestStep != nil {
			return m.guestStep.Focus()
		}
	}
	return nil
}

// focusStepContentLast focuses the last element in step content.
func (m *Model) focusStepContentLast() tea.Cmd {
	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			return m.datesStep.FocusLast()
		}
	case StepGuest:
		if m.guestStep != nil {
			return m.guestStep.FocusLast()
		}
	}
	return nil
}

// blurStepContent blurs all step content.
func (m *Model) blurStepContent() {
	switch m.step {
	case StepDates:
		if m.datesStep != nil {
			m.datesStep.Blur()
		}
	case StepGuest:
		if m.guestStep != nil {
			m.guestStep.Blur()
		}
	}
}
