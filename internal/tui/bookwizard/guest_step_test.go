package bookwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

func fillGuestStep(step *GuestStep, name, email, phone string) {
	step.inputs[guestFieldName].SetValue(name)
	step.inputs[guestFieldEmail].SetValue(email)
	step.inputs[guestFieldPhone].SetValue(phone)
}

func TestGuestStep_SubmitRequiresContactFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fill  func(*GuestStep)
		valid bool
	}{
		{
			name:  "all required fields present",
			fill:  func(s *GuestStep) { fillGuestStep(s, "Ana", "ana@example.com", "11999990000") },
			valid: true,
		},
		{
			name:  "missing name",
			fill:  func(s *GuestStep) { fillGuestStep(s, "", "ana@example.com", "11999990000") },
			valid: false,
		},
		{
			name:  "missing email",
			fill:  func(s *GuestStep) { fillGuestStep(s, "Ana", "", "11999990000") },
			valid: false,
		},
		{
			name:  "missing phone",
			fill:  func(s *GuestStep) { fillGuestStep(s, "Ana", "ana@example.com", "") },
			valid: false,
		},
		{
			name:  "whitespace only counts as missing",
			fill:  func(s *GuestStep) { fillGuestStep(s, "   ", "ana@example.com", "11999990000") },
			valid: false,
		},
		{
			name: "document and notes are optional",
			fill: func(s *GuestStep) {
				fillGuestStep(s, "Ana", "ana@example.com", "11999990000")
				s.inputs[guestFieldDocument].SetValue("")
				s.inputs[guestFieldNotes].SetValue("")
			},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewGuestStep("")
			tt.fill(step)

			cmd := step.Submit()

			if !tt.valid {
				require.Nil(t, cmd)
				require.Equal(t, booking.ErrMissingFields.Error(), step.err)
				return
			}

			require.NotNil(t, cmd)
			msg, ok := cmd().(GuestSubmittedMsg)
			require.True(t, ok)
			require.NoError(t, msg.Guest.Validate())
		})
	}
}

func TestGuestStep_SubmitTrimsValues(t *testing.T) {
	t.Parallel()

	step := NewGuestStep("")
	fillGuestStep(step, "  Ana Souza  ", " ana@example.com ", " 11999990000 ")
	step.inputs[guestFieldDocument].SetValue(" 123.456.789-00 ")

	cmd := step.Submit()
	require.NotNil(t, cmd)

	msg := cmd().(GuestSubmittedMsg)
	require.Equal(t, "Ana Souza", msg.Guest.Name)
	require.Equal(t, "ana@example.com", msg.Guest.Email)
	require.Equal(t, "11999990000", msg.Guest.Phone)
	require.Equal(t, "123.456.789-00", msg.Guest.Document)
}

func TestGuestStep_BusyBlocksInputAndResubmit(t *testing.T) {
	t.Parallel()

	step := NewGuestStep("")
	fillGuestStep(step, "Ana", "ana@example.com", "11999990000")
	step.SetBusy(true)

	require.Nil(t, step.Submit(), "no second submission while one is in flight")

	cmd := step.Update(tea.KeyPressMsg{Text: "enter"})
	require.Nil(t, cmd)
	require.Contains(t, step.View(), "Enviando reserva")
}

func TestGuestStep_ErrorClearedOnTyping(t *testing.T) {
	t.Parallel()

	step := NewGuestStep("")
	step.SetError("Quarto indisponível")
	require.Contains(t, step.View(), "Quarto indisponível")

	step.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	require.Empty(t, step.err)
}

func TestGuestStep_TabExitsAtEdges(t *testing.T) {
	t.Parallel()

	step := NewGuestStep("")
	drainCmd(step.Init())
	require.Equal(t, guestFieldName, step.focusIndex)

	cmd := step.Update(tea.KeyPressMsg{Text: "shift+tab"})
	require.NotNil(t, cmd)
	_, ok := cmd().(wizard.TabExitBackwardMsg)
	require.True(t, ok)

	for i := 0; i < guestFieldCount-1; i++ {
		step.Update(tea.KeyPressMsg{Text: "tab"})
	}
	require.Equal(t, guestFieldNotes, step.focusIndex)

	cmd = step.Update(tea.KeyPressMsg{Text: "tab"})
	require.NotNil(t, cmd)
	_, ok = cmd().(wizard.TabExitForwardMsg)
	require.True(t, ok)
}

func TestGuestStep_NotesEdited(t *testing.T) {
	t.Parallel()

	step := NewGuestStep("")
	step.Update(NotesEditedMsg{Content: "Chegada após as 22h\n"})

	require.Equal(t, "Chegada após as 22h", step.inputs[guestFieldNotes].Value())
}
