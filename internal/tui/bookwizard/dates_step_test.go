package bookwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/tui/wizard"
)

func TestDatesStep_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		guests   string
		wantErr  string
		wantStay *booking.Stay
	}{
		{
			name:     "valid range",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-04",
			guests:   "2",
			wantStay: &booking.Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2},
		},
		{
			name:     "missing dates",
			checkIn:  "",
			checkOut: "",
			guests:   "2",
			wantErr:  booking.ErrMissingDates.Error(),
		},
		{
			name:     "equal dates rejected",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-01",
			guests:   "2",
			wantErr:  booking.ErrInvalidRange.Error(),
		},
		{
			name:     "inverted range rejected",
			checkIn:  "2025-06-04",
			checkOut: "2025-06-01",
			guests:   "2",
			wantErr:  booking.ErrInvalidRange.Error(),
		},
		{
			name:     "garbage dates rejected as invalid range",
			checkIn:  "amanhã",
			checkOut: "depois",
			guests:   "2",
			wantErr:  booking.ErrInvalidRange.Error(),
		},
		{
			name:     "non-numeric guests fall back to minimum",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-04",
			guests:   "x",
			wantStay: &booking.Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 1},
		},
		{
			name:     "guest count clamped to maximum",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-04",
			guests:   "9",
			wantStay: &booking.Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewDatesStep(2)
			step.checkInInput.SetValue(tt.checkIn)
			step.checkOutInput.SetValue(tt.checkOut)
			step.guestsInput.SetValue(tt.guests)

			cmd := step.Submit()

			if tt.wantErr != "" {
				require.Nil(t, cmd, "submit must not emit on validation failure")
				require.Equal(t, tt.wantErr, step.err)
				return
			}

			require.NotNil(t, cmd)
			msg, ok := cmd().(DatesSubmittedMsg)
			require.True(t, ok)
			require.Equal(t, *tt.wantStay, msg.Stay)
			require.Empty(t, step.err)
		})
	}
}

func TestDatesStep_DefaultGuestsClamped(t *testing.T) {
	t.Parallel()

	step := NewDatesStep(0)
	require.Equal(t, "1", step.guestsInput.Value())

	step = NewDatesStep(4)
	require.Equal(t, "4", step.guestsInput.Value())
}

func TestDatesStep_TabExitsAtEdges(t *testing.T) {
	t.Parallel()

	step := NewDatesStep(2)
	drainCmd(step.Init())

	require.Equal(t, 0, step.focusIndex)

	cmd := step.Update(tea.KeyPressMsg{Text: "shift+tab"})
	require.NotNil(t, cmd)
	_, ok := cmd().(wizard.TabExitBackwardMsg)
	require.True(t, ok, "shift+tab on first input hands focus to buttons")

	step.Update(tea.KeyPressMsg{Text: "tab"})
	require.Equal(t, 1, step.focusIndex)
	step.Update(tea.KeyPressMsg{Text: "tab"})
	require.Equal(t, 2, step.focusIndex)

	cmd = step.Update(tea.KeyPressMsg{Text: "tab"})
	require.NotNil(t, cmd)
	_, ok = cmd().(wizard.TabExitForwardMsg)
	require.True(t, ok, "tab on last input hands focus to buttons")
}

func TestDatesStep_ViewShowsNightCount(t *testing.T) {
	t.Parallel()

	step := NewDatesStep(2)
	step.checkInInput.SetValue("2025-06-01")
	step.checkOutInput.SetValue("2025-06-04")

	require.Contains(t, step.View(), "3 noites")

	step.checkOutInput.SetValue("2025-06-02")
	require.Contains(t, step.View(), "1 noite")
}

// drainCmd runs a command for its side effects, ignoring the message.
func drainCmd(cmd tea.Cmd) {
	if cmd != nil {
		cmd()
	}
}
