package bookwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/pousadamaresia/maresia/internal/booking"
)

func sampleOffers() []booking.RoomOffer {
	return []booking.RoomOffer{
		{ID: "r1", Number: "101", Type: "STANDARD", Capacity: 2, PricePerNight: 250},
		{ID: "r2", Number: "201", Type: "LUXO", Capacity: 4, PricePerNight: 420.5},
	}
}

func TestRoomsStep_SelectEmitsRoomID(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetOffers(sampleOffers(), 3, "")

	step.Update(tea.KeyPressMsg{Text: "down"})
	cmd := step.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(RoomSelectedMsg)
	require.True(t, ok)
	require.Equal(t, "r2", msg.RoomID)
}

func TestRoomsStep_CursorLandsOnSelection(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetOffers(sampleOffers(), 3, "r2")

	require.Equal(t, 1, step.cursor)
	require.Contains(t, step.View(), "✓")
}

func TestRoomsStep_CursorStaysInBounds(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetOffers(sampleOffers(), 3, "")

	step.Update(tea.KeyPressMsg{Text: "up"})
	require.Equal(t, 0, step.cursor)

	step.Update(tea.KeyPressMsg{Text: "j"})
	step.Update(tea.KeyPressMsg{Text: "j"})
	require.Equal(t, 1, step.cursor)

	step.Update(tea.KeyPressMsg{Text: "k"})
	require.Equal(t, 0, step.cursor)
}

func TestRoomsStep_ViewShowsPerNightAndTotalPrice(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetOffers(sampleOffers(), 3, "")

	view := step.View()
	require.Contains(t, view, "R$ 250,00/noite")
	require.Contains(t, view, "R$ 750,00 por 3 noites")
	require.Contains(t, view, "R$ 420,50/noite")
	require.Contains(t, view, "R$ 1.261,50 por 3 noites")
	require.Contains(t, view, "até 2 hóspedes")
}

func TestRoomsStep_EmptyStateOffersChangeDates(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetOffers(nil, 3, "")

	require.Contains(t, step.View(), "Nenhum quarto disponível")

	cmd := step.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)
	_, ok := cmd().(ChangeDatesMsg)
	require.True(t, ok)
}

func TestRoomsStep_ErrorStateRetries(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	step.SetError(msgFetchFailed)

	require.Contains(t, step.View(), msgFetchFailed)

	// Only "r" does anything in the error state.
	require.Nil(t, step.Update(tea.KeyPressMsg{Text: "enter"}))

	cmd := step.Update(tea.KeyPressMsg{Text: "r"})
	require.NotNil(t, cmd)
	require.True(t, step.loading, "retry puts the step back into loading")
}

func TestRoomsStep_LoadingIgnoresKeys(t *testing.T) {
	t.Parallel()

	step := NewRoomsStep()
	require.True(t, step.loading)

	require.Nil(t, step.Update(tea.KeyPressMsg{Text: "enter"}))
	require.Contains(t, step.View(), "Buscando quartos")
}
