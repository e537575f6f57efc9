package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonBar_FocusCycling(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(true, "Avançar →"))
	require.Equal(t, ButtonNone, bar.FocusedButton())

	bar.FocusFirst()
	require.Equal(t, ButtonBack, bar.FocusedButton())

	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonNext, bar.FocusedButton())

	// Walking off the end blurs the bar.
	require.False(t, bar.FocusNext())
	require.Equal(t, ButtonNone, bar.FocusedButton())

	bar.FocusLast()
	require.Equal(t, ButtonNext, bar.FocusedButton())

	require.True(t, bar.FocusPrev())
	require.Equal(t, ButtonBack, bar.FocusedButton())

	require.False(t, bar.FocusPrev())
	require.Equal(t, ButtonNone, bar.FocusedButton())
}

func TestButtonBar_SkipsDisabledButtons(t *testing.T) {
	t.Parallel()

	// First step: back is disabled, only next is reachable.
	bar := NewButtonBar(CreateBackNextButtons(false, "Avançar →"))

	bar.FocusFirst()
	require.Equal(t, ButtonNext, bar.FocusedButton())

	bar.FocusLast()
	require.Equal(t, ButtonNext, bar.FocusedButton())

	require.False(t, bar.FocusPrev(), "disabled back button is never focused")
}

func TestButtonBar_BlurResetsState(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(true, "Reservar"))
	bar.FocusFirst()
	bar.Blur()

	require.Equal(t, ButtonNone, bar.FocusedButton())
	for _, btn := range bar.buttons {
		require.NotEqual(t, ButtonFocused, btn.State)
	}
}

func TestButtonBar_RenderContainsLabels(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(true, "Reservar"))
	bar.SetWidth(64)

	out := bar.Render()
	require.Contains(t, out, "Voltar")
	require.Contains(t, out, "Reservar")
}

func TestCreateBackNextButtons(t *testing.T) {
	t.Parallel()

	buttons := CreateBackNextButtons(false, "Avançar →")
	require.Len(t, buttons, 2)
	require.Equal(t, ButtonDisabled, buttons[0].State)
	require.Equal(t, ButtonNormal, buttons[1].State)
	require.Equal(t, "Avançar →", buttons[1].Label)

	buttons = CreateBackNextButtons(true, "Reservar")
	require.Equal(t, ButtonNormal, buttons[0].State)
}

func TestRenderHintBar(t *testing.T) {
	t.Parallel()

	out := RenderHintBar("↑↓", "navegar", "enter", "selecionar")
	require.Contains(t, out, "↑↓")
	require.Contains(t, out, "navegar")
	require.Contains(t, out, "•")

	require.Empty(t, RenderHintBar())
	require.Empty(t, RenderHintBar("odd"))
}
