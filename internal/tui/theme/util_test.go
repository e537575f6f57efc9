package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	require.Equal(t, uint8(0xcb), r)
	require.Equal(t, uint8(0xa6), g)
	require.Equal(t, uint8(0xf7), b)

	r, g, b = ParseHexColor("1e1e2e")
	require.Equal(t, uint8(0x1e), r)
	require.Equal(t, uint8(0x1e), g)
	require.Equal(t, uint8(0x2e), b)

	// Malformed input yields black rather than panicking.
	r, g, b = ParseHexColor("#bad")
	require.Equal(t, uint8(0), r)
	require.Equal(t, uint8(0), g)
	require.Equal(t, uint8(0), b)
}

func TestInterpolateColor(t *testing.T) {
	require.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	require.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestCurrent_Defaults(t *testing.T) {
	th := Current()
	require.NotNil(t, th)
	require.Equal(t, "catppuccin-mocha", th.Name)
	require.True(t, th.IsDark)

	// Same instance on repeated calls.
	require.Same(t, th, Current())
}
