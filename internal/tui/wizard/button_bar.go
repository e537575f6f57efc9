// Package wizard provides shared chrome for multi-step flows: the Back/Next
// button bar with tab focus cycling and the key-hint bar.
package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonID identifies a button position in a two-button bar.
type ButtonID int

const (
	ButtonNone ButtonID = iota - 1 // No button focused
	ButtonBack                     // First button (Back/Cancel)
	ButtonNext                     // Second button (Next/Confirm)
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard
// focus tracking. Focus moves with FocusNext/FocusPrev; both return false
// when focus walks off the end so the parent can hand focus back to the
// step content.
type ButtonBar struct {
	buttons  []Button
	focusIdx int
	width    int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons:  buttons,
		focusIdx: -1,
		width:    60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// FocusFirst puts focus on the first enabled button.
func (b *ButtonBar) FocusFirst() {
	for i := range b.buttons {
		if b.buttons[i].State != ButtonDisabled {
			b.setFocus(i)
			return
		}
	}
}

// FocusLast puts focus on the last enabled button.
func (b *ButtonBar) FocusLast() {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.setFocus(i)
			return
		}
	}
}

// FocusNext advances focus to the next enabled button. Returns false when
// there is none, leaving the bar blurred.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focusIdx + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.setFocus(i)
			return true
		}
	}
	b.Blur()
	return false
}

// FocusPrev moves focus to the previous enabled button. Returns false when
// there is none, leaving the bar blurred.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focusIdx - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.setFocus(i)
			return true
		}
	}
	b.Blur()
	return false
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	if b.focusIdx >= 0 && b.focusIdx < len(b.buttons) {
		b.buttons[b.focusIdx].State = ButtonNormal
	}
	b.focusIdx = -1
}

// FocusedButton returns the id of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focusIdx < 0 || b.focusIdx >= len(b.buttons) {
		return ButtonNone
	}
	return ButtonID(b.focusIdx)
}

func (b *ButtonBar) setFocus(i int) {
	if b.focusIdx >= 0 && b.focusIdx < len(b.buttons) {
		b.buttons[b.focusIdx].State = ButtonNormal
	}
	b.focusIdx = i
	b.buttons[i].State = ButtonFocused
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")).
		Background(lipgloss.Color("#313244")).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Background(lipgloss.Color("#181825")).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#b4befe")).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var renderedButtons []string
	for _, btn := range b.buttons {
		var rendered string
		switch btn.State {
		case ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		case ButtonFocused:
			rendered = focusedStyle.Render(btn.Label)
		default: // ButtonNormal
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	// Center the button bar
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreateBackNextButtons creates standard Back/Next button set.
// backEnabled: whether Back button is enabled
// nextLabel: custom label for next button (e.g., "Próximo", "Confirmar")
func CreateBackNextButtons(backEnabled bool, nextLabel string) []Button {
	buttons := make([]Button, 0, 2)

	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	buttons = append(buttons, Button{
		Label: "← Voltar",
		State: backState,
	})

	buttons = append(buttons, Button{
		Label: nextLabel,
		State: ButtonNormal,
	})

	return buttons
}
