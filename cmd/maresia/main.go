package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pousadamaresia/maresia/internal/logger"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
)

const (
	logoText1 = "█▀▄▀█ ▄▀█ █▀█ █▀▀ █▀ █ ▄▀█"
	logoText2 = "█ ▀ █ █▀█ █▀▄ ██▄ ▄█ █ █▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maresia",
	Short: "Terminal booking client for Pousada Maresia",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

maresia is the terminal front door of the Pousada Maresia booking system.
It talks to the pousada's REST backend and guides a guest through the
public reservation flow: dates, room selection, contact data and a final
confirmation, in a full-screen Bubbletea v2 wizard.

All business rules (availability, pricing, double-booking prevention)
live server-side; maresia only presents them.`

	rootCmd.AddCommand(reserveCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(setupCmd)
}
