package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pousadamaresia/maresia/internal/config"
	"github.com/pousadamaresia/maresia/internal/tui/bookwizard"
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Book a stay via the interactive reservation wizard",
	Long: `Book a stay via the interactive reservation wizard.

The wizard walks through four steps: stay dates and party size, room
selection from live availability, guest contact data, and a final
confirmation screen with an optional receipt file.

Configuration is loaded from multiple sources with the following precedence:
  Environment variables > Project config > Global config > Defaults

Project config: ./maresia.yml
Global config: ~/.config/maresia/maresia.yml`,
	RunE: runReserve,
}

func runReserve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := bookwizard.Run(cfg); err != nil {
		return err
	}

	return nil
}
