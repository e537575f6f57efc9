package main

import (
	"context"
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/pousadamaresia/maresia/internal/api"
	"github.com/pousadamaresia/maresia/internal/booking"
	"github.com/pousadamaresia/maresia/internal/config"
	"github.com/pousadamaresia/maresia/internal/tui/theme"
)

var roomsFlags struct {
	checkIn  string
	checkOut string
	guests   int
	roomType string
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List available rooms for a date range",
	Long: `List available rooms for a date range without entering the wizard.

Results are filtered by party size; the room type is a soft preference
and is ignored when no available room matches it.`,
	Example: `  maresia rooms --check-in 2025-06-01 --check-out 2025-06-04
  maresia rooms --check-in 2025-06-01 --check-out 2025-06-04 --guests 4 --type LUXO`,
	RunE: runRooms,
}

func init() {
	roomsCmd.Flags().StringVar(&roomsFlags.checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	roomsCmd.Flags().StringVar(&roomsFlags.checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	roomsCmd.Flags().IntVar(&roomsFlags.guests, "guests", 0, "Party size (defaults to config)")
	roomsCmd.Flags().StringVar(&roomsFlags.roomType, "type", "", "Preferred room type (defaults to config)")
	_ = roomsCmd.MarkFlagRequired("check-in")
	_ = roomsCmd.MarkFlagRequired("check-out")
}

func runRooms(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	guests := roomsFlags.guests
	if guests == 0 {
		guests = cfg.DefaultGuests
	}
	typeHint := roomsFlags.roomType
	if typeHint == "" {
		typeHint = cfg.RoomType
	}

	stay := booking.Stay{
		CheckIn:  roomsFlags.checkIn,
		CheckOut: roomsFlags.checkOut,
		Guests:   booking.ClampGuests(guests),
	}
	if err := stay.Validate(); err != nil {
		return err
	}

	client := api.New(cfg.APIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	offers, err := client.AvailableRooms(context.Background(), stay)
	if err != nil {
		return fmt.Errorf("fetching availability: %w", err)
	}
	offers = booking.FilterOffers(offers, stay.Guests, typeHint)

	t := theme.Current()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))

	nights := stay.Nights()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Quartos disponíveis · %s → %s · %d noite(s)", stay.CheckIn, stay.CheckOut, nights)))
	fmt.Println()

	if len(offers) == 0 {
		fmt.Println(mutedStyle.Render("Nenhum quarto disponível para as datas selecionadas."))
		return nil
	}

	for _, offer := range offers {
		fmt.Printf("  Quarto %s · %s · até %d hóspede(s)\n", offer.Number, offer.Type, offer.Capacity)
		fmt.Printf("    %s\n", priceStyle.Render(fmt.Sprintf("%s/noite · %s no total",
			booking.FormatBRL(offer.PricePerNight),
			booking.FormatBRL(booking.TotalPrice(&offer, nights)))))
		if offer.Description != "" {
			fmt.Printf("    %s\n", mutedStyle.Render(offer.Description))
		}
		fmt.Println()
	}

	fmt.Println(mutedStyle.Render("Use 'maresia reserve' para concluir uma reserva."))
	return nil
}
