package bookwizard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/pousadamaresia/maresia/internal/booking"
)

// Receipt is the on-disk record of a confirmed reservation.
type Receipt struct {
	ReservationID string  `yaml:"reservation_id"`
	Status        string  `yaml:"status,omitempty"`
	GuestName     string  `yaml:"guest_name"`
	GuestEmail    string  `yaml:"guest_email"`
	GuestPhone    string  `yaml:"guest_phone"`
	GuestDocument string  `yaml:"guest_document,omitempty"`
	CheckIn       string  `yaml:"check_in"`
	CheckOut      string  `yaml:"check_out"`
	Nights        int     `yaml:"nights"`
	Guests        int     `yaml:"guests"`
	RoomNumber    string  `yaml:"room_number"`
	RoomType      string  `yaml:"room_type"`
	PricePerNight float64 `yaml:"price_per_night"`
	Total         float64 `yaml:"total"`
	Notes         string  `yaml:"notes,omitempty"`
}

// SaveReceipt writes the confirmation to dir as YAML, named after the guest
// and the reservation id. Returns the written path.
func SaveReceipt(dir string, conf booking.Confirmation, stay booking.Stay, offer booking.RoomOffer, guest booking.Guest) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating receipt directory: %w", err)
	}

	name := slug.Make(guest.Name)
	if name == "" {
		name = "reserva"
	}
	ref := slug.Make(conf.ID)
	if ref == "" {
		ref = "sem-codigo"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.yml", name, ref))

	nights := stay.Nights()
	receipt := Receipt{
		ReservationID: conf.ID,
		Status:        conf.Status,
		GuestName:     guest.Name,
		GuestEmail:    guest.Email,
		GuestPhone:    guest.Phone,
		GuestDocument: guest.Document,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Nights:        nights,
		Guests:        stay.Guests,
		RoomNumber:    offer.Number,
		RoomType:      offer.Type,
		PricePerNight: offer.PricePerNight,
		Total:         booking.TotalPrice(&offer, nights),
		Notes:         guest.Notes,
	}

	data, err := yaml.Marshal(receipt)
	if err != nil {
		return "", fmt.Errorf("marshaling receipt: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing receipt: %w", err)
	}

	return path, nil
}
