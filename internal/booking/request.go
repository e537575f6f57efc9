package booking

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Request is the reservation-creation payload for POST /reservations/public.
type Request struct {
	RoomID        string `json:"roomId"`
	GuestName     string `json:"guestName"`
	GuestEmail    string `json:"guestEmail"`
	GuestPhone    string `json:"guestPhone"`
	GuestDocument string `json:"guestDocument"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Guests        int    `json:"guests"`
	Notes         string `json:"notes,omitempty"`
	ClientRef     string `json:"clientRef"`
}

// Confirmation is the created reservation record. Only the identifier is
// guaranteed; everything else is best-effort echo from the backend.
type Confirmation struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// NewRequest assembles the submission payload from wizard state. Check-in and
// check-out are sent as full ISO-8601 timestamps. The client reference is
// supplied by the caller and must stay the same across retries of the same
// reservation so the backend can deduplicate them.
func NewRequest(stay Stay, offer RoomOffer, guest Guest, clientRef string) Request {
	return Request{
		RoomID:        offer.ID,
		GuestName:     guest.Name,
		GuestEmail:    guest.Email,
		GuestPhone:    guest.Phone,
		GuestDocument: guest.Document,
		CheckIn:       stay.CheckInTime().UTC().Format(time.RFC3339),
		CheckOut:      stay.CheckOutTime().UTC().Format(time.RFC3339),
		Guests:        stay.Guests,
		Notes:         guest.Notes,
		ClientRef:     clientRef,
	}
}

// NewClientRef generates an idempotency token. Callers keep one token for the
// lifetime of an assembled reservation, across submission retries.
func NewClientRef() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fall back to a time-derived token; uniqueness per attempt is enough.
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(b[:])
}
