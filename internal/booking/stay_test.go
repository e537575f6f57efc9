package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStay_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-06-01", "2025-06-04", 3},
		{"one night", "2025-06-01", "2025-06-02", 1},
		{"same day", "2025-06-01", "2025-06-01", 0},
		{"checkout before checkin", "2025-06-04", "2025-06-01", 0},
		{"across month boundary", "2025-06-28", "2025-07-02", 4},
		{"empty dates", "", "", 0},
		{"garbage dates", "not-a-date", "2025-06-04", 0},
		{"whitespace tolerated", " 2025-06-01 ", " 2025-06-03 ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stay{CheckIn: tt.checkIn, CheckOut: tt.checkOut, Guests: 2}
			require.Equal(t, tt.want, s.Nights())
		})
	}
}

func TestStay_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stay    Stay
		wantErr error
	}{
		{"valid", Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2}, nil},
		{"missing check-in", Stay{CheckOut: "2025-06-04"}, ErrMissingDates},
		{"missing check-out", Stay{CheckIn: "2025-06-01"}, ErrMissingDates},
		{"blank dates", Stay{CheckIn: "  ", CheckOut: "  "}, ErrMissingDates},
		{"equal dates", Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-01"}, ErrInvalidRange},
		{"inverted range", Stay{CheckIn: "2025-06-04", CheckOut: "2025-06-01"}, ErrInvalidRange},
		{"unparseable date", Stay{CheckIn: "2025-06-01", CheckOut: "soon"}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stay.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStay_Fingerprint(t *testing.T) {
	a := Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2}
	same := Stay{CheckIn: " 2025-06-01", CheckOut: "2025-06-04 ", Guests: 2}
	differentDates := Stay{CheckIn: "2025-06-02", CheckOut: "2025-06-04", Guests: 2}
	differentParty := Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 3}

	require.Equal(t, a.Fingerprint(), same.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), differentDates.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), differentParty.Fingerprint())
}

func TestClampGuests(t *testing.T) {
	require.Equal(t, 1, ClampGuests(0))
	require.Equal(t, 1, ClampGuests(-3))
	require.Equal(t, 1, ClampGuests(1))
	require.Equal(t, 4, ClampGuests(4))
	require.Equal(t, 6, ClampGuests(6))
	require.Equal(t, 6, ClampGuests(10))
}

func TestGuest_Validate(t *testing.T) {
	valid := Guest{Name: "Joana Silva", Email: "joana@example.com", Phone: "11 99999-0000"}
	require.NoError(t, valid.Validate())

	// Document and notes are optional.
	require.NoError(t, Guest{Name: "a", Email: "b", Phone: "c"}.Validate())

	require.ErrorIs(t, Guest{Email: "b", Phone: "c"}.Validate(), ErrMissingFields)
	require.ErrorIs(t, Guest{Name: "a", Phone: "c"}.Validate(), ErrMissingFields)
	require.ErrorIs(t, Guest{Name: "a", Email: "b"}.Validate(), ErrMissingFields)
	require.ErrorIs(t, Guest{Name: "  ", Email: "b", Phone: "c"}.Validate(), ErrMissingFields)
}

func TestNewRequest(t *testing.T) {
	stay := Stay{CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2}
	offer := RoomOffer{ID: "room-1", Number: "101", PricePerNight: 250}
	guest := Guest{Name: "Joana", Email: "j@example.com", Phone: "11 9", Document: "123", Notes: "chegada tarde"}

	req := NewRequest(stay, offer, guest, "ref-abc")

	require.Equal(t, "room-1", req.RoomID)
	require.Equal(t, "Joana", req.GuestName)
	require.Equal(t, 2, req.Guests)
	require.Equal(t, "chegada tarde", req.Notes)
	require.Equal(t, "ref-abc", req.ClientRef)

	// Timestamps must be full ISO-8601, parseable back to the stay bounds.
	in, err := time.Parse(time.RFC3339, req.CheckIn)
	require.NoError(t, err)
	out, err := time.Parse(time.RFC3339, req.CheckOut)
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, out.Sub(in))
}

func TestNewClientRef_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewClientRef()
		require.NotEmpty(t, ref)
		require.False(t, seen[ref], "client refs must not repeat")
		seen[ref] = true
	}
}

func TestFormatBRL(t *testing.T) {
	require.Equal(t, "R$ 250,00", FormatBRL(250))
	require.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	require.Equal(t, "R$ 0,00", FormatBRL(0))
	require.Equal(t, "R$ 999,90", FormatBRL(999.9))
	require.Equal(t, "R$ 1.000.000,00", FormatBRL(1000000))
	require.Equal(t, "-R$ 10,50", FormatBRL(-10.5))
}
