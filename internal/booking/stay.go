package booking

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Guest count bounds enforced by the public funnel.
const (
	MinGuests = 1
	MaxGuests = 6
)

// ValidationError is a user-recoverable input error. The wizard shows it
// inline and keeps the user on the current step; no request is made.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// User-facing validation messages, matching the public funnel's wording.
const (
	ErrMissingDates  = ValidationError("Selecione as datas de check-in e check-out")
	ErrInvalidRange  = ValidationError("A data de check-out deve ser posterior à data de check-in")
	ErrNoRoom        = ValidationError("Selecione um quarto")
	ErrMissingFields = ValidationError("Preencha todos os campos obrigatórios")
)

// Stay captures the date range and party size entered on the first step.
// Dates are kept as YYYY-MM-DD strings, the form's native shape.
type Stay struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

// Validate gates the Dates→Rooms transition. It is the only place range
// validity is enforced; the inputs themselves accept anything while typing.
func (s Stay) Validate() error {
	if strings.TrimSpace(s.CheckIn) == "" || strings.TrimSpace(s.CheckOut) == "" {
		return ErrMissingDates
	}
	if s.Nights() < 1 {
		return ErrInvalidRange
	}
	return nil
}

// Nights derives the night count: ceil of the day difference, floored at 0.
// Unparseable dates count as 0 nights and fail range validation upstream.
func (s Stay) Nights() int {
	in, err := time.Parse(dateLayout, strings.TrimSpace(s.CheckIn))
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, strings.TrimSpace(s.CheckOut))
	if err != nil {
		return 0
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// Fingerprint identifies the inputs that produced an availability fetch.
// A room selection is only valid for the fingerprint it was made under.
func (s Stay) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%d", strings.TrimSpace(s.CheckIn), strings.TrimSpace(s.CheckOut), s.Guests)
}

// CheckInTime and CheckOutTime return the stay bounds as timestamps for the
// reservation payload. They assume Validate has passed.
func (s Stay) CheckInTime() time.Time {
	t, _ := time.Parse(dateLayout, strings.TrimSpace(s.CheckIn))
	return t
}

func (s Stay) CheckOutTime() time.Time {
	t, _ := time.Parse(dateLayout, strings.TrimSpace(s.CheckOut))
	return t
}

// ClampGuests bounds a party size to the funnel's allowed range.
func ClampGuests(n int) int {
	if n < MinGuests {
		return MinGuests
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}

// Guest holds the contact data collected on the third step. Only presence is
// checked client-side; format rules live in the backend.
type Guest struct {
	Name     string
	Email    string
	Phone    string
	Document string
	Notes    string
}

// Validate gates the Guest→Confirmation transition.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" ||
		strings.TrimSpace(g.Email) == "" ||
		strings.TrimSpace(g.Phone) == "" {
		return ErrMissingFields
	}
	return nil
}
