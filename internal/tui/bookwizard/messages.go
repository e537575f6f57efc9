package bookwizard

import "github.com/pousadamaresia/maresia/internal/booking"

// DatesSubmittedMsg is sent when the dates step passes validation.
type DatesSubmittedMsg struct {
	Stay booking.Stay
}

// RoomsLoadedMsg is sent when the availability fetch finishes. Offers arrive
// already normalized and filtered for the party size and type hint.
type RoomsLoadedMsg struct {
	Offers []booking.RoomOffer
}

// RoomsErrorMsg is sent when the availability fetch fails.
type RoomsErrorMsg struct {
	Err error
}

// RetryFetchMsg is sent when the user retries a failed availability fetch.
type RetryFetchMsg struct{}

// RoomSelectedMsg is sent when the user picks a room from the list.
type RoomSelectedMsg struct {
	RoomID string
}

// ChangeDatesMsg is sent from the empty-availability state; the wizard
// retreats to the dates step.
type ChangeDatesMsg struct{}

// GuestSubmittedMsg is sent when the guest form passes validation.
type GuestSubmittedMsg struct {
	Guest booking.Guest
}

// ReservationCreatedMsg is sent when the reservation was accepted.
type ReservationCreatedMsg struct {
	Confirmation booking.Confirmation
}

// SubmitErrorMsg is sent when the reservation submission fails. The user
// stays on the guest step and may retry.
type SubmitErrorMsg struct {
	Err error
}

// NotesEditedMsg is sent when the external editor returns with new notes.
type NotesEditedMsg struct {
	Content string
}

// ReceiptSavedMsg is sent when the confirmation receipt was written to disk.
type ReceiptSavedMsg struct {
	Path string
}

// ReceiptErrorMsg is sent when writing the receipt fails.
type ReceiptErrorMsg struct {
	Err error
}
