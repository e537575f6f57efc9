// Package booking holds the reservation domain model: normalized room
// offers, stay derivations (nights, totals) and the validation rules the
// wizard gates on. It is kept free of TUI dependencies so the flow logic
// stays testable on its own.
package booking

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RoomOffer is a normalized, display-ready view of a bookable room for a
// specific date range.
type RoomOffer struct {
	ID            string
	Number        string
	Type          string
	Capacity      int
	PricePerNight float64
	Description   string
	Status        string
}

// rawRoom mirrors the backend room record. The price arrives under one of
// two field names depending on backend version, each either a number or a
// numeric string, so both are captured raw and resolved once at decode time.
type rawRoom struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	Capacity      *int            `json:"capacity"`
	PricePerNight json.RawMessage `json:"pricePerNight"`
	DailyRate     json.RawMessage `json:"dailyRate"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
}

// DecodeRooms parses the availability response body into normalized offers.
// Malformed prices normalize to 0 silently; other fields get the backend's
// documented defaults when absent.
func DecodeRooms(data []byte) ([]RoomOffer, error) {
	var raw []rawRoom
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	offers := make([]RoomOffer, 0, len(raw))
	for _, r := range raw {
		offer := RoomOffer{
			ID:            r.ID,
			Number:        r.Number,
			Type:          r.Type,
			Capacity:      1,
			PricePerNight: resolvePrice(r.PricePerNight, r.DailyRate),
			Description:   r.Description,
			Status:        r.Status,
		}
		if r.Capacity != nil {
			offer.Capacity = *r.Capacity
		}
		if offer.Type == "" {
			offer.Type = "STANDARD"
		}
		if offer.Status == "" {
			offer.Status = "LIVRE"
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// resolvePrice picks the first field that parses to a finite number.
// Unresolvable values default to 0; the backend owns price correctness and a
// missing price must not fail the whole listing.
func resolvePrice(candidates ...json.RawMessage) float64 {
	for _, c := range candidates {
		if len(c) == 0 || string(c) == "null" {
			continue
		}
		if v, ok := parsePrice(c); ok {
			return v
		}
	}
	return 0
}

func parsePrice(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FilterOffers keeps offers with capacity for the whole party, then applies
// the room type hint as a soft preference: when no offer matches the hint the
// capacity-filtered list is returned unchanged rather than an empty list.
func FilterOffers(offers []RoomOffer, guests int, typeHint string) []RoomOffer {
	byCapacity := make([]RoomOffer, 0, len(offers))
	for _, o := range offers {
		if o.Capacity >= guests {
			byCapacity = append(byCapacity, o)
		}
	}

	hint := strings.TrimSpace(typeHint)
	if hint == "" {
		return byCapacity
	}

	byType := make([]RoomOffer, 0, len(byCapacity))
	for _, o := range byCapacity {
		if strings.EqualFold(o.Type, hint) {
			byType = append(byType, o)
		}
	}
	if len(byType) == 0 {
		return byCapacity
	}
	return byType
}

// FindOffer resolves a room id against an offer list. Selection is stored as
// an id, never a copy, so it can be re-resolved after every fresh fetch.
func FindOffer(offers []RoomOffer, id string) *RoomOffer {
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i]
		}
	}
	return nil
}

// TotalPrice is the stay total for an offer: nights times the nightly rate,
// 0 when no room is selected.
func TotalPrice(offer *RoomOffer, nights int) float64 {
	if offer == nil || nights < 0 {
		return 0
	}
	return float64(nights) * offer.PricePerNight
}
