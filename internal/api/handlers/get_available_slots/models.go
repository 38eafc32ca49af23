package get_available_slots

import (
	"time"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable slot.
type SlotResponse struct {
	Time      string `json:"time"`     // "10:00"
	DateTime  string `json:"dateTime"` // RFC3339
	Available bool   `json:"available"`
}

// SlotsResponse is the endpoint payload.
type SlotsResponse struct {
	BarberID string         `json:"barberId"`
	Date     string         `json:"date"` // "2025-10-15"
	Slots    []SlotResponse `json:"slots"`
}

func toResponse(resp *usecase.Response) *SlotsResponse {
	out := &SlotsResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Time:      slot.Time.String(),
			DateTime:  slot.DateTime.Format(time.RFC3339),
			Available: slot.Available,
		})
	}

	return out
}
