package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
	if req.BarberID == "" {
		return fmt.Errorf("%w: barber ID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
