package update_availability

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
