package get_barber

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	GetByID(ctx context.Context, barberID string) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
