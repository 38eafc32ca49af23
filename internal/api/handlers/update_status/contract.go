package update_status

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
