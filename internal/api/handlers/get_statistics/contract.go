package get_statistics

import (
	"context"

	"github.com/cortate-cl/CTC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	GetStatistics(ctx context.Context, userID string) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
