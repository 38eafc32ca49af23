package search_barbers

import (
	"context"

	usecase "github.com/cortate-cl/CTC-BarberService/internal/usecase/search_barbers"
)

type SearchUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
