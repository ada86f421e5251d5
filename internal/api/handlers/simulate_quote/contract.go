package simulate_quote

import (
	"context"

	simulateQuote "github.com/m04kA/MRV-PricingService/internal/usecase/simulate_quote"
)

type SimulateQuoteUseCase interface {
	Execute(ctx context.Context, req *simulateQuote.Request) (*simulateQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
