package convert

import (
	"context"

	"github.com/ytget/vegascon/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionResult))
	Convert(ctx context.Context, req model.ConversionRequest) (*model.ConversionResult, error)
	StartConversion(req model.ConversionRequest) (*model.ConversionResult, error)
	CancelConversion() error
	IsRunning() bool
	Executable() string
	SetExecutable(executable string)
}
