package ports

import "context"

// AIFSource loads a raw arterial signal, one sample per observed time point.
type AIFSource interface {
	Load(ctx context.Context, ref string) ([]float64, error)
}
