package samples

import "context"

// SamplesRepo defines persistence operations for writing samples.
type SamplesRepo interface {
	Create(ctx context.Context, sample Sample) error
	List(ctx context.Context) ([]Sample, error)
	Delete(ctx context.Context, id string) error
}
