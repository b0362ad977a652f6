package profile

import "context"

// ProfileRepo defines persistence operations for the singleton profile.
type ProfileRepo interface {
	Get(ctx context.Context) (Profile, error)
	Put(ctx context.Context, p Profile) error
}
