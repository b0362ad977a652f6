package contacts

import "context"

// ContactsRepo defines persistence operations for contacts.
type ContactsRepo interface {
	Create(ctx context.Context, contact Contact) error
	GetByID(ctx context.Context, id string) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, contact Contact) error
	Delete(ctx context.Context, id string) error
}
