package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists verified accounts.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VerificationRepository holds pending registrations keyed by email.
// Save replaces any existing record for the same email.
type VerificationRepository interface {
	Save(ctx context.Context, v *Verification) error
	FindByEmail(ctx context.Context, email string) (*Verification, error)
	Update(ctx context.Context, v *Verification) error
	DeleteByEmail(ctx context.Context, email string) error
}

// EmailChangeRepository holds at most one pending email change per user.
type EmailChangeRepository interface {
	Save(ctx context.Context, r *EmailChangeRequest) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*EmailChangeRequest, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
