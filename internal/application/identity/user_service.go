package identity

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/domain/identity"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/mail"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles profile management and admin user operations
type UserService struct {
	userRepo        identity.UserRepository
	emailChangeRepo identity.EmailChangeRepository
	sender          mail.Sender
	settings        *settings.Service
	logger          *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	emailChangeRepo identity.EmailChangeRepository,
	sender mail.Sender,
	settingsService *settings.Service,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		emailChangeRepo: emailChangeRepo,
		sender:          sender,
		settings:        settingsService,
		logger:          logger,
	}
}

// GetProfile returns the caller's own profile
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

// UpdateProfile updates phone and default budget. Email changes go
// through the OTP flow instead.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(input.Phone, input.DefaultBudget); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

// RequestEmailChange sends an OTP to the new address. The change only
// takes effect after VerifyEmailChange.
func (s *UserService) RequestEmailChange(ctx context.Context, userID uuid.UUID, input RequestEmailChangeInput) error {
	if _, err := s.userRepo.FindByEmail(ctx, input.NewEmail); err == nil {
		return identity.ErrEmailTaken
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	ttl := s.settings.Snapshot(ctx).OTPTimeout
	request, err := identity.NewEmailChangeRequest(userID, input.NewEmail, ttl)
	if err != nil {
		return err
	}
	if err := s.emailChangeRepo.Save(ctx, request); err != nil {
		return err
	}

	s.logger.Info("Email change requested", zap.String("user_id", userID.String()))
	go func() {
		if err := s.sender.Send(request.NewEmail, "Confirm your new email", mail.OTPBody(request.OTPCode, ttl)); err != nil {
			s.logger.Warn("Email change OTP delivery failed",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
	}()
	return nil
}

// VerifyEmailChange confirms the OTP and applies the new address.
func (s *UserService) VerifyEmailChange(ctx context.Context, userID uuid.UUID, input VerifyEmailChangeInput) (*UserDTO, error) {
	request, err := s.emailChangeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrNoPendingChange
		}
		return nil, err
	}
	if err := request.Confirm(input.Code); err != nil {
		return nil, err
	}

	// Re-check: the address may have been registered while pending
	if _, err := s.userRepo.FindByEmail(ctx, request.NewEmail); err == nil {
		return nil, identity.ErrEmailTaken
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.ChangeEmail(request.NewEmail); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.emailChangeRepo.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Warn("Failed to delete email change request",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	s.logger.Info("Email changed",
		zap.String("user_id", userID.String()),
		zap.String("email", user.Email))
	dto := toUserDTO(user)
	return &dto, nil
}

// ListUsers returns all users. Admin only.
func (s *UserService) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]UserDTO, len(users))
	for i, user := range users {
		result[i] = toUserDTO(user)
	}
	return result, nil
}

// AdminUpdateUser changes role and verified flag. Admin only.
func (s *UserService) AdminUpdateUser(ctx context.Context, userID uuid.UUID, input AdminUpdateUserInput) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.Role != nil {
		if err := user.SetRole(identity.Role(*input.Role)); err != nil {
			return nil, err
		}
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
		user.Touch()
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	dto := toUserDTO(user)
	return &dto, nil
}

// AdminDeleteUser removes a user. Admins cannot delete themselves.
func (s *UserService) AdminDeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return identity.ErrSelfDeleteForbidden
	}
	return s.userRepo.Delete(ctx, userID)
}

// EnsureAdmin creates or repairs the default admin account at startup.
// Without a password nothing is seeded.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if password == "" {
		s.logger.Info("Admin seed skipped, no password configured")
		return nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return nil
		}
		if err := existing.SetRole(identity.RoleAdmin); err != nil {
			return err
		}
		s.logger.Info("Promoted existing user to admin", zap.String("email", email))
		return s.userRepo.Update(ctx, existing)
	case errors.Is(err, shared.ErrNotFound):
		admin, err := identity.NewUser(username, email, password)
		if err != nil {
			return err
		}
		if err := admin.SetRole(identity.RoleAdmin); err != nil {
			return err
		}
		s.logger.Info("Seeded default admin", zap.String("email", email))
		return s.userRepo.Save(ctx, admin)
	default:
		return err
	}
}
