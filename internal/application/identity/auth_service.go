package identity

import (
	"context"
	"errors"
	"time"

	"github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/domain/identity"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/auth"
	"github.com/expenze/backend/internal/infrastructure/mail"
	"go.uber.org/zap"
)

// AuthService handles registration, OTP verification, and login
type AuthService struct {
	userRepo         identity.UserRepository
	verificationRepo identity.VerificationRepository
	jwtService       *auth.JWTService
	sender           mail.Sender
	settings         *settings.Service
	logger           *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	verificationRepo identity.VerificationRepository,
	jwtService *auth.JWTService,
	sender mail.Sender,
	settingsService *settings.Service,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		jwtService:       jwtService,
		sender:           sender,
		settings:         settingsService,
		logger:           logger,
	}
}

// Register starts a registration: it stores a pending verification keyed
// by email (replacing any previous one) and sends the OTP asynchronously.
// The response does not wait for mail delivery.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegistrationStatusDTO, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, identity.ErrUserExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, identity.ErrUserExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	ttl := s.settings.Snapshot(ctx).OTPTimeout
	verification, err := identity.NewVerification(input.Username, input.Email, input.Phone, input.Password, ttl)
	if err != nil {
		return nil, err
	}

	if err := s.verificationRepo.Save(ctx, verification); err != nil {
		return nil, err
	}

	s.logger.Info("Registration started", zap.String("email", verification.Email))

	// Snapshot the response before handing the verification to the
	// delivery goroutine, which mutates its delivery fields.
	dto := toRegistrationStatusDTO(verification)
	go s.deliverOTP(verification, ttl)
	return &dto, nil
}

// ResendOTP issues a fresh code for a pending registration and resends it.
func (s *AuthService) ResendOTP(ctx context.Context, email string) (*RegistrationStatusDTO, error) {
	verification, err := s.verificationRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrNoPendingSignup
		}
		return nil, err
	}

	ttl := s.settings.Snapshot(ctx).OTPTimeout
	if err := verification.Refresh(ttl); err != nil {
		return nil, err
	}
	if err := s.verificationRepo.Update(ctx, verification); err != nil {
		return nil, err
	}

	s.logger.Info("OTP resent", zap.String("email", verification.Email))

	dto := toRegistrationStatusDTO(verification)
	go s.deliverOTP(verification, ttl)
	return &dto, nil
}

// RegistrationStatus reports delivery state for a pending registration,
// so the client can tell "mail failed" from "mail is on its way".
func (s *AuthService) RegistrationStatus(ctx context.Context, email string) (*RegistrationStatusDTO, error) {
	verification, err := s.verificationRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrNoPendingSignup
		}
		return nil, err
	}
	dto := toRegistrationStatusDTO(verification)
	return &dto, nil
}

// VerifyOTP confirms the code, promotes the pending registration into a
// user, deletes the pending record, and logs the new user in.
func (s *AuthService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*AuthResult, error) {
	verification, err := s.verificationRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrNoPendingSignup
		}
		return nil, err
	}

	if err := verification.Confirm(input.Code); err != nil {
		return nil, err
	}

	// The email or username may have been claimed since registration
	if _, err := s.userRepo.FindByEmail(ctx, verification.Email); err == nil {
		return nil, identity.ErrUserExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user := identity.NewUserFromVerification(verification)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.verificationRepo.DeleteByEmail(ctx, verification.Email); err != nil {
		s.logger.Warn("Failed to delete pending verification",
			zap.String("email", verification.Email), zap.Error(err))
	}

	s.logger.Info("User verified and created",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return s.issueTokens(user)
}

// Login authenticates a verified user by email and password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, identity.ErrInvalidCredentials
	}

	s.logger.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.WrapDomainError("ERR_INVALID_TOKEN", "invalid refresh token", err)
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.WrapDomainError("ERR_INVALID_TOKEN", "invalid refresh token", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *identity.User) (*AuthResult, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, shared.WrapDomainError("ERR_TOKEN_GENERATE", "failed to generate tokens", err)
	}
	return &AuthResult{User: toUserDTO(user), Tokens: tokens}, nil
}

// deliverOTP sends the code and records the outcome. It runs detached
// from the request, so it uses its own context and deadline.
func (s *AuthService) deliverOTP(v *identity.Verification, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.sender.Send(v.Email, "Your verification code", mail.OTPBody(v.OTPCode, ttl))
	if err != nil {
		v.MarkFailed(err.Error())
	} else {
		v.MarkSent()
	}

	if updateErr := s.verificationRepo.Update(ctx, v); updateErr != nil {
		s.logger.Error("Failed to record OTP delivery status",
			zap.String("email", v.Email), zap.Error(updateErr))
	}
}
