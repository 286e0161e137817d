package identity

import (
	"context"
	"testing"
	"time"

	"github.com/expenze/backend/internal/domain/identity"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/auth"
	"github.com/expenze/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-test-secret-test-secret!",
		AccessTokenExpiration:  24 * time.Hour,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "expenze-test",
	})
}

func newAuthFixture() (*AuthService, *mockUserRepo, *mockVerificationRepo, *recordingSender) {
	userRepo := new(mockUserRepo)
	verificationRepo := new(mockVerificationRepo)
	sender := newRecordingSender()
	svc := NewAuthService(userRepo, verificationRepo, newTestJWTService(), sender, defaultSettingsService(), zap.NewNop())
	return svc, userRepo, verificationRepo, sender
}

func waitForDelivery(t *testing.T, sender *recordingSender) {
	t.Helper()
	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("OTP delivery goroutine did not run")
	}
}

func TestRegister(t *testing.T) {
	svc, userRepo, verificationRepo, sender := newAuthFixture()

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("FindByUsername", mock.Anything, "bob").Return(nil, shared.ErrNotFound)
	verificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	verificationRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	status, err := svc.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "Bob@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", status.Email)
	assert.Equal(t, string(identity.DeliveryPending), status.DeliveryStatus)

	waitForDelivery(t, sender)
	assert.Equal(t, "bob@example.com", sender.last().To)
	verificationRepo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegisterRejectsExistingUser(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture()

	existing, err := identity.NewUser("bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(existing, nil)

	_, err = svc.Register(context.Background(), RegisterInput{
		Username: "bob2",
		Email:    "bob@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, identity.ErrUserExists)
}

func TestVerifyOTP(t *testing.T) {
	svc, userRepo, verificationRepo, _ := newAuthFixture()

	verification, err := identity.NewVerification("bob", "bob@example.com", "", "secret1", 2*time.Minute)
	require.NoError(t, err)

	verificationRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(verification, nil)
	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
		return u.Email == "bob@example.com" && u.IsVerified
	})).Return(nil)
	verificationRepo.On("DeleteByEmail", mock.Anything, "bob@example.com").Return(nil)

	result, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{
		Email: "bob@example.com",
		Code:  verification.OTPCode,
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", result.User.Username)
	assert.NotEmpty(t, result.Tokens.AccessToken)

	// the pending record is gone once verified
	verificationRepo.AssertCalled(t, "DeleteByEmail", mock.Anything, "bob@example.com")
	userRepo.AssertExpectations(t)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, verificationRepo, _ := newAuthFixture()

	verification, err := identity.NewVerification("bob", "bob@example.com", "", "secret1", 2*time.Minute)
	require.NoError(t, err)
	verificationRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(verification, nil)

	wrong := "000000"
	if verification.OTPCode == wrong {
		wrong = "000001"
	}
	_, err = svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "bob@example.com", Code: wrong})
	assert.ErrorIs(t, err, identity.ErrInvalidOTP)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, _, verificationRepo, _ := newAuthFixture()

	verification, err := identity.NewVerification("bob", "bob@example.com", "", "secret1", -time.Minute)
	require.NoError(t, err)
	verificationRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(verification, nil)

	_, err = svc.VerifyOTP(context.Background(), VerifyOTPInput{
		Email: "bob@example.com",
		Code:  verification.OTPCode,
	})
	assert.ErrorIs(t, err, identity.ErrOTPExpired)
}

func TestVerifyOTPNoPending(t *testing.T) {
	svc, _, verificationRepo, _ := newAuthFixture()
	verificationRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "ghost@example.com", Code: "123456"})
	assert.ErrorIs(t, err, identity.ErrNoPendingSignup)
}

func TestResendOTPIssuesNewCode(t *testing.T) {
	svc, _, verificationRepo, sender := newAuthFixture()

	verification, err := identity.NewVerification("bob", "bob@example.com", "", "secret1", 2*time.Minute)
	require.NoError(t, err)
	verification.MarkFailed("smtp timeout")
	oldCode := verification.OTPCode

	verificationRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(verification, nil)
	verificationRepo.On("Update", mock.Anything, verification).Return(nil)

	status, err := svc.ResendOTP(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, string(identity.DeliveryPending), status.DeliveryStatus)

	waitForDelivery(t, sender)
	assert.NotContains(t, sender.last().Body, oldCode, "resend must not reuse the old code")
}

func TestLogin(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture()

	user, err := identity.NewUser("bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)

	result, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", result.User.Username)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	_, err = svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture()
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture()

	user, err := identity.NewUser("bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), refreshed.User.ID)

	_, err = svc.Refresh(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestRegisterStatusDeliveryFailure(t *testing.T) {
	userRepo := new(mockUserRepo)
	verificationRepo := new(mockVerificationRepo)
	sender := newRecordingSender()
	sender.err = assert.AnError
	svc := NewAuthService(userRepo, verificationRepo, newTestJWTService(), sender, defaultSettingsService(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("FindByUsername", mock.Anything, "bob").Return(nil, shared.ErrNotFound)
	verificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	updated := make(chan *identity.Verification, 1)
	verificationRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated <- args.Get(1).(*identity.Verification)
	}).Return(nil)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	waitForDelivery(t, sender)
	select {
	case v := <-updated:
		assert.Equal(t, identity.DeliveryFailed, v.DeliveryStatus)
		assert.NotEmpty(t, v.DeliveryError)
	case <-time.After(2 * time.Second):
		t.Fatal("delivery status was never recorded")
	}
}

// gatedSender holds delivery until released so tests can pin down the
// ordering between the response and the delivery goroutine.
type gatedSender struct {
	release chan struct{}
}

func (s *gatedSender) Send(to, subject, body string) error {
	<-s.release
	return nil
}

func TestRegisterResponseIsDeliverySnapshot(t *testing.T) {
	userRepo := new(mockUserRepo)
	verificationRepo := new(mockVerificationRepo)
	sender := &gatedSender{release: make(chan struct{})}
	svc := NewAuthService(userRepo, verificationRepo, newTestJWTService(), sender, defaultSettingsService(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("FindByUsername", mock.Anything, "bob").Return(nil, shared.ErrNotFound)
	verificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	updated := make(chan *identity.Verification, 1)
	verificationRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated <- args.Get(1).(*identity.Verification)
	}).Return(nil)

	status, err := svc.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	// The response is built before delivery runs, so it always reads
	// pending; the sent/failed outcome lands in the stored record only.
	assert.Equal(t, string(identity.DeliveryPending), status.DeliveryStatus)

	close(sender.release)
	select {
	case v := <-updated:
		assert.Equal(t, identity.DeliverySent, v.DeliveryStatus)
	case <-time.After(2 * time.Second):
		t.Fatal("delivery status was never recorded")
	}
	assert.Equal(t, string(identity.DeliveryPending), status.DeliveryStatus)
}
