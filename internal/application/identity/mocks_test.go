package identity

import (
	"context"
	"sync"

	appsettings "github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/domain/identity"
	domainsettings "github.com/expenze/backend/internal/domain/settings"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*identity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockVerificationRepo struct {
	mock.Mock
}

func (m *mockVerificationRepo) Save(ctx context.Context, v *identity.Verification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVerificationRepo) FindByEmail(ctx context.Context, email string) (*identity.Verification, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Verification), args.Error(1)
}

func (m *mockVerificationRepo) Update(ctx context.Context, v *identity.Verification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVerificationRepo) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockEmailChangeRepo struct {
	mock.Mock
}

func (m *mockEmailChangeRepo) Save(ctx context.Context, r *identity.EmailChangeRequest) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockEmailChangeRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.EmailChangeRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.EmailChangeRequest), args.Error(1)
}

func (m *mockEmailChangeRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// recordingSender captures sent mail and signals each send so tests can
// wait for the fire-and-forget delivery goroutine.
type recordingSender struct {
	mu   sync.Mutex
	sent []sentMail
	done chan struct{}
	err  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{done: make(chan struct{}, 8)}
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *recordingSender) last() sentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent[len(s.sent)-1]
}

// emptySettingsRepo backs a settings service that always reports
// defaults.
type emptySettingsRepo struct{}

func (emptySettingsRepo) List(ctx context.Context) ([]*domainsettings.Setting, error) {
	return nil, nil
}

func (emptySettingsRepo) FindByKey(ctx context.Context, key string) (*domainsettings.Setting, error) {
	return nil, shared.ErrNotFound
}

func (emptySettingsRepo) Upsert(ctx context.Context, s *domainsettings.Setting) error {
	return nil
}

func defaultSettingsService() *appsettings.Service {
	return appsettings.NewService(emptySettingsRepo{}, zap.NewNop())
}
