package identity

import (
	"context"
	"fmt"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/infrastructure/mail"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOtpRepository is a mock implementation of identity.OtpRepository
type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) Save(ctx context.Context, code *identity.OtpCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockOtpRepository) FindValid(ctx context.Context, email, code string) (*identity.OtpCode, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.OtpCode), args.Error(1)
}

func (m *MockOtpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOtpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeSessionStore is an in-memory SessionStore for exercising the full
// login and impersonation flows
type fakeSessionStore struct {
	sessions map[string]identity.Session
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]identity.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, sess *identity.Session) (string, error) {
	f.next++
	id := fmt.Sprintf("sess-%d", f.next)
	f.sessions[id] = *sess
	return id, nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*identity.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, shared.ErrUnauthorized
	}
	copied := sess
	return &copied, nil
}

func (f *fakeSessionStore) Update(_ context.Context, id string, sess *identity.Session) error {
	if _, ok := f.sessions[id]; !ok {
		return shared.ErrUnauthorized
	}
	f.sessions[id] = *sess
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// recordingMailer captures outbound messages
type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (r *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}
