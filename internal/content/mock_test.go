package content

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"portfolio-site/internal/database"
	"portfolio-site/internal/model"
)

// MockQuerier is a mock type for the database.TxQuerier interface.
// Methods a test does not expect panic through the nil embedded interface.
type MockQuerier struct {
	mock.Mock
	database.Querier
}

func (m *MockQuerier) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *MockQuerier) ListProjects(ctx context.Context) ([]database.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Project), args.Error(1)
}

func (m *MockQuerier) ListProjectsByCategory(ctx context.Context, category string) ([]database.Project, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]database.Project), args.Error(1)
}

func (m *MockQuerier) ListFeaturedProjects(ctx context.Context) ([]database.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Project), args.Error(1)
}

func (m *MockQuerier) GetProjectBySlug(ctx context.Context, slug string) (database.Project, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(database.Project), args.Error(1)
}

func (m *MockQuerier) GetProjectByID(ctx context.Context, id uuid.UUID) (database.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(database.Project), args.Error(1)
}

func (m *MockQuerier) CreateProject(ctx context.Context, arg database.CreateProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}

func (m *MockQuerier) UpdateProject(ctx context.Context, arg database.UpdateProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}

func (m *MockQuerier) DeleteProject(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) GetProjectStats(ctx context.Context) (database.GetProjectStatsRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(database.GetProjectStatsRow), args.Error(1)
}

func (m *MockQuerier) CreateContact(ctx context.Context, arg database.CreateContactParams) (database.Contact, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Contact), args.Error(1)
}

func (m *MockQuerier) ListRecentContacts(ctx context.Context, limit int32) ([]database.Contact, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]database.Contact), args.Error(1)
}

func (m *MockQuerier) CountUnreadContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) MarkContactRead(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) CountClientSites(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) CreateClientSite(ctx context.Context, arg database.CreateClientSiteParams) (database.ClientSite, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.ClientSite), args.Error(1)
}

func (m *MockQuerier) GetProfile(ctx context.Context) (database.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(database.Profile), args.Error(1)
}

func (m *MockQuerier) CreateProfile(ctx context.Context, arg database.CreateProfileParams) (database.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Profile), args.Error(1)
}

func (m *MockQuerier) UpsertProfileDetails(ctx context.Context, arg database.UpsertProfileDetailsParams) (database.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Profile), args.Error(1)
}

func (m *MockQuerier) UpdateAdminCredentials(ctx context.Context, arg database.UpdateAdminCredentialsParams) (database.Profile, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Profile), args.Error(1)
}

// MockNotifier is a mock type for the notify.Notifier interface.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyContact(ctx context.Context, c model.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

var fixedID = uuid.MustParse("6f1c2d6e-8a55-4f0b-9f0e-3c3f7a1d2b10")

func newTestService(t *testing.T, db *MockQuerier, notifier *MockNotifier) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var svc *Service
	if notifier == nil {
		svc = NewService(db, nil, logger, Credentials{Username: "admin", Password: "admin123"})
	} else {
		svc = NewService(db, notifier, logger, Credentials{Username: "admin", Password: "admin123"})
	}
	svc.newID = func() uuid.UUID { return fixedID }
	return svc
}
