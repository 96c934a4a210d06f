package syncer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

// MockStore is a mock type for the Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) UpsertGithubProject(ctx context.Context, arg database.UpsertGithubProjectParams) (database.UpsertGithubProjectRow, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.UpsertGithubProjectRow), args.Error(1)
}

func (m *MockStore) DeleteStaleGithubProjects(ctx context.Context, keepSlugs []string) ([]string, error) {
	args := m.Called(ctx, keepSlugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockFetcher is a mock type for the Fetcher interface.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) ListRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Repository), args.Error(1)
}

// memoryStore applies the same ownership rules as the upsert statement.
type memoryStore struct {
	mu       sync.Mutex
	projects map[string]*storedProject
}

type storedProject struct {
	source   string
	featured bool
	params   database.UpsertGithubProjectParams
}

func newMemoryStore() *memoryStore {
	return &memoryStore{projects: map[string]*storedProject{}}
}

func (s *memoryStore) UpsertGithubProject(_ context.Context, arg database.UpsertGithubProjectParams) (database.UpsertGithubProjectRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[arg.Slug]
	if !ok {
		s.projects[arg.Slug] = &storedProject{source: model.SourceGithub, params: arg}
		return database.UpsertGithubProjectRow{ID: arg.ID, Slug: arg.Slug, Inserted: true}, nil
	}
	if existing.source != model.SourceGithub {
		return database.UpsertGithubProjectRow{}, pgx.ErrNoRows
	}

	title := existing.params.Title
	id := existing.params.ID
	liveURL := existing.params.LiveUrl
	if arg.LiveUrl != nil {
		liveURL = arg.LiveUrl
	}
	existing.params = arg
	existing.params.Title = title
	existing.params.ID = id
	existing.params.LiveUrl = liveURL
	return database.UpsertGithubProjectRow{ID: id, Slug: arg.Slug}, nil
}

func (s *memoryStore) DeleteStaleGithubProjects(_ context.Context, keepSlugs []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := map[string]bool{}
	for _, k := range keepSlugs {
		keep[k] = true
	}
	var deleted []string
	for slug, p := range s.projects {
		if p.source == model.SourceGithub && !keep[slug] {
			delete(s.projects, slug)
			deleted = append(deleted, slug)
		}
	}
	return deleted, nil
}

// slowStore delays every upsert without watching ctx, like a statement already on the wire.
type slowStore struct {
	*memoryStore
	delay time.Duration
}

func (s *slowStore) UpsertGithubProject(ctx context.Context, arg database.UpsertGithubProjectParams) (database.UpsertGithubProjectRow, error) {
	time.Sleep(s.delay)
	return s.memoryStore.UpsertGithubProject(ctx, arg)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSyncer(t *testing.T, store Store, fetcher Fetcher, opts Options) *Syncer {
	t.Helper()
	if opts.Account == "" {
		opts.Account = "octo"
	}
	s, err := NewSyncer(store, fetcher, testLogger(), opts)
	require.NoError(t, err)
	return s
}

func sampleRepos() []model.Repository {
	return []model.Repository{
		{Name: "car-rental-system", Description: "Rentals", URL: "https://github.com/octo/car-rental-system",
			Homepage: "https://cars.example.com", Language: "TypeScript", Stars: 7, Topics: []string{"nextjs", "prisma"}},
		{Name: "data-tool", URL: "https://github.com/octo/data-tool", Language: "Python"},
		{Name: "forked-lib", Fork: true},
		{Name: "secret", Private: true},
		{Name: "portfolio-website", Language: "TypeScript"},
		{Name: "octo", Description: "Profile readme"},
	}
}

func TestNewSyncer_RequiresAccount(t *testing.T) {
	_, err := NewSyncer(new(MockStore), new(MockFetcher), testLogger(), Options{Account: "  "})
	assert.Error(t, err)
}

func TestSyncer_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("upstream failure writes nothing", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Return(nil, &custom_errors.ErrUpstreamStatus{StatusCode: 403}).Once()

		result := newTestSyncer(t, store, fetcher, Options{PruneStale: true}).Sync(ctx)

		assert.Equal(t, model.SyncResult{Error: "GitHub API returned 403"}, result)
		store.AssertNotCalled(t, "UpsertGithubProject", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "DeleteStaleGithubProjects", mock.Anything, mock.Anything)
		fetcher.AssertExpectations(t)
	})

	t.Run("transport failure is reported verbatim", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").Return(nil, errors.New("dial tcp: connection refused"))

		result := newTestSyncer(t, store, fetcher, Options{}).Sync(ctx)

		assert.Equal(t, 0, result.Synced)
		assert.Equal(t, "dial tcp: connection refused", result.Error)
		store.AssertNotCalled(t, "UpsertGithubProject", mock.Anything, mock.Anything)
	})

	t.Run("only eligible repositories are upserted with sync-owned fields", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").Return(sampleRepos(), nil)

		var got []database.UpsertGithubProjectParams
		store.On("UpsertGithubProject", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				got = append(got, args.Get(1).(database.UpsertGithubProjectParams))
			}).
			Return(database.UpsertGithubProjectRow{Inserted: true}, nil)

		result := newTestSyncer(t, store, fetcher, Options{Excluded: DefaultExcluded}).Sync(ctx)

		assert.Equal(t, 2, result.Synced)
		assert.Equal(t, 2, result.Created)
		assert.Empty(t, result.Error)
		require.Len(t, got, 2)

		car := got[0]
		assert.Equal(t, "github-car-rental-system", car.Slug)
		assert.Equal(t, "Car Rental System", car.Title)
		assert.Equal(t, "Rentals", car.Description)
		assert.Equal(t, model.CategorySystems, car.Category)
		assert.Equal(t, []string{"TypeScript", "Next.js", "Prisma"}, car.TechStack)
		require.NotNil(t, car.LiveUrl)
		assert.Equal(t, "https://cars.example.com", *car.LiveUrl)
		require.NotNil(t, car.Language)
		assert.Equal(t, "TypeScript", *car.Language)
		assert.Equal(t, int32(7), car.GithubStars)
		assert.NotEqual(t, uuid.Nil, car.ID)

		data := got[1]
		assert.Equal(t, "github-data-tool", data.Slug)
		assert.Equal(t, "data-tool — GitHub project", data.Description)
		assert.Equal(t, model.CategoryAI, data.Category)
		assert.Equal(t, []string{"Python"}, data.TechStack)
		assert.Nil(t, data.LiveUrl)

		store.AssertNotCalled(t, "DeleteStaleGithubProjects", mock.Anything, mock.Anything)
	})

	t.Run("manual project with colliding slug is skipped", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Return([]model.Repository{{Name: "blog"}, {Name: "api", Language: "Go"}}, nil)
		store.On("UpsertGithubProject", mock.Anything, mock.MatchedBy(func(p database.UpsertGithubProjectParams) bool {
			return p.Slug == "github-blog"
		})).Return(database.UpsertGithubProjectRow{}, pgx.ErrNoRows)
		store.On("UpsertGithubProject", mock.Anything, mock.MatchedBy(func(p database.UpsertGithubProjectParams) bool {
			return p.Slug == "github-api"
		})).Return(database.UpsertGithubProjectRow{Slug: "github-api"}, nil)

		result := newTestSyncer(t, store, fetcher, Options{}).Sync(ctx)

		assert.Equal(t, 1, result.Synced)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 1, result.Skipped)
		assert.Empty(t, result.Failed)
	})

	t.Run("one failing item does not stop the rest", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Return([]model.Repository{{Name: "one"}, {Name: "two"}, {Name: "three"}}, nil)
		store.On("UpsertGithubProject", mock.Anything, mock.MatchedBy(func(p database.UpsertGithubProjectParams) bool {
			return p.Slug == "github-two"
		})).Return(database.UpsertGithubProjectRow{}, errors.New("constraint violated"))
		store.On("UpsertGithubProject", mock.Anything, mock.Anything).
			Return(database.UpsertGithubProjectRow{Inserted: true}, nil)

		result := newTestSyncer(t, store, fetcher, Options{PruneStale: true}).Sync(ctx)

		assert.Equal(t, 2, result.Synced)
		assert.Equal(t, []model.SyncFailure{{Slug: "github-two", Error: "constraint violated"}}, result.Failed)
		store.AssertNumberOfCalls(t, "UpsertGithubProject", 3)
		store.AssertNotCalled(t, "DeleteStaleGithubProjects", mock.Anything, mock.Anything)
	})

	t.Run("prunes with the kept slugs when enabled", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Return([]model.Repository{{Name: "one"}, {Name: "fork", Fork: true}}, nil)
		store.On("UpsertGithubProject", mock.Anything, mock.Anything).
			Return(database.UpsertGithubProjectRow{}, nil)
		store.On("DeleteStaleGithubProjects", mock.Anything, []string{"github-one"}).
			Return([]string{"github-old"}, nil).Once()

		result := newTestSyncer(t, store, fetcher, Options{PruneStale: true}).Sync(ctx)

		assert.Equal(t, 1, result.Synced)
		assert.Equal(t, 1, result.Pruned)
		store.AssertExpectations(t)
	})

	t.Run("cancelled context stops before writing", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").Return([]model.Repository{{Name: "one"}}, nil)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		result := newTestSyncer(t, store, fetcher, Options{}).Sync(cctx)

		assert.Equal(t, context.Canceled.Error(), result.Error)
		store.AssertNotCalled(t, "UpsertGithubProject", mock.Anything, mock.Anything)
	})
}

func TestSyncer_Sync_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	manualLive := "https://manual.example.com"
	store.projects["github-blog"] = &storedProject{
		source: model.SourceManual,
		params: database.UpsertGithubProjectParams{Slug: "github-blog", Title: "My Blog", LiveUrl: &manualLive},
	}

	fetcher := new(MockFetcher)
	fetcher.On("ListRepositories", mock.Anything, "octo").
		Return(append(sampleRepos(), model.Repository{Name: "blog", Language: "PHP"}), nil)

	s := newTestSyncer(t, store, fetcher, Options{Excluded: DefaultExcluded})

	first := s.Sync(ctx)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 1, first.Skipped)

	store.projects["github-car-rental-system"].params.Title = "Renamed by author"
	snapshot := map[string]database.UpsertGithubProjectParams{}
	for slug, p := range store.projects {
		snapshot[slug] = p.params
	}

	second := s.Sync(ctx)
	assert.Equal(t, 2, second.Synced)
	assert.Equal(t, 2, second.Updated)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, store.projects, 3)

	for slug, p := range store.projects {
		assert.Equal(t, snapshot[slug], p.params, slug)
	}
	assert.Equal(t, "Renamed by author", store.projects["github-car-rental-system"].params.Title)
	assert.Equal(t, model.SourceManual, store.projects["github-blog"].source)
	assert.Equal(t, "My Blog", store.projects["github-blog"].params.Title)
}

func TestSyncer_Sync_KeepsLiveURLWhenHomepageCleared(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	fetcher := new(MockFetcher)
	fetcher.On("ListRepositories", mock.Anything, "octo").
		Return([]model.Repository{{Name: "site", Homepage: "https://site.example.com"}}, nil).Once()
	fetcher.On("ListRepositories", mock.Anything, "octo").
		Return([]model.Repository{{Name: "site"}}, nil).Once()

	s := newTestSyncer(t, store, fetcher, Options{})
	s.Sync(ctx)
	s.Sync(ctx)

	live := store.projects["github-site"].params.LiveUrl
	require.NotNil(t, live)
	assert.Equal(t, "https://site.example.com", *live)
}

func TestSyncer_Eligible(t *testing.T) {
	s := newTestSyncer(t, new(MockStore), new(MockFetcher), Options{Account: "Octo", Excluded: DefaultExcluded})

	got := s.Eligible(sampleRepos())

	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"car-rental-system", "data-tool"}, names)
}

func TestSyncer_StartDisabled(t *testing.T) {
	fetcher := new(MockFetcher)
	s := newTestSyncer(t, new(MockStore), fetcher, Options{})

	s.Start(context.Background(), 0)

	fetcher.AssertNotCalled(t, "ListRepositories", mock.Anything, mock.Anything)
}

func TestSyncer_SyncBestEffort(t *testing.T) {
	t.Run("swallows upstream failure", func(t *testing.T) {
		store := new(MockStore)
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").Return(nil, &custom_errors.ErrUpstreamStatus{StatusCode: 503}).Once()
		s := newTestSyncer(t, store, fetcher, Options{})

		assert.NotPanics(t, func() { s.SyncBestEffort(context.Background()) })

		fetcher.AssertExpectations(t)
		store.AssertNotCalled(t, "UpsertGithubProject", mock.Anything, mock.Anything)
	})

	t.Run("writes eligible repositories", func(t *testing.T) {
		store := newMemoryStore()
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").Return(sampleRepos(), nil).Once()
		s := newTestSyncer(t, store, fetcher, Options{Excluded: DefaultExcluded})

		s.SyncBestEffort(context.Background())

		assert.Len(t, store.projects, 2)
		assert.Contains(t, store.projects, "github-car-rental-system")
		assert.Contains(t, store.projects, "github-data-tool")
	})
}

func TestSyncer_Sync_SharedRun(t *testing.T) {
	t.Run("cancelled caller does not fail callers that joined its run", func(t *testing.T) {
		store := newMemoryStore()
		fetcher := new(MockFetcher)
		started := make(chan struct{})
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Run(func(mock.Arguments) {
				close(started)
				time.Sleep(100 * time.Millisecond)
			}).
			Return(sampleRepos(), nil).Once()
		s := newTestSyncer(t, store, fetcher, Options{Excluded: DefaultExcluded})

		adminCtx, cancel := context.WithCancel(context.Background())
		adminResult := make(chan model.SyncResult, 1)
		go func() { adminResult <- s.Sync(adminCtx) }()

		<-started
		cancel()
		joined := s.Sync(context.Background())

		select {
		case r := <-adminResult:
			assert.Equal(t, context.Canceled.Error(), r.Error)
		case <-time.After(time.Second):
			t.Fatal("cancelled caller kept waiting for the shared run")
		}
		assert.Empty(t, joined.Error)
		assert.Equal(t, 2, joined.Synced)
		assert.Len(t, store.projects, 2)
		fetcher.AssertNumberOfCalls(t, "ListRepositories", 1)
	})

	t.Run("cancelled caller returns without waiting for the run", func(t *testing.T) {
		store := newMemoryStore()
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Run(func(mock.Arguments) { time.Sleep(200 * time.Millisecond) }).
			Return([]model.Repository{{Name: "one"}}, nil).Once()
		s := newTestSyncer(t, store, fetcher, Options{})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		begin := time.Now()
		result := s.Sync(ctx)

		assert.Equal(t, context.DeadlineExceeded.Error(), result.Error)
		assert.Less(t, time.Since(begin), 150*time.Millisecond)
	})

	t.Run("run timeout reports no partial counts", func(t *testing.T) {
		store := &slowStore{memoryStore: newMemoryStore(), delay: 60 * time.Millisecond}
		fetcher := new(MockFetcher)
		fetcher.On("ListRepositories", mock.Anything, "octo").
			Return([]model.Repository{{Name: "one"}, {Name: "two"}}, nil).Once()
		s := newTestSyncer(t, store, fetcher, Options{Timeout: 30 * time.Millisecond})

		result := s.Sync(context.Background())

		assert.Equal(t, model.SyncResult{Error: context.DeadlineExceeded.Error()}, result)
		assert.Len(t, store.projects, 1)
	})
}
