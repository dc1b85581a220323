package factory

import (
	"time"

	"github.com/shockbase/levelborder/internal/config"
	"github.com/shockbase/levelborder/internal/dependencies/mocks"
	"github.com/shockbase/levelborder/internal/host/hosttest"
	"github.com/shockbase/levelborder/internal/storage/memory"
	"github.com/shockbase/levelborder/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Host fakes
	Server  *hosttest.Server
	Borders *hosttest.BorderService

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockScheduler *mocks.MockScheduler
	MockPublisher *mocks.MockPublisher
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// worldContainer receives host player files touched by resets.
func NewTestApp(worldContainer string) *TestApp {
	cfg := config.Default()
	cfg.Storage.Type = config.StorageMemory
	cfg.WorldContainer = worldContainer

	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockScheduler := mocks.NewMockScheduler(mockClock)
	mockPublisher := mocks.NewMockPublisher()
	server := hosttest.NewServer(hosttest.NewWorld(cfg.MainWorld))
	borders := hosttest.NewBorderService()

	app := newWithDependencies(
		cfg,
		Host{Server: server, Borders: borders},
		store,
		mockClock,
		mockScheduler,
		mockPublisher,
		testutil.NopLogger(),
	)

	return &TestApp{
		App:           app,
		Server:        server,
		Borders:       borders,
		MockClock:     mockClock,
		MockScheduler: mockScheduler,
		MockPublisher: mockPublisher,
	}
}
