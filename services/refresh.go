package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"content-ops-platform/internal/config"
	"content-ops-platform/internal/logger"
	"content-ops-platform/internal/sheet"
	"content-ops-platform/internal/store"
	"content-ops-platform/internal/telemetry"
)

// RefreshStatus is the caller-side loading/error view around the fail-soft
// ingestion call.
type RefreshStatus struct {
	Loading     bool      `json:"loading"`
	LastFetchAt time.Time `json:"lastFetchAt"`
	ItemCount   int       `json:"itemCount"`
	Generation  uint64    `json:"generation"`
}

// RefreshService drives ingestion cycles: on demand via the API and
// periodically via the scheduler.
type RefreshService struct {
	client  *sheet.Client
	store   *store.ContentStore
	cfg     *config.Config
	metrics *telemetry.Metrics

	scheduler *gocron.Scheduler

	mu     sync.Mutex
	status RefreshStatus
}

func NewRefreshService(client *sheet.Client, contentStore *store.ContentStore, cfg *config.Config, metrics *telemetry.Metrics) *RefreshService {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()

	return &RefreshService{
		client:    client,
		store:     contentStore,
		cfg:       cfg,
		metrics:   metrics,
		scheduler: s,
	}
}

// Refresh runs one ingestion cycle and installs the result as the current
// snapshot. Ingestion itself never fails; an unreachable or malformed sheet
// simply produces an empty snapshot.
func (r *RefreshService) Refresh(ctx context.Context) store.Snapshot {
	r.mu.Lock()
	r.status.Loading = true
	r.mu.Unlock()

	items := r.client.FetchContentItems(ctx, r.cfg.SheetURL)
	snapshot := r.store.Replace(items)
	r.metrics.RecordFetch(len(items))

	r.mu.Lock()
	r.status = RefreshStatus{
		Loading:     false,
		LastFetchAt: snapshot.FetchedAt,
		ItemCount:   len(items),
		Generation:  snapshot.Generation,
	}
	r.mu.Unlock()

	logger.Info("Ingestion cycle complete", "snapshot", snapshot.ID, "items", len(items))
	return snapshot
}

// Start runs an initial fetch and schedules periodic refreshes. A zero
// interval disables the background job.
func (r *RefreshService) Start() error {
	r.Refresh(context.Background())

	if r.cfg.RefreshInterval <= 0 {
		return nil
	}

	_, err := r.scheduler.Every(time.Duration(r.cfg.RefreshInterval) * time.Minute).Tag("sheet-refresh").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		r.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	logger.Info("Sheet refresher started", "interval_minutes", r.cfg.RefreshInterval)
	return nil
}

// Stop stops the background refresher.
func (r *RefreshService) Stop() {
	r.scheduler.Stop()
}

// Status returns the current loading/error view.
func (r *RefreshService) Status() RefreshStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
