package analytics

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"sbd/internal/models"
	"sbd/internal/providers"
	"sbd/internal/services"
	"sbd/internal/structures"
)

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}

// Scheduler drives the periodic analytics work: buffered visits are folded
// into the aggregate on the analytics interval, and the aggregate is written
// back to the store on the persistence interval and at shutdown.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	visits  services.VisitServiceInterface
	posts   services.PostServiceInterface
	store   services.Store
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, visits services.VisitServiceInterface, posts services.PostServiceInterface, store services.Store, metrics providers.MetricsProviderInterface) SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		visits:  visits,
		posts:   posts,
		store:   store,
		metrics: metrics,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	analyticsInterval := s.config.Analytics.Interval

	s.cron.AddFunc(gron.Every(analyticsInterval*time.Second), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Debugf(providers.TypeApp, "Aggregate visits...")
		s.visits.AggregateVisits(s.config.Analytics.Retention * time.Second)
		s.updatePostGauges()
	})

	s.cron.AddFunc(gron.Every(saveInterval*time.Second), func() {
		if err := s.Persist(); err != nil {
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted analytics to %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) updatePostGauges() {
	counts := make(map[models.Category]int)
	for _, p := range s.posts.ListAll() {
		counts[p.Category]++
	}
	for cat := range models.CategoryLabels {
		s.metrics.SetPostsTotal(string(cat), counts[cat])
	}
}

// Restore loads the persisted analytics aggregate. A missing or malformed
// entry leaves the zero-value aggregate in place.
func (s *Scheduler) Restore() error {
	data := models.NewAnalyticsData()
	if s.store.Read(services.KeyAnalytics, data) {
		s.visits.PutData(data)
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.store.Write(services.KeyAnalytics, s.visits.GetSnapshot())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting analytics: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}
