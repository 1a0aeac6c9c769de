package seederimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/feed"
	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/repositories/item"
	"github.com/orgball2608/scenefeed/internal/seeder"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/errors"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const batchSize = 4

type Opts struct {
	fx.In

	ItemRepo item.Repository
	Guard    seeder.Guard
	Clock    clockwork.Clock
	Metrics  *metrics.Metrics
	Logger   logger.Logger
	Config   *config.Config
}

type SeederImpl struct {
	ItemRepo item.Repository
	Guard    seeder.Guard
	Clock    clockwork.Clock
	Metrics  *metrics.Metrics
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *SeederImpl {
	return &SeederImpl{
		ItemRepo: opts.ItemRepo,
		Guard:    opts.Guard,
		Clock:    opts.Clock,
		Metrics:  opts.Metrics,
		Logger:   opts.Logger.WithComponent("Seeder"),
		Config:   opts.Config,
	}
}

var _ seeder.Client = (*SeederImpl)(nil)

// SeedEvents marks the guard only when every batch was stored.
func (s *SeederImpl) SeedEvents(ctx context.Context) error {
	if s.skip(seeder.OperationEvents) {
		return nil
	}

	err := s.insertBatches(ctx, seeder.OperationEvents, buildEvents(s.now()))
	s.record(seeder.OperationEvents, metrics.Result(err))
	if err != nil {
		return err
	}

	s.Guard.MarkComplete(seeder.OperationEvents)
	return nil
}

// SeedVibePosts marks the guard even after a failed batch.
func (s *SeederImpl) SeedVibePosts(ctx context.Context) error {
	if s.skip(seeder.OperationVibePosts) {
		return nil
	}
	defer s.Guard.MarkComplete(seeder.OperationVibePosts)

	err := s.insertBatches(ctx, seeder.OperationVibePosts,
		buildPosts(s.now(), vibeTemplates, domain.SourceVibePostSeed))
	s.record(seeder.OperationVibePosts, metrics.Result(err))
	return err
}

func (s *SeederImpl) SeedProfileEntries(ctx context.Context) error {
	if s.skip(seeder.OperationProfileEntries) {
		return nil
	}

	err := s.insertBatches(ctx, seeder.OperationProfileEntries,
		buildPosts(s.now(), profileEntryTemplates, domain.SourceProfileEntriesSeed))
	s.record(seeder.OperationProfileEntries, metrics.Result(err))
	if err != nil {
		return err
	}

	s.Guard.MarkComplete(seeder.OperationProfileEntries)
	return nil
}

func (s *SeederImpl) RunAsync(ctx context.Context) {
	if !s.Config.Seeding.Enabled {
		return
	}

	ops := map[string]func(context.Context) error{
		seeder.OperationEvents:         s.SeedEvents,
		seeder.OperationVibePosts:      s.SeedVibePosts,
		seeder.OperationProfileEntries: s.SeedProfileEntries,
	}
	for name, op := range ops {
		go func() {
			if err := op(ctx); err != nil {
				s.Logger.Error("Seeding failed", "operation", name, "error", err)
			}
		}()
	}
}

// RunAll runs the seed operations one after another and waits for them.
func (s *SeederImpl) RunAll(ctx context.Context) []error {
	var errs []error
	for _, op := range []func(context.Context) error{s.SeedEvents, s.SeedVibePosts, s.SeedProfileEntries} {
		if err := op(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ScheduleSeeding re-runs the seed operations on the configured cron schedule.
// The guard keeps repeated runs cheap.
func (s *SeederImpl) ScheduleSeeding(ctx context.Context) error {
	if !s.Config.Seeding.Enabled {
		s.Logger.Info("Seeding disabled, not scheduling")
		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(s.location()))
	if err != nil {
		return fmt.Errorf("failed to create seeding scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.Config.Seeding.Schedule, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, skipping scheduled seeding")
				return
			}

			s.Logger.Info("Starting scheduled seeding")

			seedCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			for _, err := range s.RunAll(seedCtx) {
				s.Logger.Error("Scheduled seeding failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule seeding: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping seeding scheduler")
		if err := scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down seeding scheduler", "error", err)
		}
	}()

	return nil
}

func (s *SeederImpl) skip(operation string) bool {
	if s.Guard.ShouldSkip(operation) {
		s.Logger.Debug("Seeding ran recently, skipping", "operation", operation)
		s.record(operation, metrics.ResultSkip)
		return true
	}
	return false
}

func (s *SeederImpl) insertBatches(ctx context.Context, operation string, items []domain.FeedItem) error {
	for i, batch := range lo.Chunk(items, batchSize) {
		if i > 0 {
			if err := s.wait(ctx); err != nil {
				return errors.SeedFailure(err, operation+" seeding interrupted")
			}
		}

		if err := s.ItemRepo.BulkCreate(ctx, batch); err != nil {
			return errors.SeedFailure(err, fmt.Sprintf("%s seeding failed at batch %d", operation, i+1))
		}
		s.Logger.Debug("Seed batch stored", "operation", operation, "batch", i+1, "count", len(batch))
	}

	s.Logger.Info("Seeding completed", "operation", operation, "count", len(items))
	return nil
}

func (s *SeederImpl) wait(ctx context.Context) error {
	delay := s.Config.Seeding.BatchDelay
	if delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Clock.After(delay):
		return nil
	}
}

func (s *SeederImpl) record(operation, result string) {
	if s.Metrics != nil {
		s.Metrics.SeedRuns.WithLabelValues(operation, result).Inc()
	}
}

func (s *SeederImpl) now() time.Time {
	return s.Clock.Now().In(s.location())
}

func (s *SeederImpl) location() *time.Location {
	return s.Config.Location()
}

func buildEvents(now time.Time) []domain.FeedItem {
	midnight := feed.StartOfDay(now)

	return lo.Map(eventTemplates, func(t eventTemplate, _ int) domain.FeedItem {
		v := venues[t.Venue]
		o := organizers[t.Organizer]
		date := midnight.AddDate(0, 0, t.DayOffset).Add(time.Duration(t.Hour) * time.Hour)
		source := domain.SourceOrganicEvent
		if t.Promotional {
			source = domain.SourceSponsored
		}

		return domain.FeedItem{
			ID:             uuid.NewString(),
			Title:          t.Title,
			Description:    t.Description,
			Source:         source,
			Status:         domain.StatusActive,
			Date:           &date,
			Timestamp:      lo.ToPtr(now),
			OrganizerEmail: o.Email,
			OrganizerName:  o.Name,
			Category:       t.Category,
			SceneTags:      t.Tags,
			PrivacyLevel:   domain.PrivacyPublic,
			IsPromotional:  t.Promotional,
			Latitude:       lo.ToPtr(v.Latitude),
			Longitude:      lo.ToPtr(v.Longitude),
			Location:       v.Location,
			VenueName:      v.Name,
		}
	})
}

func buildPosts(now time.Time, templates []postTemplate, source domain.Source) []domain.FeedItem {
	return lo.Map(templates, func(t postTemplate, _ int) domain.FeedItem {
		v := venues[t.Venue]
		o := organizers[t.Organizer]
		posted := now.Add(-time.Duration(t.HoursAgo) * time.Hour)

		return domain.FeedItem{
			ID:             uuid.NewString(),
			Title:          t.Title,
			Description:    t.Description,
			Source:         source,
			Status:         domain.StatusPublished,
			Timestamp:      &posted,
			OrganizerEmail: o.Email,
			OrganizerName:  o.Name,
			SceneTags:      t.Tags,
			PrivacyLevel:   domain.PrivacyPublic,
			Latitude:       lo.ToPtr(v.Latitude),
			Longitude:      lo.ToPtr(v.Longitude),
			Location:       v.Location,
			VenueName:      v.Name,
		}
	})
}
