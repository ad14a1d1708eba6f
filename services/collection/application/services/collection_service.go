package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/telemetry"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	domainevents "github.com/ghuser/boxjoy/services/collection/domain/events"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
	"github.com/ghuser/boxjoy/services/collection/domain/repositories"
	domainsvcs "github.com/ghuser/boxjoy/services/collection/domain/services"
)

// Publisher publishes JSON payloads to a topic. *events.EventBus satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// SeriesInput carries the user-editable series fields. A nil capacity takes the
// default on create and keeps the current value on update.
type SeriesInput struct {
	Name         string
	CoverImage   string
	TotalRegular *int
	TotalSecret  *int
}

// CollectionService owns the in-memory collection. Mutations are serialized and
// written through the repository before they become visible; every committed
// mutation publishes a CollectionChangedEvent.
type CollectionService struct {
	mu      sync.RWMutex
	snap    models.Snapshot
	repo    repositories.CollectionRepository
	bus     Publisher
	metrics *telemetry.CollectionMetrics
	log     logger.Logger
	now     func() time.Time
}

// change describes a committed mutation for the published event.
type change struct {
	entityID string
	seriesID string
	cascaded int
}

// NewCollectionService loads the collection from repo. bus may be nil.
func NewCollectionService(ctx context.Context, repo repositories.CollectionRepository, bus Publisher, log logger.Logger) (*CollectionService, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	log.InfoContext(ctx, "collection loaded", "series", len(snap.Series), "items", len(snap.Items))
	return &CollectionService{
		snap: snap,
		repo: repo,
		bus:  bus,
		log:  log,
		now:  time.Now,
	}, nil
}

// CreateSeries validates and appends a new series.
func (s *CollectionService) CreateSeries(ctx context.Context, in SeriesInput) (models.Series, error) {
	series := models.NewSeries(in.Name, in.CoverImage, in.TotalRegular, in.TotalSecret)
	if err := domainsvcs.ValidateSeries(series); err != nil {
		return models.Series{}, fmt.Errorf("%w: %w", collectiondomain.ErrInvalidSeries, err)
	}

	err := s.commit(ctx, domainevents.KindSeriesCreated, func(next *models.Snapshot) (change, error) {
		next.AddSeries(series)
		return change{entityID: series.ID, seriesID: series.ID}, nil
	})
	if err != nil {
		return models.Series{}, err
	}
	return series, nil
}

// UpdateSeries replaces the editable fields of the series with the given id.
func (s *CollectionService) UpdateSeries(ctx context.Context, id string, in SeriesInput) (models.Series, error) {
	var updated models.Series
	err := s.commit(ctx, domainevents.KindSeriesUpdated, func(next *models.Snapshot) (change, error) {
		current, ok := next.FindSeries(id)
		if !ok {
			return change{}, fmt.Errorf("update series %s: %w", id, collectiondomain.ErrSeriesNotFound)
		}
		updated = current
		updated.Name = in.Name
		updated.CoverImage = in.CoverImage
		if in.TotalRegular != nil {
			updated.TotalRegular = *in.TotalRegular
		}
		if in.TotalSecret != nil {
			updated.TotalSecret = *in.TotalSecret
		}
		if err := domainsvcs.ValidateSeries(updated); err != nil {
			return change{}, fmt.Errorf("%w: %w", collectiondomain.ErrInvalidSeries, err)
		}
		next.ReplaceSeries(updated)
		return change{entityID: id, seriesID: id}, nil
	})
	if err != nil {
		return models.Series{}, err
	}
	return updated, nil
}

// DeleteSeries removes the series and every item that belongs to it.
// It returns the number of items removed with the series.
func (s *CollectionService) DeleteSeries(ctx context.Context, id string) (int, error) {
	var cascaded int
	err := s.commit(ctx, domainevents.KindSeriesDeleted, func(next *models.Snapshot) (change, error) {
		cascaded = next.RemoveSeries(id)
		if cascaded < 0 {
			return change{}, fmt.Errorf("delete series %s: %w", id, collectiondomain.ErrSeriesNotFound)
		}
		return change{entityID: id, seriesID: id, cascaded: cascaded}, nil
	})
	if err != nil {
		return 0, err
	}
	return cascaded, nil
}

// CreateItem validates f and prepends a new item acquired now.
func (s *CollectionService) CreateItem(ctx context.Context, f models.ItemFields) (models.Item, error) {
	if err := domainsvcs.ValidateItemFields(f); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", collectiondomain.ErrInvalidItem, err)
	}

	var item models.Item
	err := s.commit(ctx, domainevents.KindItemCreated, func(next *models.Snapshot) (change, error) {
		if !next.HasSeries(f.SeriesID) {
			return change{}, fmt.Errorf("create item: series %s: %w", f.SeriesID, collectiondomain.ErrSeriesNotFound)
		}
		item = models.NewItem(f, s.now())
		next.PrependItem(item)
		return change{entityID: item.ID, seriesID: item.SeriesID}, nil
	})
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// UpdateItem replaces the editable fields of the item with the given id.
// The id and acquisition date are kept.
func (s *CollectionService) UpdateItem(ctx context.Context, id string, f models.ItemFields) (models.Item, error) {
	if err := domainsvcs.ValidateItemFields(f); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", collectiondomain.ErrInvalidItem, err)
	}

	var updated models.Item
	err := s.commit(ctx, domainevents.KindItemUpdated, func(next *models.Snapshot) (change, error) {
		current, ok := next.FindItem(id)
		if !ok {
			return change{}, fmt.Errorf("update item %s: %w", id, collectiondomain.ErrItemNotFound)
		}
		if !next.HasSeries(f.SeriesID) {
			return change{}, fmt.Errorf("update item: series %s: %w", f.SeriesID, collectiondomain.ErrSeriesNotFound)
		}
		updated = current.WithFields(f)
		next.ReplaceItem(updated)
		return change{entityID: id, seriesID: updated.SeriesID}, nil
	})
	if err != nil {
		return models.Item{}, err
	}
	return updated, nil
}

// DeleteItem removes the item with the given id.
func (s *CollectionService) DeleteItem(ctx context.Context, id string) error {
	return s.commit(ctx, domainevents.KindItemDeleted, func(next *models.Snapshot) (change, error) {
		current, ok := next.FindItem(id)
		if !ok {
			return change{}, fmt.Errorf("delete item %s: %w", id, collectiondomain.ErrItemNotFound)
		}
		next.RemoveItem(id)
		return change{entityID: id, seriesID: current.SeriesID}, nil
	})
}

// Reset replaces the whole collection with the seed data. confirm must be true.
func (s *CollectionService) Reset(ctx context.Context, confirm bool) (models.Snapshot, error) {
	if !confirm {
		return models.Snapshot{}, collectiondomain.ErrResetNotConfirmed
	}

	var seeded models.Snapshot
	err := s.commit(ctx, domainevents.KindReset, func(next *models.Snapshot) (change, error) {
		seeded = models.Seed(s.now())
		*next = seeded.Clone()
		return change{}, nil
	})
	if err != nil {
		return models.Snapshot{}, err
	}
	return seeded, nil
}

// commit applies fn to a copy of the collection, persists the copy and swaps it in.
// A failed apply or write leaves the collection untouched.
func (s *CollectionService) commit(ctx context.Context, kind domainevents.ChangeKind, fn func(next *models.Snapshot) (change, error)) (err error) {
	defer func() { s.metrics.RecordMutation(ctx, string(kind), err) }()

	s.mu.Lock()
	next := s.snap.Clone()
	c, err := fn(&next)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		s.mu.Unlock()
		s.log.ErrorContext(ctx, "collection write failed", "kind", kind, "error", err)
		return fmt.Errorf("%s: %w", kind, err)
	}
	s.snap = next
	stats := domainsvcs.ComputeStats(next.Items)
	// Timestamped under the lock so event order matches commit order.
	at := s.now().UTC()
	s.mu.Unlock()

	s.log.InfoContext(ctx, "collection changed",
		"kind", kind, "entity_id", c.entityID, "cascaded", c.cascaded)
	s.publish(ctx, domainevents.CollectionChangedEvent{
		EventID:    uuid.New(),
		Version:    domainevents.EventVersion,
		Kind:       kind,
		EntityID:   c.entityID,
		SeriesID:   c.seriesID,
		Cascaded:   c.cascaded,
		OccurredAt: at,
		OwnedCount: stats.OwnedCount,
		TotalValue: stats.TotalValue,
		Level:      stats.Level,
	})
	return nil
}

// publish is best-effort: the mutation is already durable.
func (s *CollectionService) publish(ctx context.Context, evt domainevents.CollectionChangedEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishJSON(ctx, domainevents.TopicCollectionChanged, evt); err != nil {
		s.log.WarnContext(ctx, "publish collection.changed failed",
			"event_id", evt.EventID, "kind", evt.Kind, "error", err)
	}
}

// Snapshot returns a copy of the whole collection.
func (s *CollectionService) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// ListSeries returns all series in insertion order.
func (s *CollectionService) ListSeries() []models.Series {
	return s.Snapshot().Series
}

// GetSeries returns the series with the given id.
func (s *CollectionService) GetSeries(id string) (models.Series, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series, ok := s.snap.FindSeries(id)
	if !ok {
		return models.Series{}, fmt.Errorf("get series %s: %w", id, collectiondomain.ErrSeriesNotFound)
	}
	return series, nil
}

// GetItem returns the item with the given id.
func (s *CollectionService) GetItem(id string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.snap.FindItem(id)
	if !ok {
		return models.Item{}, fmt.Errorf("get item %s: %w", id, collectiondomain.ErrItemNotFound)
	}
	return item.Clone(), nil
}

// ListSeriesProgress returns owned-count progress for every series.
func (s *CollectionService) ListSeriesProgress() []models.SeriesProgress {
	return domainsvcs.ComputeAllSeriesProgress(s.Snapshot())
}

// VisibleItems returns the items matching q in q's sort order.
func (s *CollectionService) VisibleItems(q models.ViewQuery) []models.Item {
	return domainsvcs.VisibleItems(s.Snapshot().Items, q)
}

// GhostSlots returns the missing slots of the series. applicable is false when
// q narrows the view beyond the series itself.
func (s *CollectionService) GhostSlots(seriesID string, q models.ViewQuery) (slots models.Slots, applicable bool, err error) {
	snap := s.Snapshot()
	series, ok := snap.FindSeries(seriesID)
	if !ok {
		return models.Slots{}, false, fmt.Errorf("slots: series %s: %w", seriesID, collectiondomain.ErrSeriesNotFound)
	}
	slots, applicable = domainsvcs.GhostSlots(series, snap.Items, q)
	return slots, applicable, nil
}

// Stats returns the collection-wide summary.
func (s *CollectionService) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domainsvcs.ComputeStats(s.snap.Items)
}

// MetricsSnapshot is the gauge source for telemetry.CollectionMetrics.
func (s *CollectionService) MetricsSnapshot() telemetry.CollectionSnapshot {
	st := s.Stats()
	return telemetry.CollectionSnapshot{
		OwnedCount: int64(st.OwnedCount),
		TotalValue: st.TotalValue,
		Level:      int64(st.Level),
	}
}

// SetMetrics attaches the collection instruments. nil disables recording.
func (s *CollectionService) SetMetrics(m *telemetry.CollectionMetrics) {
	s.metrics = m
}
