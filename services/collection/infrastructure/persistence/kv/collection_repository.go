package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/boxjoy/pkg/kvstore"
	"github.com/ghuser/boxjoy/pkg/logger"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// CollectionRepository implements repositories.CollectionRepository on top of a
// kvstore.Store. The collection is kept as two JSON arrays, one per key.
type CollectionRepository struct {
	store     kvstore.Store
	seriesKey string
	itemsKey  string
	now       func() time.Time
	log       logger.Logger
}

// NewCollectionRepository returns a CollectionRepository storing series under
// seriesKey and items under itemsKey.
func NewCollectionRepository(store kvstore.Store, seriesKey, itemsKey string, log logger.Logger) *CollectionRepository {
	return &CollectionRepository{
		store:     store,
		seriesKey: seriesKey,
		itemsKey:  itemsKey,
		now:       time.Now,
		log:       log,
	}
}

// Load reads both arrays. An absent key is replaced by the seed data for that
// part alone, and the seeded snapshot is written back before returning.
// A value that does not decode yields ErrCorruptState.
func (r *CollectionRepository) Load(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot
	seeded := false

	var seriesRecs []models.SeriesRecord
	found, err := r.read(ctx, r.seriesKey, &seriesRecs)
	if err != nil {
		return models.Snapshot{}, err
	}
	if found {
		snap.Series = make([]models.Series, len(seriesRecs))
		for i, rec := range seriesRecs {
			snap.Series[i] = rec.Normalize()
		}
	} else {
		snap.Series = models.SeedSeries()
		seeded = true
	}

	var itemRecs []models.ItemRecord
	found, err = r.read(ctx, r.itemsKey, &itemRecs)
	if err != nil {
		return models.Snapshot{}, err
	}
	if found {
		snap.Items = make([]models.Item, len(itemRecs))
		for i, rec := range itemRecs {
			snap.Items[i] = rec.Normalize()
		}
	} else {
		snap.Items = models.SeedItems(r.now())
		seeded = true
	}

	if seeded {
		if err := r.Save(ctx, snap); err != nil {
			return models.Snapshot{}, fmt.Errorf("persist seed: %w", err)
		}
		r.log.InfoContext(ctx, "collection seeded",
			"series", len(snap.Series), "items", len(snap.Items))
	}

	return snap, nil
}

// Save writes both arrays in a single batch.
func (r *CollectionRepository) Save(ctx context.Context, snap models.Snapshot) error {
	seriesRecs := make([]models.SeriesRecord, len(snap.Series))
	for i, s := range snap.Series {
		seriesRecs[i] = s.Record()
	}
	itemRecs := make([]models.ItemRecord, len(snap.Items))
	for i, it := range snap.Items {
		itemRecs[i] = it.Record()
	}

	seriesJSON, err := json.Marshal(seriesRecs)
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}
	itemsJSON, err := json.Marshal(itemRecs)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	if err := r.store.PutBatch(ctx, []kvstore.Entry{
		{Key: r.seriesKey, Value: seriesJSON},
		{Key: r.itemsKey, Value: itemsJSON},
	}); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// read decodes the value at key into dst. found is false when the key is absent.
func (r *CollectionRepository) read(ctx context.Context, key string, dst any) (found bool, err error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.log.ErrorContext(ctx, "persisted value does not decode", "key", key, "error", err)
		return false, fmt.Errorf("%w: %s: %v", collectiondomain.ErrCorruptState, key, err)
	}
	return true, nil
}
