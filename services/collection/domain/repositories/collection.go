package repositories

import (
	"context"

	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// CollectionRepository is the persistence interface for the collection snapshot.
// The domain layer owns this interface; infrastructure implements it.
type CollectionRepository interface {
	// Load returns the persisted collection, seeding any absent part with the default
	// dataset. A stored value that cannot be decoded yields domain.ErrCorruptState.
	Load(ctx context.Context) (models.Snapshot, error)

	// Save writes the full snapshot atomically: either both series and items are
	// stored or neither is.
	Save(ctx context.Context, snap models.Snapshot) error
}
