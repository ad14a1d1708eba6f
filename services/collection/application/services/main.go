package services

import (
	"context"
	"fmt"

	"github.com/ghuser/boxjoy/pkg/app"
	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/telemetry"
	"github.com/ghuser/boxjoy/services/collection/infrastructure/classifier"
	"github.com/ghuser/boxjoy/services/collection/infrastructure/persistence/kv"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Collection *CollectionService
	Classify   *ClassifyService
	StatsCache *cache.StatsCache // nil without Redis
}

// New wires all collection application services with infrastructure from the
// Application container. It loads the collection, so a corrupt store fails here.
func New(ctx context.Context, a *app.Application) (*Services, error) {
	seriesKey, itemsKey := a.Config.StorageKeys()
	repo := kv.NewCollectionRepository(a.Store, seriesKey, itemsKey, a.Logger)

	var bus Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	collection, err := NewCollectionService(ctx, repo, bus, a.Logger)
	if err != nil {
		return nil, err
	}

	metrics, err := telemetry.NewCollectionMetrics(collection.MetricsSnapshot)
	if err != nil {
		return nil, fmt.Errorf("collection metrics: %w", err)
	}
	collection.SetMetrics(metrics)

	var c Classifier
	if a.Config.ClassifierEnabled() {
		gemini, err := classifier.NewGeminiClassifier(ctx, classifier.Config{
			APIKey:  a.Config.GeminiAPIKey,
			Model:   a.Config.GeminiModel,
			BaseURL: a.Config.GeminiBaseURL,
		}, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("gemini classifier: %w", err)
		}
		c = gemini
	} else {
		a.Logger.Info("GEMINI_API_KEY not set, image classification disabled")
	}

	svcs := &Services{
		Collection: collection,
		Classify:   NewClassifyService(c, a.Config.ClassifyTimeout, metrics, a.Logger),
	}
	if a.Redis != nil {
		svcs.StatsCache = cache.NewStatsCache(a.Redis, a.Config.ServiceName)
	}
	return svcs, nil
}
