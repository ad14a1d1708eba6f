package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/pkg/telemetry"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// DefaultImageMIME is assumed when an image carries no data-URL header.
const DefaultImageMIME = "image/jpeg"

// Classifier identifies the figure shown in an image.
type Classifier interface {
	Identify(ctx context.Context, image []byte, mimeType string) (models.Identification, error)
}

// ClassifyService decodes uploaded images and forwards them to the Classifier
// under a per-call timeout. It never retries.
type ClassifyService struct {
	classifier Classifier
	timeout    time.Duration
	metrics    *telemetry.CollectionMetrics
	log        logger.Logger
}

// NewClassifyService returns a ClassifyService. classifier may be nil, in which
// case every call fails with ErrClassifierUnavailable.
func NewClassifyService(classifier Classifier, timeout time.Duration, metrics *telemetry.CollectionMetrics, log logger.Logger) *ClassifyService {
	return &ClassifyService{classifier: classifier, timeout: timeout, metrics: metrics, log: log}
}

// Enabled reports whether a classifier is configured.
func (s *ClassifyService) Enabled() bool {
	return s.classifier != nil
}

// IdentifyEncoded classifies a base64 image, with or without a data-URL header.
func (s *ClassifyService) IdentifyEncoded(ctx context.Context, encoded string) (models.Identification, error) {
	image, mimeType, err := DecodeImage(encoded)
	if err != nil {
		return models.Identification{}, err
	}
	return s.Identify(ctx, image, mimeType)
}

// Identify classifies raw image bytes.
func (s *ClassifyService) Identify(ctx context.Context, image []byte, mimeType string) (models.Identification, error) {
	if s.classifier == nil {
		return models.Identification{}, collectiondomain.ErrClassifierUnavailable
	}
	if len(image) == 0 {
		return models.Identification{}, fmt.Errorf("%w: empty image", collectiondomain.ErrInvalidImage)
	}
	if mimeType == "" {
		mimeType = DefaultImageMIME
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	id, err := s.classifier.Identify(ctx, image, mimeType)
	s.metrics.RecordClassification(ctx, time.Since(start), err)
	if err != nil {
		return models.Identification{}, err
	}

	s.log.InfoContext(ctx, "figure identified",
		"name", id.Name, "rarity", id.Rarity, "confidence", id.Confidence)
	return id, nil
}

// DecodeImage strips an optional "data:<mime>;base64," header and decodes the
// remaining base64 payload. The MIME type comes from the header when present.
func DecodeImage(encoded string) (image []byte, mimeType string, err error) {
	encoded = strings.TrimSpace(encoded)
	mimeType = DefaultImageMIME

	if rest, ok := strings.CutPrefix(encoded, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("%w: data URL has no payload", collectiondomain.ErrInvalidImage)
		}
		if mt, _, _ := strings.Cut(header, ";"); mt != "" {
			mimeType = mt
		}
		encoded = payload
	}

	image, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", collectiondomain.ErrInvalidImage, err)
	}
	if len(image) == 0 {
		return nil, "", fmt.Errorf("%w: empty image", collectiondomain.ErrInvalidImage)
	}
	return image, mimeType, nil
}
