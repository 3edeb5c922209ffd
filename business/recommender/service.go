package recommender

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type VectorRepository interface {
	FindAll(ctx context.Context) (map[uint64][]float64, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.InteractionEvent) error
	FindAll(ctx context.Context) ([]domain.InteractionEvent, error)
}

type ExposureRepository interface {
	Save(ctx context.Context, row domain.ExposureRow) error
}

// ---- Usecase / Service ----

// Service is the recommendation core: it dispatches on the user's profile
// variant, blends the content and collaborative rankings, and feeds the CTR
// ledger. Scoring requests read one immutable snapshot end to end; rebuilds
// swap the snapshot pointer atomically.
type Service struct {
	snapshot atomic.Pointer[Snapshot]

	ledger *ctr.Ledger
	cfg    Config

	catalogRepo  CatalogRepository
	vectorRepo   VectorRepository
	eventRepo    EventRepository
	exposureRepo ExposureRepository
}

func NewService(
	catalogRepo CatalogRepository,
	vectorRepo VectorRepository,
	eventRepo EventRepository,
	exposureRepo ExposureRepository,
	ledger *ctr.Ledger,
	cfg Config,
) *Service {
	return &Service{
		ledger:       ledger,
		cfg:          cfg,
		catalogRepo:  catalogRepo,
		vectorRepo:   vectorRepo,
		eventRepo:    eventRepo,
		exposureRepo: exposureRepo,
	}
}

// tracker returns the ledger behind the CTRTracker interface, or nil when no
// ledger is attached so the scorers degrade every boost to neutral.
func (s *Service) tracker() CTRTracker {
	if s.ledger == nil {
		return nil
	}
	return s.ledger
}

// ReplaceSnapshot swaps the snapshot all subsequent requests score against.
func (s *Service) ReplaceSnapshot(snap *Snapshot) {
	s.snapshot.Store(snap)
}

// CurrentSnapshot returns the snapshot live requests are reading.
func (s *Service) CurrentSnapshot() *Snapshot {
	return s.snapshot.Load()
}

// RebuildSnapshot reloads catalog, vectors and the event log, builds a fresh
// snapshot and swaps it in. Meant to run out-of-band, not per request.
func (s *Service) RebuildSnapshot(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	vectors, err := s.vectorRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load vectors: %w", err)
	}

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	snap := NewSnapshot(products, vectors, events)
	s.snapshot.Store(snap)

	logger.Info("snapshot rebuilt",
		"products", len(snap.Products),
		"profiles", snap.Profiles.Len(),
		"events", len(events),
	)

	return nil
}

// GetRecommendations produces the final ranked list for a user. Unknown
// users are not an error: they are routed to the cold-start ranker. An
// empty catalog or matrix yields an empty list.
func (s *Service) GetRecommendations(
	ctx context.Context,
	userID uint,
	n int,
	enableCTRLogging bool,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if n <= 0 {
		n = s.cfg.TopN
	}

	snap := s.snapshot.Load()
	if snap == nil || len(snap.Products) == 0 {
		return []domain.Recommendation{}, nil
	}

	profile := snap.Profiles.ProfileFor(userID)
	tid := TraceIDFromContext(ctx)

	// disabling CTR logging for a call disables the live-CTR boosts with it
	ctrEnabled := enableCTRLogging && s.cfg.CTRLogging
	var tracker CTRTracker
	if ctrEnabled {
		tracker = s.tracker()
	}

	if profile.Kind == ProfileCold {
		logger.Debug("recommend cold start",
			"trace_id", tid,
			"user_id", userID,
			"n", n,
		)
		ColdStartServedTotal.Inc()
		return scoreColdStart(snap, s.cfg, tracker, n), nil
	}

	content := scoreContent(snap, profile, s.cfg, tracker, n, ctrEnabled)
	collab := scoreCollaborative(snap, userID, s.cfg, n)

	logger.Debug("recommend personalized",
		"trace_id", tid,
		"user_id", userID,
		"n", n,
		"events", profile.EventCount,
		"content_candidates", len(content),
		"collab_candidates", len(collab),
	)

	return blendRankings(snap, content, collab, s.cfg, profile.EventCount, n), nil
}

// CTRSummary exposes the ledger's full analytics snapshot.
func (s *Service) CTRSummary() map[string]map[string]ctr.Stat {
	if s.ledger == nil {
		return map[string]map[string]ctr.Stat{}
	}
	return s.ledger.Summary()
}

// LogFeedback records one feedback event. Clicks and impressions update the
// CTR ledger and the durable exposure log; view/atc/purchase events land in
// the interaction event log the matrix is rebuilt from.
func (s *Service) LogFeedback(ctx context.Context, userID uint, productID uint64, eventType string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if eventType == "" {
		return fmt.Errorf("event_type is required")
	}

	snap := s.snapshot.Load()

	var product domain.Product
	if snap != nil {
		product = snap.Catalog[productID]
	}
	attrs := ctr.AttributesOf(product)

	switch eventType {
	case domain.ExposureImpression, domain.ExposureClick:
		if s.ledger != nil {
			if eventType == domain.ExposureClick {
				s.ledger.RecordClick(userID, productID, attrs)
			} else {
				s.ledger.RecordImpression(userID, productID, attrs)
			}
		}
		if s.exposureRepo != nil {
			row := domain.ExposureRow{
				UserID:     userID,
				ProductID:  productID,
				Kind:       eventType,
				Attributes: exposureAttributes(attrs),
			}
			if err := s.exposureRepo.Save(ctx, row); err != nil {
				return fmt.Errorf("failed to save exposure row: %w", err)
			}
		}

	default:
		event := domain.InteractionEvent{
			UserID:    userID,
			ProductID: productID,
			EventType: eventType,
		}
		if _, err := event.Weight(); err != nil {
			return err
		}
		if s.eventRepo != nil {
			if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to save interaction event: %w", err)
			}
		}
	}

	logger.Debug("feedback recorded",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"product_id", productID,
		"event_type", eventType,
	)

	FeedbackEventsTotal.WithLabelValues(eventType).Inc()

	return nil
}

func exposureAttributes(attrs ctr.AttributeSet) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(attrs))
	for dim, value := range attrs {
		out[dim.Key()] = value
	}
	return out
}
