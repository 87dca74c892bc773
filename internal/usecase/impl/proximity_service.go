package impl

import (
	"context"
	"log/slog"
	"time"

	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/geo"
	"alertradar/internal/domain/repository"
	"alertradar/internal/errors"
	"alertradar/internal/usecase"
)

type proximityService struct {
	alertRepo     repository.AlertRepository
	recipientRepo repository.RecipientRepository
	logger        *slog.Logger
}

// NewProximityService creates a new proximity matcher
func NewProximityService(
	alertRepo repository.AlertRepository,
	recipientRepo repository.RecipientRepository,
	logger *slog.Logger,
) usecase.ProximityUsecase {
	return &proximityService{
		alertRepo:     alertRepo,
		recipientRepo: recipientRepo,
		logger:        logger,
	}
}

// Nearby queries the time window at the store, then applies the bounding box and exact distance locally.
func (s *proximityService) Nearby(
	ctx context.Context,
	viewer entity.Location,
	radiusMiles float64,
	since time.Time,
) ([]*entity.EnrichedAlert, error) {
	if !viewer.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if radiusMiles < 0 {
		return nil, domainerrors.ErrInvalidRadius
	}

	bounds := geo.BoundingBox(viewer, radiusMiles)

	records, err := s.alertRepo.QueryRecent(ctx, since)
	if err != nil {
		return nil, domainerrors.ErrQueryFailure.WithCause(err)
	}

	profiles := make(map[string]*entity.RecipientProfile)
	results := make([]*entity.EnrichedAlert, 0, len(records))
	for _, record := range records {
		if record == nil || !record.SentAt.After(since) {
			continue
		}

		loc := record.Location()
		if !loc.IsValid() || !bounds.Contains(loc) {
			continue
		}

		distance := geo.DistanceMiles(viewer, loc)
		if distance > radiusMiles {
			continue
		}

		results = append(results, s.enrich(ctx, record, distance, profiles))
	}

	s.logger.Debug("Nearby alerts evaluated",
		slog.Int("candidates", len(records)),
		slog.Int("matched", len(results)),
		slog.Float64("radiusMiles", radiusMiles),
	)

	return results, nil
}

// enrich joins the sender profile. profiles caches lookups for the duration of one call only.
func (s *proximityService) enrich(
	ctx context.Context,
	record *entity.AlertRecord,
	distance float64,
	profiles map[string]*entity.RecipientProfile,
) *entity.EnrichedAlert {
	enriched := &entity.EnrichedAlert{
		AlertRecord:       *record,
		SenderDisplayName: constants.UnknownSenderName,
		DistanceMiles:     distance,
	}

	profile, cached := profiles[record.SenderID]
	if !cached {
		profile = s.lookupSender(ctx, record.SenderID)
		profiles[record.SenderID] = profile
	}

	if profile != nil {
		if profile.DisplayName != "" {
			enriched.SenderDisplayName = profile.DisplayName
		}
		enriched.SenderProfilePhotoRef = profile.ProfilePhotoRef
	}

	return enriched
}

func (s *proximityService) lookupSender(ctx context.Context, senderID string) *entity.RecipientProfile {
	if senderID == "" || senderID == constants.AnonymousSenderID {
		return nil
	}

	profile, err := s.recipientRepo.FindRecipientByID(ctx, senderID)
	if err != nil {
		if !errors.Is(err, repository.ErrRecipientNotFound) {
			s.logger.Warn("Sender lookup failed, using unknown sender",
				slog.String("senderID", senderID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return profile
}
