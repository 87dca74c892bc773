package firestore

import (
	"context"
	"log/slog"

	"alertradar/config"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userDocument is the subset of the user profile document read for alert distribution.
// Older clients write isPushOn, newer ones pushEnabled; either one enables push.
type userDocument struct {
	Name         string  `firestore:"name"`
	ProfilePhoto string  `firestore:"profilePhoto"`
	IsPushOn     bool    `firestore:"isPushOn"`
	PushEnabled  bool    `firestore:"pushEnabled"`
	PushToken    string  `firestore:"pushToken"`
	Lat          float64 `firestore:"lat"`
	Lng          float64 `firestore:"lng"`
}

type recipientRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewRecipientRepository creates the Firestore-backed recipient directory
func NewRecipientRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.RecipientRepository {
	return &recipientRepository{
		client:     client,
		collection: cfg.Store.UserCollection,
		logger:     logger,
	}
}

func (r *recipientRepository) FindRecipientByID(ctx context.Context, id string) (*entity.RecipientProfile, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrapf(err, "failed to get user %s", id)
	}

	return toRecipientProfile(snap)
}

func (r *recipientRepository) FindPushEnabledRecipients(ctx context.Context) ([]*entity.RecipientProfile, error) {
	query := r.client.Collection(r.collection).WhereEntity(firestore.OrFilter{
		Filters: []firestore.EntityFilter{
			firestore.PropertyFilter{Path: "isPushOn", Operator: "==", Value: true},
			firestore.PropertyFilter{Path: "pushEnabled", Operator: "==", Value: true},
		},
	})

	iter := query.Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.RecipientProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan push-enabled users")
		}

		profile, err := toRecipientProfile(snap)
		if err != nil {
			r.logger.Warn("Skipping malformed user document", slog.String("id", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func toRecipientProfile(snap *firestore.DocumentSnapshot) (*entity.RecipientProfile, error) {
	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.WithStack(err)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// toEntity maps the document. Devices that never reported a position store 0,0, treated as unknown.
func (d *userDocument) toEntity(id string) *entity.RecipientProfile {
	profile := &entity.RecipientProfile{
		ID:              id,
		DisplayName:     d.Name,
		ProfilePhotoRef: d.ProfilePhoto,
		PushEnabled:     d.IsPushOn || d.PushEnabled,
		DeviceToken:     d.PushToken,
	}

	if d.Lat != 0 || d.Lng != 0 {
		profile.LastKnownLocation = &entity.Location{Latitude: d.Lat, Longitude: d.Lng}
	}

	return profile
}
