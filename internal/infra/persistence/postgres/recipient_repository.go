package postgres

import (
	"context"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"
	"alertradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientRepository reads profiles from the users table. It never writes.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

func (repo *recipientRepository) FindRecipientByID(ctx context.Context, id string) (*entity.RecipientProfile, error) {
	var recipientM model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient by ID")
	}

	return toRecipientDomain(&recipientM), nil
}

func (repo *recipientRepository) FindPushEnabledRecipients(ctx context.Context) ([]*entity.RecipientProfile, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("push_enabled = ?", true).
		Order("id").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push-enabled recipients")
	}

	profiles := make([]*entity.RecipientProfile, 0, len(recipientModels))
	for _, recipientM := range recipientModels {
		profiles = append(profiles, toRecipientDomain(recipientM))
	}

	return profiles, nil
}

// toRecipientDomain treats a missing coordinate as an unknown location
func toRecipientDomain(data *model.RecipientModel) *entity.RecipientProfile {
	profile := &entity.RecipientProfile{
		ID:              data.ID,
		DisplayName:     data.Name,
		ProfilePhotoRef: data.ProfilePhoto,
		PushEnabled:     data.PushEnabled,
		DeviceToken:     data.PushToken,
	}

	if data.Lat != nil && data.Lng != nil {
		profile.LastKnownLocation = &entity.Location{Latitude: *data.Lat, Longitude: *data.Lng}
	}

	return profile
}
