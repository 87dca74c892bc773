package firestore

import (
	"testing"

	"alertradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestUserDocument_ToEntity(t *testing.T) {
	tests := []struct {
		name string
		doc  userDocument
		want *entity.RecipientProfile
	}{
		{
			name: "legacy isPushOn flag",
			doc:  userDocument{Name: "Ana", ProfilePhoto: "photos/ana.jpg", IsPushOn: true, PushToken: "tok", Lat: 37.77, Lng: -122.41},
			want: &entity.RecipientProfile{
				ID:                "u1",
				DisplayName:       "Ana",
				ProfilePhotoRef:   "photos/ana.jpg",
				PushEnabled:       true,
				DeviceToken:       "tok",
				LastKnownLocation: &entity.Location{Latitude: 37.77, Longitude: -122.41},
			},
		},
		{
			name: "pushEnabled flag",
			doc:  userDocument{Name: "Ben", PushEnabled: true, PushToken: "tok2"},
			want: &entity.RecipientProfile{ID: "u1", DisplayName: "Ben", PushEnabled: true, DeviceToken: "tok2"},
		},
		{
			name: "push off and unknown location",
			doc:  userDocument{Name: "Cy"},
			want: &entity.RecipientProfile{ID: "u1", DisplayName: "Cy"},
		},
		{
			name: "equator point on prime meridian axis keeps location when one coordinate is set",
			doc:  userDocument{Lat: 0, Lng: 12.5},
			want: &entity.RecipientProfile{ID: "u1", LastKnownLocation: &entity.Location{Latitude: 0, Longitude: 12.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.toEntity("u1"))
		})
	}
}
