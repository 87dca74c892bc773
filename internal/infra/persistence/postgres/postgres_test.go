package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "alertradar/internal/delivery/context"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestToRecipientDomain(t *testing.T) {
	lat, lng := 37.7749, -122.4194

	withLocation := toRecipientDomain(&model.RecipientModel{
		ID: "u1", Name: "Ana", ProfilePhoto: "p.jpg", PushEnabled: true, PushToken: "tok", Lat: &lat, Lng: &lng,
	})
	assert.Equal(t, &entity.RecipientProfile{
		ID:                "u1",
		DisplayName:       "Ana",
		ProfilePhotoRef:   "p.jpg",
		PushEnabled:       true,
		DeviceToken:       "tok",
		LastKnownLocation: &entity.Location{Latitude: lat, Longitude: lng},
	}, withLocation)

	partial := toRecipientDomain(&model.RecipientModel{ID: "u2", Lat: &lat})
	assert.Nil(t, partial.LastKnownLocation)
}

func TestAlertMapping(t *testing.T) {
	id := uuid.New()
	sentAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	records := toAlertDomains([]*model.LocationAlertModel{{
		ID: id, Latitude: 1.5, Longitude: 2.5, SenderID: "u1", LocationLabel: "Somewhere", SentAt: sentAt,
	}})

	require.Len(t, records, 1)
	assert.Equal(t, &entity.AlertRecord{
		ID: id.String(), Latitude: 1.5, Longitude: 2.5, SenderID: "u1", LocationLabel: "Somewhere", SentAt: sentAt,
	}, records[0])

	alertM := fromAlertDomain(records[0])
	assert.Equal(t, uuid.Nil, alertM.ID, "id is assigned by the database")
	assert.True(t, alertM.SentAt.IsZero(), "sent_at is assigned by the database")
}

func TestFromDispatchLogDomain_InvalidAlertID(t *testing.T) {
	_, err := fromDispatchLogDomain(&entity.DispatchLog{AlertID: "not-a-uuid"})

	assert.Error(t, err)
}

func TestTranslateWriteError(t *testing.T) {
	assert.ErrorIs(t, translateWriteError(gorm.ErrCheckConstraintViolated, "insert"), domainerrors.ErrInvalidCoordinates)

	notNull := errors.New(`ERROR: null value in column "sender_id" violates not-null constraint (SQLSTATE 23502)`)
	assert.ErrorIs(t, translateWriteError(notNull, "insert"), domainerrors.ErrValidationFailed)

	other := translateWriteError(errors.New("connection reset"), "insert")
	var appErr domainerrors.AppError
	require.ErrorAs(t, other, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l := newGormLogger(base, false)

	l.Trace(ctx, time.Now(), sql, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged outside debug mode")

	l.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not errors")

	l.Trace(ctx, time.Now(), sql, errors.New("boom"))
	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), "request_id=req-1")
	buf.Reset()

	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "Slow query")
	buf.Reset()

	newGormLogger(base, true).Trace(ctx, time.Now(), sql, nil)
	assert.Contains(t, buf.String(), "sql=\"SELECT 1\"")
	buf.Reset()

	l.LogMode(logger.Silent).Trace(ctx, time.Now(), sql, errors.New("boom"))
	assert.Empty(t, buf.String())
}
