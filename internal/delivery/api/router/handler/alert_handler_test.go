package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"alertradar/internal/delivery/api/middleware"
	"alertradar/internal/delivery/api/validator"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/service"
	mockService "alertradar/internal/mocks/service"
	mockUsecase "alertradar/internal/mocks/usecase"
	"alertradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertHandlerFixture struct {
	echo    *echo.Echo
	alertUC *mockUsecase.MockAlertUsecase
	tokens  *mockService.MockTokenService
	handler *AlertHandler
}

func newAlertHandlerFixture(t *testing.T) *alertHandlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	tokens := mockService.NewMockTokenService(t)

	h := NewAlertHandler(AlertHandlerParams{AlertUC: alertUC, Logger: logger})
	auth := middleware.NewAuthMiddleware(tokens)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	alerts := e.Group("/alerts", auth.Identify)
	alerts.POST("", h.SubmitAlert)
	alerts.GET("/nearby", h.Nearby)
	alerts.GET("/nearby/stream", h.StreamNearby)
	alerts.POST("/nearby/stream/:id/location", h.UpdateStreamLocation)

	return &alertHandlerFixture{echo: e, alertUC: alertUC, tokens: tokens, handler: h}
}

func (f *alertHandlerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAlertHandler_SubmitAlert_Anonymous(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().
		SubmitAlert(mock.Anything, &usecase.SubmitAlertInput{
			Location:      &entity.Location{Latitude: 37.7749, Longitude: -122.4194},
			LocationLabel: "San Francisco, CA, United States",
		}).
		Return("alert-1", nil)

	rec := f.do(jsonRequest(http.MethodPost, "/alerts", `{"latitude":37.7749,"longitude":-122.4194,"location_label":"San Francisco, CA, United States"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"alert-1"}`, string(decodeEnvelope(t, rec).Data))
}

func TestAlertHandler_SubmitAlert_AuthenticatedSender(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: "user-7"}, nil)
	f.alertUC.EXPECT().
		SubmitAlert(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitAlertInput) bool {
			return input.SenderID == "user-7"
		})).
		Return("alert-2", nil)

	req := jsonRequest(http.MethodPost, "/alerts", `{"latitude":1,"longitude":2}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")

	assert.Equal(t, http.StatusCreated, f.do(req).Code)
}

func TestAlertHandler_SubmitAlert_InvalidToken(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.tokens.EXPECT().ValidateToken("bad").Return(nil, assert.AnError)

	req := jsonRequest(http.MethodPost, "/alerts", `{"latitude":1,"longitude":2}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, rec).Error.Code)
}

func TestAlertHandler_SubmitAlert_MissingLocation(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().
		SubmitAlert(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitAlertInput) bool {
			return input.Location == nil
		})).
		Return("", domainerrors.ErrLocationUnavailable)

	rec := f.do(jsonRequest(http.MethodPost, "/alerts", `{"latitude":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "LOCATION_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)
}

func TestAlertHandler_SubmitAlert_WriteFailure(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().
		SubmitAlert(mock.Anything, mock.Anything).
		Return("", domainerrors.ErrWriteFailure.WithCause(assert.AnError))

	rec := f.do(jsonRequest(http.MethodPost, "/alerts", `{"latitude":1,"longitude":2}`))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "WRITE_FAILURE", env.Error.Code)
	assert.Nil(t, env.Error.Details, "5xx responses carry no details")
}

func TestAlertHandler_SubmitAlert_BadBody(t *testing.T) {
	f := newAlertHandlerFixture(t)

	rec := f.do(jsonRequest(http.MethodPost, "/alerts", `{"latitude":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(jsonRequest(http.MethodPost, "/alerts", `{"latitude":1,"longitude":2,"location_label":"`+strings.Repeat("x", 300)+`"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestAlertHandler_Nearby(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().
		Nearby(mock.Anything, &usecase.NearbyInput{
			Location:    &entity.Location{Latitude: 37.7749, Longitude: -122.4194},
			RadiusMiles: 5,
			Window:      2 * time.Hour,
		}).
		Return([]*entity.EnrichedAlert{{
			AlertRecord:       entity.AlertRecord{ID: "a1", SenderID: "u1"},
			SenderDisplayName: "Ana",
			DistanceMiles:     1.2,
		}}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/alerts/nearby?lat=37.7749&lng=-122.4194&radius_miles=5&window=2h", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Alerts []*entity.EnrichedAlert `json:"alerts"`
		Count  int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, "Ana", data.Alerts[0].SenderDisplayName)
}

func TestAlertHandler_Nearby_BadQuery(t *testing.T) {
	f := newAlertHandlerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/alerts/nearby?lat=1&lng=2&window=forever", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestAlertHandler_Nearby_MissingLocation(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().
		Nearby(mock.Anything, &usecase.NearbyInput{}).
		Return(nil, domainerrors.ErrLocationUnavailable)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/alerts/nearby", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "LOCATION_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)
}

// stubSubscription is a FeedSubscription driven by the test
type stubSubscription struct {
	id      string
	updates chan usecase.FeedUpdate

	mu     sync.Mutex
	center entity.Location
	fixes  []entity.LocationFix
}

func newStubSubscription(id string) *stubSubscription {
	return &stubSubscription{id: id, updates: make(chan usecase.FeedUpdate, 4)}
}

func (s *stubSubscription) ID() string                         { return s.id }
func (s *stubSubscription) Updates() <-chan usecase.FeedUpdate { return s.updates }
func (s *stubSubscription) Unsubscribe()                       {}

func (s *stubSubscription) UpdateLocation(fix entity.LocationFix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixes = append(s.fixes, fix)
	s.center = fix.Location
}

func (s *stubSubscription) Center() entity.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.center
}

func TestAlertHandler_StreamNearby(t *testing.T) {
	f := newAlertHandlerFixture(t)
	sub := newStubSubscription("sub-1")

	f.alertUC.EXPECT().SubscribeNearby(mock.Anything, mock.Anything).Return(sub, nil)
	unsubscribed := make(chan struct{})
	f.alertUC.EXPECT().Unsubscribe(sub).Run(func(usecase.FeedSubscription) { close(unsubscribed) }).Return()

	server := httptest.NewServer(f.echo)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/alerts/nearby/stream?lat=1&lng=2", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	events := readEvents(resp.Body)

	first := <-events
	assert.Equal(t, "subscribed", first.name)
	assert.JSONEq(t, `{"id":"sub-1"}`, first.data)

	// Location updates reach the open stream
	locRec := f.do(jsonRequest(http.MethodPost, "/alerts/nearby/stream/sub-1/location", `{"latitude":3,"longitude":4}`))
	assert.Equal(t, http.StatusAccepted, locRec.Code)
	assert.Equal(t, entity.Location{Latitude: 3, Longitude: 4}, sub.Center())

	sub.updates <- usecase.FeedUpdate{
		Alerts: []*entity.EnrichedAlert{{AlertRecord: entity.AlertRecord{ID: "a1"}}},
		Center: entity.Location{Latitude: 3, Longitude: 4},
	}
	second := <-events
	assert.Equal(t, "alerts", second.name)
	assert.Contains(t, second.data, `"id":"a1"`)

	sub.updates <- usecase.FeedUpdate{Err: domainerrors.ErrQueryFailure}
	third := <-events
	assert.Equal(t, "error", third.name)
	assert.Contains(t, third.data, "QUERY_FAILURE")

	// Client disconnect unsubscribes
	cancel()
	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("stream was not unsubscribed after disconnect")
	}

	assert.Eventually(t, func() bool {
		_, ok := f.handler.feeds.Load("sub-1")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestAlertHandler_StreamNearby_InvalidRadius(t *testing.T) {
	f := newAlertHandlerFixture(t)

	f.alertUC.EXPECT().SubscribeNearby(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidRadius)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/alerts/nearby/stream?lat=1&lng=2&radius_miles=-1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RADIUS", decodeEnvelope(t, rec).Error.Code)
}

func TestAlertHandler_UpdateStreamLocation_UnknownStream(t *testing.T) {
	f := newAlertHandlerFixture(t)

	rec := f.do(jsonRequest(http.MethodPost, "/alerts/nearby/stream/nope/location", `{"latitude":1,"longitude":2}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertHandler_UpdateStreamLocation_Validation(t *testing.T) {
	f := newAlertHandlerFixture(t)
	f.handler.feeds.Store("sub-1", newStubSubscription("sub-1"))

	rec := f.do(jsonRequest(http.MethodPost, "/alerts/nearby/stream/sub-1/location", `{"latitude":91,"longitude":2}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

type sseEvent struct {
	name string
	data string
}

// readEvents parses a text/event-stream body, skipping comments
func readEvents(body io.Reader) <-chan sseEvent {
	events := make(chan sseEvent)

	go func() {
		defer close(events)

		scanner := bufio.NewScanner(body)
		var current sseEvent
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case line == "":
				if current.name != "" {
					events <- current
				}
				current = sseEvent{}
			case strings.HasPrefix(line, "event: "):
				current.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				current.data = strings.TrimPrefix(line, "data: ")
			}
		}
	}()

	return events
}
