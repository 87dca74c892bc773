// Package handler contains the HTTP handlers of the alert API.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"alertradar/internal/delivery/api/middleware"
	"alertradar/internal/delivery/api/response"
	deliverycontext "alertradar/internal/delivery/context"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/errors"
	"alertradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const streamKeepAlive = 15 * time.Second

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves alert submission, nearby queries and live nearby streams
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger

	// feeds indexes open streams by subscription ID for location updates
	feeds sync.Map
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// SubmitAlertRequest is the body of POST /alerts. Omitting either coordinate means the device has no fix.
type SubmitAlertRequest struct {
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	LocationLabel string   `json:"location_label" validate:"max=256"`
}

// LocationUpdateRequest is the body of POST /alerts/nearby/stream/:id/location
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// SubmitAlert stores an alert for the caller, or for "anonymous" without a token
func (h *AlertHandler) SubmitAlert(c echo.Context) error {
	var req SubmitAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", err.Error())
	}

	input := &usecase.SubmitAlertInput{
		LocationLabel: req.LocationLabel,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.SenderID = userID
	}
	if req.Latitude != nil && req.Longitude != nil {
		input.Location = &entity.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	id, err := h.alertUC.SubmitAlert(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id})
}

// Nearby returns the alerts currently within the requested radius and window
func (h *AlertHandler) Nearby(c echo.Context) error {
	input, err := bindNearbyInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	alerts, err := h.alertUC.Nearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// StreamNearby streams the full nearby set as Server-Sent Events until the client disconnects.
// The first event carries the subscription ID used for location updates.
func (h *AlertHandler) StreamNearby(c echo.Context) error {
	input, err := bindNearbyInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	sub, err := h.alertUC.SubscribeNearby(ctx, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.feeds.Store(sub.ID(), sub)
	defer func() {
		h.feeds.Delete(sub.ID())
		h.alertUC.Unsubscribe(sub)
		logger.Info("Nearby stream closed", slog.String("subscription_id", sub.ID()))
	}()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "subscribed", map[string]string{"id": sub.ID()}); err != nil {
		return nil
	}

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case update, ok := <-sub.Updates():
			if !ok {
				return nil
			}

			var writeErr error
			if update.Err != nil {
				logger.Warn("Nearby stream evaluation failed", slog.Any("error", update.Err))
				writeErr = writeEvent(w, "error", errorPayload(update.Err))
			} else {
				writeErr = writeEvent(w, "alerts", update)
			}
			if writeErr != nil {
				return nil
			}

		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// UpdateStreamLocation feeds a device location fix into an open stream
func (h *AlertHandler) UpdateStreamLocation(c echo.Context) error {
	value, ok := h.feeds.Load(c.Param("id"))
	if !ok {
		return response.NotFound(c, "SUBSCRIPTION_NOT_FOUND", "No open stream with this ID")
	}
	sub := value.(usecase.FeedSubscription)

	var req LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", err.Error())
	}

	sub.UpdateLocation(entity.LocationFix{
		Location:   entity.Location{Latitude: *req.Latitude, Longitude: *req.Longitude},
		ObservedAt: time.Now(),
	})

	return response.Success(c, http.StatusAccepted, map[string]any{
		"id":     sub.ID(),
		"center": sub.Center(),
	})
}

// bindNearbyInput reads lat, lng, radius_miles and window (a Go duration such as 24h).
// A missing lat or lng leaves Location nil.
func bindNearbyInput(c echo.Context) (*usecase.NearbyInput, error) {
	input := &usecase.NearbyInput{}

	binder := echo.QueryParamsBinder(c).
		Float64("radius_miles", &input.RadiusMiles).
		Duration("window", &input.Window)

	if c.QueryParam("lat") != "" && c.QueryParam("lng") != "" {
		var loc entity.Location
		binder = binder.
			Float64("lat", &loc.Latitude).
			Float64("lng", &loc.Longitude)
		input.Location = &loc
	}

	if err := binder.BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return input, nil
}

func writeEvent(w *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	w.Flush()

	return nil
}

func errorPayload(err error) map[string]string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return map[string]string{"code": appErr.ErrorCode(), "message": appErr.Message()}
	}

	return map[string]string{"code": domainerrors.ErrInternalError.ErrorCode(), "message": domainerrors.ErrInternalError.Message()}
}
