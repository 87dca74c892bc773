package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/service"

	"github.com/pkg/errors"
)

// httpPushRequest is the body posted to the push relay
type httpPushRequest struct {
	Token string `json:"token"`
	Alert string `json:"alert"`
	Badge int    `json:"badge"`
	Sound string `json:"sound"`
}

// httpPushService posts one JSON request per device to a push relay endpoint
type httpPushService struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPPushService creates a push service that relays through an HTTP endpoint
func NewHTTPPushService(endpoint string, timeout time.Duration) service.PushService {
	return &httpPushService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts the push. Only HTTP 200 counts as success; 410 Gone marks the token invalid.
func (s *httpPushService) Send(ctx context.Context, token string, message *entity.PushMessage) error {
	body, err := json.Marshal(httpPushRequest{
		Token: token,
		Alert: message.Alert,
		Badge: message.Badge,
		Sound: message.Sound,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusGone:
		return errors.Wrapf(service.ErrInvalidToken, "push relay returned status: %d", resp.StatusCode)
	default:
		return errors.Errorf("push relay returned status: %d", resp.StatusCode)
	}
}
