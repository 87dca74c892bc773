// Package entity contains the core business objects of the project.
package entity

import "time"

// Dispatch statuses recorded per recipient.
const (
	DispatchStatusSent    = "sent"
	DispatchStatusFailed  = "failed"
	DispatchStatusSkipped = "skipped"
)

// PushMessage is the payload handed to the push transport.
type PushMessage struct {
	Alert string            `json:"alert"` // Fixed alert text.
	Badge int               `json:"badge"` // Badge increment.
	Sound string            `json:"sound"`
	Data  map[string]string `json:"data,omitempty"`
}

// DispatchLog records the outcome of a single push attempt (or skip) for an alert.
type DispatchLog struct {
	ID           string    `json:"id"`
	AlertID      string    `json:"alert_id"`
	RecipientID  string    `json:"recipient_id"`
	Status       string    `json:"status"`        // sent, failed, skipped
	ErrorMessage string    `json:"error_message"` // Transport error if the dispatch failed.
	AttemptedAt  time.Time `json:"attempted_at"`
}

// FanoutReport summarises one fanout run. Submission success never depends on it.
type FanoutReport struct {
	AlertID       string        `json:"alert_id"`
	Recipients    int           `json:"recipients"` // Push-enabled profiles returned by the directory scan.
	Attempted     int           `json:"attempted"`
	Sent          int           `json:"sent"`
	Failed        int           `json:"failed"`
	Skipped       int           `json:"skipped"`        // Empty token or out of scope.
	InvalidTokens []string      `json:"invalid_tokens"` // Tokens the transport reported as unregistered.
	Duration      time.Duration `json:"duration"`
}
