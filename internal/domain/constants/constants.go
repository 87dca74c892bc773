// Package constants defines configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store backends
const (
	StoreBackendFirestore = "firestore"
	StoreBackendPostgres  = "postgres"
	StoreBackendMemory    = "memory"
)

// Push providers
const (
	PushProviderFCM  = "fcm"
	PushProviderHTTP = "http"
	PushProviderLog  = "log"
)

// Fanout scopes
const (
	// FanoutScopeGlobal notifies every push-enabled recipient regardless of distance.
	FanoutScopeGlobal = "global"
	// FanoutScopeRadius notifies only recipients whose last known location is within the fanout radius.
	FanoutScopeRadius = "radius"
)

// Feed recenter policies
const (
	RecenterPolicyOnce      = "once"
	RecenterPolicyThreshold = "threshold"
)

// AnonymousSenderID is stored when an alert has no authenticated sender.
const AnonymousSenderID = "anonymous"

// UnknownSenderName is shown when the sender profile cannot be resolved.
const UnknownSenderName = "Unknown"
