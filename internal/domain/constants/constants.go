// Package constants holds values shared across layers.
package constants

// Environment names with behavioural differences.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// PubSub providers. An empty provider disables event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
