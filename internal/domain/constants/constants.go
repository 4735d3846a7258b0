// Package constants defines configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Lead event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Identity providers
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Profile store backends
const (
	KeyValueStoreFirebase = "firebase"
	KeyValueStoreRedis    = "redis"

	DocumentStoreFirestore = "firestore"
	DocumentStorePostgres  = "postgres"
)

// ProfileStoreKind names one of the two remote stores that hold user profiles.
type ProfileStoreKind string

const (
	ProfileStoreKeyValue ProfileStoreKind = "key-value"
	ProfileStoreDocument ProfileStoreKind = "document"
)

// AuthoritativeProfileStore is the store whose writes decide success and
// whose records are copied into the other store on a read miss.
const AuthoritativeProfileStore = ProfileStoreDocument
