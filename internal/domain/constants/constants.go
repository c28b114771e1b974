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

// Store drivers
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Event topics
const (
	TopicShopGeocodeRequested = "shop.geocode_requested"
	TopicReviewAdded          = "review.added"
)

// Review windows
const (
	RecentReviewsLimit  = 10
	DefaultReviewsLimit = 20
	MaxReviewsLimit     = 100
)
