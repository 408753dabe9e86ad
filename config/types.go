package config

// DefaultBulletinURL is the PATH app content endpoint carrying the alert bulletin
const DefaultBulletinURL = "https://path-mppprod-app.azurewebsites.net/api/v1/AppContent/fetch?contentKey=PathAlert"

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
}

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL"` // http(s) URL or local zip path
	CachePath string `yaml:"cachePath"`
	AgencyID  string `yaml:"agency_id"` // fallback agency when the dataset has none
}

// BulletinConfig contains the alert bulletin source configuration
type BulletinConfig struct {
	URL               string `yaml:"url" validate:"omitempty,url"`
	TimeoutMS         int    `yaml:"timeoutMS" validate:"gte=0"`
	ReadIntervalMS    int    `yaml:"readIntervalMS" validate:"gte=0"`
	MaxRetries        int    `yaml:"maxRetries" validate:"gte=0,lte=20"`
	RequestsPerMinute int    `yaml:"requestsPerMinute" validate:"gte=0"`
}

// FeedConfig contains output feed configuration
type FeedConfig struct {
	Format   string `yaml:"format" validate:"omitempty,oneof=pb json text"`
	Output   string `yaml:"output"`
	Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	GTFS     GTFSConfig     `yaml:"gtfs"`
	Bulletin BulletinConfig `yaml:"bulletin"`
	Feed     FeedConfig     `yaml:"feed"`
}
