package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains document store connection configuration.
// An empty URI or Database leaves the store handle unset and every
// data endpoint degrades to service-unavailable.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // connect/ping timeout in seconds
}

// RedisConfig contains Redis connection configuration (rate limiter backend)
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // file, console or both
}
