package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text или json
}

// ConfigServer настройки сервера
type ConfigServer struct {
	UseReflection           bool `mapstructure:"use_reflection"`
	PortGRPC                int  `mapstructure:"port_grpc"` // 0 отключает gRPC health сервер
	PortHTTP                int  `mapstructure:"port_http"`
	HTTPReadTimeout         int  `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int  `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int  `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int  `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int  `mapstructure:"graceful_shutdown_timeout"`
}

// ConfigGateway настройки HTTP слоя
type ConfigGateway struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// ConfigStorage настройки in-memory хранилища
type ConfigStorage struct {
	SeedSampleData bool `mapstructure:"seed_sample_data"`
}

// ConfigSwagger настройки раздачи OpenAPI документа
type ConfigSwagger struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	Gateway *ConfigGateway `mapstructure:"gateway"`
	Storage *ConfigStorage `mapstructure:"storage"`
	Swagger *ConfigSwagger `mapstructure:"swagger"`
}

// Defaults значения по умолчанию, используемые когда ключ не задан
var Defaults = map[string]any{
	"logger.level":                     "info",
	"logger.format":                    "text",
	"server.use_reflection":            true,
	"server.port_grpc":                 50051,
	"server.port_http":                 8000,
	"server.http_read_timeout":         15,
	"server.http_write_timeout":        15,
	"server.http_idle_timeout":         60,
	"server.http_read_header_timeout":  5,
	"server.graceful_shutdown_timeout": 10,
	"gateway.cors_allowed_origins":     "http://localhost:3000",
	"gateway.cors_max_age":             86400,
	"gateway.rate_limit_rps":           100,
	"gateway.rate_limit_burst":         100,
	"storage.seed_sample_data":         true,
	"swagger.enabled":                  true,
}
