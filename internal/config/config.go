package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения, переопределяющих конфиг (NOTES_SERVER_PORT_HTTP)
const EnvPrefix = "NOTES"

var envWithDefaultRe = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
// Формат: ${VAR:-default}
func expandEnvWithDefaults(s string) string {
	return envWithDefaultRe.ReplaceAllStringFunc(s, func(match string) string {
		matches := envWithDefaultRe.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// typedValue приводит строку после подстановки к bool или int, если это возможно
func typedValue(s string) any {
	if s == "true" || s == "false" {
		b, _ := strconv.ParseBool(s)
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// Отсутствующий файл не является ошибкой: используются defaults и переменные окружения.
func InitConfig[C any](configFile string, defaults map[string]any) (*C, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))

		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist), errors.As(err, &notFound):
			// работаем на значениях по умолчанию
		default:
			return nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	// Заменяем переменные окружения формата ${VAR:-default} на их значения
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if !strings.Contains(value, "${") {
			continue
		}
		v.Set(k, typedValue(expandEnvWithDefaults(value)))
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Load загружает конфигурацию сервиса заметок
func Load(configFile string) (*Config, error) {
	cfg, err := InitConfig[Config](configFile, Defaults)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные секции и диапазоны портов
func (c *Config) Validate() error {
	if c.Logger == nil || c.Server == nil || c.Gateway == nil || c.Storage == nil || c.Swagger == nil {
		return errors.New("config: missing required section")
	}
	if c.Server.PortHTTP <= 0 || c.Server.PortHTTP > 65535 {
		return fmt.Errorf("config: invalid server.port_http %d", c.Server.PortHTTP)
	}
	if c.Server.PortGRPC < 0 || c.Server.PortGRPC > 65535 {
		return fmt.Errorf("config: invalid server.port_grpc %d", c.Server.PortGRPC)
	}
	if c.Server.PortGRPC != 0 && c.Server.PortGRPC == c.Server.PortHTTP {
		return errors.New("config: server.port_grpc and server.port_http must differ")
	}
	return nil
}
