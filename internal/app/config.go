package app

import (
	"strings"
	"time"

	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/platform/envutil"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
)

const serviceName = "civic-innovation-backend"

type Config struct {
	Port            string
	LogMode         string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// CatalogPath points at a YAML catalog; empty uses the built-in table.
	CatalogPath     string
	DefaultLanguage string
	// StyleGuide prepends the output-discipline preamble on invocation.
	StyleGuide bool

	MetricsEnabled bool
	Otel           observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:            envutil.String("PORT", "8080"),
		LogMode:         envutil.String("LOG_MODE", "development"),
		Environment:     envutil.String("APP_ENV", "local"),
		Version:         envutil.String("APP_VERSION", "dev"),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 15*time.Second),
		CORSOrigins:     envutil.List("CORS_ALLOWED_ORIGINS", nil),
		CatalogPath:     envutil.String("PROMPT_CATALOG_PATH", ""),
		DefaultLanguage: strings.ToLower(envutil.String("DEFAULT_LANGUAGE", localization.LangEnglish)),
		StyleGuide:      envutil.Bool("PROMPT_STYLE_GUIDE", false),
		MetricsEnabled:  envutil.Bool("METRICS_ENABLED", false),
	}
	cfg.Otel = observability.OtelConfig{
		Enabled:     envutil.Bool("OTEL_ENABLED", false),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName),
		Environment: cfg.Environment,
		Version:     cfg.Version,
		Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
		Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
		SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
	}

	switch cfg.DefaultLanguage {
	case localization.LangEnglish, localization.LangArabic:
	default:
		if log != nil {
			log.Warn("Unsupported DEFAULT_LANGUAGE, falling back to English", "value", cfg.DefaultLanguage)
		}
		cfg.DefaultLanguage = localization.LangEnglish
	}
	if log != nil {
		log.Debug("Config loaded",
			"port", cfg.Port,
			"catalog_path", cfg.CatalogPath,
			"default_language", cfg.DefaultLanguage,
			"metrics", cfg.MetricsEnabled,
			"otel", cfg.Otel.Enabled,
		)
	}
	return cfg
}

// Address is the listen address derived from Port.
func (c Config) Address() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
