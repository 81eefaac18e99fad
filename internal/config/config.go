package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	OpenAI        OpenAI        `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	AssetSync     AssetSync     `mapstructure:",squash"`
	BulkDispatch  BulkDispatch  `mapstructure:",squash"`
	TrackingCache TrackingCache `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
	// Limite de requisições por segundo ao Graph API e burst do token bucket
	RateLimit  float64 `mapstructure:"meta_rate_limit"`
	RateBurst  int     `mapstructure:"meta_rate_burst"`
	PageLimit  int     `mapstructure:"meta_page_limit"`
	MaxRetries int     `mapstructure:"meta_max_retries"`
}

type OpenAI struct {
	BaseURL   string `mapstructure:"openai_base_url"`
	APIKey    string `mapstructure:"openai_api_key"`
	Model     string `mapstructure:"openai_model"`
	MaxTokens int    `mapstructure:"openai_max_tokens"`
}

type Auth struct {
	// JWT secret do projeto Supabase, usado para validar os tokens emitidos
	SupabaseJWTSecret string `mapstructure:"supabase_jwt_secret"`
}

type AssetSync struct {
	CronSchedule        string `mapstructure:"asset_sync_cron"`
	LookbackDays        int    `mapstructure:"asset_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"asset_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"asset_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"asset_sync_enabled"`
}

type BulkDispatch struct {
	MaxConcurrent int `mapstructure:"bulk_dispatch_max_concurrent"`
}

type TrackingCache struct {
	TTLMinutes int `mapstructure:"tracking_cache_ttl_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/killscale")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_RATE_LIMIT", 5.0)
	viper.SetDefault("META_RATE_BURST", 5)
	viper.SetDefault("META_PAGE_LIMIT", 100)
	viper.SetDefault("META_MAX_RETRIES", 3)

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_MAX_TOKENS", 1024)

	viper.SetDefault("SUPABASE_JWT_SECRET", "your_jwt_secret")

	// Defaults para o sincronizador de métricas de criativos
	viper.SetDefault("ASSET_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("ASSET_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("ASSET_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("ASSET_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("ASSET_SYNC_ENABLED", false)

	viper.SetDefault("BULK_DISPATCH_MAX_CONCURRENT", 5)

	viper.SetDefault("TRACKING_CACHE_TTL_MINUTES", 5)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
