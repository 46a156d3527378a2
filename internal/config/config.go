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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	CredentialSync CredentialSync `mapstructure:",squash"`
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
	BaseURL               string `mapstructure:"meta_base_url"`
	URL                   string `mapstructure:"meta_url"`
	Version               string `mapstructure:"meta_version"`
	CampaignFields        string `mapstructure:"meta_campaign_fields"`
	AdFieldsMinimal       string `mapstructure:"meta_ad_fields_minimal"`
	AdFieldsDetailed      string `mapstructure:"meta_ad_fields_detailed"`
	InsightFields         string `mapstructure:"meta_insight_fields"`
	PageLimit             int    `mapstructure:"meta_page_limit"`
	DefaultDatePreset     string `mapstructure:"meta_default_date_preset"`
	RequestTimeoutSeconds int    `mapstructure:"meta_request_timeout_seconds"`
	MaxConcurrentFetches  int    `mapstructure:"meta_max_concurrent_fetches"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type CredentialSync struct {
	CronSchedule string `mapstructure:"credential_sync_cron"`
	Enabled      bool   `mapstructure:"credential_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adperformance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_CAMPAIGN_FIELDS", "id,name,objective,status,daily_budget,lifetime_budget,created_time,updated_time,start_time,stop_time")
	viper.SetDefault("META_AD_FIELDS_MINIMAL", "id,name,status,creative{id}")
	viper.SetDefault("META_AD_FIELDS_DETAILED", "id,name,status,creative{id,name,image_hash,thumbnail_url}")
	viper.SetDefault("META_INSIGHT_FIELDS", "impressions,clicks,spend,reach,frequency,ctr,cpc,actions,cost_per_action_type")
	viper.SetDefault("META_PAGE_LIMIT", 100)             // Apenas a primeira página é consultada
	viper.SetDefault("META_DEFAULT_DATE_PRESET", "last_90d")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30) // Limite para cada chamada remota
	viper.SetDefault("META_MAX_CONCURRENT_FETCHES", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("CREDENTIAL_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("CREDENTIAL_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
