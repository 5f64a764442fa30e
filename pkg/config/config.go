package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends disponibles para el log de opiniones.
const (
	FeedbackStoreMemory   = "memory"
	FeedbackStoreBadger   = "badger"
	FeedbackStorePostgres = "postgres"
)

// Backends disponibles para los registros de stock.
const (
	StockStoreMemory   = "memory"
	StockStorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Feedback FeedbackConfig
	Stock    StockConfig
	Report   ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL (solo si Feedback.Store o Stock.Store = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig configuración de JWT para el personal del MIS.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FeedbackConfig selecciona el backend del log de opiniones y la demora artificial del envío.
type FeedbackConfig struct {
	Store       string // memory, badger, postgres
	BadgerPath  string
	SubmitDelay time.Duration
}

// StockConfig selecciona dónde viven los registros de stock.
// Con postgres la tabla se crea y se siembra con los datos de muestra al arrancar.
type StockConfig struct {
	Store string // memory, postgres
}

// ReportConfig programación del resumen periódico de stock.
type ReportConfig struct {
	Cron string // "off" = desactivado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, FEEDBACK_STORE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "restaurante-mis"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "restaurante_mis"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "restaurante-mis"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Feedback: FeedbackConfig{
			Store:       strings.ToLower(getString(v, "FEEDBACK_STORE", FeedbackStoreMemory)),
			BadgerPath:  getString(v, "FEEDBACK_BADGER_PATH", "./data/feedback"),
			SubmitDelay: time.Duration(getInt(v, "FEEDBACK_SUBMIT_DELAY_MS", 1500)) * time.Millisecond,
		},
		Stock: StockConfig{
			Store: strings.ToLower(getString(v, "STOCK_STORE", StockStoreMemory)),
		},
		Report: ReportConfig{
			Cron: getString(v, "REPORT_CRON", "0 7 * * *"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Feedback.Store {
	case FeedbackStoreMemory, FeedbackStoreBadger, FeedbackStorePostgres:
	default:
		return fmt.Errorf("FEEDBACK_STORE inválido: %q", c.Feedback.Store)
	}
	switch c.Stock.Store {
	case StockStoreMemory, StockStorePostgres:
	default:
		return fmt.Errorf("STOCK_STORE inválido: %q", c.Stock.Store)
	}
	if c.Feedback.SubmitDelay < 0 {
		return fmt.Errorf("FEEDBACK_SUBMIT_DELAY_MS no puede ser negativo")
	}
	if c.App.Env == "production" && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET es obligatorio en production")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}
