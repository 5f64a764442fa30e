package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	// Variables vacías cuentan como no definidas.
	t.Setenv("FEEDBACK_STORE", "")
	t.Setenv("FEEDBACK_SUBMIT_DELAY_MS", "")
	t.Setenv("STOCK_STORE", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.FeedbackStoreMemory, cfg.Feedback.Store)
	assert.Equal(t, config.StockStoreMemory, cfg.Stock.Store)
	assert.Equal(t, 1500*time.Millisecond, cfg.Feedback.SubmitDelay)
}

func TestLoad_BackendInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("FEEDBACK_STORE", "localstorage")

	cfg, err := config.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_StockStore(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("FEEDBACK_STORE", "memory")
	t.Setenv("STOCK_STORE", "Postgres")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StockStorePostgres, cfg.Stock.Store)

	t.Setenv("STOCK_STORE", "badger")
	_, err = config.Load()
	assert.Error(t, err, "badger solo sirve para el log de opiniones")
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("FEEDBACK_STORE", "Badger")
	t.Setenv("FEEDBACK_SUBMIT_DELAY_MS", "250")
	t.Setenv("DB_PORT", "no-numero")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, config.FeedbackStoreBadger, cfg.Feedback.Store)
	assert.Equal(t, 250*time.Millisecond, cfg.Feedback.SubmitDelay)
	assert.Equal(t, 5432, cfg.DB.Port, "valor no numérico vuelve al defecto")
}

func TestLoad_ProduccionExigeSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("FEEDBACK_STORE", "memory")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "mis", Password: "p@ss:word", DBName: "mis", SSLMode: "disable"}
	assert.Equal(t, "postgres://mis:p%40ss%3Aword@db:5432/mis?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
