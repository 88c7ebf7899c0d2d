package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseThresholds
// ──────────────────────────────────────────────────────────────────────────────

func TestParseThresholds_FormatoValido(t *testing.T) {
	out, err := config.ParseThresholds("electronics:20,grocery:50")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"electronics": 20, "grocery": 50}, out)
}

func TestParseThresholds_ToleraEspaciosYEntradasVacias(t *testing.T) {
	out, err := config.ParseThresholds(" electronics : 20 , , grocery:50 ,")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"electronics": 20, "grocery": 50}, out)
}

func TestParseThresholds_CadenaVaciaEsTablaVacia(t *testing.T) {
	out, err := config.ParseThresholds("")
	require.NoError(t, err)
	assert.Empty(t, out, "sin tabla solo aplica el umbral default")
}

func TestParseThresholds_Invalidos(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"sin separador", "electronics=20"},
		{"umbral no numérico", "electronics:abc"},
		{"umbral cero", "electronics:0"},
		{"umbral negativo", "grocery:-5"},
		{"categoría vacía", ":20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.ParseThresholds(tc.input)
			assert.Error(t, err)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DBConfig
// ──────────────────────────────────────────────────────────────────────────────

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "p@ss:w/rd",
		DBName:   "stock_alerts",
		SSLMode:  "require",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestConnectionString_ConstruyeDSNSinDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "stock_alerts", SSLMode: "disable"}
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}
