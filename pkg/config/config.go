package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Costing   CostingConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host      string
	Port      int
	BodyLimit int // bytes (HTTP_BODY_LIMIT_MB)
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CostingConfig parámetros por defecto del motor de costeo.
// Las tasas son porcentajes sobre el precio de venta.
type CostingConfig struct {
	HourlyRate           decimal.Decimal
	WorkingHoursPerMonth decimal.Decimal
	TaxRate              decimal.Decimal
	CardFeeRate          decimal.Decimal
	FixedCosts           []entity.FixedCostEntry // COSTING_FIXED_COSTS: arreglo JSON
}

// Params construye los parámetros del motor a partir de la configuración.
func (c CostingConfig) Params() costing.Params {
	return costing.Params{
		HourlyRate:           c.HourlyRate,
		FixedCosts:           c.FixedCosts,
		WorkingHoursPerMonth: c.WorkingHoursPerMonth,
		TaxRate:              c.TaxRate,
		CardFeeRate:          c.CardFeeRate,
	}
}

// AnalyticsConfig valores por defecto de los reportes.
type AnalyticsConfig struct {
	TopProducts int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, COSTING_HOURLY_RATE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper arma la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	hourly, err := getDecimal(v, "COSTING_HOURLY_RATE", costing.DefaultHourlyRate)
	if err != nil {
		return nil, err
	}
	hours, err := getDecimal(v, "COSTING_WORKING_HOURS_PER_MONTH", costing.DefaultWorkingHoursPerMonth)
	if err != nil {
		return nil, err
	}
	tax, err := getDecimal(v, "COSTING_TAX_RATE", decimal.Zero)
	if err != nil {
		return nil, err
	}
	fee, err := getDecimal(v, "COSTING_CARD_FEE_RATE", decimal.Zero)
	if err != nil {
		return nil, err
	}
	fixed, err := getFixedCosts(v, "COSTING_FIXED_COSTS")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "atelie-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:      getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:      getInt(v, "HTTP_PORT", 8080),
			BodyLimit: getInt(v, "HTTP_BODY_LIMIT_MB", 8) * 1024 * 1024,
		},
		Costing: CostingConfig{
			HourlyRate:           hourly,
			WorkingHoursPerMonth: hours,
			TaxRate:              tax,
			CardFeeRate:          fee,
			FixedCosts:           fixed,
		},
		Analytics: AnalyticsConfig{
			TopProducts: getInt(v, "ANALYTICS_TOP_PRODUCTS", 5),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido %q: %w", key, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: %s no puede ser negativo (%s)", key, raw)
	}
	return d, nil
}

func getFixedCosts(v *viper.Viper, key string) ([]entity.FixedCostEntry, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	switch raw := v.Get(key).(type) {
	case string:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		var entries []entity.FixedCostEntry
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("config: %s debe ser un arreglo JSON: %w", key, err)
		}
		return entries, nil
	case []any:
		entries := make([]entity.FixedCostEntry, 0, len(raw))
		for _, item := range raw {
			if m, ok := item.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
		return entries, nil
	}
	return nil, fmt.Errorf("config: %s con formato no soportado", key)
}
