package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig contiene los parámetros del modelo y el horizonte.
type SimulationConfig struct {
	Days int `yaml:"days"`

	InitialInvestment float64 `yaml:"initial_investment"`
	Leverage          int     `yaml:"leverage"`
	WinCount          int     `yaml:"win_count"`
	LossCount         int     `yaml:"loss_count"`

	MarketAddRate    float64 `yaml:"market_add_rate"`
	Fail1stAddRate   float64 `yaml:"fail_1st_add_rate"`
	MonthlyFeeRate   float64 `yaml:"monthly_fee_rate"`
	BootingRate      float64 `yaml:"booting_rate"`
	DailyFeeRate     float64 `yaml:"daily_fee_rate"`
	SelfReferralRate float64 `yaml:"self_referral_rate"`
	WinProfitRate    float64 `yaml:"win_profit_rate"`
	LossRate         float64 `yaml:"loss_rate"`
	BondLeverRatio   float64 `yaml:"bond_lever_ratio"`

	NodeCost            float64 `yaml:"node_cost"`
	NodeActivationDelay int     `yaml:"node_activation_delay"`
	NodeExpiryDays      int     `yaml:"node_expiry_days"`
	RollCarryover       bool    `yaml:"roll_carryover"`
}

// OutputConfig controla la presentación de resultados.
type OutputConfig struct {
	TableRows   int    `yaml:"table_rows"`  // filas de la tabla diaria en consola
	Checkpoints []int  `yaml:"checkpoints"` // días detallados en el resumen
	CSVPath     string `yaml:"csv_path"`    // vacío = no exportar
}

// StorageConfig controla dónde se archivan las corridas.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json | pretty
}

const (
	defaultDays      = 150
	defaultTableRows = 10
	defaultDSN       = "airdropsim.db"
)

// Default devuelve la configuración con los valores por defecto del modelo.
func Default() *Config {
	s := domain.DefaultSettings()
	return &Config{
		Simulation: SimulationConfig{
			Days:                defaultDays,
			InitialInvestment:   s.InitialInvestment,
			Leverage:            s.Leverage,
			WinCount:            s.WinCount,
			LossCount:           s.LossCount,
			MarketAddRate:       s.MarketAddRate,
			Fail1stAddRate:      s.Fail1stAddRate,
			MonthlyFeeRate:      s.MonthlyFeeRate,
			BootingRate:         s.BootingRate,
			DailyFeeRate:        s.DailyFeeRate,
			SelfReferralRate:    s.SelfReferralRate,
			WinProfitRate:       s.WinProfitRate,
			LossRate:            s.LossRate,
			BondLeverRatio:      s.BondLeverRatio,
			NodeCost:            s.NodeCost,
			NodeActivationDelay: s.NodeActivationDelay,
			NodeExpiryDays:      s.NodeExpiryDays,
			RollCarryover:       s.RollCarryover,
		},
		Output: OutputConfig{
			TableRows:   defaultTableRows,
			Checkpoints: append([]int(nil), domain.DefaultCheckpoints...),
		},
	}
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Las claves ausentes en el YAML conservan su valor por defecto; si el archivo
// no existe se usan sólo los defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg, nil
}

// Settings convierte la sección de simulación al valor inmutable del dominio.
func (c *Config) Settings() domain.Settings {
	s := c.Simulation
	return domain.Settings{
		InitialInvestment:   s.InitialInvestment,
		Leverage:            s.Leverage,
		WinCount:            s.WinCount,
		LossCount:           s.LossCount,
		MarketAddRate:       s.MarketAddRate,
		Fail1stAddRate:      s.Fail1stAddRate,
		MonthlyFeeRate:      s.MonthlyFeeRate,
		BootingRate:         s.BootingRate,
		DailyFeeRate:        s.DailyFeeRate,
		SelfReferralRate:    s.SelfReferralRate,
		WinProfitRate:       s.WinProfitRate,
		LossRate:            s.LossRate,
		BondLeverRatio:      s.BondLeverRatio,
		NodeCost:            s.NodeCost,
		NodeActivationDelay: s.NodeActivationDelay,
		NodeExpiryDays:      s.NodeExpiryDays,
		RollCarryover:       s.RollCarryover,
	}
}

// Validate comprueba la configuración antes de arrancar la corrida.
func (c *Config) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("config.Validate: simulation: %w", err)
	}
	if err := domain.ValidateHorizon(c.Simulation.Days); err != nil {
		return fmt.Errorf("config.Validate: simulation: %w", err)
	}
	return nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
}

// setDefaults asegura que los valores de presentación tengan valores sensatos.
// Los parámetros del modelo no se tocan: un 0 explícito es un valor válido o un error de Validate.
func setDefaults(cfg *Config) {
	if cfg.Output.TableRows <= 0 {
		cfg.Output.TableRows = defaultTableRows
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = defaultDSN
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
