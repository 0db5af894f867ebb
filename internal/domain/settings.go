package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indica una configuración con la que la simulación no puede arrancar.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// MaxHorizonDays limita el horizonte de simulación (10 años).
	MaxHorizonDays = 3650
	maxLeverage    = 100
)

// Settings es la configuración inmutable de una corrida.
// Se pasa por valor a cada componente; nadie la modifica después de validarla.
type Settings struct {
	InitialInvestment float64 // inversión inicial (USDT)
	Leverage          int     // se conserva como input, ninguna fórmula lo usa
	WinCount          int     // trades ganadores por día
	LossCount         int     // trades perdedores por día

	MarketAddRate    float64 // no usado por las fórmulas actuales
	Fail1stAddRate   float64 // no usado por las fórmulas actuales
	MonthlyFeeRate   float64
	BootingRate      float64 // porción de la inversión que no entra al capital operativo
	DailyFeeRate     float64
	SelfReferralRate float64
	WinProfitRate    float64 // fracción del capital que se arriesga por trade
	LossRate         float64 // normalmente negativo (-1%); se usa su valor absoluto
	BondLeverRatio   float64 // no usado por las fórmulas actuales

	NodeCost            float64 // pérdida necesaria para crear 1 nodo de seguro
	NodeActivationDelay int     // días en espera antes de activarse
	NodeExpiryDays      int     // edad (desde creación) a la que el nodo se reporta expirado

	// RollCarryover suma el remanente no convertido del día anterior al pool de hoy.
	// Desactivado por defecto: el remanente de cada día se descarta.
	RollCarryover bool
}

// DefaultSettings devuelve los valores por defecto del modelo.
func DefaultSettings() Settings {
	return Settings{
		InitialInvestment:   10000,
		Leverage:            25,
		WinCount:            75,
		LossCount:           90,
		MarketAddRate:       0.0006,
		Fail1stAddRate:      0.015,
		MonthlyFeeRate:      0.03,
		BootingRate:         0.10,
		DailyFeeRate:        0.0066,
		SelfReferralRate:    0.40,
		WinProfitRate:       0.01,
		LossRate:            -0.01,
		BondLeverRatio:      0.40,
		NodeCost:            100,
		NodeActivationDelay: 3,
		NodeExpiryDays:      50,
	}
}

// CapitalSeed es el capital operativo inicial: inversión × (1 − booting rate).
func (s Settings) CapitalSeed() float64 {
	return s.InitialInvestment * (1 - s.BootingRate)
}

// Validate falla rápido ante parámetros que hacen indefinida la recurrencia.
func (s Settings) Validate() error {
	if s.NodeCost <= 0 {
		return fmt.Errorf("%w: node_cost must be positive, got %v", ErrInvalidConfig, s.NodeCost)
	}
	if s.NodeActivationDelay < 1 {
		return fmt.Errorf("%w: node_activation_delay must be >= 1, got %d", ErrInvalidConfig, s.NodeActivationDelay)
	}
	if s.NodeExpiryDays < 1 {
		return fmt.Errorf("%w: node_expiry_days must be >= 1, got %d", ErrInvalidConfig, s.NodeExpiryDays)
	}
	// Con expiry < delay un mismo cohorte estaría "en espera" y "expirado" a la vez.
	if s.NodeExpiryDays < s.NodeActivationDelay {
		return fmt.Errorf("%w: node_expiry_days (%d) must be >= node_activation_delay (%d)",
			ErrInvalidConfig, s.NodeExpiryDays, s.NodeActivationDelay)
	}
	if s.InitialInvestment <= 0 {
		return fmt.Errorf("%w: initial_investment must be positive, got %v", ErrInvalidConfig, s.InitialInvestment)
	}
	if s.BootingRate < 0 || s.BootingRate >= 1 {
		return fmt.Errorf("%w: booting_rate must be in [0, 1), got %v", ErrInvalidConfig, s.BootingRate)
	}
	if s.WinCount < 0 || s.LossCount < 0 {
		return fmt.Errorf("%w: win_count and loss_count must be >= 0, got %d/%d", ErrInvalidConfig, s.WinCount, s.LossCount)
	}
	if s.Leverage < 1 || s.Leverage > maxLeverage {
		return fmt.Errorf("%w: leverage must be in [1, %d], got %d", ErrInvalidConfig, maxLeverage, s.Leverage)
	}
	return nil
}

// ValidateHorizon comprueba el número de días a simular.
func ValidateHorizon(days int) error {
	if days < 1 || days > MaxHorizonDays {
		return fmt.Errorf("%w: days must be in [1, %d], got %d", ErrInvalidConfig, MaxHorizonDays, days)
	}
	return nil
}
