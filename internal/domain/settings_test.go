package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, s.Validate())
	assert.InDelta(t, 9000.0, s.CapitalSeed(), 1e-9)
}

func TestSettings_Validate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero node cost", func(s *Settings) { s.NodeCost = 0 }},
		{"negative node cost", func(s *Settings) { s.NodeCost = -100 }},
		{"zero activation delay", func(s *Settings) { s.NodeActivationDelay = 0 }},
		{"zero expiry", func(s *Settings) { s.NodeExpiryDays = 0 }},
		{"expiry before activation", func(s *Settings) { s.NodeExpiryDays = 2; s.NodeActivationDelay = 3 }},
		{"zero investment", func(s *Settings) { s.InitialInvestment = 0 }},
		{"booting rate 100%", func(s *Settings) { s.BootingRate = 1 }},
		{"negative booting rate", func(s *Settings) { s.BootingRate = -0.1 }},
		{"negative win count", func(s *Settings) { s.WinCount = -1 }},
		{"negative loss count", func(s *Settings) { s.LossCount = -1 }},
		{"zero leverage", func(s *Settings) { s.Leverage = 0 }},
		{"leverage too high", func(s *Settings) { s.Leverage = 101 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestSettings_Validate_ExpiryEqualsDelay(t *testing.T) {
	s := DefaultSettings()
	s.NodeActivationDelay = 5
	s.NodeExpiryDays = 5
	assert.NoError(t, s.Validate())
}

func TestValidateHorizon(t *testing.T) {
	assert.NoError(t, ValidateHorizon(1))
	assert.NoError(t, ValidateHorizon(MaxHorizonDays))
	assert.ErrorIs(t, ValidateHorizon(0), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateHorizon(-5), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateHorizon(MaxHorizonDays+1), ErrInvalidConfig)
}
