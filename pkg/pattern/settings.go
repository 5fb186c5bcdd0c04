package pattern

import (
	"errors"
	"fmt"
)

var ErrUnknownSetting = errors.New("unknown candle setting")

// RangeType selects which part of a candle a setting measures
type RangeType int

const (
	RealBody RangeType = iota
	HighLow
	Shadows
)

// Kind names one of the candle settings
type Kind int

const (
	BodyLong Kind = iota
	BodyVeryLong
	BodyShort
	BodyDoji
	ShadowLong
	ShadowVeryLong
	ShadowShort
	ShadowVeryShort
	Near
	Far
	Equal

	numKinds
)

// AllSettings addresses every kind at once when restoring defaults
const AllSettings Kind = -1

var kindNames = [...]string{
	"BodyLong", "BodyVeryLong", "BodyShort", "BodyDoji",
	"ShadowLong", "ShadowVeryLong", "ShadowShort", "ShadowVeryShort",
	"Near", "Far", "Equal",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	if k == AllSettings {
		return "AllSettings"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a setting name such as "BodyDoji" (case sensitive)
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	if name == "AllSettings" {
		return AllSettings, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownSetting)
}

// Setting is the threshold used to classify a candle feature: Factor times
// the average range over the AvgPeriod previous candles. With AvgPeriod 0
// the candle's own range is used.
type Setting struct {
	Range     RangeType
	AvgPeriod int
	Factor    float64
}

// Settings holds one Setting per Kind. It is a value type so callers can
// snapshot it.
type Settings [numKinds]Setting

// DefaultSettings returns the stock TA-Lib candle settings
func DefaultSettings() Settings {
	return Settings{
		BodyLong:        {Range: RealBody, AvgPeriod: 10, Factor: 1.0},
		BodyVeryLong:    {Range: RealBody, AvgPeriod: 10, Factor: 3.0},
		BodyShort:       {Range: RealBody, AvgPeriod: 10, Factor: 1.0},
		BodyDoji:        {Range: HighLow, AvgPeriod: 10, Factor: 0.1},
		ShadowLong:      {Range: RealBody, AvgPeriod: 0, Factor: 1.0},
		ShadowVeryLong:  {Range: RealBody, AvgPeriod: 0, Factor: 2.0},
		ShadowShort:     {Range: Shadows, AvgPeriod: 10, Factor: 1.0},
		ShadowVeryShort: {Range: HighLow, AvgPeriod: 10, Factor: 0.1},
		Near:            {Range: HighLow, AvgPeriod: 5, Factor: 0.2},
		Far:             {Range: HighLow, AvgPeriod: 5, Factor: 0.6},
		Equal:           {Range: HighLow, AvgPeriod: 5, Factor: 0.05},
	}
}

// Set replaces the setting of kind
func (s *Settings) Set(kind Kind, setting Setting) error {
	if kind < 0 || kind >= numKinds {
		return fmt.Errorf("%s: %w", kind, ErrUnknownSetting)
	}
	if setting.AvgPeriod < 0 || setting.Range < RealBody || setting.Range > Shadows {
		return fmt.Errorf("%s: invalid range %d or period %d: %w", kind, setting.Range, setting.AvgPeriod, ErrUnknownSetting)
	}
	s[kind] = setting
	return nil
}

// Restore resets kind, or every kind with AllSettings, to its default
func (s *Settings) Restore(kind Kind) error {
	defaults := DefaultSettings()
	if kind == AllSettings {
		*s = defaults
		return nil
	}
	if kind < 0 || kind >= numKinds {
		return fmt.Errorf("%s: %w", kind, ErrUnknownSetting)
	}
	s[kind] = defaults[kind]
	return nil
}
