package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Profile is a named bundle of conversion options selectable with --profile.
// Fields mirror the command line flags; unset fields fall back to the flag
// or config defaults.
type Profile struct {
	Space bool `mapstructure:"space"`
	Tab   bool `mapstructure:"tab"`
	Dos   bool `mapstructure:"dos"`
	Unix  bool `mapstructure:"unix"`
	Width int  `mapstructure:"width"` // 0 means unset
}

// ResolveProfile decodes the named profile from the loose config map into a
// typed Profile and validates it. Unknown keys are rejected so a typo in the
// dotfile surfaces instead of being silently ignored.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	raw, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found in configuration", name)
	}

	var p Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &p,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return &p, nil
}

// Validate checks the profile for contradictory or out-of-range settings.
func (p *Profile) Validate() error {
	if p.Space && p.Tab {
		return fmt.Errorf("space and tab are mutually exclusive")
	}
	if p.Dos && p.Unix {
		return fmt.Errorf("dos and unix are mutually exclusive")
	}
	switch p.Width {
	case 0, 2, 4, 8:
	default:
		return fmt.Errorf("width must be 2, 4 or 8")
	}
	return nil
}
