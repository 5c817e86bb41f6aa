// Package config holds the static tunables consumed by the combat engine
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/physics"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full set of tunables read by balls, weapons and the match loop
type Config struct {
	MaxHP        float64 `yaml:"max_hp"`
	BallRadius   float64 `yaml:"ball_radius"`
	BallMass     float64 `yaml:"ball_mass"`
	BallMaxSpeed float64 `yaml:"ball_max_speed"`
	BallFriction float64 `yaml:"ball_friction"`

	BallRestitution float64 `yaml:"ball_restitution"`
	WallRestitution float64 `yaml:"wall_restitution"`

	WeaponHitCooldown int  `yaml:"weapon_hit_cooldown"`
	SuperThreshold    int  `yaml:"super_threshold"`
	SupersEnabled     bool `yaml:"supers_enabled"`

	WeaponWallBounce         bool    `yaml:"weapon_wall_bounce"`
	WeaponWallBounceStrength float64 `yaml:"weapon_wall_bounce_strength"`
	WeaponWallDamageBounce   bool    `yaml:"weapon_wall_damage_bounce"`

	GravityMode  bool    `yaml:"gravity_mode"`
	Gravity      float64 `yaml:"gravity"`
	GravityAngle float64 `yaml:"gravity_angle"`

	Arena         physics.Rect `yaml:"arena"`
	MaxFrames     int          `yaml:"max_frames"`
	ParryDistance float64      `yaml:"parry_distance"`

	// Colors maps variant name to "#RRGGBB"
	Colors map[string]string `yaml:"colors"`
}

// Default returns a config populated from parameter constants
func Default() *Config {
	colors := make(map[string]string, len(defaultColors))
	for k, v := range defaultColors {
		colors[k] = v
	}
	return &Config{
		MaxHP:                    parameter.CombatMaxHP,
		BallRadius:               parameter.BallRadius,
		BallMass:                 parameter.BallMass,
		BallMaxSpeed:             parameter.BallMaxSpeed,
		BallFriction:             parameter.BallFriction,
		BallRestitution:          parameter.BallRestitution,
		WallRestitution:          parameter.WallRestitution,
		WeaponHitCooldown:        parameter.WeaponHitCooldown,
		SuperThreshold:           parameter.CombatSuperThreshold,
		SupersEnabled:            true,
		WeaponWallBounce:         parameter.WeaponWallBounce,
		WeaponWallBounceStrength: parameter.WeaponWallBounceStrength,
		WeaponWallDamageBounce:   parameter.WeaponWallDamageBounce,
		GravityMode:              parameter.GravityMode,
		Gravity:                  parameter.Gravity,
		GravityAngle:             parameter.GravityAngle,
		Arena: physics.Rect{
			X:      parameter.ArenaX,
			Y:      parameter.ArenaY,
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		MaxFrames:     parameter.MatchMaxFrames,
		ParryDistance: parameter.ParryDistance,
		Colors:        colors,
	}
}

// Load reads a YAML file over the defaults, applies environment overrides and validates
// An empty path yields defaults with environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML data on the receiver, palette entries merge with existing ones
func (c *Config) Decode(data []byte) error {
	base := c.Colors
	c.Colors = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		c.Colors = base
		return err
	}
	overlay := c.Colors
	c.Colors = base
	if c.Colors == nil {
		c.Colors = make(map[string]string, len(overlay))
	}
	for k, v := range overlay {
		c.Colors[k] = v
	}
	return nil
}

// ApplyEnv overrides selected tunables from BALLARENA_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BALLARENA_SUPERS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SupersEnabled = b
		}
	}
	if v := os.Getenv("BALLARENA_MAX_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxFrames = n
		}
	}
	if v := os.Getenv("BALLARENA_GRAVITY_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.GravityMode = b
		}
	}
}

// Validate rejects values the physics layer cannot operate on
func (c *Config) Validate() error {
	switch {
	case c.MaxHP <= 0:
		return fmt.Errorf("%w: max_hp must be positive, got %v", ErrInvalid, c.MaxHP)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball_radius must be positive, got %v", ErrInvalid, c.BallRadius)
	case c.BallMass <= 0:
		return fmt.Errorf("%w: ball_mass must be positive, got %v", ErrInvalid, c.BallMass)
	case c.BallMaxSpeed <= 0:
		return fmt.Errorf("%w: ball_max_speed must be positive, got %v", ErrInvalid, c.BallMaxSpeed)
	case c.BallFriction <= 0 || c.BallFriction > 1:
		return fmt.Errorf("%w: ball_friction must be in (0, 1], got %v", ErrInvalid, c.BallFriction)
	case c.BallRestitution < 0 || c.BallRestitution > 2:
		return fmt.Errorf("%w: ball_restitution must be in [0, 2], got %v", ErrInvalid, c.BallRestitution)
	case c.WallRestitution < 0 || c.WallRestitution > 2:
		return fmt.Errorf("%w: wall_restitution must be in [0, 2], got %v", ErrInvalid, c.WallRestitution)
	case c.WeaponHitCooldown < 0:
		return fmt.Errorf("%w: weapon_hit_cooldown must not be negative, got %d", ErrInvalid, c.WeaponHitCooldown)
	case c.SuperThreshold <= 0:
		return fmt.Errorf("%w: super_threshold must be positive, got %d", ErrInvalid, c.SuperThreshold)
	case c.Arena.Width <= 4*c.BallRadius || c.Arena.Height <= 4*c.BallRadius:
		return fmt.Errorf("%w: arena %vx%v too small for ball radius %v", ErrInvalid, c.Arena.Width, c.Arena.Height, c.BallRadius)
	case c.MaxFrames <= 0:
		return fmt.Errorf("%w: max_frames must be positive, got %d", ErrInvalid, c.MaxFrames)
	case c.ParryDistance < 0:
		return fmt.Errorf("%w: parry_distance must not be negative, got %v", ErrInvalid, c.ParryDistance)
	}
	return nil
}

// WallPush returns the weapon wall pushback settings
func (c *Config) WallPush() physics.WallPush {
	return physics.WallPush{
		Enabled:      c.WeaponWallBounce,
		Strength:     c.WeaponWallBounceStrength,
		DamageScaled: c.WeaponWallDamageBounce,
	}
}

// Color returns the palette entry for a variant, white when unknown
func (c *Config) Color(variant string) string {
	if col, ok := c.Colors[variant]; ok {
		return col
	}
	return "#FFFFFF"
}
