package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Tuning is the full set of gameplay constants, loaded from YAML and
// hot-reloadable while the game runs. Nothing here persists.
type Tuning struct {
	Movement Movement `yaml:"movement"`
	Probe    Probe    `yaml:"probe"`
	Physics  Physics  `yaml:"physics"`
	Attack   Attack   `yaml:"attack"`
	Gate     Gate     `yaml:"gate"`
}

// Movement speeds are px/s in up-positive intent space; the physics layer
// converts to screen-down coordinates.
type Movement struct {
	WalkSpeed       float64 `yaml:"walk_speed"`
	RunSpeed        float64 `yaml:"run_speed"`
	AirSpeed        float64 `yaml:"air_speed"`
	ClimbSpeed      float64 `yaml:"climb_speed"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	WallJumpImpulse float64 `yaml:"wall_jump_impulse"`
}

// Probe reaches, px. Ground and ceiling stay tight so coincidental overlap
// doesn't read as contact; the wall reach is deliberately generous so wall
// behaviors trigger slightly before visual overlap.
type Probe struct {
	GroundDistance  float64 `yaml:"ground_distance"`
	WallDistance    float64 `yaml:"wall_distance"`
	CeilingDistance float64 `yaml:"ceiling_distance"`
}

type Physics struct {
	Gravity float64 `yaml:"gravity"`
}

type Attack struct {
	DurationTicks int `yaml:"duration_ticks"`
}

// Gate configures the animation-effects layer's can-act toggles. Each
// effect carries a distinct enter and exit value; CompatReapplyEnterOnExit
// reproduces the legacy defect where the exit hook re-applied the enter
// value, so the gate never released through that path.
type Gate struct {
	Effects                  []GateEffect `yaml:"effects"`
	CompatReapplyEnterOnExit bool         `yaml:"compat_reapply_enter_on_exit"`
}

type GateEffect struct {
	State string `yaml:"state"`
	Enter bool   `yaml:"enter"`
	Exit  bool   `yaml:"exit"`
}

// EnterValue reports the configured enter value for an animation state.
func (g Gate) EnterValue(state string) (bool, bool) {
	for _, fx := range g.Effects {
		if fx.State == state {
			return fx.Enter, true
		}
	}
	return false, false
}

// ExitValue reports the configured exit value for an animation state.
func (g Gate) ExitValue(state string) (bool, bool) {
	for _, fx := range g.Effects {
		if fx.State == state {
			return fx.Exit, true
		}
	}
	return false, false
}

func Default() Tuning {
	return Tuning{
		Movement: Movement{
			WalkSpeed:       160,
			RunSpeed:        280,
			AirSpeed:        120,
			ClimbSpeed:      140,
			JumpImpulse:     520,
			WallJumpImpulse: 340,
		},
		Probe: Probe{
			GroundDistance:  3,
			WallDistance:    8,
			CeilingDistance: 3,
		},
		Physics: Physics{Gravity: 1500},
		Attack:  Attack{DurationTicks: 24},
		Gate: Gate{
			Effects: []GateEffect{{State: "attack", Enter: false, Exit: true}},
		},
	}
}

// FromBytes parses YAML over the defaults, so partial files work.
func FromBytes(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return FromBytes(data)
}

// Env holds process-environment overrides, parsed once at startup.
type Env struct {
	ConfigPath string `env:"CLAMBER_CONFIG"`
	Debug      bool   `env:"CLAMBER_DEBUG"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return e, nil
}

// Store is the live tuning shared between systems. All reads and writes
// happen on the game tick, so there is no locking.
type Store struct {
	tuning Tuning
}

func NewStore(t Tuning) *Store {
	return &Store{tuning: t}
}

func (s *Store) Get() Tuning {
	return s.tuning
}

func (s *Store) Set(t Tuning) {
	s.tuning = t
}

// Reload replaces the tuning from a file, keeping the old values on error.
func (s *Store) Reload(path string) error {
	t, err := Load(path)
	if err != nil {
		return err
	}
	s.tuning = t
	return nil
}
