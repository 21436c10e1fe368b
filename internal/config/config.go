// Package config loads and validates the YAML settings that drive a
// simulation run: which generator builds the initial System, which
// integration method advances it, and how often each output stream
// samples the result.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynsim/internal/generation"
	"github.com/san-kum/dynsim/internal/simulation"
)

const (
	DefaultTimeStep          = 0.01
	DefaultDuration          = 10.0
	DefaultThetaMAC          = 0.5
	DefaultSoftening         = 0.05
	DefaultTimeStepParameter = 0.02
	DefaultRenderStep        = 0.1
	DefaultDiagnosticsStep   = 0.1
	DefaultAnalyticsStep     = 1.0
	DefaultParticleCount     = 100
)

// Config is the top-level settings document. Generation picks which
// generator builds the initial System; Simulation picks which method
// advances it and at what cadence each output stream samples.
type Config struct {
	Seed       int64            `yaml:"seed"`
	Generation GenerationConfig `yaml:"generation"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GenerationConfig carries every generator's fields in one flat block;
// only the fields relevant to Type are read.
type GenerationConfig struct {
	Type string `yaml:"type"`

	ParticleCount int     `yaml:"particle_count"`
	SideLength    float64 `yaml:"side_length"`
	SphereRadius  float64 `yaml:"sphere_radius"`
	TotalMass     float64 `yaml:"total_mass"`
	InitVelocity  float64 `yaml:"initial_velocity"`

	PositionStdDev float64 `yaml:"position_std_dev"`
	VelocityStdDev float64 `yaml:"velocity_std_dev"`
	MassMean       float64 `yaml:"mass_mean"`
	MassStdDev     float64 `yaml:"mass_std_dev"`

	Arms          int     `yaml:"arms"`
	Radius        float64 `yaml:"radius"`
	Twist         float64 `yaml:"twist"`
	BlackHoleMass float64 `yaml:"black_hole_mass"`

	ParticleCount1   int     `yaml:"particle_count_1"`
	Radius1          float64 `yaml:"radius_1"`
	TotalMass1       float64 `yaml:"total_mass_1"`
	ParticleCount2   int     `yaml:"particle_count_2"`
	Radius2          float64 `yaml:"radius_2"`
	TotalMass2       float64 `yaml:"total_mass_2"`
	Separation       float64 `yaml:"separation"`
	RelativeVelocity float64 `yaml:"relative_velocity"`

	BodyMass float64 `yaml:"body_mass"`

	StreamPath string `yaml:"stream_path"`
}

// SimulationConfig carries every integration method's fields plus the
// three independent sampling cadences (render/diagnostics/analytics).
type SimulationConfig struct {
	Method             string  `yaml:"method"`
	TimeStep           float64 `yaml:"time_step"`
	SofteningParameter float64 `yaml:"softening_parameter"`
	ThetaMAC           float64 `yaml:"theta_mac"`
	TimeStepParameter  float64 `yaml:"time_step_parameter"`
	Duration           float64 `yaml:"duration"`
	RenderStep         float64 `yaml:"render_step"`
	DiagnosticsStep    float64 `yaml:"diagnostics_step"`
	AnalyticsStep      float64 `yaml:"analytics_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Type:          "uniform_sphere",
			ParticleCount: DefaultParticleCount,
			SphereRadius:  1.0,
			TotalMass:     1.0,
		},
		Simulation: SimulationConfig{
			Method:             string(simulation.MethodLeapfrog),
			TimeStep:           DefaultTimeStep,
			SofteningParameter: DefaultSoftening,
			ThetaMAC:           DefaultThetaMAC,
			TimeStepParameter:  DefaultTimeStepParameter,
			Duration:           DefaultDuration,
			RenderStep:         DefaultRenderStep,
			DiagnosticsStep:    DefaultDiagnosticsStep,
			AnalyticsStep:      DefaultAnalyticsStep,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GeneratorSettings builds the generation.Settings value matching
// g.Type. The stream generator has no Settings/seed (it reads particles
// verbatim from StreamPath) and is constructed separately by callers;
// GeneratorSettings returns a nil Settings for it.
func (g GenerationConfig) GeneratorSettings() (generation.Settings, error) {
	switch g.Type {
	case "uniform_cube":
		return generation.UniformCubeSettings{
			ParticleCount:   g.ParticleCount,
			SideLength:      g.SideLength,
			InitialVelocity: g.InitVelocity,
			TotalMass:       g.TotalMass,
		}, nil
	case "uniform_sphere":
		return generation.UniformSphereSettings{
			ParticleCount:   g.ParticleCount,
			SphereRadius:    g.SphereRadius,
			InitialVelocity: g.InitVelocity,
			TotalMass:       g.TotalMass,
		}, nil
	case "normal_sphere":
		return generation.NormalSphereSettings{
			ParticleCount:  g.ParticleCount,
			PositionStdDev: g.PositionStdDev,
			VelocityStdDev: g.VelocityStdDev,
			MassMean:       g.MassMean,
			MassStdDev:     g.MassStdDev,
		}, nil
	case "plummer_sphere":
		return generation.PlummerSphereSettings{
			ParticleCount: g.ParticleCount,
			SphereRadius:  g.SphereRadius,
			TotalMass:     g.TotalMass,
		}, nil
	case "spiral_galaxy":
		return generation.SpiralGalaxySettings{
			ParticleCount: g.ParticleCount,
			Arms:          g.Arms,
			Radius:        g.Radius,
			TotalMass:     g.TotalMass,
			Twist:         g.Twist,
			BlackHoleMass: g.BlackHoleMass,
		}, nil
	case "collision_model":
		return generation.CollisionModelSettings{
			ParticleCount1:   g.ParticleCount1,
			Radius1:          g.Radius1,
			TotalMass1:       g.TotalMass1,
			ParticleCount2:   g.ParticleCount2,
			Radius2:          g.Radius2,
			TotalMass2:       g.TotalMass2,
			Separation:       g.Separation,
			RelativeVelocity: g.RelativeVelocity,
		}, nil
	case "flyby_model":
		return generation.FlybyModelSettings{
			ParticleCount: g.ParticleCount,
			Radius:        g.Radius,
			TotalMass:     g.TotalMass,
			BodyMass:      g.BodyMass,
		}, nil
	case "stream":
		return nil, nil
	default:
		return nil, fmt.Errorf("config: unrecognized generation type %q", g.Type)
	}
}

// IntegratorSettings builds the simulation.Settings value matching
// s.Method.
func (s SimulationConfig) IntegratorSettings() (simulation.Settings, error) {
	method, err := simulation.ParseMethod(s.Method)
	if err != nil {
		return nil, err
	}

	switch method {
	case simulation.MethodEuler:
		return simulation.EulerSettings{TimeStep: s.TimeStep, Softening: s.SofteningParameter}, nil
	case simulation.MethodLeapfrog:
		return simulation.LeapfrogSettings{TimeStep: s.TimeStep, Softening: s.SofteningParameter}, nil
	case simulation.MethodHermite:
		return simulation.HermiteSettings{TimeStep: s.TimeStep, Softening: s.SofteningParameter}, nil
	case simulation.MethodHITS:
		return simulation.HITSSettings{TimeStepParameter: s.TimeStepParameter, Softening: s.SofteningParameter}, nil
	case simulation.MethodBarnesHutLeapfrog:
		return simulation.BarnesHutLeapfrogSettings{TimeStep: s.TimeStep, ThetaMAC: s.ThetaMAC, Softening: s.SofteningParameter}, nil
	default:
		return nil, fmt.Errorf("config: unrecognized simulation method %q", s.Method)
	}
}
