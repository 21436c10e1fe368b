package config

// Presets groups named Configs by generator type, mirroring the
// teacher's per-model preset table but keyed on the N-body generator
// rather than a dynamical-model name.
var Presets = map[string]map[string]*Config{
	"uniform_sphere": {
		"small_cluster": {
			Generation: GenerationConfig{Type: "uniform_sphere", ParticleCount: 64, SphereRadius: 1.0, TotalMass: 1.0, InitVelocity: 0.1},
			Simulation: SimulationConfig{Method: "Leapfrog", TimeStep: 0.005, SofteningParameter: 0.05, Duration: 20.0, RenderStep: 0.1, DiagnosticsStep: 0.1, AnalyticsStep: 1.0},
		},
		"large_cluster": {
			Generation: GenerationConfig{Type: "uniform_sphere", ParticleCount: 2000, SphereRadius: 5.0, TotalMass: 100.0, InitVelocity: 0.2},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.01, ThetaMAC: 0.5, SofteningParameter: 0.1, Duration: 50.0, RenderStep: 0.2, DiagnosticsStep: 0.2, AnalyticsStep: 2.0},
		},
	},
	"plummer_sphere": {
		"globular": {
			Generation: GenerationConfig{Type: "plummer_sphere", ParticleCount: 1000, SphereRadius: 3.0, TotalMass: 50.0},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.01, ThetaMAC: 0.6, SofteningParameter: 0.08, Duration: 100.0, RenderStep: 0.5, DiagnosticsStep: 0.5, AnalyticsStep: 5.0},
		},
		"dense_core": {
			Generation: GenerationConfig{Type: "plummer_sphere", ParticleCount: 500, SphereRadius: 1.0, TotalMass: 50.0},
			Simulation: SimulationConfig{Method: "Hermite", TimeStep: 0.002, SofteningParameter: 0.02, Duration: 20.0, RenderStep: 0.1, DiagnosticsStep: 0.1, AnalyticsStep: 1.0},
		},
	},
	"spiral_galaxy": {
		"two_arm": {
			Generation: GenerationConfig{Type: "spiral_galaxy", ParticleCount: 1500, Arms: 2, Radius: 10.0, TotalMass: 200.0, Twist: 2.5, BlackHoleMass: 20.0},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.02, ThetaMAC: 0.5, SofteningParameter: 0.15, Duration: 200.0, RenderStep: 1.0, DiagnosticsStep: 1.0, AnalyticsStep: 10.0},
		},
		"four_arm": {
			Generation: GenerationConfig{Type: "spiral_galaxy", ParticleCount: 2000, Arms: 4, Radius: 12.0, TotalMass: 300.0, Twist: 3.5, BlackHoleMass: 30.0},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.02, ThetaMAC: 0.6, SofteningParameter: 0.15, Duration: 200.0, RenderStep: 1.0, DiagnosticsStep: 1.0, AnalyticsStep: 10.0},
		},
	},
	"collision_model": {
		"equal_mass_merger": {
			Generation: GenerationConfig{Type: "collision_model", ParticleCount1: 500, Radius1: 2.0, TotalMass1: 50.0, ParticleCount2: 500, Radius2: 2.0, TotalMass2: 50.0, Separation: 10.0, RelativeVelocity: 0.5},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.01, ThetaMAC: 0.5, SofteningParameter: 0.1, Duration: 150.0, RenderStep: 0.5, DiagnosticsStep: 0.5, AnalyticsStep: 5.0},
		},
		"minor_merger": {
			Generation: GenerationConfig{Type: "collision_model", ParticleCount1: 800, Radius1: 3.0, TotalMass1: 80.0, ParticleCount2: 200, Radius2: 1.0, TotalMass2: 10.0, Separation: 12.0, RelativeVelocity: 0.7},
			Simulation: SimulationConfig{Method: "Barnes-Hut Algorithm (Leapfrog)", TimeStep: 0.01, ThetaMAC: 0.5, SofteningParameter: 0.1, Duration: 150.0, RenderStep: 0.5, DiagnosticsStep: 0.5, AnalyticsStep: 5.0},
		},
	},
	"flyby_model": {
		"close_encounter": {
			Generation: GenerationConfig{Type: "flyby_model", ParticleCount: 300, Radius: 2.0, TotalMass: 30.0, BodyMass: 10.0},
			Simulation: SimulationConfig{Method: "Leapfrog", TimeStep: 0.01, SofteningParameter: 0.1, Duration: 80.0, RenderStep: 0.2, DiagnosticsStep: 0.2, AnalyticsStep: 2.0},
		},
	},
}

func GetPreset(generatorType, preset string) *Config {
	presets, ok := Presets[generatorType]
	if !ok {
		return nil
	}
	cfg, ok := presets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(generatorType string) []string {
	presets, ok := Presets[generatorType]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
