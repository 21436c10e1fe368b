package generation

import "fmt"

// NewGenerator dispatches on the concrete type of settings and returns
// the matching Generator seeded for reproducible output. Unrecognized
// settings types are a programmer error, not a runtime input error, so
// they surface as a plain Go error rather than a wrapped sentinel.
func NewGenerator(settings Settings, seed uint32) (Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch s := settings.(type) {
	case UniformCubeSettings:
		return &UniformCubeGenerator{settings: s, seed: seed}, nil
	case UniformSphereSettings:
		return &UniformSphereGenerator{settings: s, seed: seed}, nil
	case NormalSphereSettings:
		return &NormalSphereGenerator{settings: s, seed: seed}, nil
	case PlummerSphereSettings:
		return &PlummerSphereGenerator{settings: s, seed: seed}, nil
	case SpiralGalaxySettings:
		return &SpiralGalaxyGenerator{settings: s, seed: seed}, nil
	case CollisionModelSettings:
		return &CollisionModelGenerator{settings: s, seed: seed}, nil
	case FlybyModelSettings:
		return &FlybyModelGenerator{settings: s, seed: seed}, nil
	default:
		return nil, fmt.Errorf("generation: unrecognized settings type %T", settings)
	}
}
