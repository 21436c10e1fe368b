package simulation

import "testing"

func TestNewIntegrator_DispatchesOnSettingsType(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     Method
	}{
		{"Euler", EulerSettings{TimeStep: 0.01, Softening: 0.01}, MethodEuler},
		{"Leapfrog", LeapfrogSettings{TimeStep: 0.01, Softening: 0.01}, MethodLeapfrog},
		{"Hermite", HermiteSettings{TimeStep: 0.01, Softening: 0.01}, MethodHermite},
		{"HITS", HITSSettings{TimeStepParameter: 0.01, Softening: 0.01}, MethodHITS},
		{"BarnesHutLeapfrog", BarnesHutLeapfrogSettings{TimeStep: 0.01, ThetaMAC: 0.5, Softening: 0.01}, MethodBarnesHutLeapfrog},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			integrator, err := NewIntegrator(c.settings)
			if err != nil {
				t.Fatalf("NewIntegrator() error = %v", err)
			}
			if integrator == nil {
				t.Fatal("NewIntegrator() returned a nil Integrator")
			}
			if c.settings.method() != c.want {
				t.Errorf("method() = %v, want %v", c.settings.method(), c.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Hermite Individual Time Steps")
	if err != nil {
		t.Fatalf("ParseMethod() error = %v", err)
	}
	if m != MethodHITS {
		t.Errorf("ParseMethod() = %v, want %v", m, MethodHITS)
	}

	if _, err := ParseMethod("not-a-method"); err == nil {
		t.Error("ParseMethod() on an unknown string returned a nil error")
	}
}
