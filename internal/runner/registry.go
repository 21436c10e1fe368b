// Package runner drives a configured generator/integrator pair to
// completion, fanning its output out to the trajectory and diagnostics
// CSV writers through the dataflow queues.
package runner

import "github.com/san-kum/dynsim/internal/simulation"

// GeneratorTypes lists every config.GenerationConfig.Type value the
// config package knows how to dispatch, for CLI listing.
var GeneratorTypes = []string{
	"uniform_cube",
	"uniform_sphere",
	"normal_sphere",
	"plummer_sphere",
	"spiral_galaxy",
	"collision_model",
	"flyby_model",
	"stream",
}

// MethodNames lists every simulation method string ParseMethod accepts,
// for CLI listing.
var MethodNames = []string{
	string(simulation.MethodEuler),
	string(simulation.MethodLeapfrog),
	string(simulation.MethodHermite),
	string(simulation.MethodHITS),
	string(simulation.MethodBarnesHutLeapfrog),
}
