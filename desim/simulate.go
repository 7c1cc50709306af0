package desim

// Result is returned by Simulate: the root model after the run completed,
// plus the clock value the run stopped at.
type Result struct {
	Data  Module
	Stime float64
}

// Simulate builds a scheduler, constructs the root model via newModel,
// runs it to stimeLimit, and returns the result. newModel receives the
// scheduler so it can construct and wire child modules during setup,
// mirroring the teacher's "construct then wire" composition pattern.
func Simulate(newModel func(sim *Scheduler) Module, stimeLimit float64, params interface{}, logger Logger) *Result {
	sim := NewScheduler(params, logger)
	root := newModel(sim)
	sim.Run(stimeLimit)
	return &Result{Data: root, Stime: sim.Stime()}
}
