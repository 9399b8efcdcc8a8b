package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalConfig signals an invalid benchmark configuration.
	ErrIllegalConfig = errors.New("bench: illegal configuration")
	// ErrVerification signals that a sequence did not hold the expected
	// number of values after a trial.
	ErrVerification = errors.New("bench: verification failed")
)

// Workload describes one benchmark scenario.
type Workload struct {
	Name     string
	Initial  int      // number of values a sequence holds before timing
	Inserts  int      // number of timed insertions per trial
	Position Position // where to insert
}

func (w Workload) validate() error {
	if w.Initial < 0 || w.Inserts <= 0 || w.Position == nil {
		return fmt.Errorf("%w: workload %q needs initial ≥ 0, inserts > 0 and a position",
			ErrIllegalConfig, w.Name)
	}
	return nil
}

// DefaultWorkloads returns one workload per predefined position distribution.
func DefaultWorkloads(initial, inserts int) []Workload {
	positions := []Position{Front, Middle, Back, Uniform(1)}
	workloads := make([]Workload, len(positions))
	for i, p := range positions {
		workloads[i] = Workload{
			Name:     p.Name(),
			Initial:  initial,
			Inserts:  inserts,
			Position: p,
		}
	}
	return workloads
}
