package provisioning

import "time"

// RunPhases executes all bootstrap phases sequentially, stopping at the
// first failure.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Log.Info().Int("phases", len(phases)).Msg("starting bootstrap")

	for i, phase := range phases {
		phaseStart := time.Now()
		log := ctx.Log.With().
			Str("phase", phase.Name()).
			Int("step", i+1).
			Int("of", len(phases)).
			Logger()

		log.Info().Msg("starting")

		if err := phase.Provision(ctx); err != nil {
			log.Error().Err(err).Msg("failed")
			return &PhaseError{Phase: phase.Name(), Err: err}
		}

		log.Info().Dur("elapsed", time.Since(phaseStart)).Msg("completed")
	}

	ctx.Log.Info().Dur("elapsed", time.Since(start)).Msg("bootstrap completed")
	return nil
}
