package worker

import (
	"context"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// EnergyRegenerator is the slice of the economy service the regen job needs
type EnergyRegenerator interface {
	RegenerateEnergy(ctx context.Context) int
}

// EnergyRegenJob adds one energy point per scheduled run, up to the cap
type EnergyRegenJob struct {
	economy EnergyRegenerator
}

// NewEnergyRegenJob creates a new energy regeneration job
func NewEnergyRegenJob(economy EnergyRegenerator) *EnergyRegenJob {
	return &EnergyRegenJob{economy: economy}
}

// Process runs one regeneration tick
func (j *EnergyRegenJob) Process(ctx context.Context) error {
	energy := j.economy.RegenerateEnergy(ctx)
	logger.FromContext(ctx).Debug("energy regen tick", "energy", energy)
	return nil
}
