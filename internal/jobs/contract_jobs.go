package jobs

import (
	"context"

	"fleetrental-backend/internal/engine"
	"fleetrental-backend/internal/logger"
)

// RecalculateContracts sweeps the whole contract collection, recomputes
// each derived envelope, and persists any record whose stored totals have
// drifted. Overdue tails grow as days pass even when nobody opens the
// contract, so the sweep keeps stored totals usable by plain SQL readers.
func (jr *JobRunner) RecalculateContracts() {
	jr.runWithRecovery("RecalculateContracts", func() {
		ctx := context.Background()

		contracts, err := jr.store.ContractRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list contracts for recalculation sweep", "error", err)
			return
		}

		now := jr.now()
		corrected := 0
		for i := range contracts {
			fresh := engine.Recalculate(contracts[i], now)
			if !engine.Diverged(contracts[i], fresh) {
				continue
			}
			if err := jr.store.ContractRepository.Update(ctx, &fresh); err != nil {
				logger.Error("Failed to persist recalculated contract",
					"contract_id", fresh.ID, "error", err)
				continue
			}
			corrected++
			logger.Debug("Corrected drifted contract totals",
				"contract_id", fresh.ID,
				"contract_number", fresh.ContractNumber,
				"total_cents", fresh.TotalAmountCents,
				"overdue_days", fresh.Data.OverdueDays)
		}

		logger.Info("Contract recalculation sweep finished",
			"contracts", len(contracts), "corrected", corrected)
	})
}

// AuditVehicleReferences flags contracts whose free-text vehicle reference
// resolves to no roster vehicle, for operator follow-up.
func (jr *JobRunner) AuditVehicleReferences() {
	jr.runWithRecovery("AuditVehicleReferences", func() {
		ctx := context.Background()

		roster, err := jr.store.VehicleRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles for reference audit", "error", err)
			return
		}
		contracts, err := jr.store.ContractRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list contracts for reference audit", "error", err)
			return
		}

		unmatched := 0
		for i := range contracts {
			res := engine.MatchVehicle(&contracts[i], roster)
			if res.Matched {
				continue
			}
			unmatched++
			logger.Warn("Contract vehicle reference unresolved",
				"contract_id", contracts[i].ID,
				"contract_number", contracts[i].ContractNumber,
				"reference", contracts[i].VehicleReference,
				"reason", res.Reason)
		}

		logger.Info("Vehicle reference audit finished",
			"contracts", len(contracts), "unmatched", unmatched)
	})
}
