package jobs

import (
	"context"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
)

// SendCommissionStatements emails each agent their statement for the previous
// calendar month. Runs on the 1st so the period just closed.
func (jr *JobRunner) SendCommissionStatements() {
	jr.runWithRecovery("SendCommissionStatements", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		periodStart := time.Date(periodEnd.Year(), periodEnd.Month(), 1, 0, 0, 0, 0, time.UTC)
		period := periodStart.Format("January 2006")

		agents, err := jr.store.UserRepository.ListByRole(ctx, domain.RoleAgent)
		if err != nil {
			logger.Error("Failed to list agents", "error", err)
			return
		}

		count := 0
		for _, agent := range agents {
			report, err := jr.services.Report.CommissionPayout(ctx, agent.ID, periodStart, periodEnd)
			if err != nil {
				logger.Error("Failed to compute commission", "agent_id", agent.ID, "error", err)
				continue
			}
			if report.Summary.TotalCollectedCents == 0 {
				continue
			}
			if agent.Email == "" {
				continue
			}
			if err := jr.services.Email.SendCommissionStatement(ctx, agent.Email, agent.Name, period, report.Summary); err != nil {
				logger.Error("Failed to send commission statement", "agent_id", agent.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Commission statements sent", "count", count, "period", period)
	})
}
