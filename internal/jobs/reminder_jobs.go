package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
)

// SendRentReminders emails tenants whose rent due date falls within the
// configured reminder window and who still owe on their rent balance.
func (jr *JobRunner) SendRentReminders() {
	jr.runWithRecovery("SendRentReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		windowEnd := now.AddDate(0, 0, jr.config.Billing.ReminderDaysBefore)

		tenants, err := jr.store.TenantRepository.ListActive(ctx)
		if err != nil {
			logger.Error("Failed to list active tenants", "error", err)
			return
		}

		count := 0
		for _, tenant := range tenants {
			due, ok := ledger.ParseDate(tenant.RentDueDate)
			if !ok {
				continue
			}
			if due.Before(now.Truncate(24*time.Hour)) || due.After(windowEnd) {
				continue
			}

			balances, err := jr.services.Tenant.GetTenantBalances(ctx, tenant.ID)
			if err != nil {
				logger.Error("Failed to derive balances", "tenant_id", tenant.ID, "error", err)
				continue
			}
			if balances.Rent.BalanceCents <= 0 {
				continue
			}

			if tenant.Email != "" {
				if err := jr.services.Email.SendRentReminder(ctx, tenant.Email, tenant.Name, tenant.RentDueDate, balances.Rent.BalanceCents); err != nil {
					logger.Error("Failed to send rent reminder", "tenant_id", tenant.ID, "error", err)
					continue
				}
			}
			if tenant.UserID != nil {
				_ = jr.services.Messenger.SendPush(ctx, *tenant.UserID, "Rent due soon",
					fmt.Sprintf("Your rent is due on %s", tenant.RentDueDate),
					map[string]string{"type": "RENT_REMINDER", "tenant_id": fmt.Sprintf("%d", tenant.ID)})
			}
			count++
		}

		logger.Info("Rent reminders sent", "count", count)
	})
}

// SendOverdueNotices emails every overdue tenant a breakdown of what they owe.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		overdue, err := jr.services.Report.OverdueTenants(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue tenants", "error", err)
			return
		}

		count := 0
		for _, entry := range overdue {
			if entry.Tenant.Email != "" {
				if err := jr.services.Email.SendOverdueNotice(ctx, entry.Tenant.Email, entry.Tenant.Name, entry.Detail); err != nil {
					logger.Error("Failed to send overdue notice", "tenant_id", entry.Tenant.ID, "error", err)
					continue
				}
			}
			if entry.Tenant.UserID != nil {
				_ = jr.services.Messenger.SendPush(ctx, *entry.Tenant.UserID, "Outstanding balance",
					"Your tenancy has an outstanding balance. Please check your account.",
					map[string]string{"type": "OVERDUE_NOTICE", "tenant_id": fmt.Sprintf("%d", entry.Tenant.ID)})
			}
			count++
		}

		logger.Info("Overdue notices sent", "count", count)
	})
}
