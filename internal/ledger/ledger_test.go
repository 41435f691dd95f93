package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
)

func testProperty() *domain.Property {
	return &domain.Property{
		ID:                 10,
		RentAmountCents:    100000,
		DepositAmountCents: 50000,
	}
}

func testTenant() *domain.Tenant {
	pid := int32(10)
	return &domain.Tenant{
		ID:             1,
		PropertyID:     &pid,
		LeaseStartDate: "2024-01-01",
	}
}

var asOf = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestComputeBalance(t *testing.T) {
	t.Run("No payments leaves full amount due", func(t *testing.T) {
		tenant := testTenant()
		prop := testProperty()

		rent := ComputeBalance(tenant, prop, nil, ObligationRent, 0)
		assert.Equal(t, int64(100000), rent.DueCents)
		assert.Equal(t, int64(0), rent.PaidCents)
		assert.Equal(t, int64(100000), rent.BalanceCents)

		deposit := ComputeBalance(tenant, prop, nil, ObligationDeposit, 0)
		assert.Equal(t, int64(50000), deposit.BalanceCents)
	})

	t.Run("Missing property yields zero balances", func(t *testing.T) {
		b := ComputeBalance(testTenant(), nil, []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 40000},
		}, ObligationRent, 0)
		assert.Equal(t, Balance{}, b)
	})

	t.Run("Partial rent payment", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 40000},
		}
		b := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 0)
		assert.Equal(t, int64(40000), b.PaidCents)
		assert.Equal(t, int64(60000), b.BalanceCents)

		// The rent payment does not touch the deposit track.
		d := ComputeBalance(testTenant(), testProperty(), payments, ObligationDeposit, 0)
		assert.Equal(t, int64(50000), d.BalanceCents)
	})

	t.Run("Unpaid and pending payments never reduce balance", func(t *testing.T) {
		base := ComputeBalance(testTenant(), testProperty(), nil, ObligationRent, 0)

		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusUnpaid, AmountPaidCents: 100000},
			{ID: 2, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPendingApproval, AmountPaidCents: 100000},
		}
		got := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 0)
		assert.Equal(t, base, got)
	})

	t.Run("Other tenants' payments are ignored", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 99, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 100000},
		}
		b := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 0)
		assert.Equal(t, int64(0), b.PaidCents)
	})

	t.Run("Excluding the only paid payment matches empty history", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 7, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 40000},
		}
		excluded := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 7)
		empty := ComputeBalance(testTenant(), testProperty(), nil, ObligationRent, 0)
		assert.Equal(t, empty, excluded)
	})

	t.Run("Overpayment reports a signed credit", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 120000},
		}
		b := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 0)
		assert.Equal(t, int64(-20000), b.BalanceCents)
	})

	t.Run("Deposit-status payment satisfies the deposit track", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeDeposit, Status: domain.PaymentStatusDeposit, AmountPaidCents: 50000},
		}
		b := ComputeBalance(testTenant(), testProperty(), payments, ObligationDeposit, 0)
		assert.Equal(t, int64(0), b.BalanceCents)
	})

	t.Run("Unrecognized obligation behaves like the rent track", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 40000},
		}
		got := ComputeBalance(testTenant(), testProperty(), payments, ObligationType("BOGUS"), 0)
		rent := ComputeBalance(testTenant(), testProperty(), payments, ObligationRent, 0)
		assert.Equal(t, rent, got)
	})
}

func TestProjectedBalance(t *testing.T) {
	assert.Equal(t, int64(60000), ProjectedBalance(100000, 40000))
	assert.Equal(t, int64(100000), ProjectedBalance(100000, 0))
	assert.Equal(t, int64(-20000), ProjectedBalance(0, 20000))
	// A credit stays a credit and grows with further payment.
	assert.Equal(t, int64(-30000), ProjectedBalance(-20000, 10000))
}

func TestClassifyTenant(t *testing.T) {
	t.Run("Missing property is N/A", func(t *testing.T) {
		assert.Equal(t, StandingNotAvailable, ClassifyTenant(testTenant(), nil, nil, asOf))
	})

	t.Run("Everything settled is PAID", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 100000},
			{ID: 2, TenantID: 1, Type: domain.PaymentTypeDeposit, Status: domain.PaymentStatusDeposit, AmountPaidCents: 50000},
		}
		assert.Equal(t, StandingPaid, ClassifyTenant(testTenant(), testProperty(), payments, asOf))
	})

	t.Run("Any clamped due is OVERDUE once the lease started", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 99999},
			{ID: 2, TenantID: 1, Type: domain.PaymentTypeDeposit, Status: domain.PaymentStatusDeposit, AmountPaidCents: 50000},
		}
		assert.Equal(t, StandingOverdue, ClassifyTenant(testTenant(), testProperty(), payments, asOf))
	})

	t.Run("Future lease is UPCOMING even with amounts due", func(t *testing.T) {
		tenant := testTenant()
		tenant.LeaseStartDate = "2030-01-01"
		assert.Equal(t, StandingUpcoming, ClassifyTenant(tenant, testProperty(), nil, asOf))
	})

	t.Run("Credit on one track does not offset debt on the other", func(t *testing.T) {
		payments := []domain.Payment{
			// 90000 rent overpaid, deposit untouched: still overdue.
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 190000},
		}
		assert.Equal(t, StandingOverdue, ClassifyTenant(testTenant(), testProperty(), payments, asOf))
	})

	t.Run("Unparseable lease start never yields UPCOMING", func(t *testing.T) {
		tenant := testTenant()
		tenant.LeaseStartDate = "not-a-date"
		assert.Equal(t, StandingOverdue, ClassifyTenant(tenant, testProperty(), nil, asOf))
	})

	t.Run("Pending-only history stays OVERDUE", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPendingApproval, AmountPaidCents: 100000},
		}
		assert.Equal(t, StandingOverdue, ClassifyTenant(testTenant(), testProperty(), payments, asOf))
	})
}

func TestComputeOverdueDetail(t *testing.T) {
	t.Run("Partial rent payment", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 40000},
		}
		d := ComputeOverdueDetail(testTenant(), testProperty(), payments, asOf)
		assert.Equal(t, int64(60000), d.RentDueCents)
		assert.Equal(t, int64(50000), d.DepositDueCents)
		assert.Equal(t, int64(110000), d.TotalDueCents)
		// 2024-01-01 to 2024-06-15
		assert.Equal(t, 166, d.DaysOverdue)
	})

	t.Run("Overpaid rent is clamped and contributes zero", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, TenantID: 1, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 120000},
		}
		d := ComputeOverdueDetail(testTenant(), testProperty(), payments, asOf)
		assert.Equal(t, int64(0), d.RentDueCents)
		assert.Equal(t, int64(50000), d.TotalDueCents)
	})

	t.Run("Invalid lease start clamps days to zero", func(t *testing.T) {
		tenant := testTenant()
		tenant.LeaseStartDate = "yesterday"
		d := ComputeOverdueDetail(tenant, testProperty(), nil, asOf)
		assert.Equal(t, 0, d.DaysOverdue)
	})

	t.Run("Lease starting after asOf clamps days to zero", func(t *testing.T) {
		tenant := testTenant()
		tenant.LeaseStartDate = "2030-01-01"
		d := ComputeOverdueDetail(tenant, testProperty(), nil, asOf)
		assert.Equal(t, 0, d.DaysOverdue)
	})
}

func TestAgentCommission(t *testing.T) {
	agentID := int32(5)
	agent := &domain.User{ID: agentID, Role: domain.RoleAgent, CommissionRate: 5}
	properties := []domain.Property{
		{ID: 10, AgentID: &agentID},
		{ID: 11}, // unmanaged
	}
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("Counts all rent payments in period regardless of status", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 50000, Date: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)},
			{ID: 2, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 30000, Date: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)},
			{ID: 3, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusUnpaid, AmountPaidCents: 20000, Date: time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)},
		}
		s := AgentCommission(agent, properties, payments, start, end)
		assert.Equal(t, int64(100000), s.TotalCollectedCents)
		assert.Equal(t, int64(5000), s.CommissionEarnedCents)
	})

	t.Run("End date is inclusive through end of day", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 10000, Date: time.Date(2024, 6, 30, 23, 30, 0, 0, time.UTC)},
			{ID: 2, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 10000, Date: time.Date(2024, 7, 1, 0, 30, 0, 0, time.UTC)},
		}
		s := AgentCommission(agent, properties, payments, start, end)
		assert.Equal(t, int64(10000), s.TotalCollectedCents)
	})

	t.Run("Ignores unmanaged properties and non-rent types", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: 1, PropertyID: 11, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 50000, Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
			{ID: 2, PropertyID: 10, Type: domain.PaymentTypeDeposit, Status: domain.PaymentStatusDeposit, AmountPaidCents: 50000, Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		}
		s := AgentCommission(agent, properties, payments, start, end)
		assert.Equal(t, int64(0), s.TotalCollectedCents)
		assert.Equal(t, int64(0), s.CommissionEarnedCents)
	})

	t.Run("Zero commission rate earns nothing", func(t *testing.T) {
		flat := &domain.User{ID: agentID, Role: domain.RoleAgent}
		payments := []domain.Payment{
			{ID: 1, PropertyID: 10, Type: domain.PaymentTypeRent, Status: domain.PaymentStatusPaid, AmountPaidCents: 50000, Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		}
		s := AgentCommission(flat, properties, payments, start, end)
		assert.Equal(t, int64(50000), s.TotalCollectedCents)
		assert.Equal(t, int64(0), s.CommissionEarnedCents)
	})
}

func TestParseDate(t *testing.T) {
	_, ok := ParseDate("2024-02-29")
	assert.True(t, ok)

	for _, bad := range []string{"", "2024/02/29", "2023-02-29", "soon"} {
		_, ok := ParseDate(bad)
		assert.False(t, ok, bad)
	}
}
