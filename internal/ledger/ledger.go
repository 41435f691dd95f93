// Package ledger computes tenant balances, overdue standing and agent
// commission from in-memory snapshots of properties, tenants and payment
// history. Every function is pure: no repository access, no clock reads, no
// logging. Callers pass the slices they already hold and an explicit
// as-of time, so repeated calls on an unchanged snapshot always agree.
package ledger

import (
	"math"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
)

// ObligationType is one of the two balance tracks a tenant can owe against:
// recurring rent or the one-time deposit.
type ObligationType string

const (
	ObligationRent    ObligationType = "RENT"
	ObligationDeposit ObligationType = "DEPOSIT"
)

// Standing classifies a tenant for alerting and dashboard rollups.
type Standing string

const (
	StandingUpcoming     Standing = "UPCOMING"
	StandingPaid         Standing = "PAID"
	StandingOverdue      Standing = "OVERDUE"
	StandingNotAvailable Standing = "N/A"
)

// Balance is the due/paid/outstanding triple for a single obligation type.
// BalanceCents is signed: a negative value is a credit and is reported as-is.
// Clamping to zero happens only when balances are aggregated into a total due.
type Balance struct {
	DueCents     int64 `json:"due_cents"`
	PaidCents    int64 `json:"paid_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

// OverdueDetail breaks down what an overdue tenant owes. DaysOverdue counts
// days since lease start, not days since the rent was actually due, so it
// overstates lateness for long-tenured tenants; kept as-is pending product
// clarification.
type OverdueDetail struct {
	TotalDueCents   int64 `json:"total_due_cents"`
	RentDueCents    int64 `json:"rent_due_cents"`
	DepositDueCents int64 `json:"deposit_due_cents"`
	DaysOverdue     int   `json:"days_overdue"`
}

// CommissionSummary is the suggested payout for an agent over a period.
type CommissionSummary struct {
	TotalCollectedCents   int64 `json:"total_collected_cents"`
	CommissionEarnedCents int64 `json:"commission_earned_cents"`
}

// ComputeBalance derives the due, paid and outstanding amounts for one
// obligation type from a tenant's payment history.
//
// Only qualifying payments (status PAID or DEPOSIT) reduce the balance;
// UNPAID and PENDING_APPROVAL entries are history, not money. A nil property
// (orphaned tenant) yields a zero Balance. excludePaymentID ignores one
// payment by ID — used when editing that payment so it does not count against
// its own pre-edit balance; pass 0 for no exclusion.
func ComputeBalance(tenant *domain.Tenant, property *domain.Property, payments []domain.Payment, obligation ObligationType, excludePaymentID int32) Balance {
	if tenant == nil || property == nil {
		return Balance{}
	}

	// Anything that is not the deposit track is treated as rent, matching
	// paymentType below.
	due := property.RentAmountCents
	if obligation == ObligationDeposit {
		due = property.DepositAmountCents
	}

	var paid int64
	want := paymentType(obligation)
	for i := range payments {
		p := &payments[i]
		if p.TenantID != tenant.ID || p.Type != want || !p.Qualifying() {
			continue
		}
		if excludePaymentID != 0 && p.ID == excludePaymentID {
			continue
		}
		paid += p.AmountPaidCents
	}

	return Balance{
		DueCents:     due,
		PaidCents:    paid,
		BalanceCents: due - paid,
	}
}

// ProjectedBalance previews the outstanding balance after a hypothetical
// payment that has not been saved yet. Pure arithmetic; works for credits
// (negative balance) and zero amounts alike.
func ProjectedBalance(balanceCents, amountCents int64) int64 {
	return balanceCents - amountCents
}

// ClassifyTenant buckets a tenant as UPCOMING, PAID, OVERDUE or N/A as of
// the given time.
//
// The rent and deposit balances are each clamped to zero before summing:
// a credit on one obligation never offsets debt on the other for
// classification, even though signed balances are reported per type. A lease
// that has not started yet is UPCOMING regardless of what is owed; an
// unparseable lease start date is indeterminate and never makes a tenant
// UPCOMING.
func ClassifyTenant(tenant *domain.Tenant, property *domain.Property, payments []domain.Payment, asOf time.Time) Standing {
	if tenant == nil || property == nil {
		return StandingNotAvailable
	}

	if start, ok := ParseDate(tenant.LeaseStartDate); ok && start.After(asOf) {
		return StandingUpcoming
	}

	if totalDue(tenant, property, payments) > 0 {
		return StandingOverdue
	}
	return StandingPaid
}

// ComputeOverdueDetail reports what an overdue tenant owes and for how long.
// Only meaningful when ClassifyTenant returns OVERDUE; for other tenants the
// dues come back zero.
func ComputeOverdueDetail(tenant *domain.Tenant, property *domain.Property, payments []domain.Payment, asOf time.Time) OverdueDetail {
	rentDue := clampCents(ComputeBalance(tenant, property, payments, ObligationRent, 0).BalanceCents)
	depositDue := clampCents(ComputeBalance(tenant, property, payments, ObligationDeposit, 0).BalanceCents)

	days := 0
	if tenant != nil {
		if start, ok := ParseDate(tenant.LeaseStartDate); ok {
			days = int(math.Floor(asOf.Sub(start).Hours() / 24))
			if days < 0 {
				days = 0
			}
		}
	}

	return OverdueDetail{
		TotalDueCents:   rentDue + depositDue,
		RentDueCents:    rentDue,
		DepositDueCents: depositDue,
		DaysOverdue:     days,
	}
}

// AgentCommission totals rent collections on an agent's properties within
// [periodStart, periodEnd] (periodEnd inclusive through end of day) and
// applies the agent's commission rate.
//
// Note: unlike balance computation, the collected sum does NOT filter by
// payment status — every rent payment in the period counts, confirmed or not.
// This mirrors the observed payout behavior and is flagged as a product
// question; do not "fix" it here by adding a status filter.
func AgentCommission(agent *domain.User, properties []domain.Property, payments []domain.Payment, periodStart, periodEnd time.Time) CommissionSummary {
	if agent == nil {
		return CommissionSummary{}
	}

	managed := make(map[int32]bool, len(properties))
	for i := range properties {
		p := &properties[i]
		if p.AgentID != nil && *p.AgentID == agent.ID {
			managed[p.ID] = true
		}
	}

	end := endOfDay(periodEnd)
	var collected int64
	for i := range payments {
		p := &payments[i]
		if p.Type != domain.PaymentTypeRent || !managed[p.PropertyID] {
			continue
		}
		if p.Date.Before(periodStart) || p.Date.After(end) {
			continue
		}
		collected += p.AmountPaidCents
	}

	return CommissionSummary{
		TotalCollectedCents:   collected,
		CommissionEarnedCents: int64(math.Round(float64(collected) * agent.CommissionRate / 100)),
	}
}

// totalDue is the clamped rent balance plus the clamped deposit balance.
func totalDue(tenant *domain.Tenant, property *domain.Property, payments []domain.Payment) int64 {
	rent := ComputeBalance(tenant, property, payments, ObligationRent, 0).BalanceCents
	deposit := ComputeBalance(tenant, property, payments, ObligationDeposit, 0).BalanceCents
	return clampCents(rent) + clampCents(deposit)
}

func paymentType(obligation ObligationType) domain.PaymentType {
	if obligation == ObligationDeposit {
		return domain.PaymentTypeDeposit
	}
	return domain.PaymentTypeRent
}

func clampCents(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
