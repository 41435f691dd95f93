package domain

import "time"

type PaymentType string

const (
	PaymentTypeRent         PaymentType = "RENT"
	PaymentTypeDeposit      PaymentType = "DEPOSIT"
	PaymentTypeOther        PaymentType = "OTHER"
	PaymentTypeSubscription PaymentType = "SUBSCRIPTION"
)

type PaymentStatus string

const (
	PaymentStatusPaid            PaymentStatus = "PAID"
	PaymentStatusDeposit         PaymentStatus = "DEPOSIT" // paid-equivalent, terminal
	PaymentStatusUnpaid          PaymentStatus = "UNPAID"
	PaymentStatusPendingApproval PaymentStatus = "PENDING_APPROVAL"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
	PaymentMethodCard         PaymentMethod = "CARD"
)

// Payment records money received. Payments are never physically deleted
// (kept for audit); only the status moves, and only forward:
//
//	PENDING_APPROVAL --(approve)--> PAID
//	PENDING_APPROVAL --(reject)---> UNPAID  (rejection reason appended to notes)
//
// PAID, UNPAID and DEPOSIT are terminal. Reversing a PAID payment would
// require a compensating entry, which is not modeled.
type Payment struct {
	ID              int32         `json:"id"`
	TenantID        int32         `json:"tenant_id"`
	PropertyID      int32         `json:"property_id"`
	Type            PaymentType   `json:"type"`
	Status          PaymentStatus `json:"status"`
	AmountPaidCents int64         `json:"amount_paid_cents"`
	Method          PaymentMethod `json:"method"`
	ReceiptNumber   string        `json:"receipt_number"`
	ProofKey        string        `json:"proof_key"` // storage key for uploaded proof, if any
	Notes           string        `json:"notes"`
	RecordedBy      *int32        `json:"recorded_by,omitempty"` // nil for tenant self-submissions
	// Date is when the record was created, not necessarily when money
	// changed hands.
	Date      time.Time `json:"date"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Qualifying reports whether this payment counts toward satisfying a due
// amount. Only confirmed money does; UNPAID and PENDING_APPROVAL entries
// exist in history but never reduce a balance.
func (p *Payment) Qualifying() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusDeposit
}
