package domain

// Tenant occupies at most one property at a time. PropertyID is nullable:
// a tenant whose property was deleted or not yet assigned is "orphaned" and
// must report zero balances rather than failing.
type Tenant struct {
	ID          int32  `json:"id"`
	UserID      *int32 `json:"user_id,omitempty"` // portal login, if the tenant has one
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	PropertyID  *int32 `json:"property_id,omitempty"`
	// Lease dates are yyyy-mm-dd strings. RentDueDate is a single recurring
	// marker (the next due date), not a schedule.
	LeaseStartDate string  `json:"lease_start_date"`
	LeaseEndDate   string  `json:"lease_end_date"`
	RentDueDate    string  `json:"rent_due_date"`
	IDDocumentKey  string  `json:"id_document_key"` // storage key for uploaded identity document
	Notes          string  `json:"notes"`
	CreatedOn      string  `json:"created_on"`
	RemovedOn      *string `json:"removed_on,omitempty"`
}
