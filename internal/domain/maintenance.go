package domain

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
)

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "LOW"
	MaintenancePriorityMedium MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh   MaintenancePriority = "HIGH"
	MaintenancePriorityUrgent MaintenancePriority = "URGENT"
)

type MaintenanceRequest struct {
	ID         int32               `json:"id"`
	PropertyID int32               `json:"property_id"`
	TenantID   *int32              `json:"tenant_id,omitempty"` // nil when staff-reported
	Title      string              `json:"title"`
	Details    string              `json:"details"`
	Priority   MaintenancePriority `json:"priority"`
	Status     MaintenanceStatus   `json:"status"`
	// TakesPropertyOffline marks requests severe enough to put the property
	// into UNDER_MAINTENANCE while open.
	TakesPropertyOffline bool    `json:"takes_property_offline"`
	CostCents            int64   `json:"cost_cents"`
	AssignedTo           *int32  `json:"assigned_to,omitempty"`
	CreatedOn            string  `json:"created_on"`
	ResolvedOn           *string `json:"resolved_on,omitempty"`
}
