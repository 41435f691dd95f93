package domain

type PropertyStatus string

const (
	PropertyStatusVacant           PropertyStatus = "VACANT"
	PropertyStatusOccupied         PropertyStatus = "OCCUPIED"
	PropertyStatusUnderMaintenance PropertyStatus = "UNDER_MAINTENANCE"
)

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
	PropertyTypeLand       PropertyType = "LAND"
)

type Property struct {
	ID          int32        `json:"id"`
	LandlordID  int32        `json:"landlord_id"`
	AgentID     *int32       `json:"agent_id,omitempty"` // managing agent, if any
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Type        PropertyType `json:"type"`
	Amenities   []string     `json:"amenities"`
	Description string       `json:"description"`
	// Rent is per lease term; deposit is a one-time obligation. Both are
	// fixed for the duration of a lease — mid-lease rent changes are not
	// modeled.
	RentAmountCents    int64          `json:"rent_amount_cents"`
	DepositAmountCents int64          `json:"deposit_amount_cents"`
	Status             PropertyStatus `json:"status"`
	CreatedOn          string         `json:"created_on"`
	DeletedOn          *string        `json:"deleted_on,omitempty"`
}
