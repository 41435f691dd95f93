package domain

type Role string

const (
	RoleLandlord        Role = "LANDLORD"
	RolePropertyManager Role = "PROPERTY_MANAGER"
	RoleAgent           Role = "AGENT"
	RoleTenant          Role = "TENANT"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type User struct {
	ID           int32      `json:"id"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	// CommissionRate is a percentage (e.g. 5 means 5%). Only meaningful
	// for users with RoleAgent; zero for everyone else.
	CommissionRate float64 `json:"commission_rate"`
	AvatarURL      string  `json:"avatar_url"`
	CreatedOn      string  `json:"created_on"`
	UpdatedOn      string  `json:"updated_on"`
}
