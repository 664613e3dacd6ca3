package domain

// Role is issued by the external identity provider.
// It carries no moderation authority inside the engine: only
// Community.ModeratorIds membership matters for pin/resolve.
type Role string

const (
	RoleStudent Role = "student"
	RoleCr      Role = "cr"
	RoleTeacher Role = "teacher"
)

type User struct {
	Id            UserId `json:"id"`
	DisplayName   string `json:"display_name"`
	Role          Role   `json:"role,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Admin         bool   `json:"-"`
}
