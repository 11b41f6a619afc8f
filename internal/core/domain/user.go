package domain

// Role is the account type a user registered with. It decides which dashboard
// the user lands on.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleCaregiver Role = "caregiver"
)

// Home returns the dashboard route for the role, or "" for an unknown role.
func (r Role) Home() string {
	switch r {
	case RoleStudent:
		return "/student"
	case RoleTeacher:
		return "/dashboard"
	case RoleCaregiver:
		return "/caregiver"
	}
	return ""
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Home() != ""
}

// User models an authenticated account as returned by /auth/profile.
type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	FullName           string `json:"full_name,omitempty"`
	Role               Role   `json:"role"`
	LanguagePreference string `json:"language_preference"`
	SimplifiedMode     bool   `json:"simplified_mode"`
}

// UserRef is the short user projection embedded in roster and pod payloads.
type UserRef struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// AuthResult is the payload of /auth/register and /auth/login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left out of
// the request body so the backend keeps their current values.
type ProfileUpdate struct {
	FullName           *string `json:"full_name,omitempty"`
	LanguagePreference *string `json:"language_preference,omitempty"`
	SimplifiedMode     *bool   `json:"simplified_mode,omitempty"`
}

// ActionResult is the acknowledgement returned by delete, leave and unlink calls.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
