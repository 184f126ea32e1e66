// Package accounts defines the durable identity record and its
// persistence contract.
package accounts

import "time"

// DefaultRole is assigned to every account created through registration.
const DefaultRole = "member"

// Account is the identity record stored in the repository.
//
// PasswordHash is write-only from the perspective of any output path: it
// is excluded from JSON serialization and must never be logged. Profile
// attributes (organization, title, graduation year, phone) are never part
// of the auth decision.
type Account struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Organization   string    `json:"organization"`
	Title          string    `json:"title"`
	GraduationYear int       `json:"graduation_year"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}

// PublicView is the subset of account fields safe to return to any caller.
type PublicView struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Organization   string    `json:"organization,omitempty"`
	Title          string    `json:"title,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Public returns the account stripped of everything that must not leave
// the service.
func (a *Account) Public() PublicView {
	return PublicView{
		ID:             a.ID,
		Email:          a.Email,
		Name:           a.Name,
		Role:           a.Role,
		Organization:   a.Organization,
		Title:          a.Title,
		GraduationYear: a.GraduationYear,
		Phone:          a.Phone,
		CreatedAt:      a.CreatedAt,
	}
}

// SessionView is the minimal view returned alongside a freshly issued
// token: identity only, no profile internals.
type SessionView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *Account) Session() SessionView {
	return SessionView{ID: a.ID, Email: a.Email, Name: a.Name}
}

// ProfileUpdate carries the mutable profile attributes. Nil fields are
// left unchanged. Email, role and the credential hash cannot be modified
// through this path.
type ProfileUpdate struct {
	Name           *string
	Organization   *string
	Title          *string
	GraduationYear *int
	Phone          *string
}
