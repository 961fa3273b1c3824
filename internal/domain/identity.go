package domain

import "time"

// Kind discriminates the three user populations. Each kind lives in its own
// logical table; administrators are fixture-only and cannot self-register.
type Kind string

const (
	KindRenter        Kind = "renter"
	KindLister        Kind = "lister"
	KindAdministrator Kind = "administrator"
)

// Valid reports whether k names one of the known identity kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRenter, KindLister, KindAdministrator:
		return true
	}
	return false
}

// Identity is a user record of any kind. Renter- and lister-specific
// attributes are optional and simply absent for the other kinds.
// PasswordHash is held by the store but must never leave a service:
// every read path returns Sanitized() copies.
type Identity struct {
	ID           string `json:"id"`
	Kind         Kind   `json:"type"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`

	// Lister attributes.
	Bio   string  `json:"bio,omitempty"`
	Phone *string `json:"phone,omitempty"`

	// Renter housing preferences.
	DesiredSize   *int     `json:"desired_size,omitempty"`
	BudgetCeiling *float64 `json:"budget_ceiling,omitempty"`
	PreferredArea string   `json:"preferred_area,omitempty"`
	Household     string   `json:"household,omitempty"`

	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Sanitized returns a copy with the password hash stripped.
func (i Identity) Sanitized() Identity {
	i.PasswordHash = ""
	return i
}

// IdentityRef addresses an identity by kind and id.
type IdentityRef struct {
	Kind Kind   `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

type CreateIdentityRequest struct {
	Kind     Kind   `json:"type" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`

	Bio   string  `json:"bio"`
	Phone *string `json:"phone"`

	DesiredSize   *int     `json:"desired_size"`
	BudgetCeiling *float64 `json:"budget_ceiling"`
	PreferredArea string   `json:"preferred_area"`
	Household     string   `json:"household"`
}

type UpdateIdentityRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`

	Bio   *string `json:"bio"`
	Phone *string `json:"phone"`

	DesiredSize   *int     `json:"desired_size"`
	BudgetCeiling *float64 `json:"budget_ceiling"`
	PreferredArea *string  `json:"preferred_area"`
	Household     *string  `json:"household"`
}
