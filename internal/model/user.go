// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// ROLE TYPE
// =============================================================================

// UserRole represents the authorization role of an account.
type UserRole string

const (
	RoleMember UserRole = "user"
	RoleAdmin  UserRole = "admin"
)

// String returns the string representation of the role.
func (r UserRole) String() string {
	return string(r)
}

// =============================================================================
// USER TYPE
// =============================================================================

// User is the client-side read-only copy of a server account. It is created
// server-side on registration and refreshed only by an identity fetch or a
// completed onboarding submission.
type User struct {
	ID    int      `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`

	// Onboarding gate
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`

	// Profile fields collected during onboarding
	FirstName  string `json:"nombre,omitempty"`
	LastName   string `json:"apellido,omitempty"`
	Country    string `json:"pais,omitempty"`
	Province   string `json:"provincia,omitempty"`
	Locality   string `json:"localidad,omitempty"`
	Age        string `json:"edad,omitempty"`
	Occupation string `json:"profesion,omitempty"`
}

// IsAdmin reports whether the user may access admin-only screens.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns a human-readable name for the status bar, falling back
// to the email when the profile is incomplete.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		if u.LastName != "" {
			return u.FirstName + " " + u.LastName
		}
		return u.FirstName
	}
	return u.Email
}

// =============================================================================
// ONBOARDING PROFILE
// =============================================================================

// OnboardingProfile is the payload for the one-time profile completion step.
type OnboardingProfile struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Country    string `json:"pais"`
	Province   string `json:"provincia"`
	Locality   string `json:"localidad"`
	Age        string `json:"edad"`
	Occupation string `json:"profesion"`
}

// Provinces are the selectable provinces for the onboarding form.
var Provinces = []string{
	"Buenos Aires", "CABA", "Catamarca", "Chaco", "Chubut", "Córdoba",
	"Corrientes", "Entre Ríos", "Formosa", "Jujuy", "La Pampa", "La Rioja",
	"Mendoza", "Misiones", "Neuquén", "Río Negro", "Salta", "San Juan",
	"San Luis", "Santa Cruz", "Santa Fe", "Santiago del Estero",
	"Tierra del Fuego", "Tucumán",
}

// Occupations are the suggested professions for the onboarding form.
// "Otro" switches the form to free-text entry.
var Occupations = []string{
	"Desarrollador/a", "Diseñador/a", "Estudiante", "Docente",
	"Médico/a", "Abogado/a", "Contador/a", "Ingeniero/a", "Comerciante",
	"Administrativo/a", "Otro",
}
