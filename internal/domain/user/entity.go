package user

import "time"

type Role string

const (
	RoleMonitor   Role = "MONITOR"   // Tracked staff: owns schedule slots and attendance records
	RoleDirectivo Role = "DIRECTIVO" // Administrative role: authorizes attendance, adjusts hours
)

type User struct {
	ID           string
	Username     string
	Nombre       string
	Role         Role
	Autorizado   bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDirectivo checks if the user holds the administrative role
func (u *User) IsDirectivo() bool {
	return u.Role == RoleDirectivo
}

// IsMonitor checks if the user is tracked staff
func (u *User) IsMonitor() bool {
	return u.Role == RoleMonitor
}
