package user

import "time"

// Role is the access level carried in the JWT rol claim.
type Role string

const (
	RoleAdmin      Role = "Administrador"
	RoleSupervisor Role = "Supervisor"
	RoleWorker     Role = "Trabajador"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	WorkerID     *string // set for Trabajador accounts
	Estado       string
	CreatedAt    time.Time
}
