package admin

// Principal is an admin registry record. The gate only ever reads it.
type Principal struct {
	ID       string
	Email    string
	Password string // bcrypt hash
	Role     string
	IsActive bool
}

const (
	RoleOwner  = "OWNER"
	RoleEditor = "EDITOR"
)
