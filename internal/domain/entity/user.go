package entity

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa un usuario de la tienda, identificado por su username.
// Token es el credencial de sesión opaco: presente solo mientras hay sesión activa.
type User struct {
	Username string
	Password string // bcrypt hash, nunca plano en dominio después de persistir
	Name     string
	Email    string
	Phone    string
	Address  *string
	Token    *string // nil = sin sesión
	Role     string  // USER, ADMIN
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
