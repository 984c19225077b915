package dto

// RegisterUserRequest entrada para registro (password en texto, se hashea en el caso de uso).
type RegisterUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=6,max=100,password"`
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,min=7,max=20,numeric"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateProfileRequest entrada para actualizar perfil (todos los campos opcionales).
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,min=7,max=20,numeric"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// UpdatePasswordRequest entrada para cambiar contraseña: exige la actual.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=6,max=100"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=100,password"`
}

// UserResponse salida de un usuario (sin password ni token, salvo en login/registro).
type UserResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  *string `json:"address,omitempty"`
	Role     string  `json:"role"`
	Token    string  `json:"token,omitempty"`
}
