package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// UseCase casos de uso de autenticación y cuenta: registro, login, perfil,
// cambio de contraseña y logout. La credencial es un token opaco (uuid v4)
// guardado en la fila del usuario; login lo rota, logout lo limpia.
type UseCase struct {
	userRepo  repository.UserRepository
	validator *validate.Validator
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, validator *validate.Validator) *UseCase {
	return &UseCase{userRepo: userRepo, validator: validator}
}

// Register crea un usuario (hash bcrypt) y abre sesión de inmediato: el token
// minted viaja en la respuesta. Devuelve ErrUsernameTaken o ErrEmailAlreadyExists
// si username o email ya están en uso.
func (uc *UseCase) Register(in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	in.Username = validate.NFC(in.Username)
	in.Email = validate.NFC(in.Email)

	if existing, err := uc.userRepo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	token := uuid.New().String()
	user := &entity.User{
		Username: in.Username,
		Password: string(hash),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		Token:    &token,
		Role:     entity.RoleUser,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponseWithToken(user), nil
}

// Login verifica username/password y rota el token de sesión: cualquier token
// anterior deja de autenticar. Credenciales inválidas → ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(validate.NFC(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token := uuid.New().String()
	if err := uc.userRepo.UpdateToken(user.Username, &token); err != nil {
		return nil, err
	}
	user.Token = &token
	return toUserResponseWithToken(user), nil
}

// Current devuelve la proyección del usuario autenticado (sin password ni token).
func (uc *UseCase) Current(user *entity.User) *dto.UserResponse {
	return toUserResponse(user)
}

// UpdateProfile actualiza perfil parcialmente. Si cambia el email, re-verifica
// unicidad excluyendo al propio usuario.
func (uc *UseCase) UpdateProfile(user *entity.User, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		email := validate.NFC(*in.Email)
		if existing, err := uc.userRepo.GetByEmail(email); err != nil {
			return nil, err
		} else if existing != nil && existing.Username != user.Username {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = in.Address
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePassword cambia la contraseña si la actual coincide; si no, ErrUnauthorized.
func (uc *UseCase) UpdatePassword(user *entity.User, in dto.UpdatePasswordRequest) (*dto.UserResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdatePassword(user.Username, string(hash)); err != nil {
		return nil, err
	}
	user.Password = string(hash)
	return toUserResponse(user), nil
}

// Logout limpia el token de sesión; el token actual deja de autenticar.
func (uc *UseCase) Logout(user *entity.User) error {
	return uc.userRepo.UpdateToken(user.Username, nil)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
	}
}

// toUserResponseWithToken incluye el token: solo para registro y login.
func toUserResponseWithToken(u *entity.User) *dto.UserResponse {
	resp := toUserResponse(u)
	if resp != nil && u.Token != nil {
		resp.Token = *u.Token
	}
	return resp
}
