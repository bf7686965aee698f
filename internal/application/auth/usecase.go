package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de la consola interna contra el único administrador
// configurado por entorno (no hay tabla de usuarios). La contraseña
// configurada se hashea con bcrypt al construir el caso de uso y el login
// compara siempre contra ese hash.
type AuthUseCase struct {
	adminEmail string
	adminHash  []byte
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso. Hashea la contraseña del admin una
// sola vez; si bcrypt falla (contraseña > 72 bytes) se deja un hash vacío y
// todo login será rechazado.
func NewAuthUseCase(adminEmail, adminPassword string, jwtCfg JWTConfig) *AuthUseCase {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		hash = nil
	}
	return &AuthUseCase{adminEmail: adminEmail, adminHash: hash, jwtCfg: jwtCfg}
}

// Login verifica email y contraseña del administrador y emite un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email != uc.adminEmail || len(uc.adminHash) == 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.adminHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.adminEmail, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
