// Package auth implementa login del personal, emisión de JWT y gestión de
// contraseñas, con un limitador de intentos fallidos respaldado en Redis.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/jwt"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// MaxLoginAttempts intentos fallidos tolerados dentro de la ventana del limitador.
const MaxLoginAttempts = 5

// AttemptLimiter cuenta los intentos fallidos de login por número de carné
// dentro de una ventana deslizante. RecordFailure incrementa y devuelve el
// total acumulado en la ventana.
type AttemptLimiter interface {
	RecordFailure(ctx context.Context, staffIDNumber string) (int, error)
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	staff   repository.StaffRepository
	limiter AttemptLimiter
	jwtCfg  JWTConfig
	log     *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(staff repository.StaffRepository, limiter AttemptLimiter, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{staff: staff, limiter: limiter, jwtCfg: jwtCfg, log: log}
}

// LoginInput credenciales de un miembro del personal.
type LoginInput struct {
	StaffIDNumber string
	Password      string
}

// LoginResult token emitido más los datos del personal autenticado.
type LoginResult struct {
	Token      string
	ExpMinutes int
	Staff      entity.Staff
}

// Login verifica carné y contraseña. Cada fallo de contraseña cuenta contra el
// limitador; superado MaxLoginAttempts dentro de la ventana, el intento se
// rechaza con ErrTooManyAttempts aunque la credencial fuera correcta después.
func (uc *UseCase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.StaffIDNumber == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	staff, err := uc.staff.GetByIDNumber(in.StaffIDNumber)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.HashPassword), []byte(in.Password)); err != nil {
		attempts, lerr := uc.limiter.RecordFailure(ctx, in.StaffIDNumber)
		if lerr != nil {
			// Redis caído no debe dejar entrar con contraseña mala.
			uc.log.Warn().Err(lerr).Msg("limitador de intentos no disponible")
			return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
		}
		if attempts > MaxLoginAttempts {
			uc.log.Warn().
				Str("staff_id_number", in.StaffIDNumber).
				Int("attempts", attempts).
				Msg("demasiados intentos de login")
			return nil, domain.ErrTooManyAttempts
		}
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	uc.log.Info().Int64("staff_id", staff.ID).Str("role", staff.Role).Msg("login exitoso")
	return &LoginResult{Token: token, ExpMinutes: uc.jwtCfg.ExpMinutes, Staff: *staff}, nil
}

// ChangePassword verifica la contraseña vigente y persiste el hash de la nueva.
func (uc *UseCase) ChangePassword(ctx context.Context, staffID int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidInput
	}
	staff, err := uc.staff.GetByID(staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("personal %d: %w", staffID, domain.ErrNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.HashPassword), []byte(oldPassword)); err != nil {
		return fmt.Errorf("contraseña vigente incorrecta: %w", domain.ErrUnauthorized)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.staff.UpdatePassword(staffID, string(hash))
}
