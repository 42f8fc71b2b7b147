// Package session implementa el ciclo de sesión de la consola: login y
// registro contra el API de flota, y decodificación de la cookie firmada
// que embebe el snapshot crudo del usuario. No hay verificación local de
// credenciales ni almacenamiento del lado servidor.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/config"
	"github.com/portusapp/portus-console/pkg/jwt"
	"github.com/portusapp/portus-console/pkg/logger"
)

type Service struct {
	users repository.UserGateway
	cfg   config.SessionConfig
	log   *logger.Logger
}

func NewService(users repository.UserGateway, cfg config.SessionConfig, log *logger.Logger) *Service {
	return &Service{users: users, cfg: cfg, log: log}
}

// Login valida el formulario localmente, autentica contra el upstream y
// devuelve el usuario más el token de sesión que embebe su snapshot.
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, string, error) {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return nil, "", verr
	}
	user, snapshot, err := s.users.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, "", err
	}
	token, err := jwt.Generate(s.cfg.Secret, s.cfg.Issuer, s.cfg.Expiration, snapshot)
	if err != nil {
		return nil, "", fmt.Errorf("firmando sesión: %w", err)
	}
	s.log.Info().Str("email", in.Email).Msg("login correcto")
	return user, token, nil
}

// Register da de alta el usuario y abre sesión con el snapshot devuelto.
func (s *Service) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, string, error) {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return nil, "", verr
	}
	user, snapshot, err := s.users.Register(ctx, repository.RegisterInput{
		Name:            in.Name,
		Lastname:        in.Lastname,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		Agree:           in.Agree,
		Role:            "admin",
	})
	if err != nil {
		return nil, "", err
	}
	token, err := jwt.Generate(s.cfg.Secret, s.cfg.Issuer, s.cfg.Expiration, snapshot)
	if err != nil {
		return nil, "", fmt.Errorf("firmando sesión: %w", err)
	}
	s.log.Info().Str("email", in.Email).Msg("registro correcto")
	return user, token, nil
}

// Decode recupera el usuario desde el token de la cookie. Cualquier fallo
// (firma, expiración, snapshot corrupto) es domain.ErrNoSession: el llamador
// purga la cookie y la petición sigue como anónima.
func (s *Service) Decode(token string) (*entity.User, error) {
	snapshot, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrNoSession
	}
	var u entity.User
	if err := json.Unmarshal(snapshot, &u); err != nil {
		return nil, domain.ErrNoSession
	}
	return &u, nil
}

// CookieName expone el nombre configurado de la cookie de sesión.
func (s *Service) CookieName() string {
	return s.cfg.CookieName
}
