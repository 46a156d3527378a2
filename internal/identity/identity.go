package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ad-performance-api/internal/config"
)

// Erros de validação de sessão
var (
	ErrInvalidToken = errors.New("token de sessão inválido")
	ErrExpiredToken = errors.New("token de sessão expirado")
)

// Constantes para identificar os roles
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// Claims são as claims do token de sessão emitido pelo colaborador de
// identidade. Este serviço nunca realiza login; apenas valida o token e
// extrai o principal.
type Claims struct {
	PrincipalID string `json:"principal_id"`
	Name        string `json:"name"`
	RoleID      int    `json:"role_id"`
	jwt.RegisteredClaims
}

// Principal é a identidade validada que acompanha cada requisição
type Principal struct {
	ID     string
	Name   string
	RoleID int
}

// Validator valida tokens de sessão e devolve o principal correspondente
type Validator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Validator {
	return &Service{cfg: cfg}
}

func (s *Service) ValidateToken(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{
		ID:     claims.PrincipalID,
		Name:   claims.Name,
		RoleID: claims.RoleID,
	}, nil
}

type contextKey string

// ContextKeyPrincipal é a chave do principal no contexto da requisição
const ContextKeyPrincipal contextKey = "principal"

// WithPrincipal armazena o principal validado no contexto
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}

// PrincipalFromContext obtém o principal validado do contexto
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(ContextKeyPrincipal).(*Principal)
	return principal, ok
}
