package connecting

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// Resolver resolve a credencial da plataforma de anúncios de um principal.
// Deve ser chamado uma vez por agregação, antes de qualquer fetch remoto.
type Resolver interface {
	Resolve(principalID string) (*domain.PlatformCredential, error)
}

type Service struct {
	credentialRepo repository.CredentialRepository
}

func NewService(credentialRepo repository.CredentialRepository) Resolver {
	return &Service{
		credentialRepo: credentialRepo,
	}
}

// Resolve busca a credencial do principal e valida sua expiração. Não tem
// efeitos colaterais: marcar credenciais vencidas é tarefa do scheduler.
func (s *Service) Resolve(principalID string) (*domain.PlatformCredential, error) {
	credential, err := s.credentialRepo.GetByPrincipalID(principalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"principal_id": principalID,
			"error":        err.Error(),
		}).Error("connecting: failed to load platform credential")
		return nil, errors.Wrap(err, "erro ao buscar credencial da plataforma")
	}

	if credential == nil {
		return nil, ErrNotConnected
	}

	if credential.Expired() {
		logrus.WithFields(logrus.Fields{
			"principal_id": principalID,
			"expires_at":   credential.ExpiresAt,
		}).Warn("connecting: platform credential expired")
		return nil, ErrTokenExpired
	}

	return credential, nil
}
