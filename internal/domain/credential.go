package domain

import "time"

type CredentialStatus string

const (
	CredentialStatusActive  CredentialStatus = "active"
	CredentialStatusExpired CredentialStatus = "expired"
)

// PlatformCredential é a credencial de acesso à plataforma de anúncios
// vinculada a um principal. O registro é escrito pelo colaborador de
// identidade; este serviço apenas lê e sinaliza expiração.
type PlatformCredential struct {
	ID          string           `json:"id"`
	PrincipalID string           `json:"principal_id"`
	AccessToken string           `json:"-"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	Status      CredentialStatus `json:"status"`
}

// Expired informa se a credencial está vencida. ExpiresAt nulo indica
// credencial sem prazo de expiração.
func (c *PlatformCredential) Expired() bool {
	if c.Status == CredentialStatusExpired {
		return true
	}
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(time.Now())
}
