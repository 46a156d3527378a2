package connecting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Resolve(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockCredentialRepository)
		validate func(t *testing.T, credential *domain.PlatformCredential, err error)
	}{
		{
			name: "Credencial ativa sem expiração - resolvida com sucesso",
			setup: func(repo *mocks.MockCredentialRepository) {
				repo.EXPECT().
					GetByPrincipalID("USR01").
					Return(&domain.PlatformCredential{
						ID:          "CRED01",
						PrincipalID: "USR01",
						AccessToken: "tok-123",
						Status:      domain.CredentialStatusActive,
					}, nil)
			},
			validate: func(t *testing.T, credential *domain.PlatformCredential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "tok-123", credential.AccessToken)
			},
		},
		{
			name: "Credencial com expiração futura - resolvida com sucesso",
			setup: func(repo *mocks.MockCredentialRepository) {
				repo.EXPECT().
					GetByPrincipalID("USR01").
					Return(&domain.PlatformCredential{
						ID:          "CRED01",
						PrincipalID: "USR01",
						AccessToken: "tok-123",
						ExpiresAt:   &future,
						Status:      domain.CredentialStatusActive,
					}, nil)
			},
			validate: func(t *testing.T, credential *domain.PlatformCredential, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, credential)
			},
		},
		{
			name: "Principal sem credencial - plataforma não conectada",
			setup: func(repo *mocks.MockCredentialRepository) {
				repo.EXPECT().
					GetByPrincipalID("USR01").
					Return(nil, nil)
			},
			validate: func(t *testing.T, credential *domain.PlatformCredential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrNotConnected)
			},
		},
		{
			name: "Credencial vencida - token expirado",
			setup: func(repo *mocks.MockCredentialRepository) {
				repo.EXPECT().
					GetByPrincipalID("USR01").
					Return(&domain.PlatformCredential{
						ID:          "CRED01",
						PrincipalID: "USR01",
						AccessToken: "tok-123",
						ExpiresAt:   &past,
						Status:      domain.CredentialStatusActive,
					}, nil)
			},
			validate: func(t *testing.T, credential *domain.PlatformCredential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrTokenExpired)
			},
		},
		{
			name: "Falha no repositório - erro encapsulado",
			setup: func(repo *mocks.MockCredentialRepository) {
				repo.EXPECT().
					GetByPrincipalID("USR01").
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, credential *domain.PlatformCredential, err error) {
				assert.Nil(t, credential)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao buscar credencial da plataforma")
				assert.NotErrorIs(t, err, ErrNotConnected)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockCredentialRepository(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo)

			credential, err := service.Resolve("USR01")
			tt.validate(t, credential, err)
		})
	}
}
