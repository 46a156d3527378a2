package connecting

import "errors"

// Erros específicos para a resolução de credenciais da plataforma
var (
	ErrNotConnected = errors.New("nenhuma credencial da plataforma de anúncios encontrada para o principal")
	ErrTokenExpired = errors.New("credencial da plataforma de anúncios expirada")
)
