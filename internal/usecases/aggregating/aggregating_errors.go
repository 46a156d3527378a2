package aggregating

import "errors"

var (
	// ErrMissingAccountID indica que a requisição chegou sem o identificador
	// da conta de anúncios
	ErrMissingAccountID = errors.New("Identificador da conta de anúncios não informado")
)
