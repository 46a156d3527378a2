package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const credentialsTable = "platform_credentials pc"

type CredentialRepository interface {
	GetByPrincipalID(principalID string) (*domain.PlatformCredential, error)
	ListByStatus(status domain.CredentialStatus) ([]*domain.PlatformCredential, error)
	UpdateStatus(credentialID string, status domain.CredentialStatus) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (c *credentialRepository) GetByPrincipalID(principalID string) (*domain.PlatformCredential, error) {
	return c.getCredential(squirrel.Eq{"pc.principal_id": principalID})
}

func (c *credentialRepository) getCredential(whereClause map[string]interface{}) (*domain.PlatformCredential, error) {
	credentialSQL, credentialArgs, err := squirrel.
		Select("pc.id, pc.principal_id, pc.access_token, pc.expires_at, pc.status").
		From(credentialsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := c.conn.QueryRow(credentialSQL, credentialArgs...)

	credential, err := c.deserializeCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return credential, nil
}

func (c *credentialRepository) deserializeCredential(row *sql.Row) (*domain.PlatformCredential, error) {
	credential := &domain.PlatformCredential{}

	var expiresAt sql.NullTime

	if err := row.Scan(
		&credential.ID,
		&credential.PrincipalID,
		&credential.AccessToken,
		&expiresAt,
		&credential.Status,
	); err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		credential.ExpiresAt = &expiresAt.Time
	}

	return credential, nil
}

func (c *credentialRepository) ListByStatus(status domain.CredentialStatus) ([]*domain.PlatformCredential, error) {
	credentialsSQL, credentialsArgs, err := squirrel.
		Select("pc.id, pc.principal_id, pc.access_token, pc.expires_at, pc.status").
		From(credentialsTable).
		Where(squirrel.Eq{"pc.status": status}).
		OrderBy("pc.principal_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.conn.Query(credentialsSQL, credentialsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	credentials := make([]*domain.PlatformCredential, 0)
	for rows.Next() {
		credential := &domain.PlatformCredential{}

		var expiresAt sql.NullTime

		if err := rows.Scan(
			&credential.ID,
			&credential.PrincipalID,
			&credential.AccessToken,
			&expiresAt,
			&credential.Status,
		); err != nil {
			return nil, err
		}

		if expiresAt.Valid {
			credential.ExpiresAt = &expiresAt.Time
		}

		credentials = append(credentials, credential)
	}

	return credentials, rows.Err()
}

func (c *credentialRepository) UpdateStatus(credentialID string, status domain.CredentialStatus) error {
	updateSQL, updateArgs, err := squirrel.
		Update("platform_credentials").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": credentialID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = c.conn.Exec(updateSQL, updateArgs...)
	return err
}
