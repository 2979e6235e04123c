package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFirmRepository struct {
	BaseRepository
}

func newPgxFirmRepository(pool *pgxpool.Pool) portsrepo.FirmRepositoryFacade {
	return &PgxFirmRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FirmRepositoryFacade = (*PgxFirmRepository)(nil)

// GetFirmProfile loads the single profile row.
func (r *PgxFirmRepository) GetFirmProfile(ctx context.Context) (*domain.FirmProfile, error) {
	query := `
		SELECT firm_name, firm_type, address, city, state, pincode, email, phone,
		       pan_number, gst_number, tan_number, bank_name, account_number, ifsc_code, account_type,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM firm_profile
		WHERE id = 1;
	`
	var m models.FirmProfile
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.FirmName, &m.FirmType, &m.Address, &m.City, &m.State, &m.Pincode, &m.Email, &m.Phone,
		&m.PANNumber, &m.GSTNumber, &m.TANNumber, &m.BankName, &m.AccountNumber, &m.IFSCCode, &m.AccountType,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load firm profile", err)
	}
	profile := mapping.ToDomainFirmProfile(m)
	return &profile, nil
}

// SaveFirmProfile creates or replaces the profile row.
func (r *PgxFirmRepository) SaveFirmProfile(ctx context.Context, profile domain.FirmProfile) error {
	m := mapping.ToModelFirmProfile(profile)
	query := `
		INSERT INTO firm_profile (
			id, firm_name, firm_type, address, city, state, pincode, email, phone,
			pan_number, gst_number, tan_number, bank_name, account_number, ifsc_code, account_type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			firm_name = EXCLUDED.firm_name,
			firm_type = EXCLUDED.firm_type,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			pincode = EXCLUDED.pincode,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			pan_number = EXCLUDED.pan_number,
			gst_number = EXCLUDED.gst_number,
			tan_number = EXCLUDED.tan_number,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			ifsc_code = EXCLUDED.ifsc_code,
			account_type = EXCLUDED.account_type,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FirmName, m.FirmType, m.Address, m.City, m.State, m.Pincode, m.Email, m.Phone,
		m.PANNumber, m.GSTNumber, m.TANNumber, m.BankName, m.AccountNumber, m.IFSCCode, m.AccountType,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save firm profile", err)
	}
	return nil
}
