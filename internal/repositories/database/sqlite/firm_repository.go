package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
)

// FirmRepository keeps the firm profile in a single-row table.
type FirmRepository struct {
	BaseRepository
}

var _ portsrepo.FirmRepositoryFacade = (*FirmRepository)(nil)

// GetFirmProfile loads the profile row.
func (r *FirmRepository) GetFirmProfile(ctx context.Context) (*domain.FirmProfile, error) {
	var m models.FirmProfile
	var createdAt, lastUpdatedAt string
	err := r.DB.QueryRowContext(ctx, `
		SELECT firm_name, firm_type, address, city, state, pincode, email, phone,
		       pan_number, gst_number, tan_number, bank_name, account_number, ifsc_code, account_type,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM firm_profile
		WHERE id = 1;
	`).Scan(
		&m.FirmName, &m.FirmType, &m.Address, &m.City, &m.State, &m.Pincode, &m.Email, &m.Phone,
		&m.PANNumber, &m.GSTNumber, &m.TANNumber, &m.BankName, &m.AccountNumber, &m.IFSCCode, &m.AccountType,
		&createdAt, &m.CreatedBy, &lastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load firm profile", err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, apperrors.NewAppError(500, "invalid created_at on firm profile", err)
	}
	if m.LastUpdatedAt, err = parseTime(lastUpdatedAt); err != nil {
		return nil, apperrors.NewAppError(500, "invalid last_updated_at on firm profile", err)
	}
	profile := mapping.ToDomainFirmProfile(m)
	return &profile, nil
}

// SaveFirmProfile creates or replaces the profile row, keeping its creation audit columns.
func (r *FirmRepository) SaveFirmProfile(ctx context.Context, profile domain.FirmProfile) error {
	m := mapping.ToModelFirmProfile(profile)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO firm_profile (
			id, firm_name, firm_type, address, city, state, pincode, email, phone,
			pan_number, gst_number, tan_number, bank_name, account_number, ifsc_code, account_type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			firm_name = excluded.firm_name,
			firm_type = excluded.firm_type,
			address = excluded.address,
			city = excluded.city,
			state = excluded.state,
			pincode = excluded.pincode,
			email = excluded.email,
			phone = excluded.phone,
			pan_number = excluded.pan_number,
			gst_number = excluded.gst_number,
			tan_number = excluded.tan_number,
			bank_name = excluded.bank_name,
			account_number = excluded.account_number,
			ifsc_code = excluded.ifsc_code,
			account_type = excluded.account_type,
			last_updated_at = excluded.last_updated_at,
			last_updated_by = excluded.last_updated_by;
	`,
		m.FirmName, m.FirmType, m.Address, m.City, m.State, m.Pincode, m.Email, m.Phone,
		m.PANNumber, m.GSTNumber, m.TANNumber, m.BankName, m.AccountNumber, m.IFSCCode, m.AccountType,
		formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save firm profile", err)
	}
	return nil
}
