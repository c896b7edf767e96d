package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVendorRepository stores vendors and purchase tax rates.
type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) *PgxVendorRepository {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.VendorRepository  = (*PgxVendorRepository)(nil)
	_ portsrepo.TaxRateRepository = (*PgxVendorRepository)(nil)
)

const vendorColumns = `vendor_id, vendor_number, vendor_name, payment_terms_days, email, phone, tax_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const taxRateColumns = `tax_rate_id, name, rate, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.VendorNumber,
		&m.VendorName,
		&m.PaymentTermsDays,
		&m.Email,
		&m.Phone,
		&m.TaxID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTaxRate(row pgx.Row) (models.TaxRate, error) {
	var m models.TaxRate
	err := row.Scan(&m.TaxRateID, &m.Name, &m.Rate, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

// SaveVendor inserts a new vendor.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.VendorID, m.VendorNumber, m.VendorName, m.PaymentTermsDays, m.Email, m.Phone, m.TaxID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vendor number %s already exists", apperrors.ErrDuplicate, vendor.VendorNumber)
		}
		return apperrors.NewAppError(500, "failed to save vendor", err)
	}
	return nil
}

// UpdateVendor updates every mutable column of a vendor.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vendors
		SET vendor_name = $2, payment_terms_days = $3, email = $4, phone = $5, tax_id = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE vendor_id = $1;`,
		m.VendorID, m.VendorName, m.PaymentTermsDays, m.Email, m.Phone, m.TaxID, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update vendor "+vendor.VendorID, err)
	}
	return expectOneRow(tag, "vendor "+vendor.VendorID)
}

// FindVendorByID retrieves a vendor by its ID.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	m, err := scanVendor(r.Pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_id = $1;`, vendorID))
	if err != nil {
		return nil, wrapNotFound(err, "vendor "+vendorID)
	}
	d := mapping.ToDomainVendor(m)
	return &d, nil
}

// ListVendors lists vendors by name.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY vendor_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vendors", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vendor row", err)
		}
		vendors = append(vendors, mapping.ToDomainVendor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vendor rows", err)
	}
	return vendors, nil
}

// SaveTaxRate inserts a new tax rate.
func (r *PgxVendorRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tax_rates (`+taxRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		rate.TaxRateID, rate.Name, rate.Rate, rate.IsActive, rate.CreatedAt, rate.CreatedBy, rate.LastUpdatedAt, rate.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save tax rate", err)
	}
	return nil
}

// FindTaxRateByID retrieves a tax rate by its ID.
func (r *PgxVendorRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	m, err := scanTaxRate(r.Pool.QueryRow(ctx, `SELECT `+taxRateColumns+` FROM tax_rates WHERE tax_rate_id = $1;`, taxRateID))
	if err != nil {
		return nil, wrapNotFound(err, "tax rate "+taxRateID)
	}
	d := mapping.ToDomainTaxRate(m)
	return &d, nil
}

func (r *PgxVendorRepository) queryTaxRates(ctx context.Context, query string, args ...any) ([]domain.TaxRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		m, err := scanTaxRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		rates = append(rates, mapping.ToDomainTaxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows", err)
	}
	return rates, nil
}

// FindTaxRatesByIDs returns active rates keyed by id; unknown ids are omitted.
func (r *PgxVendorRepository) FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error) {
	result := make(map[string]domain.TaxRate, len(taxRateIDs))
	if len(taxRateIDs) == 0 {
		return result, nil
	}
	rates, err := r.queryTaxRates(ctx, `SELECT `+taxRateColumns+` FROM tax_rates WHERE tax_rate_id = ANY($1) AND is_active;`, taxRateIDs)
	if err != nil {
		return nil, err
	}
	for _, rate := range rates {
		result[rate.TaxRateID] = rate
	}
	return result, nil
}

// ListTaxRates lists tax rates by name.
func (r *PgxVendorRepository) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	query := `SELECT ` + taxRateColumns + ` FROM tax_rates`
	if activeOnly {
		query += ` WHERE is_active`
	}
	return r.queryTaxRates(ctx, query+` ORDER BY name;`)
}
