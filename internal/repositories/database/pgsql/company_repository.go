package pgsql

import (
	"context"
	"errors"

	"github.com/biztime/biztime_backend/internal/apperrors"
	"github.com/biztime/biztime_backend/internal/core/domain"
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// NewPgxCompanyRepository creates a new repository for company data.
func NewPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepository
var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

const companySelectQuery = `
SELECT c.code, c.name, c.description
FROM companies c
`

// getCompanies runs the select query with the given filter appended.
func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	query := companySelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect company rows", err)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.Code,
		company.Name,
		company.Description,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on code or name
				return apperrors.NewConflictError("the company name already exists")
			}
		}
		return apperrors.NewAppError(500, "failed to save company "+company.Code, err)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.getCompanies(ctx, `ORDER BY c.code`)
}

func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	companies, err := r.getCompanies(ctx, `WHERE c.code = $1`, code)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.NewNotFoundError("cannot find company with code: " + code)
	}
	return &companies[0], nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		company.Name,
		company.Description,
		company.Code,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+company.Code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cannot update company with code: " + company.Code)
	}
	return nil
}

func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, code)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete company "+code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cannot delete company with code: " + code)
	}
	return nil
}
