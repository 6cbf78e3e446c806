package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/erca/internal/db"
	"github.com/alexanderramin/erca/internal/domain"
)

// SQLiteCatalogSourceRepo implements CatalogSourceRepo using a SQLite database.
type SQLiteCatalogSourceRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogSourceRepo creates a repo over conn, which may be a
// transaction handed out by a UnitOfWork.
func NewSQLiteCatalogSourceRepo(conn db.DBTX) *SQLiteCatalogSourceRepo {
	return &SQLiteCatalogSourceRepo{db: conn}
}

func (r *SQLiteCatalogSourceRepo) Create(ctx context.Context, s *domain.CatalogSource) error {
	query := `INSERT INTO catalog_sources (id, name, format, raw, active, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.Format),
		s.Raw,
		boolToInt(s.Active),
		s.ImportedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: catalog_sources.name") {
			return fmt.Errorf("catalog source %q: %w", s.Name, ErrAlreadyExists)
		}
		return fmt.Errorf("inserting catalog source: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogSourceRepo) GetByName(ctx context.Context, name string) (*domain.CatalogSource, error) {
	query := `SELECT id, name, format, raw, active, imported_at FROM catalog_sources WHERE name = ?`
	return r.scanSource(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteCatalogSourceRepo) GetActive(ctx context.Context) (*domain.CatalogSource, error) {
	query := `SELECT id, name, format, raw, active, imported_at FROM catalog_sources WHERE active = 1`
	return r.scanSource(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteCatalogSourceRepo) List(ctx context.Context) ([]*domain.CatalogSource, error) {
	query := `SELECT id, name, format, NULL, active, imported_at FROM catalog_sources
		ORDER BY imported_at, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog sources: %w", err)
	}
	defer rows.Close()

	var sources []*domain.CatalogSource
	for rows.Next() {
		s, err := r.scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing catalog sources: %w", err)
	}
	return sources, nil
}

// SetActive clears the current active flag and sets it on id. Run it inside
// a UnitOfWork so readers never see zero or two active sources.
func (r *SQLiteCatalogSourceRepo) SetActive(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE catalog_sources SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("clearing active catalog source: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE catalog_sources SET active = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("activating catalog source: %w", err)
	}
	return requireAffected(res, "catalog source")
}

func (r *SQLiteCatalogSourceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_sources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting catalog source: %w", err)
	}
	return requireAffected(res, "catalog source")
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteCatalogSourceRepo) scanSource(row scanner) (*domain.CatalogSource, error) {
	var (
		s           domain.CatalogSource
		format      string
		active      int
		importedStr string
	)
	if err := row.Scan(&s.ID, &s.Name, &format, &s.Raw, &active, &importedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog source: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning catalog source: %w", err)
	}
	s.Format = domain.SourceFormat(format)
	s.Active = intToBool(active)
	importedAt, err := time.Parse(time.RFC3339, importedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing imported_at %q: %w", importedStr, err)
	}
	s.ImportedAt = importedAt
	return &s, nil
}
