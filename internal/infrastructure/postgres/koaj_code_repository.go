package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koajpc/backoffice-api/internal/domain"
	"github.com/koajpc/backoffice-api/internal/domain/entity"
	"github.com/koajpc/backoffice-api/internal/domain/repository"
)

var _ repository.KoajCodeRepository = (*KoajCodeRepo)(nil)

// KoajCodeRepo implementación del puerto KoajCodeRepository sobre PostgreSQL.
type KoajCodeRepo struct {
	pool *pgxpool.Pool
}

// NewKoajCodeRepository construye el adaptador del catálogo de códigos.
func NewKoajCodeRepository(pool *pgxpool.Pool) *KoajCodeRepo {
	return &KoajCodeRepo{pool: pool}
}

const koajCodeColumns = `id, code, category, description, applies_to, is_active, created_at, updated_at`

// Create persiste un nuevo código del catálogo.
func (r *KoajCodeRepo) Create(code *entity.KoajCode) error {
	query := `
		INSERT INTO koaj_codes (code, category, description, applies_to, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		code.Code, code.Category, code.Description, code.AppliesTo, code.Active,
		code.CreatedAt, code.UpdatedAt,
	).Scan(&code.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert koaj code: %w", err)
	}
	return nil
}

// GetByID obtiene un código por ID; nil sin error si no existe.
func (r *KoajCodeRepo) GetByID(id int64) (*entity.KoajCode, error) {
	query := `SELECT ` + koajCodeColumns + ` FROM koaj_codes WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene un código por su valor; nil sin error si no existe.
func (r *KoajCodeRepo) GetByCode(code string) (*entity.KoajCode, error) {
	query := `SELECT ` + koajCodeColumns + ` FROM koaj_codes WHERE code = $1 LIMIT 1`
	return r.scanOne(query, code)
}

func (r *KoajCodeRepo) scanOne(query string, arg any) (*entity.KoajCode, error) {
	var c entity.KoajCode
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Code, &c.Category, &c.Description, &c.AppliesTo, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get koaj code: %w", err)
	}
	return &c, nil
}

// List devuelve los códigos activos que cumplan el filtro, ordenados por
// código numérico. Los códigos con ámbito "todos" siempre pasan el filtro
// de género.
func (r *KoajCodeRepo) List(filter repository.KoajCodeFilter) ([]*entity.KoajCode, error) {
	query := `SELECT ` + koajCodeColumns + ` FROM koaj_codes WHERE is_active = true`
	args := []any{}
	n := 0

	if filter.Search != "" {
		n++
		query += fmt.Sprintf(` AND (code ILIKE $%d OR category ILIKE $%d)`, n, n)
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.AppliesTo != "" && filter.AppliesTo != entity.AppliesTodos {
		n++
		query += fmt.Sprintf(` AND (applies_to = $%d OR applies_to = '%s')`, n, entity.AppliesTodos)
		args = append(args, filter.AppliesTo)
	}
	query += ` ORDER BY code::integer`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list koaj codes: %w", err)
	}
	defer rows.Close()

	var codes []*entity.KoajCode
	for rows.Next() {
		var c entity.KoajCode
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Category, &c.Description, &c.AppliesTo, &c.Active,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan koaj code: %w", err)
		}
		codes = append(codes, &c)
	}
	return codes, rows.Err()
}

// Update actualiza un código existente.
func (r *KoajCodeRepo) Update(code *entity.KoajCode) error {
	query := `
		UPDATE koaj_codes
		SET code = $2, category = $3, description = $4, applies_to = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		code.ID, code.Code, code.Category, code.Description, code.AppliesTo, code.Active,
		code.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update koaj code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate desactiva un código (borrado lógico).
func (r *KoajCodeRepo) Deactivate(id int64) error {
	query := `UPDATE koaj_codes SET is_active = false, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate koaj code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
