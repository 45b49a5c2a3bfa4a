package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	"github.com/flowpro-systems/field_service_app/internal/models"
)

type PgxDocTemplateRepository struct {
	pool *pgxpool.Pool
}

func newPgxDocTemplateRepository(pool *pgxpool.Pool) portsrepo.DocTemplateRepositoryFacade {
	return &PgxDocTemplateRepository{pool: pool}
}

var _ portsrepo.DocTemplateRepositoryFacade = (*PgxDocTemplateRepository)(nil)

func toDomainDocTemplate(m models.DocTemplate) domain.DocTemplate {
	return domain.DocTemplate{
		TemplateID: m.TemplateID,
		Name:       m.Name,
		Content:    m.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveTemplate inserts a new template including its content.
func (r *PgxDocTemplateRepository) SaveTemplate(ctx context.Context, template domain.DocTemplate) error {
	query := `
		INSERT INTO doc_templates (template_id, name, content, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Content,
		template.CreatedAt,
		template.CreatedBy,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: template with ID %s already exists", apperrors.ErrDuplicate, template.TemplateID)
		}
		return fmt.Errorf("failed to save template %s: %w", template.TemplateID, err)
	}
	return nil
}

// FindTemplateByID retrieves a template including its content.
func (r *PgxDocTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	query := `
		SELECT template_id, name, content, created_at, created_by, last_updated_at, last_updated_by
		FROM doc_templates
		WHERE template_id = $1;
	`
	var m models.DocTemplate
	err := r.pool.QueryRow(ctx, query, templateID).Scan(
		&m.TemplateID,
		&m.Name,
		&m.Content,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find template by ID %s: %w", templateID, err)
	}

	d := toDomainDocTemplate(m)
	return &d, nil
}

// FindTemplates retrieves template metadata without loading content.
func (r *PgxDocTemplateRepository) FindTemplates(ctx context.Context, limit int, offset int) ([]domain.DocTemplate, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT template_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM doc_templates
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.DocTemplate{}
	for rows.Next() {
		var m models.DocTemplate
		if err := rows.Scan(&m.TemplateID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, toDomainDocTemplate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}
	return templates, nil
}

// DeleteTemplate removes a template.
func (r *PgxDocTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doc_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete template %s: %w", templateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
