package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
)

var _ repository.FeedbackLog = (*FeedbackRepo)(nil)

// feedbackSchema crea la tabla append-only; seq fija el orden de llegada.
const feedbackSchema = `
	CREATE TABLE IF NOT EXISTS customer_feedback (
		seq           BIGSERIAL PRIMARY KEY,
		id            TEXT        NOT NULL UNIQUE,
		rating        SMALLINT    NOT NULL CHECK (rating BETWEEN 1 AND 5),
		customer_name TEXT        NOT NULL,
		email         TEXT        NOT NULL DEFAULT '',
		phone         TEXT        NOT NULL DEFAULT '',
		feedback      TEXT        NOT NULL,
		submitted_at  TIMESTAMPTZ NOT NULL
	)`

// FeedbackRepo implementación de FeedbackLog sobre PostgreSQL.
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository construye el adaptador. Acepta pool o tx (Querier).
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (r *FeedbackRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, feedbackSchema); err != nil {
		return fmt.Errorf("crear tabla customer_feedback: %w", err)
	}
	return nil
}

// Append inserta la entrada; nunca actualiza.
func (r *FeedbackRepo) Append(ctx context.Context, fb entity.Feedback) error {
	query := `
		INSERT INTO customer_feedback (id, rating, customer_name, email, phone, feedback, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		fb.ID, fb.Rating, fb.CustomerName, fb.Email, fb.Phone, fb.Feedback, fb.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert feedback %s: %w", fb.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ReadAll lista todas las entradas en orden de llegada.
func (r *FeedbackRepo) ReadAll(ctx context.Context) ([]entity.Feedback, error) {
	query := `
		SELECT id, rating, customer_name, email, phone, feedback, submitted_at
		FROM customer_feedback ORDER BY seq ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()
	list := []entity.Feedback{}
	for rows.Next() {
		var fb entity.Feedback
		if err := rows.Scan(&fb.ID, &fb.Rating, &fb.CustomerName, &fb.Email, &fb.Phone, &fb.Feedback, &fb.Timestamp); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, fb)
	}
	return list, rows.Err()
}
