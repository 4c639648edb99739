package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/domain"
)

var (
	// ErrNotFound indicates no row matched the lookup key.
	ErrNotFound = errors.New("worker not found")
	// ErrDuplicateEmail indicates the email uniqueness constraint was violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

const uniqueViolationCode = "23505"

// WorkerRepository encapsulates worker persistence. Every operation takes the
// request-scoped diagnostic sink; the repository owns no logger of its own.
type WorkerRepository interface {
	Create(ctx context.Context, logger *zap.Logger, worker *domain.Worker) error
	GetByID(ctx context.Context, logger *zap.Logger, id string) (*domain.Worker, error)
	GetByCardID(ctx context.Context, logger *zap.Logger, cardID string) (*domain.Worker, error)
	List(ctx context.Context, logger *zap.Logger) ([]domain.Worker, error)
	Update(ctx context.Context, logger *zap.Logger, id string, patch domain.WorkerPatch) (*domain.Worker, error)
	Delete(ctx context.Context, logger *zap.Logger, id string) (int64, error)
}

type workerRepository struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository returns a Postgres-backed implementation.
func NewWorkerRepository(pool *pgxpool.Pool) WorkerRepository {
	return &workerRepository{pool: pool}
}

func (r *workerRepository) Create(ctx context.Context, logger *zap.Logger, worker *domain.Worker) error {
	const query = `
        INSERT INTO workers (id, card_id, first_name, last_name, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	worker.ID = uuid.NewString()
	logger.Info("creating worker",
		zap.String("first_name", worker.FirstName),
		zap.String("last_name", worker.LastName),
	)

	err := r.pool.QueryRow(ctx, query,
		worker.ID,
		worker.CardID,
		worker.FirstName,
		worker.LastName,
		worker.Email,
	).Scan(&worker.CreatedAt, &worker.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, worker.Email)
		}
		return err
	}
	return nil
}

func (r *workerRepository) GetByID(ctx context.Context, logger *zap.Logger, id string) (*domain.Worker, error) {
	const query = `
        SELECT id, card_id, first_name, last_name, email, created_at, updated_at
        FROM workers WHERE id=$1`

	logger.Info("fetching worker", zap.String("worker_id", id))
	return r.fetchSingle(ctx, query, id)
}

func (r *workerRepository) GetByCardID(ctx context.Context, logger *zap.Logger, cardID string) (*domain.Worker, error) {
	const query = `
        SELECT id, card_id, first_name, last_name, email, created_at, updated_at
        FROM workers WHERE card_id=$1`

	logger.Info("fetching worker by card", zap.String("card_id", cardID))
	return r.fetchSingle(ctx, query, cardID)
}

func (r *workerRepository) List(ctx context.Context, logger *zap.Logger) ([]domain.Worker, error) {
	const query = `
        SELECT id, card_id, first_name, last_name, email, created_at, updated_at
        FROM workers ORDER BY created_at`

	logger.Info("listing workers")
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]domain.Worker, 0)
	for rows.Next() {
		var w domain.Worker
		if err := rows.Scan(&w.ID, &w.CardID, &w.FirstName, &w.LastName, &w.Email, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// Update applies only the fields present in the patch. An empty patch
// degenerates to a plain read so callers always get the current record back.
func (r *workerRepository) Update(ctx context.Context, logger *zap.Logger, id string, patch domain.WorkerPatch) (*domain.Worker, error) {
	if patch.IsEmpty() {
		logger.Info("empty patch; returning current record", zap.String("worker_id", id))
		return r.GetByID(ctx, logger, id)
	}

	assignments := make([]string, 0, 4)
	args := make([]any, 0, 5)
	appendField := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	appendField("card_id", patch.CardID)
	appendField("first_name", patch.FirstName)
	appendField("last_name", patch.LastName)
	appendField("email", patch.Email)

	args = append(args, id)
	query := fmt.Sprintf(`
        UPDATE workers SET %s, updated_at=NOW()
        WHERE id=$%d
        RETURNING id, card_id, first_name, last_name, email, created_at, updated_at`,
		strings.Join(assignments, ", "), len(args))

	logger.Info("updating worker",
		zap.String("worker_id", id),
		zap.Int("fields", len(assignments)),
	)

	var w domain.Worker
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&w.ID, &w.CardID, &w.FirstName, &w.LastName, &w.Email, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &w, nil
}

// Delete removes the row by primary key and returns the count of rows
// removed. A miss is a zero count, not an error.
func (r *workerRepository) Delete(ctx context.Context, logger *zap.Logger, id string) (int64, error) {
	const query = `DELETE FROM workers WHERE id=$1`

	logger.Info("deleting worker", zap.String("worker_id", id))
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *workerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Worker, error) {
	var w domain.Worker
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&w.ID, &w.CardID, &w.FirstName, &w.LastName, &w.Email, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}
