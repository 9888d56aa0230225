package notification

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Repository abstracts notification persistence. GetByID returns (nil, nil)
// when no row matches, so callers can distinguish "not found" from a storage
// failure.
type Repository interface {
	GetPaged(ctx context.Context, query Query) ([]*Notification, int, error)
	GetByID(ctx context.Context, id string) (*Notification, error)
	Add(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
}

// PostgresRepository handles notification data persistence
type PostgresRepository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// buildFilter renders the WHERE clause shared by the count and page queries,
// so both always run against the same predicate
func buildFilter(query Query) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if query.Read != nil {
		args = append(args, *query.Read)
		conditions = append(conditions, "read = $"+strconv.Itoa(len(args)))
	}
	if query.FilterByType() {
		args = append(args, query.Type)
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetPaged returns one page of matching notifications ordered by created_at
// descending, plus the total number of matching rows before windowing
func (r *PostgresRepository) GetPaged(ctx context.Context, query Query) ([]*Notification, int, error) {
	where, args := buildFilter(query)

	var total int
	countQuery := `SELECT COUNT(*) FROM notifications` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	pageQuery := `
		SELECT id, username, message, type, read, created_at
		FROM notifications` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, query.PageSize, query.Offset())

	rows, err := r.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(
			&n.ID,
			&n.User,
			&n.Message,
			&n.Type,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notifications: %w", err)
	}

	return notifications, total, nil
}

// GetByID retrieves a notification by its ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Notification, error) {
	query := `
		SELECT id, username, message, type, read, created_at
		FROM notifications
		WHERE id = $1
	`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID,
		&n.User,
		&n.Message,
		&n.Type,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// Add inserts a new notification
func (r *PostgresRepository) Add(ctx context.Context, n *Notification) error {
	query := `
		INSERT INTO notifications (id, username, message, type, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, n.ID, n.User, n.Message, n.Type, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// Update persists the mutable state of an existing notification
func (r *PostgresRepository) Update(ctx context.Context, n *Notification) error {
	query := `UPDATE notifications SET read = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, n.Read, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}
