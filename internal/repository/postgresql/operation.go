package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type operationRepository struct {
	db *database.DB
}

func NewOperationRepository(db *database.DB) operation.OperationRepository {
	return &operationRepository{db: db}
}

// Append implements operation.OperationRepository. The timestamp comes from
// the database, never from the caller, so insert order and time order agree.
func (r *operationRepository) Append(ctx context.Context, userID string, kind operation.Kind) (operation.Operation, error) {
	if !kind.IsValid() {
		return operation.Operation{}, operation.ErrInvalidKind
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operations (user_id, kind)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	op := operation.Operation{UserID: userID, Kind: kind}
	err := q.QueryRow(ctx, query, userID, string(kind)).Scan(&op.ID, &op.CreatedAt)
	if err != nil {
		return operation.Operation{}, fmt.Errorf("failed to append operation: %w", err)
	}

	return op, nil
}

// LastOf implements operation.OperationRepository.
func (r *operationRepository) LastOf(ctx context.Context, userID string, kind operation.Kind) (*operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, created_at
		FROM operations
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	op, err := scanOperation(q.QueryRow(ctx, query, userID, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last operation: %w", err)
	}

	return op, nil
}

// CountAfter implements operation.OperationRepository. "After" means after in
// (created_at, id) order, so events sharing a timestamp are still ordered by
// insertion.
func (r *operationRepository) CountAfter(ctx context.Context, userID string, kind operation.Kind, after operation.Operation) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM operations
		WHERE user_id = $1 AND kind = $2
		  AND (created_at, id) > ($3, $4)
	`

	var count int64
	err := q.QueryRow(ctx, query, userID, string(kind), after.CreatedAt, after.ID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count operations after reference: %w", err)
	}

	return count, nil
}

// FirstAfter implements operation.OperationRepository.
func (r *operationRepository) FirstAfter(ctx context.Context, userID string, kind operation.Kind, after operation.Operation) (*operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, created_at
		FROM operations
		WHERE user_id = $1 AND kind = $2
		  AND (created_at, id) > ($3, $4)
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	op, err := scanOperation(q.QueryRow(ctx, query, userID, string(kind), after.CreatedAt, after.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get first operation after reference: %w", err)
	}

	return op, nil
}

// ListBetween implements operation.OperationRepository.
func (r *operationRepository) ListBetween(ctx context.Context, userID string, kinds []operation.Kind, from, to time.Time) ([]operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, created_at
		FROM operations
		WHERE user_id = $1
		  AND kind = ANY($2)
		  AND created_at >= $3
		  AND created_at <= $4
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, kindStrings(kinds), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations between bounds: %w", err)
	}
	defer rows.Close()

	return collectOperations(rows)
}

// ListByDayRange implements operation.OperationRepository. The range is by
// calendar date of the event: [fromDay 00:00, toDay+1 day).
func (r *operationRepository) ListByDayRange(ctx context.Context, userID string, kind operation.Kind, fromDay, toDay time.Time) ([]operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	lower := time.Date(fromDay.Year(), fromDay.Month(), fromDay.Day(), 0, 0, 0, 0, fromDay.Location())
	upper := time.Date(toDay.Year(), toDay.Month(), toDay.Day(), 0, 0, 0, 0, toDay.Location()).AddDate(0, 0, 1)

	query := `
		SELECT id, user_id, kind, created_at
		FROM operations
		WHERE user_id = $1
		  AND kind = $2
		  AND created_at >= $3
		  AND created_at < $4
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, string(kind), lower, upper)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations by day range: %w", err)
	}
	defer rows.Close()

	return collectOperations(rows)
}

// List implements operation.OperationRepository.
func (r *operationRepository) List(ctx context.Context, filter operation.ListFilter) ([]operation.Operation, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", argNum))
		args = append(args, *filter.UserID)
		argNum++
	}
	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("o.kind = $%d", argNum))
		args = append(args, string(*filter.Kind))
		argNum++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at >= $%d", argNum))
		args = append(args, *filter.From)
		argNum++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at <= $%d", argNum))
		args = append(args, *filter.To)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM operations o %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count operations: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	listQuery := fmt.Sprintf(`
		SELECT o.id, o.user_id, o.kind, o.created_at, COALESCE(u.full_name, u.external_id)
		FROM operations o
		JOIN users u ON u.id = o.user_id
		%s
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []operation.Operation
	for rows.Next() {
		var op operation.Operation
		var userName string
		if err := rows.Scan(&op.ID, &op.UserID, &op.Kind, &op.CreatedAt, &userName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan operation row: %w", err)
		}
		op.UserName = &userName
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate operation rows: %w", err)
	}

	return ops, total, nil
}

func scanOperation(row pgx.Row) (*operation.Operation, error) {
	var op operation.Operation
	if err := row.Scan(&op.ID, &op.UserID, &op.Kind, &op.CreatedAt); err != nil {
		return nil, err
	}
	return &op, nil
}

func collectOperations(rows pgx.Rows) ([]operation.Operation, error) {
	var ops []operation.Operation
	for rows.Next() {
		var op operation.Operation
		if err := rows.Scan(&op.ID, &op.UserID, &op.Kind, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation row: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operation rows: %w", err)
	}
	return ops, nil
}

func kindStrings(kinds []operation.Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}
