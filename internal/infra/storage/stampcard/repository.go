package stampcard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/pkg/dbmetrics"
	"github.com/kparturi/shop-backend/pkg/psqlbuilder"
)

// Repository reads stamp cards and manages new-card requests. Stamp and
// referral counts are written by staff tooling, so there is no update
// path here.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

const cardColumns = `id, email, name, referral_code, stamp_count, referral_count, created_at, updated_at`

// GetByIdentifier finds a card by email or referral code, matched
// case-insensitively.
func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (*domain.StampCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cardColumns).
		From("stamp_cards").
		Where(squirrel.Or{
			squirrel.Expr("LOWER(email) = LOWER(?)", identifier),
			squirrel.Expr("LOWER(referral_code) = LOWER(?)", identifier),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdentifier - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCard(executor.QueryRowContext(ctx, query, args...), "GetByIdentifier")
}

// GetByEmail finds a card by email, matched case-insensitively.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.StampCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cardColumns).
		From("stamp_cards").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCard(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// FindPendingRequestByEmail returns the pending request for an email, if
// one exists.
func (r *Repository) FindPendingRequestByEmail(ctx context.Context, email string) (*domain.StampCardRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "status", "created_at").
		From("stamp_card_requests").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		Where(squirrel.Eq{"status": domain.RequestStatusPending}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingRequestByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.StampCardRequest
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.Status,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingRequestByEmail - scan request: %v", ErrScanRow, err)
	}

	req.CreatedAt = createdAt.Time

	return &req, nil
}

// CreateRequest inserts a pending new-card request.
func (r *Repository) CreateRequest(ctx context.Context, req *domain.StampCardRequest) (*domain.StampCardRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stamp_card_requests").
		Columns("name", "email", "status").
		Values(req.Name, req.Email, domain.RequestStatusPending).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRequest - execute insert: %v", ErrExecQuery, err)
	}

	req.Status = domain.RequestStatusPending
	req.CreatedAt = createdAt.Time

	return req, nil
}

func (r *Repository) scanCard(row *sql.Row, op string) (*domain.StampCard, error) {
	var card domain.StampCard
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&card.ID,
		&card.Email,
		&card.Name,
		&card.ReferralCode,
		&card.StampCount,
		&card.ReferralCount,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan card: %v", ErrScanRow, op, err)
	}

	card.CreatedAt = createdAt.Time
	card.UpdatedAt = updatedAt.Time

	return &card, nil
}
