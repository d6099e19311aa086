package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/hostelhub/hostelhub_backend/internal/models"
	"github.com/hostelhub/hostelhub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `id, resident_id, amount, payment_method, description, transaction_id, status, processing_fee, net_amount, processed_at, original_payment_id`

const insertPaymentQuery = `
	INSERT INTO payments (resident_id, amount, payment_method, description, transaction_id, status, processing_fee, net_amount, processed_at, original_payment_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id;
`

func scanPayment(row pgx.CollectableRow) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.ResidentID,
		&p.Amount,
		&p.PaymentMethod,
		&p.Description,
		&p.TransactionID,
		&p.Status,
		&p.ProcessingFee,
		&p.NetAmount,
		&p.ProcessedAt,
		&p.OriginalPaymentID,
	)
	return p, err
}

// SavePayment inserts a payment record and returns the generated ID.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	modelPayment := mapping.ToModelPayment(payment)

	var id int64
	err := r.Pool.QueryRow(ctx, insertPaymentQuery,
		modelPayment.ResidentID,
		modelPayment.Amount,
		modelPayment.PaymentMethod,
		modelPayment.Description,
		modelPayment.TransactionID,
		modelPayment.Status,
		modelPayment.ProcessingFee,
		modelPayment.NetAmount,
		modelPayment.ProcessedAt,
		modelPayment.OriginalPaymentID,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return 0, fmt.Errorf("%w: transaction %s already recorded", apperrors.ErrDuplicate, modelPayment.TransactionID)
		}
		return 0, fmt.Errorf("failed to save payment %s: %w", modelPayment.TransactionID, err)
	}
	return id, nil
}

// SavePaymentMarkingResidentPaid inserts the payment record and flips the
// resident's payment status to paid within one database transaction, so a
// persisted charge can never leave the resident still marked pending.
func (r *PgxPaymentRepository) SavePaymentMarkingResidentPaid(ctx context.Context, payment domain.Payment) (int64, error) {
	modelPayment := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var id int64
	err = tx.QueryRow(ctx, insertPaymentQuery,
		modelPayment.ResidentID,
		modelPayment.Amount,
		modelPayment.PaymentMethod,
		modelPayment.Description,
		modelPayment.TransactionID,
		modelPayment.Status,
		modelPayment.ProcessingFee,
		modelPayment.NetAmount,
		modelPayment.ProcessedAt,
		modelPayment.OriginalPaymentID,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: transaction %s already recorded", apperrors.ErrDuplicate, modelPayment.TransactionID)
		}
		return 0, fmt.Errorf("failed to save payment %s: %w", modelPayment.TransactionID, err)
	}

	updateQuery := `
		UPDATE residents
		SET payment_status = $2, last_payment_date = $3, last_updated_at = $3
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		modelPayment.ResidentID,
		string(domain.PaymentStatusPaid),
		modelPayment.ProcessedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark resident %d paid: %w", modelPayment.ResidentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("%w: resident %d not found during payment", apperrors.ErrNotFound, modelPayment.ResidentID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// FindPaymentByID retrieves a specific payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %d: %w", paymentID, err)
	}

	modelPayment, err := pgx.CollectOneRow(rows, scanPayment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by id %d: %w", paymentID, err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

// ListPayments retrieves all payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY processed_at DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// ListPaymentsByResident retrieves a resident's payments, newest first.
func (r *PgxPaymentRepository) ListPaymentsByResident(ctx context.Context, residentID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE resident_id = $1 ORDER BY processed_at DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of resident %d: %w", residentID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of resident %d: %w", residentID, err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
