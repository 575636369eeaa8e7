package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, означающие занятый слот
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

var bookingColumns = []string{
	"id",
	"client_name",
	"scheduled_at",
	"value",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db           DBExecutor
	queryTimeout time.Duration
}

// NewRepository создает новый экземпляр репозитория бронирований
// queryTimeout ограничивает каждый вызов; 0 отключает ограничение
func NewRepository(db DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{db: db, queryTimeout: queryTimeout}
}

// FindAll возвращает все бронирования по возрастанию времени записи
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("scheduled_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(ctx, "FindAll - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(ctx, rows)
}

// FindInRange возвращает бронирования в интервале [start, end] (обе границы включительно)
func (r *Repository) FindInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Expr("scheduled_at BETWEEN ? AND ?", start, end)).
		OrderBy("scheduled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(ctx, "FindInRange - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(ctx, rows)
}

// FindByExactTime возвращает бронирования, назначенные ровно на момент at
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) FindByExactTime(ctx context.Context, at time.Time) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"scheduled_at": at})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByExactTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(ctx, "FindByExactTime - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(ctx, rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, r.classify(ctx, "GetByID - scan booking", err)
	}

	return b, nil
}

// Create создает новое бронирование
// Занятое время (уникальный индекс по scheduled_at) возвращается как ErrDuplicateSlot
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("client_name", "scheduled_at", "value").
		Values(booking.ClientName, booking.ScheduledAt, booking.Value).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, r.classify(ctx, "Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Update перезаписывает изменяемые поля бронирования и возвращает результат
func (r *Repository) Update(ctx context.Context, id int64, fields domain.BookingFields) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("client_name", fields.ClientName).
		Set("scheduled_at", fields.ScheduledAt).
		Set("value", fields.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, client_name, scheduled_at, value, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, r.classify(ctx, "Update - execute update", err)
	}

	return b, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return r.classify(ctx, "Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SumValueInRange сумма стоимости бронирований в интервале [start, end]
// Пустой интервал даёт ноль
func (r *Repository) SumValueInRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(value), 0)").
		From("bookings").
		Where(squirrel.Expr("scheduled_at BETWEEN ? AND ?", start, end)).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumValueInRange - build select query: %v", ErrBuildQuery, err)
	}

	var total decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, r.classify(ctx, "SumValueInRange - scan sum", err)
	}

	return total, nil
}

// CountInRange количество бронирований в интервале [start, end]
func (r *Repository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Expr("scheduled_at BETWEEN ? AND ?", start, end)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, r.classify(ctx, "CountInRange - scan count", err)
	}

	return count, nil
}

// FindNextAfter ближайшее бронирование строго после момента after
// Возвращает nil, nil, если таких записей нет
func (r *Repository) FindNextAfter(ctx context.Context, after time.Time) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Gt{"scheduled_at": after}).
		OrderBy("scheduled_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindNextAfter - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.classify(ctx, "FindNextAfter - scan booking", err)
	}

	return b, nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// classify переводит ошибку драйвера в ошибку репозитория
func (r *Repository) classify(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrQueryTimeout, op, err)
	}

	if IsSlotConflict(err) {
		return fmt.Errorf("%w: %s: %v", ErrDuplicateSlot, op, err)
	}

	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

// IsSlotConflict true, если ошибка означает, что время уже занято:
// нарушение уникального индекса или сбой сериализации, в том числе при COMMIT
func IsSlotConflict(err error) bool {
	if errors.Is(err, ErrDuplicateSlot) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqSerializationFailure:
			return true
		}
	}
	return false
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(ctx context.Context, rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, r.classify(ctx, "scanBookings - rows error", err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ClientName,
		&b.ScheduledAt,
		&b.Value,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
