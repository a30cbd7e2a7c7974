package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/order/model"
)

const orderColumns = `
	id, order_number, user_id, coupon_id,
	subtotal, tax_amount, shipping_fee, discount_amount, total,
	payment_method, payment_status, payment_ref, paid_at,
	status, stock_reserved,
	shipping_name, shipping_phone, shipping_address, shipping_city, shipping_pincode,
	delivered_at, cancelled_at, version, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &postgresRepository{
		pool: pool,
	}
}

// =====================================================
// TRANSACTION MANAGEMENT
// =====================================================

func (r *postgresRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (r *postgresRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}

func (r *postgresRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// =====================================================
// ORDER OPERATIONS
// =====================================================

func (r *postgresRepository) CreateOrderWithTx(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (
			id, order_number, user_id, coupon_id,
			subtotal, tax_amount, shipping_fee, discount_amount, total,
			payment_method, payment_status, payment_ref, paid_at,
			status, stock_reserved,
			shipping_name, shipping_phone, shipping_address, shipping_city, shipping_pincode,
			version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		order.ID,
		order.OrderNumber,
		order.UserID,
		order.CouponID,
		order.Subtotal,
		order.TaxAmount,
		order.ShippingFee,
		order.DiscountAmount,
		order.Total,
		order.PaymentMethod,
		order.PaymentStatus,
		order.PaymentRef,
		order.PaidAt,
		order.Status,
		order.StockReserved,
		order.ShippingName,
		order.ShippingPhone,
		order.ShippingAddress,
		order.ShippingCity,
		order.ShippingPincode,
		order.Version,
	).Scan(&order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *postgresRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.CouponID,
		&o.Subtotal, &o.TaxAmount, &o.ShippingFee, &o.DiscountAmount, &o.Total,
		&o.PaymentMethod, &o.PaymentStatus, &o.PaymentRef, &o.PaidAt,
		&o.Status, &o.StockReserved,
		&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress, &o.ShippingCity, &o.ShippingPincode,
		&o.DeliveredAt, &o.CancelledAt, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &o, nil
}

func (r *postgresRepository) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOrder(r.pool.QueryRow(ctx, query, orderID))
}

func (r *postgresRepository) GetOrderByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`
	return r.scanOrder(r.pool.QueryRow(ctx, query, orderID, userID))
}

// GetOrderForUpdateWithTx locks the order row for the rest of the
// transaction. Every lifecycle mutation starts here.
func (r *postgresRepository) GetOrderForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOrder(tx.QueryRow(ctx, query, orderID))
}

// UpdateOrderStatusWithTx moves the order status with optimistic version
// checking on top of the row lock.
func (r *postgresRepository) UpdateOrderStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.OrderStatus, version int) error {
	query := `
		UPDATE orders
		SET status = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $3
	`

	result, err := tx.Exec(ctx, query, orderID, status, version)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrVersionMismatch
	}

	return nil
}

func (r *postgresRepository) SetPaymentStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.PaymentStatus, paymentRef *string) error {
	query := `
		UPDATE orders
		SET payment_status = $2,
		    payment_ref = COALESCE($3, payment_ref),
		    paid_at = CASE WHEN $2 = 'completed' AND paid_at IS NULL THEN NOW() ELSE paid_at END,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, orderID, status, paymentRef)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// SetDeliveredAtWithTx stamps delivery once; repeated calls keep the
// first timestamp.
func (r *postgresRepository) SetDeliveredAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	query := `
		UPDATE orders
		SET delivered_at = COALESCE(delivered_at, NOW()), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, orderID); err != nil {
		return fmt.Errorf("failed to set delivered_at: %w", err)
	}
	return nil
}

func (r *postgresRepository) SetCancelledAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	query := `
		UPDATE orders
		SET cancelled_at = COALESCE(cancelled_at, NOW()), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, orderID); err != nil {
		return fmt.Errorf("failed to set cancelled_at: %w", err)
	}
	return nil
}

func (r *postgresRepository) SetStockReservedWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, reserved bool) error {
	query := `UPDATE orders SET stock_reserved = $2, updated_at = NOW() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, orderID, reserved); err != nil {
		return fmt.Errorf("failed to set stock_reserved: %w", err)
	}
	return nil
}

// =====================================================
// ORDER ITEMS
// =====================================================

func (r *postgresRepository) CreateOrderItemsWithTx(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	columns := []string{
		"id", "order_id", "product_id", "variant_id",
		"product_name", "variant_name",
		"quantity", "unit_price", "discount", "item_total",
		"status", "created_at",
	}

	rows := make([][]interface{}, len(items))
	now := time.Now()
	for i, item := range items {
		rows[i] = []interface{}{
			item.ID,
			item.OrderID,
			item.ProductID,
			item.VariantID,
			item.ProductName,
			item.VariantName,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.ItemTotal,
			item.Status,
			now,
		}
	}

	copyCount, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}

	if copyCount != int64(len(items)) {
		return fmt.Errorf("expected to insert %d items, inserted %d", len(items), copyCount)
	}

	return nil
}

const itemColumns = `
	id, order_id, product_id, variant_id,
	product_name, variant_name,
	quantity, unit_price, discount, item_total,
	status, created_at`

func (r *postgresRepository) scanItems(rows pgx.Rows) ([]model.OrderItem, error) {
	defer rows.Close()

	items := make([]model.OrderItem, 0, 8)
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.VariantID,
			&item.ProductName, &item.VariantName,
			&item.Quantity, &item.UnitPrice, &item.Discount, &item.ItemTotal,
			&item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) GetOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	query := `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	return r.scanItems(rows)
}

func (r *postgresRepository) GetOrderItemsForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderItem, error) {
	query := `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at ASC, id ASC FOR UPDATE`

	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock order items: %w", err)
	}

	return r.scanItems(rows)
}

func (r *postgresRepository) UpdateItemStatusWithTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, status model.ItemStatus) error {
	query := `UPDATE order_items SET status = $2 WHERE id = $1`

	result, err := tx.Exec(ctx, query, itemID, status)
	if err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return nil
}

func (r *postgresRepository) UpdateAllItemStatusesWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, from, to model.ItemStatus) error {
	query := `UPDATE order_items SET status = $3 WHERE order_id = $1 AND status = $2`

	if _, err := tx.Exec(ctx, query, orderID, from, to); err != nil {
		return fmt.Errorf("failed to update item statuses: %w", err)
	}
	return nil
}

// =====================================================
// LIST OPERATIONS
// =====================================================

func (r *postgresRepository) ListOrdersByUserID(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]model.Order, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1 AND ($2 = '' OR status = $2)`

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, userID, status).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id ASC
		LIMIT $3 OFFSET $4`

	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, totalCount, nil
}

func (r *postgresRepository) ListAllOrders(ctx context.Context, status string, page, limit int) ([]model.Order, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)`

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, status).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id ASC
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, totalCount, nil
}

func (r *postgresRepository) scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	orders := make([]model.Order, 0, 16)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.CouponID,
			&o.Subtotal, &o.TaxAmount, &o.ShippingFee, &o.DiscountAmount, &o.Total,
			&o.PaymentMethod, &o.PaymentStatus, &o.PaymentRef, &o.PaidAt,
			&o.Status, &o.StockReserved,
			&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress, &o.ShippingCity, &o.ShippingPincode,
			&o.DeliveredAt, &o.CancelledAt, &o.Version, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *postgresRepository) CountOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id = $1`, orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count order items: %w", err)
	}
	return count, nil
}

// =====================================================
// CANCELLATIONS
// =====================================================

func (r *postgresRepository) CreateCancellationWithTx(ctx context.Context, tx pgx.Tx, c *model.OrderCancellation) error {
	query := `
		INSERT INTO order_cancellations (
			id, order_id, item_id, type, reason, refund_amount, refund_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := tx.QueryRow(ctx, query,
		c.ID,
		c.OrderID,
		c.ItemID,
		c.Type,
		c.Reason,
		c.RefundAmount,
		c.RefundStatus,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cancellation: %w", err)
	}

	return nil
}

func (r *postgresRepository) SetCancellationRefundStatusWithTx(ctx context.Context, tx pgx.Tx, cancellationID uuid.UUID, status model.RefundStatus) error {
	query := `UPDATE order_cancellations SET refund_status = $2 WHERE id = $1`

	if _, err := tx.Exec(ctx, query, cancellationID, status); err != nil {
		return fmt.Errorf("failed to update cancellation refund status: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListCancellationsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderCancellation, error) {
	query := `
		SELECT id, order_id, item_id, type, reason, refund_amount, refund_status, created_at
		FROM order_cancellations
		WHERE order_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cancellations: %w", err)
	}
	defer rows.Close()

	var cancellations []model.OrderCancellation
	for rows.Next() {
		var c model.OrderCancellation
		err := rows.Scan(&c.ID, &c.OrderID, &c.ItemID, &c.Type, &c.Reason, &c.RefundAmount, &c.RefundStatus, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cancellation: %w", err)
		}
		cancellations = append(cancellations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cancellations: %w", err)
	}

	return cancellations, nil
}

// =====================================================
// RETURNS
// =====================================================

const returnColumns = `
	id, order_id, item_id, reason, status, rejection_reason,
	refund_amount, refund_status, created_at, updated_at`

func (r *postgresRepository) CreateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error {
	query := `
		INSERT INTO order_returns (
			id, order_id, item_id, reason, status, rejection_reason,
			refund_amount, refund_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		ret.ID,
		ret.OrderID,
		ret.ItemID,
		ret.Reason,
		ret.Status,
		ret.RejectionReason,
		ret.RefundAmount,
		ret.RefundStatus,
	).Scan(&ret.CreatedAt, &ret.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert return: %w", err)
	}

	return nil
}

func (r *postgresRepository) scanReturn(row pgx.Row) (*model.OrderReturn, error) {
	var ret model.OrderReturn
	err := row.Scan(
		&ret.ID, &ret.OrderID, &ret.ItemID, &ret.Reason, &ret.Status, &ret.RejectionReason,
		&ret.RefundAmount, &ret.RefundStatus, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReturnNotFound
		}
		return nil, fmt.Errorf("failed to scan return: %w", err)
	}
	return &ret, nil
}

func (r *postgresRepository) GetReturnByID(ctx context.Context, returnID uuid.UUID) (*model.OrderReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM order_returns WHERE id = $1`
	return r.scanReturn(r.pool.QueryRow(ctx, query, returnID))
}

func (r *postgresRepository) GetReturnForUpdateWithTx(ctx context.Context, tx pgx.Tx, returnID uuid.UUID) (*model.OrderReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM order_returns WHERE id = $1 FOR UPDATE`
	return r.scanReturn(tx.QueryRow(ctx, query, returnID))
}

func (r *postgresRepository) UpdateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error {
	query := `
		UPDATE order_returns
		SET status = $2, rejection_reason = $3, refund_amount = $4, refund_status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(ctx, query,
		ret.ID,
		ret.Status,
		ret.RejectionReason,
		ret.RefundAmount,
		ret.RefundStatus,
	).Scan(&ret.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrReturnNotFound
		}
		return fmt.Errorf("failed to update return: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListReturnsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM order_returns WHERE order_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	var returns []model.OrderReturn
	for rows.Next() {
		var ret model.OrderReturn
		err := rows.Scan(
			&ret.ID, &ret.OrderID, &ret.ItemID, &ret.Reason, &ret.Status, &ret.RejectionReason,
			&ret.RefundAmount, &ret.RefundStatus, &ret.CreatedAt, &ret.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}
		returns = append(returns, ret)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating returns: %w", err)
	}

	return returns, nil
}

// ListReturnsByOrderIDWithTx locks the order's return rows so concurrent
// requests against the same order serialize on the overlap check.
func (r *postgresRepository) ListReturnsByOrderIDWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM order_returns WHERE order_id = $1 ORDER BY created_at FOR UPDATE`

	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	var returns []model.OrderReturn
	for rows.Next() {
		var ret model.OrderReturn
		err := rows.Scan(
			&ret.ID, &ret.OrderID, &ret.ItemID, &ret.Reason, &ret.Status, &ret.RejectionReason,
			&ret.RefundAmount, &ret.RefundStatus, &ret.CreatedAt, &ret.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}
		returns = append(returns, ret)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating returns: %w", err)
	}

	return returns, nil
}

// =====================================================
// ORDER STATUS HISTORY
// =====================================================

func (r *postgresRepository) CreateOrderStatusHistoryWithTx(ctx context.Context, tx pgx.Tx, history *model.OrderStatusHistory) error {
	query := `
		INSERT INTO order_status_history (id, order_id, from_status, to_status, changed_by, notes, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING changed_at
	`

	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}

	err := tx.QueryRow(ctx, query,
		history.ID,
		history.OrderID,
		history.FromStatus,
		history.ToStatus,
		history.ChangedBy,
		history.Notes,
	).Scan(&history.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetOrderStatusHistory(ctx context.Context, orderID uuid.UUID) ([]model.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, from_status, to_status, changed_by, notes, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at ASC
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var history []model.OrderStatusHistory
	for rows.Next() {
		var h model.OrderStatusHistory
		err := rows.Scan(&h.ID, &h.OrderID, &h.FromStatus, &h.ToStatus, &h.ChangedBy, &h.Notes, &h.ChangedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status history: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status history: %w", err)
	}

	return history, nil
}
