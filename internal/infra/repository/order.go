package repository

import (
	"context"
	"time"

	"ticketera/internal/domain/order"
	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

var _ shared.OrderRepository = (*OrderRepository)(nil)

const insertOrderSQL = `
INSERT INTO orders (id, customer_name, customer_email, customer_phone, customer_doc_id,
                    subtotal_cents, discount_cents, service_fee_cents, total_cents,
                    status, payment_method, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	pricing := o.Pricing()
	customer := o.Customer()

	_, err := r.db.Exec(ctx, insertOrderSQL,
		o.ID(), customer.Name, customer.Email, customer.Phone, customer.DocID,
		pricing.Subtotal.Cents(), pricing.Discount.Cents(), pricing.ServiceFee.Cents(), pricing.Total.Cents(),
		string(o.Status()), string(o.PaymentMethod()), o.UserID())
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}

	for _, item := range o.Items() {
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_items (id, order_id, batch_id, quantity, unit_price_cents)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, o.ID(), item.BatchID, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return nil
}

const selectOrderSQL = `
SELECT id, customer_name, customer_email, customer_phone, customer_doc_id,
       subtotal_cents, discount_cents, service_fee_cents, total_cents,
       status, payment_method, payment_ref, user_id, created_at
FROM orders
WHERE id = $1`

func (r *OrderRepository) Find(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOrder(ctx, id, selectOrderSQL)
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOrder(ctx, id, selectOrderSQL+" FOR UPDATE")
}

func (r *OrderRepository) findOrder(ctx context.Context, id uuid.UUID, sql string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, sql, id)

	var (
		orderID                                        uuid.UUID
		name, email, phone, docID                      string
		subtotal, discount, serviceFee, total          int64
		status, method                                 string
		paymentRef                                     *string
		userID                                         *uuid.UUID
		createdAt                                      time.Time
	)
	if err := row.Scan(&orderID, &name, &email, &phone, &docID,
		&subtotal, &discount, &serviceFee, &total,
		&status, &method, &paymentRef, &userID, &createdAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.findItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	quote := order.Quote{
		Subtotal:   order.NewMoney(subtotal),
		Discount:   order.NewMoney(discount),
		ServiceFee: order.NewMoney(serviceFee),
		Total:      order.NewMoney(total),
	}
	customer := order.CustomerInfo{Name: name, Email: email, Phone: phone, DocID: docID}

	return order.ReconstructOrder(orderID, customer, quote, order.Status(status),
		order.PaymentMethod(method), paymentRef, userID, items, createdAt), nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]order.LineItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, batch_id, quantity, unit_price_cents FROM order_items WHERE order_id = $1`,
		orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order items", err)
	}
	defer rows.Close()

	var items []order.LineItem
	for rows.Next() {
		var item order.LineItem
		if err := rows.Scan(&item.ID, &item.BatchID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

func (r *OrderRepository) FindIDByPaymentRef(ctx context.Context, ref string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM orders WHERE payment_ref = $1`, ref).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("order not found for payment ref", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to look up order by payment ref", err)
	}
	return id, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) SetPaymentRef(ctx context.Context, id uuid.UUID, ref string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_ref = $2, updated_at = now() WHERE id = $1`,
		id, ref)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment ref", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) ListStalePendingIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM orders WHERE status = 'PENDING' AND created_at < $1 ORDER BY created_at LIMIT $2`,
		before, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending orders", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stale pending orders", err)
	}
	return ids, nil
}
