package readstore

import (
	"context"

	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

var _ queries.OrderViewRepo = (*OrderReadStore)(nil)

const findOrderViewSQL = `
SELECT id, customer_name, customer_email, customer_phone,
       subtotal_cents, discount_cents, service_fee_cents, total_cents,
       status, payment_method, payment_ref, user_id, created_at
FROM orders
WHERE id = $1`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view  queries.OrderView
		phone string
	)
	err := s.db.QueryRow(ctx, findOrderViewSQL, id).Scan(
		&view.ID, &view.CustomerName, &view.CustomerEmail, &phone,
		&view.SubtotalCents, &view.DiscountCents, &view.ServiceFeeCents, &view.TotalCents,
		&view.Status, &view.PaymentMethod, &view.PaymentRef, &view.UserID, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order view", err)
	}
	if phone != "" {
		view.CustomerPhone = &phone
	}

	items, err := s.findItemViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return &view, nil
}

const findOrderItemViewsSQL = `
SELECT oi.batch_id, b.name, e.title, oi.quantity, oi.unit_price_cents
FROM order_items oi
JOIN batches b ON b.id = oi.batch_id
JOIN events e ON e.id = b.event_id
WHERE oi.order_id = $1`

func (s *OrderReadStore) findItemViews(ctx context.Context, orderID uuid.UUID) ([]*queries.OrderItemView, error) {
	rows, err := s.db.Query(ctx, findOrderItemViewsSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read order item views", err)
	}
	defer rows.Close()

	var items []*queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.BatchID, &item.BatchName, &item.EventName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item view", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item views", err)
	}
	return items, nil
}

const findPendingApprovalSQL = `
SELECT o.id, o.customer_name, o.customer_email, o.total_cents,
       (SELECT count(*) FROM tickets t WHERE t.order_id = o.id)::int AS ticket_count,
       o.created_at
FROM orders o
WHERE o.status = 'PENDING_APPROVAL'
  AND EXISTS (
      SELECT 1
      FROM order_items oi
      JOIN batches b ON b.id = oi.batch_id
      JOIN events e ON e.id = b.event_id
      WHERE oi.order_id = o.id AND e.producer_id = $1
  )
ORDER BY o.created_at`

func (s *OrderReadStore) FindPendingApprovalByProducer(ctx context.Context, producerID uuid.UUID) ([]*queries.PendingOrderListItem, error) {
	rows, err := s.db.Query(ctx, findPendingApprovalSQL, producerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read pending approval orders", err)
	}
	defer rows.Close()

	var list []*queries.PendingOrderListItem
	for rows.Next() {
		var item queries.PendingOrderListItem
		if err := rows.Scan(&item.ID, &item.CustomerName, &item.CustomerEmail, &item.TotalCents, &item.TicketCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending approval order", err)
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending approval orders", err)
	}
	return list, nil
}

// ProducerOwnsAllOrderItems reports whether every line item of the order
// belongs to an event of the given producer. Used by approval and
// rejection; a mixed order is nobody's to approve.
func (s *OrderReadStore) ProducerOwnsAllOrderItems(ctx context.Context, orderID, producerID uuid.UUID) (bool, error) {
	const sql = `
SELECT count(*) = 0
FROM order_items oi
JOIN batches b ON b.id = oi.batch_id
JOIN events e ON e.id = b.event_id
WHERE oi.order_id = $1 AND e.producer_id <> $2`

	var owns bool
	if err := s.db.QueryRow(ctx, sql, orderID, producerID).Scan(&owns); err != nil {
		return false, infra.WrapRepoErr("failed to check order ownership", err)
	}
	if owns {
		// An order with no items at all must not be approvable by anyone.
		var hasItems bool
		if err := s.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM order_items WHERE order_id = $1)`, orderID).Scan(&hasItems); err != nil {
			return false, infra.WrapRepoErr("failed to check order items", err)
		}
		owns = hasItems
	}
	return owns, nil
}

func (s *OrderReadStore) ProducerOwnsAnyOrderItem(ctx context.Context, orderID, producerID uuid.UUID) (bool, error) {
	const sql = `
SELECT EXISTS (
    SELECT 1
    FROM order_items oi
    JOIN batches b ON b.id = oi.batch_id
    JOIN events e ON e.id = b.event_id
    WHERE oi.order_id = $1 AND e.producer_id = $2
)`

	var owns bool
	if err := s.db.QueryRow(ctx, sql, orderID, producerID).Scan(&owns); err != nil {
		return false, infra.WrapRepoErr("failed to check order ownership", err)
	}
	return owns, nil
}
