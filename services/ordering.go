package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-messease/database"
	"go-messease/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var ErrSubtotalMismatch = errors.New("subtotal mismatch")

// OrderSync reports the best-effort order update that follows a
// succeeded payment. Err never reaches the API caller.
type OrderSync struct {
	Attempted bool
	OrderID   string
	Err       error
}

func (s OrderSync) Failed() bool {
	return s.Attempted && s.Err != nil
}

type OrderService struct {
	store  database.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewOrderService(store database.Store, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Used by tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// Round2 rounds v to two decimals from its exact binary value, with
// exact ties going to even.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// ExpectedSubtotal sums qty × unit_price over the line items.
func ExpectedSubtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Cost()
	}
	return sum
}

// CreateOrder persists the order if its claimed subtotal matches the
// recomputed one. Defaults must already be applied.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (string, string, error) {
	expected := Round2(ExpectedSubtotal(order.Items))
	var claimed float64
	if order.Subtotal != nil {
		claimed = Round2(*order.Subtotal)
	}
	if expected != claimed {
		return "", "", fmt.Errorf("%w: items sum to %.2f, subtotal is %.2f", ErrSubtotalMismatch, expected, claimed)
	}

	if order.Status == nil {
		status := models.OrderPending
		order.Status = &status
	}

	id, err := s.store.Insert(ctx, database.OrderCollection, order)
	if err != nil {
		return "", "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Infow("order created", "order_id", id, "subtotal", claimed, "status", *order.Status)
	return id, *order.Status, nil
}

// CreatePayment records the payment, then for succeeded payments marks the
// referenced order paid. The payment write stands even if the order update
// fails; that outcome is returned as OrderSync for the caller to log.
func (s *OrderService) CreatePayment(ctx context.Context, payment *models.Payment) (string, OrderSync, error) {
	if payment.Succeeded() && payment.PaidAt == nil {
		paidAt := s.now()
		payment.PaidAt = &paidAt
	}

	id, err := s.store.Insert(ctx, database.PaymentCollection, payment)
	if err != nil {
		return "", OrderSync{}, fmt.Errorf("failed to create payment: %w", err)
	}
	s.logger.Infow("payment recorded", "payment_id", id, "order_id", payment.Order(), "status", payment.Status)

	if !payment.Succeeded() {
		return id, OrderSync{}, nil
	}
	return id, s.markOrderPaid(ctx, payment.Order()), nil
}

func (s *OrderService) markOrderPaid(ctx context.Context, orderID string) OrderSync {
	sync := OrderSync{Attempted: true, OrderID: orderID}
	sync.Err = s.store.SetFields(ctx, database.OrderCollection, orderID, bson.M{
		"status":     models.OrderPaid,
		"updated_at": s.now(),
	})
	return sync
}
