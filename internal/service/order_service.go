package service

import (
	"context"
	"io"
	"slices"
	"time"

	"pico-pos/internal/cart"
	"pico-pos/internal/events"
	"pico-pos/internal/ledger"
	"pico-pos/internal/model"
	"pico-pos/internal/receipt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultEventTimeout = 5 * time.Second

// orderService implements OrderService.
type orderService struct {
	ledger       *ledger.Ledger
	publisher    events.Publisher
	eventTimeout time.Duration
	logger       zerolog.Logger
}

// NewOrderService creates a new order service. Committed checkouts and
// refunds are announced through publisher, each attempt bounded by
// eventTimeout.
func NewOrderService(l *ledger.Ledger, publisher events.Publisher, eventTimeout time.Duration, logger zerolog.Logger) OrderService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	if eventTimeout <= 0 {
		eventTimeout = defaultEventTimeout
	}
	return &orderService{
		ledger:       l,
		publisher:    publisher,
		eventTimeout: eventTimeout,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

func (s *orderService) OpenTable(ctx context.Context, tableID int) (model.CartResponse, error) {
	c, err := s.ledger.OpenTable(tableID)
	if err != nil {
		s.logger.Debug().Int("table_id", tableID).Msg("table not found")
		return model.CartResponse{}, err
	}

	s.logger.Debug().Int("table_id", tableID).Msg("table opened")
	return cartResponse(c), nil
}

func (s *orderService) CloseTable(ctx context.Context) {
	s.ledger.CloseTable()
}

func (s *orderService) Cart(ctx context.Context) model.CartResponse {
	return cartResponse(s.ledger.Cart())
}

func (s *orderService) AddItem(ctx context.Context, itemID string) (model.CartResponse, error) {
	if itemID == "" {
		return model.CartResponse{}, model.NewDomainError(model.ErrCodeMissingField, "itemId is required")
	}
	return s.cartResult(s.ledger.AddItem(itemID))
}

func (s *orderService) UpdateQuantity(ctx context.Context, itemID string, delta int) (model.CartResponse, error) {
	return s.cartResult(s.ledger.UpdateQuantity(itemID, delta))
}

func (s *orderService) SetNote(ctx context.Context, itemID, note string) (model.CartResponse, error) {
	return s.cartResult(s.ledger.SetNote(itemID, note))
}

func (s *orderService) cartResult(c model.Cart, err error) (model.CartResponse, error) {
	if err != nil {
		s.logger.Debug().Err(err).Int("table_id", c.TableID).Msg("cart change rejected")
		return model.CartResponse{}, err
	}
	return cartResponse(c), nil
}

// Checkout commits the cart, then publishes order.completed. A failed
// publication is logged and does not undo the order.
func (s *orderService) Checkout(ctx context.Context) (model.Order, error) {
	order, err := s.ledger.Checkout()
	if err != nil {
		s.logger.Warn().Err(err).Msg("checkout rejected")
		return model.Order{}, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("table_id", order.TableID).
		Str("total", order.Total.String()).
		Int("line_count", len(order.Items)).
		Msg("order completed")

	s.publish(ctx, model.EventOrderCompleted, order)
	return order, nil
}

func (s *orderService) List(ctx context.Context) []model.Order {
	orders := s.ledger.Orders()
	slices.Reverse(orders)
	return orders
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := s.ledger.Order(id)
	if err != nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return model.Order{}, err
	}
	return order, nil
}

func (s *orderService) Refund(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := s.ledger.Refund(id)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", id.String()).Msg("refund rejected")
		return model.Order{}, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("total", order.Total.String()).
		Msg("order refunded")

	s.publish(ctx, model.EventOrderRefunded, order)
	return order, nil
}

func (s *orderService) WriteReceipt(ctx context.Context, id uuid.UUID, w io.Writer) error {
	profile, err := s.ledger.Profile()
	if err != nil {
		return err
	}

	order, err := s.ledger.Order(id)
	if err != nil {
		return err
	}

	return receipt.Render(w, order, profile)
}

func (s *orderService) publish(ctx context.Context, eventType string, order model.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.eventTimeout)
	defer cancel()

	event := events.FromOrder(eventType, order, time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error().
			Err(err).
			Str("event", eventType).
			Str("order_id", order.ID.String()).
			Msg("failed to publish order event")
	}
}

func cartResponse(c model.Cart) model.CartResponse {
	total := cart.Total(c.Lines)
	subtotal, tax := receipt.Preview(total)

	lines := c.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}

	return model.CartResponse{
		TableID:  c.TableID,
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
