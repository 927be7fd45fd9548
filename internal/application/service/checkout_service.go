package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/internal/domain/repository"
	"github.com/pospoint/terminal-api/pkg/utils"
	"go.uber.org/zap"
)

// SaleAPI is the slice of the backend the checkout flow needs.
type SaleAPI interface {
	CreateSale(ctx context.Context, payload entity.SalePayload) (*entity.SaleResponse, error)
}

// CheckoutService runs a transaction end to end: guard the session, price
// the cart, build the canonical payload, submit it, and normalize the
// response into a receipt. When the backend is unreachable the payload is
// queued locally and a provisional receipt is issued.
type CheckoutService struct {
	sessions *SessionService
	pricing  *PricingService
	builder  *SaleBuilder
	receipts *ReceiptService
	backend  SaleAPI
	pending  repository.PendingSaleRepository
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	sessions *SessionService,
	pricing *PricingService,
	builder *SaleBuilder,
	receipts *ReceiptService,
	backend SaleAPI,
	pending repository.PendingSaleRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		pricing:  pricing,
		builder:  builder,
		receipts: receipts,
		backend:  backend,
		pending:  pending,
		logger:   logger,
	}
}

// CheckoutInput is what a POS variant submits at checkout. Cashier and
// OperatorID identify the logged-in operator taking the sale.
type CheckoutInput struct {
	Cart          []entity.CartItem
	Discount      *entity.Discount
	Cashier       string
	OperatorID    string
	Customer      interface{}
	Table         interface{}
	PaymentMethod enum.PaymentMethod
	Notes         string
	Guests        *int
	Priority      enum.Priority
	Additional    map[string]interface{}
}

// CheckoutResult is the outcome of a checkout.
type CheckoutResult struct {
	Receipt entity.Receipt     `json:"receipt"`
	Totals  entity.CartTotals  `json:"totals"`
	Payload entity.SalePayload `json:"payload"`
	// Queued is true when the sale was taken offline and is awaiting replay.
	Queued bool `json:"queued"`
}

// PriceCart returns live totals for the working cart without touching the
// session guards, so the UI can show totals while selections are incomplete.
func (s *CheckoutService) PriceCart(items []entity.CartItem, discount *entity.Discount) entity.CartTotals {
	return s.pricing.Price(items, discount)
}

// Checkout validates the session, then prices, packages and submits the sale.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	sess, err := RequireAll(s.sessions.Context())
	if err != nil {
		return nil, err
	}

	totals := s.pricing.Price(input.Cart, input.Discount)

	build := BuildSaleInput{
		Cart:          input.Cart,
		Outlet:        sess.Outlet,
		Shift:         sess.Shift,
		Cashier:       input.Cashier,
		Customer:      input.Customer,
		Table:         input.Table,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		Guests:        input.Guests,
		Priority:      input.Priority,
		Additional:    input.Additional,
	}
	if input.Discount != nil {
		build.DiscountType = input.Discount.Type
		build.DiscountReason = input.Discount.Reason
	}
	payload := s.builder.Build(build)

	resp, err := s.backend.CreateSale(ctx, payload)
	if err != nil {
		s.logger.Warn("sale submission failed, queuing locally",
			zap.String("outlet", payload.Outlet), zap.Error(err))
		if queueErr := s.enqueue(ctx, payload, input.OperatorID); queueErr != nil {
			return nil, queueErr
		}
		return &CheckoutResult{
			Receipt: s.offlineReceipt(input.Cart, totals),
			Totals:  totals,
			Payload: payload,
			Queued:  true,
		}, nil
	}

	return &CheckoutResult{
		Receipt: s.receipts.BuildReceipt(resp),
		Totals:  totals,
		Payload: payload,
	}, nil
}

// FlushPending replays queued sales against the backend. Delivered payloads
// leave the queue; failures are recorded and retried on the next flush.
func (s *CheckoutService) FlushPending(ctx context.Context, limit int) (delivered int, failed int, err error) {
	queued, err := s.pending.ListPending(ctx, limit)
	if err != nil {
		return 0, 0, err
	}

	for _, sale := range queued {
		var payload entity.SalePayload
		if err := json.Unmarshal(sale.Payload, &payload); err != nil {
			s.logger.Error("dropping undecodable pending sale",
				zap.String("id", sale.ID.String()), zap.Error(err))
			_ = s.pending.Delete(ctx, sale.ID)
			failed++
			continue
		}

		if _, err := s.backend.CreateSale(ctx, payload); err != nil {
			s.logger.Warn("pending sale replay failed",
				zap.String("id", sale.ID.String()), zap.Error(err))
			_ = s.pending.MarkFailed(ctx, sale.ID, err.Error())
			failed++
			continue
		}

		if err := s.pending.Delete(ctx, sale.ID); err != nil {
			return delivered, failed, err
		}
		delivered++
	}
	return delivered, failed, nil
}

// PendingCount reports how many sales are queued for replay.
func (s *CheckoutService) PendingCount(ctx context.Context) (int64, error) {
	return s.pending.Count(ctx)
}

func (s *CheckoutService) enqueue(ctx context.Context, payload entity.SalePayload, operatorID string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.pending.Enqueue(ctx, &entity.PendingSale{
		OutletID:   payload.Outlet,
		OperatorID: operatorID,
		Payload:    raw,
	})
}

// offlineReceipt builds a provisional receipt from the cart itself, since no
// backend response exists yet. The OFF- number marks it as locally issued.
func (s *CheckoutService) offlineReceipt(cart []entity.CartItem, totals entity.CartTotals) entity.Receipt {
	items := make([]entity.ReceiptItem, 0, len(cart))
	for i, item := range cart {
		id := fmt.Sprintf("item-%d", i)
		if item.ProductID != "" {
			id = fmt.Sprintf("%s-%d", item.ProductID, i)
		}
		name := item.Name
		if name == "" {
			name = "Item"
		}
		items = append(items, entity.ReceiptItem{
			ID:       id,
			Name:     name,
			Price:    Round2(item.Price),
			Quantity: item.Quantity,
			Total:    Round2(item.LineTotal()),
		})
	}

	return entity.Receipt{
		ReceiptNumber: utils.GenerateReceiptNo("OFF"),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
