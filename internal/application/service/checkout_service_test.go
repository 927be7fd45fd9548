package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSaleAPI captures submitted payloads and serves a canned response.
type fakeSaleAPI struct {
	payloads []entity.SalePayload
	resp     *entity.SaleResponse
	err      error
}

func (f *fakeSaleAPI) CreateSale(ctx context.Context, payload entity.SalePayload) (*entity.SaleResponse, error) {
	f.payloads = append(f.payloads, payload)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// fakePendingRepo is an in-memory PendingSaleRepository.
type fakePendingRepo struct {
	sales []entity.PendingSale
}

func (f *fakePendingRepo) Enqueue(ctx context.Context, sale *entity.PendingSale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.sales = append(f.sales, *sale)
	return nil
}

func (f *fakePendingRepo) ListPending(ctx context.Context, limit int) ([]entity.PendingSale, error) {
	if limit > 0 && limit < len(f.sales) {
		return f.sales[:limit], nil
	}
	return f.sales, nil
}

func (f *fakePendingRepo) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	for i := range f.sales {
		if f.sales[i].ID == id {
			f.sales[i].Attempts++
			f.sales[i].LastError = lastError
		}
	}
	return nil
}

func (f *fakePendingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.sales {
		if f.sales[i].ID == id {
			f.sales = append(f.sales[:i], f.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePendingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.sales)), nil
}

func newTestCheckout(api *fakeSaleAPI, pending *fakePendingRepo) (*CheckoutService, *SessionService) {
	sessions := NewSessionService(NewOutletResolver())
	sessions.SelectBusiness(&entity.Business{ID: "b-1", Type: "retail"})
	sessions.SelectOutlet(&entity.Outlet{ID: "o-1"})
	sessions.SetShift(&entity.Shift{ID: "s-1"})

	svc := NewCheckoutService(
		sessions,
		NewPricingService(nil),
		NewSaleBuilder(nil),
		NewReceiptService(),
		api,
		pending,
		zap.NewNop(),
	)
	return svc, sessions
}

func TestCheckout_Success(t *testing.T) {
	api := &fakeSaleAPI{resp: &entity.SaleResponse{
		ReceiptNumber: "R-100",
		Items:         []entity.SaleResponseItem{{ProductID: "p-1", ProductName: "Coffee", Price: 3.50, Quantity: 2, Total: 7.00}},
		Total:         7.00,
		CreatedAt:     "2026-08-30T10:00:00Z",
	}}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	result, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart: []entity.CartItem{{ProductID: "p-1", Name: "Coffee", Price: 3.50, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.False(t, result.Queued)
	assert.Equal(t, "R-100", result.Receipt.ReceiptNumber)
	assert.Equal(t, 7.00, result.Totals.Subtotal)

	require.Len(t, api.payloads, 1)
	assert.Equal(t, "o-1", api.payloads[0].Outlet)
	assert.Equal(t, "s-1", api.payloads[0].Shift)

	count, _ := pending.Count(context.Background())
	assert.Zero(t, count)
}

func TestCheckout_GuardFailure(t *testing.T) {
	api := &fakeSaleAPI{}
	svc, sessions := newTestCheckout(api, &fakePendingRepo{})
	sessions.SetShift(nil)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart: []entity.CartItem{{ProductID: "p-1", Price: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, apperror.ErrNoShift)
	assert.Empty(t, api.payloads)
}

func TestCheckout_BackendFailureQueuesSale(t *testing.T) {
	api := &fakeSaleAPI{err: errors.New("connection refused")}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	result, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart: []entity.CartItem{{ProductID: "p-1", Name: "Coffee", Price: 3.50, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, result.Queued)
	assert.True(t, strings.HasPrefix(result.Receipt.ReceiptNumber, "OFF-"))
	assert.Equal(t, 7.00, result.Receipt.Total)
	require.Len(t, result.Receipt.Items, 1)
	assert.Equal(t, "Coffee", result.Receipt.Items[0].Name)

	require.Len(t, pending.sales, 1)
	assert.Equal(t, "o-1", pending.sales[0].OutletID)

	var queued entity.SalePayload
	require.NoError(t, json.Unmarshal(pending.sales[0].Payload, &queued))
	assert.Equal(t, 7.00, queued.Total)
	assert.Equal(t, enum.PaymentMethodCash, queued.PaymentMethod)
}

func TestCheckout_CarriesOperatorIdentity(t *testing.T) {
	api := &fakeSaleAPI{err: errors.New("connection refused")}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart:       []entity.CartItem{{ProductID: "p-1", Price: 5, Quantity: 1}},
		Cashier:    "ada",
		OperatorID: "op-1",
	})
	require.NoError(t, err)

	require.Len(t, api.payloads, 1)
	assert.Equal(t, "ada", api.payloads[0].Cashier)
	require.Len(t, pending.sales, 1)
	assert.Equal(t, "op-1", pending.sales[0].OperatorID)
}

func TestFlushPending_DeliversQueuedSales(t *testing.T) {
	api := &fakeSaleAPI{err: errors.New("connection refused")}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart: []entity.CartItem{{ProductID: "p-1", Price: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	// Backend comes back.
	api.err = nil
	api.resp = &entity.SaleResponse{ReceiptNumber: "R-1"}

	delivered, failed, err := svc.FlushPending(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, delivered)
	assert.Zero(t, failed)
	assert.Empty(t, pending.sales)
}

func TestFlushPending_FailedReplayStaysQueued(t *testing.T) {
	api := &fakeSaleAPI{err: errors.New("connection refused")}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Cart: []entity.CartItem{{ProductID: "p-1", Price: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	delivered, failed, err := svc.FlushPending(context.Background(), 10)
	require.NoError(t, err)

	assert.Zero(t, delivered)
	assert.Equal(t, 1, failed)
	require.Len(t, pending.sales, 1)
	assert.Equal(t, 1, pending.sales[0].Attempts)
	assert.Contains(t, pending.sales[0].LastError, "connection refused")
}

func TestFlushPending_DropsUndecodablePayload(t *testing.T) {
	api := &fakeSaleAPI{}
	pending := &fakePendingRepo{}
	svc, _ := newTestCheckout(api, pending)

	require.NoError(t, pending.Enqueue(context.Background(), &entity.PendingSale{
		OutletID: "o-1",
		Payload:  []byte("not json"),
	}))

	delivered, failed, err := svc.FlushPending(context.Background(), 10)
	require.NoError(t, err)

	assert.Zero(t, delivered)
	assert.Equal(t, 1, failed)
	assert.Empty(t, pending.sales)
	assert.Empty(t, api.payloads)
}

func TestPriceCart_NoGuards(t *testing.T) {
	svc, sessions := newTestCheckout(&fakeSaleAPI{}, &fakePendingRepo{})
	sessions.SelectBusiness(nil)

	totals := svc.PriceCart([]entity.CartItem{{ProductID: "p-1", Price: 2, Quantity: 3}}, nil)

	assert.Equal(t, 6.00, totals.Subtotal)
	assert.Equal(t, 3, totals.ItemCount)
}
