package impl

import (
	"context"
	"log/slog"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/lifecycle"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/errors"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// OrderParams defines the parameters required for the order use case.
type OrderParams struct {
	fx.In

	Orders    repository.OrderRepository
	Drafts    repository.DraftRepository
	Formatter service.ReceiptFormatter
	Printer   service.PrinterService
	Logger    *slog.Logger
}

type orderService struct {
	orders    repository.OrderRepository
	drafts    repository.DraftRepository
	formatter service.ReceiptFormatter
	printer   service.PrinterService
	logger    *slog.Logger
}

// NewOrderService creates the order use case.
func NewOrderService(params OrderParams) usecase.OrderUsecase {
	return &orderService{
		orders:    params.Orders,
		drafts:    params.Drafts,
		formatter: params.Formatter,
		printer:   params.Printer,
		logger:    params.Logger,
	}
}

// Finalize turns a summary-step draft into a committed order. The total is
// frozen here: subtotal plus the delivery fee when the order leaves the
// counter. The draft is retired and the ticket printed after the commit, so a
// printer outage can never lose an order.
func (s *orderService) Finalize(ctx context.Context, draftID uuid.UUID) (*entity.Order, error) {
	draft, err := s.drafts.FindDraftByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound.WithDetails(draftID.String())
		}

		return nil, err
	}

	if draft.Step != entity.StepSummary {
		return nil, domainerrors.ErrNotAtSummary
	}
	if len(draft.Cart) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if err := draft.Customer.Validate(); err != nil {
		return nil, err
	}

	// The order keeps the draft's id.
	order := &entity.Order{
		ID:        draft.ID,
		Customer:  draft.Customer,
		Items:     draft.Cart,
		Total:     draft.Subtotal().Add(draft.Customer.EffectiveDeliveryFee()),
		CreatedAt: time.Now(),
		Status:    entity.OrderStatusPending,
	}

	if err := s.orders.PrependOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := s.drafts.DeleteDraft(ctx, draftID); err != nil {
		// The order is already committed; a stale draft is only noise.
		s.logger.Warn("finalized draft not deleted",
			slog.String("draft", draftID.String()), slog.Any("error", err))
	}

	go s.printAsync(order)

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.findOrder(ctx, id)
}

func (s *orderService) Receipt(ctx context.Context, id uuid.UUID) (*service.ReceiptDocument, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.formatter.Format(order)
}

func (s *orderService) Print(ctx context.Context, id uuid.UUID) error {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.printer.PrintOrder(ctx, order); err != nil {
		return domainerrors.ErrPrintFailed.WithDetails(err.Error())
	}

	return nil
}

// Reopen deletes a past order and seeds a new draft with its customer and
// items so the counter can edit it and finalize again. The draft starts at
// the menu step; prices on the copied lines are kept as they were sold.
func (s *orderService) Reopen(ctx context.Context, orderID uuid.UUID) (*entity.OrderDraft, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID.String())
		}

		return nil, err
	}

	draft := entity.NewOrderDraft()
	draft.Customer = order.Customer
	draft.Cart = order.Items
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *orderService) printAsync(order *entity.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.printer.PrintOrder(ctx, order); err != nil {
		s.logger.Error("ticket not printed",
			slog.String("order", order.ShortID()), slog.Any("error", err))
	}
}

func (s *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(id.String())
		}

		return nil, err
	}

	return order, nil
}
