package impl

import (
	"context"

	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/rules"
	"comanda/internal/errors"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DraftParams defines the parameters required for the draft use case.
type DraftParams struct {
	fx.In

	Drafts   repository.DraftRepository
	Catalog  repository.CatalogRepository
	Registry *rules.Registry
}

type draftService struct {
	drafts   repository.DraftRepository
	catalog  repository.CatalogRepository
	registry *rules.Registry
}

// NewDraftService creates the draft use case.
func NewDraftService(params DraftParams) usecase.DraftUsecase {
	return &draftService{
		drafts:   params.Drafts,
		catalog:  params.Catalog,
		registry: params.Registry,
	}
}

func (s *draftService) StartDraft(ctx context.Context) (*entity.OrderDraft, error) {
	draft := entity.NewOrderDraft()
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *draftService) GetDraft(ctx context.Context, id uuid.UUID) (*entity.OrderDraft, error) {
	return s.findDraft(ctx, id)
}

func (s *draftService) ListDrafts(ctx context.Context) ([]*entity.OrderDraft, error) {
	return s.drafts.ListDrafts(ctx)
}

func (s *draftService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if err := s.drafts.DeleteDraft(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return domainerrors.ErrDraftNotFound.WithDetails(id.String())
		}

		return err
	}

	return nil
}

// AddItem prices and appends one cart line. Açaí lines with no packaging pick
// the first packaging option; every other gap is the customer's to fill.
func (s *draftService) AddItem(ctx context.Context, draftID uuid.UUID, input *usecase.AddItemInput) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.FindProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(input.ProductID)
		}

		return nil, err
	}

	choices := input.Choices
	if product.CategoryID == entity.CategoryAcai && choices.Packaging == "" {
		choices.Packaging = rules.AcaiPackaging[0]
	}

	rule := s.registry.For(product.CategoryID)
	if err := rule.Validate(product, &choices); err != nil {
		return nil, err
	}
	if !rule.IsComplete(product, &choices) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customization incomplete for " + product.Name)
	}

	draft.AddItem(entity.CartItem{
		ID:                 product.ID,
		CartID:             uuid.New(),
		Name:               product.Name,
		Price:              s.registry.UnitPrice(product, &choices),
		CategoryID:         product.CategoryID,
		Quantity:           1,
		RemovedIngredients: choices.RemovedIngredients,
		Additions:          choices.Additions,
		Packaging:          choices.Packaging,
		Observation:        choices.Observation,
	})

	return s.save(ctx, draft)
}

// AddManualItem appends a staff-entered line. The price is taken literally
// and the line carries no customization.
func (s *draftService) AddManualItem(ctx context.Context, draftID uuid.UUID, input *usecase.AddManualItemInput) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("manual item needs a name")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("manual item price cannot be negative")
	}

	draft.AddItem(entity.CartItem{
		ID:         "manual-" + uuid.NewString(),
		CartID:     uuid.New(),
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: entity.CategoryManual,
		Quantity:   1,
	})

	return s.save(ctx, draft)
}

func (s *draftService) RemoveItem(ctx context.Context, draftID, cartID uuid.UUID) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if !draft.RemoveItem(cartID) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no cart line " + cartID.String())
	}

	return s.save(ctx, draft)
}

func (s *draftService) UpdateCustomer(ctx context.Context, draftID uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	applyCustomerPatch(&draft.Customer, input)

	return s.save(ctx, draft)
}

func (s *draftService) AdvanceStep(ctx context.Context, draftID uuid.UUID) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.Advance(); err != nil {
		return nil, err
	}

	return s.save(ctx, draft)
}

func (s *draftService) RetreatStep(ctx context.Context, draftID uuid.UUID) (*entity.OrderDraft, error) {
	draft, err := s.findDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.Retreat(); err != nil {
		return nil, err
	}

	return s.save(ctx, draft)
}

func (s *draftService) findDraft(ctx context.Context, id uuid.UUID) (*entity.OrderDraft, error) {
	draft, err := s.drafts.FindDraftByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound.WithDetails(id.String())
		}

		return nil, err
	}

	return draft, nil
}

func (s *draftService) save(ctx context.Context, draft *entity.OrderDraft) (*entity.OrderDraft, error) {
	draft.Touch()
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func applyCustomerPatch(c *entity.CustomerInfo, input *usecase.UpdateCustomerInput) {
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.OrderType != nil {
		c.OrderType = *input.OrderType
	}
	if input.TableNumber != nil {
		c.TableNumber = *input.TableNumber
	}
	if input.Address != nil {
		c.Address = *input.Address
	}
	if input.AddressNumber != nil {
		c.AddressNumber = *input.AddressNumber
	}
	if input.Reference != nil {
		c.Reference = *input.Reference
	}
	if input.DeliveryFee != nil {
		c.DeliveryFee = *input.DeliveryFee
	}
	if input.PaymentMethod != nil {
		c.PaymentMethod = *input.PaymentMethod
	}
	if input.Observation != nil {
		c.Observation = *input.Observation
	}
	if input.UsePaidStamp != nil {
		c.UsePaidStamp = *input.UsePaidStamp
	}
}
