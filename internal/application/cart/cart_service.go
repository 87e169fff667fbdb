package cart

import (
	"context"
	"errors"

	"github.com/univendor/backend/internal/domain/cart"
	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService manages per-user shopping carts. Lines are keyed by
// (user, product, color, size); adding an existing variant merges
// quantities instead of creating a second line.
type CartService struct {
	cartRepo    cart.CartItemRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.CartItemRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart with product details and a running total
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	resp := &CartResponse{
		Items:    make([]LineResponse, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for i := range items {
		line := ToLineResponse(&items[i], byID[items[i].ProductID])
		resp.Items = append(resp.Items, line)
		resp.Subtotal = resp.Subtotal.Add(line.LineTotal)
	}
	return resp, nil
}

// Add puts a product variant into the cart, merging with an existing
// line for the same (product, color, size)
func (s *CartService) Add(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "This product is not available")
	}

	existing, err := s.cartRepo.FindByUserAndVariant(ctx, userID, req.ProductID, req.Color, req.Size)
	switch {
	case err == nil:
		if err := existing.AddQuantity(req.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		item, err := cart.NewCartItem(userID, req.ProductID, req.Quantity, req.Color, req.Size)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.Get(ctx, userID)
}

// UpdateQuantity sets the quantity of a cart line. Zero or less removes
// the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	item, err := s.cartRepo.FindByUserAndVariant(ctx, userID, productID, req.Color, req.Size)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
			return nil, err
		}
		return s.Get(ctx, userID)
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Remove deletes one variant line from the cart
func (s *CartService) Remove(ctx context.Context, userID, productID uuid.UUID, color, size string) (*CartResponse, error) {
	item, err := s.cartRepo.FindByUserAndVariant(ctx, userID, productID, color, size)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear empties the user's cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.DeleteByUser(ctx, userID)
}
