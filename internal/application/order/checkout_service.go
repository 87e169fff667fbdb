package order

import (
	"context"
	"sort"

	"github.com/univendor/backend/internal/domain/cart"
	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/univendor/backend/internal/domain/order"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into orders. Lines are partitioned by
// owning vendor, one order per vendor, each with its own flat shipping
// charge and tax on the subtotal. Orders and the cart clear are
// committed in a single transaction.
type CheckoutService struct {
	cartRepo       cart.CartItemRepository
	productRepo    catalog.ProductRepository
	orderRepo      order.OrderRepository
	shippingCharge decimal.Decimal
	taxRate        decimal.Decimal
	logger         *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo cart.CartItemRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
	cfg *config.CheckoutConfig,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		shippingCharge: decimal.NewFromFloat(cfg.ShippingFlatRate),
		taxRate:        decimal.NewFromFloat(cfg.TaxRate),
		logger:         logger,
	}
}

// Checkout places one pending order per vendor present in the cart.
// Item prices are snapshotted from the current catalog. The cart is
// empty afterwards; on any failure nothing is persisted.
func (s *CheckoutService) Checkout(ctx context.Context, customerID uuid.UUID, req CheckoutRequest) ([]OrderResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_STATE", "Cart is empty")
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

	// partition cart lines by owning vendor
	byVendor := make(map[uuid.UUID][]order.OrderItem)
	for i := range items {
		line := &items[i]
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, shared.NewDomainError("INVALID_STATE", "A cart item no longer exists in the catalog")
		}

		item, err := order.NewOrderItem(product.ID, product.Name, product.SellingPrice, line.Quantity, line.Color, line.Size)
		if err != nil {
			return nil, err
		}
		byVendor[product.VendorID] = append(byVendor[product.VendorID], item)
	}

	vendorIDs := make([]uuid.UUID, 0, len(byVendor))
	for vendorID := range byVendor {
		vendorIDs = append(vendorIDs, vendorID)
	}
	sort.Slice(vendorIDs, func(i, j int) bool {
		return vendorIDs[i].String() < vendorIDs[j].String()
	})

	shipTo := req.ShipTo.toAddress()
	orders := make([]*order.Order, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		o, err := order.NewOrder(customerID, vendorID, byVendor[vendorID], s.shippingCharge, s.taxRate, shipTo)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := s.orderRepo.PlaceAll(ctx, orders, customerID); err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		zap.String("customer_id", customerID.String()),
		zap.Int("orders", len(orders)))

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, *ToOrderResponse(o))
	}
	return responses, nil
}
