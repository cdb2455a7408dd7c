package commands_test

import (
	"context"
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/dispute"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/registration"
	"courierhub/internal/core/domain/model/shop"
	"courierhub/internal/core/domain/model/zone"
	"courierhub/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByShop(ctx context.Context, shopID uuid.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstUnassignedSpecial(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateInStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) SetRating(ctx context.Context, orderID uuid.UUID, rating int, feedback string) error {
	args := m.Called(ctx, orderID, rating, feedback)
	return args.Error(0)
}

func (m *MockOrderRepository) ListAutoConfirmable(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id uuid.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) AcquireSlot(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourierRepository) ReleaseSlot(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id uuid.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetByOrder(ctx context.Context, orderID uuid.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package; each test
// wires only the repository accessors its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderAssigned(ctx context.Context, o *order.Order, courierName string) {
	m.Called(ctx, o, courierName)
}

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockNotifier) OrderDelivered(ctx context.Context, o *order.Order, deliveredAt time.Time) {
	m.Called(ctx, o, deliveredAt)
}

type MockCodeStore struct{ mock.Mock }

func (m *MockCodeStore) Save(ctx context.Context, code *registration.Code, ttl time.Duration) error {
	args := m.Called(ctx, code, ttl)
	return args.Error(0)
}

func (m *MockCodeStore) Redeem(ctx context.Context, value string) (*registration.Code, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Code), args.Error(1)
}

func testDetails() order.Details {
	return order.Details{
		RecipientPhone:   "+79990001122",
		RecipientAddress: "10 Riverside Drive",
		PickupAddress:    "2 Market Square",
	}
}

func newTestOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()

	pricing := order.CalculatePricing(orderType, decimal.NewFromInt(500), decimal.Zero, decimal.Zero)
	o, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), orderType, pricing, testDetails(), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newAcceptedOrder(t *testing.T, courierID uuid.UUID) *order.Order {
	t.Helper()

	o := newTestOrder(t, order.TypeNormal)
	require.NoError(t, o.Assign(courierID, time.Now().UTC()))
	return o
}

func newDeliveredOrder(t *testing.T, courierID uuid.UUID) *order.Order {
	t.Helper()

	o := newAcceptedOrder(t, courierID)
	now := time.Now().UTC()
	require.NoError(t, o.ChangeStatus(order.PickingUp, now))
	require.NoError(t, o.ChangeStatus(order.InProgress, now))
	require.NoError(t, o.ChangeStatus(order.Delivered, now))
	return o
}

func newTestCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(uuid.New(), uuid.New(), "John Doe", 3)
	require.NoError(t, err)
	c.Activate()
	return c
}
