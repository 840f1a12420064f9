package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/application/dto"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockActiveOrdersCache struct{ mock.Mock }

func (m *MockActiveOrdersCache) Get(_ context.Context, _ string) ([]dto.OrderDTO, bool, error) {
	return nil, false, errors.New("not implemented in mock")
}

func (m *MockActiveOrdersCache) Put(_ context.Context, _ string, _ []dto.OrderDTO, _ time.Duration) error {
	return errors.New("not implemented in mock")
}

func (m *MockActiveOrdersCache) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockActiveOrdersCache) Remember(_ context.Context, _ string, _ time.Duration,
	_ func(ctx context.Context) ([]dto.OrderDTO, error)) ([]dto.OrderDTO, error) {
	return nil, errors.New("not implemented in mock")
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// assignIdentity mimics what the real repository does on insert.
func assignIdentity(t *testing.T, value int64) func(mock.Arguments) {
	t.Helper()
	return func(args mock.Arguments) {
		id, err := kernel.NewOrderID(value)
		require.NoError(t, err)
		require.NoError(t, args.Get(1).(*order.Order).AssignID(id))
	}
}

func newOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand("Jessika", []commands.ItemInput{
		{Description: "Lomo saltado", Quantity: 1, UnitPrice: 60.00},
		{Description: "Inka Kola", Quantity: 2, UnitPrice: 10.00},
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(assignIdentity(t, 7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockActiveOrdersCache)
	cache.On("Forget", ctx, ports.ActiveOrdersCacheKey).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, snapshot.ID)
	assert.Equal(t, int64(7), *snapshot.ID)
	assert.Equal(t, "Jessika", snapshot.ClientName)
	assert.Equal(t, "initiated", snapshot.Status)
	assert.InDelta(t, 80.00, snapshot.TotalAmount, 0.001)
	assert.Len(t, snapshot.Items, 2)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	cache := new(MockActiveOrdersCache)
	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newOrderCommand(t)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	cache := new(MockActiveOrdersCache)
	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cache.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockActiveOrdersCache)
	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	cache.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(assignIdentity(t, 7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockActiveOrdersCache)
	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cache.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CacheForgetFailureIsNonFatal(t *testing.T) {
	ctx := t.Context()
	cmd := newOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(assignIdentity(t, 7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockActiveOrdersCache)
	cache.On("Forget", ctx, ports.ActiveOrdersCacheKey).
		Return(errors.New("cache unavailable")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, cache, noopLogger())
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, snapshot.ID)
	cache.AssertExpectations(t)
}
