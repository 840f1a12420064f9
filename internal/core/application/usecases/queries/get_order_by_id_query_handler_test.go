package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderByIDQueryHandler_Handle_Found(t *testing.T) {
	ctx := t.Context()
	repo := &countingOrderRepository{active: []*order.Order{
		activeOrder(t, 7, "Jessika", order.Sent),
	}}
	h := queries.NewGetOrderByIDQueryHandler(repo, testLogger())

	query, err := queries.NewGetOrderByIDQuery(7)
	require.NoError(t, err)

	snapshot, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, snapshot.ID)
	assert.Equal(t, int64(7), *snapshot.ID)
	assert.Equal(t, "Jessika", snapshot.ClientName)
	assert.Equal(t, "sent", snapshot.Status)
	assert.InDelta(t, 20.00, snapshot.TotalAmount, 0.001)
}

func TestGetOrderByIDQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := &countingOrderRepository{}
	h := queries.NewGetOrderByIDQueryHandler(repo, testLogger())

	query, err := queries.NewGetOrderByIDQuery(404)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderByIDQueryHandler_Handle_InvalidQuery(t *testing.T) {
	repo := &countingOrderRepository{}
	h := queries.NewGetOrderByIDQueryHandler(repo, testLogger())

	_, err := h.Handle(t.Context(), queries.GetOrderByIDQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}
