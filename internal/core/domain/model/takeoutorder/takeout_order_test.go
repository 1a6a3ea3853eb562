package takeoutorder_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) takeoutorder.TakeoutOrder {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.MustNewPriceFromInt(16000), 2)
	require.NoError(t, err)
	o, err := takeoutorder.NewTakeoutOrder(kernel.NewUUID(), order.Takeout, []order.LineItem{item}, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewTakeoutOrder(t *testing.T) {
	t.Run("should create waiting order", func(t *testing.T) {
		o := newOrder(t)

		assert.Equal(t, takeoutorder.Waiting, o.Status())
		assert.Equal(t, order.Takeout, o.Type())
		assert.False(t, o.OrderDateTime().IsZero())
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("should require line items", func(t *testing.T) {
		_, err := takeoutorder.NewTakeoutOrder(kernel.NewUUID(), order.Takeout, []order.LineItem{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require order type", func(t *testing.T) {
		item, _ := order.NewLineItem(kernel.NewUUID(), kernel.MustNewPriceFromInt(16000), 2)
		_, err := takeoutorder.NewTakeoutOrder(kernel.NewUUID(), order.UnknownType, []order.LineItem{item}, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: order type")
	})
}

func TestTakeoutOrder_Transitions(t *testing.T) {
	t.Run("follows waiting, accepted, served, completed", func(t *testing.T) {
		o := newOrder(t)

		o, err := o.Accept()
		require.NoError(t, err)
		o, err = o.Serve()
		require.NoError(t, err)
		o, err = o.Complete()
		require.NoError(t, err)

		assert.Equal(t, takeoutorder.Completed, o.Status())
	})

	t.Run("rejects out of order transitions", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.Serve()
		assert.True(t, errs.IsStateConflict(err))
		_, err = o.Complete()
		assert.True(t, errs.IsStateConflict(err))

		accepted, err := o.Accept()
		require.NoError(t, err)
		_, err = accepted.Accept()
		assert.True(t, errs.IsStateConflict(err))
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, takeoutorder.Served.Validate())
	require.Error(t, takeoutorder.Unknown.Validate())
	assert.Equal(t, "UNKNOWN", takeoutorder.Status(12).String())
}
