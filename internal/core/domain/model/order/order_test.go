package order_test

import (
	"math"
	"testing"

	"creational/internal/core/domain/model/kernel"
	"creational/internal/core/domain/model/order"
	"creational/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, name string, price float64) order.Product {
	t.Helper()
	p, err := order.NewProduct(name, price)
	require.NoError(t, err)
	return p
}

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	o.AddProduct(mustProduct(t, "A", 10.0))
	o.AddProduct(mustProduct(t, "B", 15.0))
	require.NoError(t, o.SetDeliveryCost(5.0))
	require.NoError(t, o.SetDiscount(2.0))
	return o
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid parameters", func(t *testing.T) {
		p, err := order.NewProduct("Product 1", 10.0)

		require.NoError(t, err)
		assert.Equal(t, "Product 1", p.Name())
		assert.InDelta(t, 10.0, p.Price(), 0)
		assert.Equal(t, "Product 1: $10.0", p.String())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		p, err := order.NewProduct("Free sample", 0)

		require.NoError(t, err)
		assert.Equal(t, "Free sample: $0.0", p.String())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewProduct("", 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative or non-finite price", func(t *testing.T) {
		for _, price := range []float64{-0.01, math.NaN(), math.Inf(1)} {
			_, err := order.NewProduct("X", price)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewProduct("", -1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_Clone(t *testing.T) {
	p := mustProduct(t, "A", 12.5)

	c := p.Clone()

	assert.Equal(t, p, c)
	assert.Equal(t, "A: $12.5", c.String())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create empty order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Empty(t, o.Products())
		assert.Zero(t, o.DeliveryCost())
		assert.Zero(t, o.Discount())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var id kernel.UUID

		o, err := order.NewOrder(id)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Setters(t *testing.T) {
	o := sampleOrder(t)

	t.Run("should reject negative delivery cost and keep previous value", func(t *testing.T) {
		err := o.SetDeliveryCost(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.InDelta(t, 5.0, o.DeliveryCost(), 0)
	})

	t.Run("should reject NaN discount and keep previous value", func(t *testing.T) {
		err := o.SetDiscount(math.NaN())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.InDelta(t, 2.0, o.Discount(), 0)
	})

	t.Run("should compute total", func(t *testing.T) {
		assert.InDelta(t, 28.0, o.Total(), 1e-9)
	})
}

func TestOrder_Products_ReturnsCopy(t *testing.T) {
	o := sampleOrder(t)

	products := o.Products()
	products[0] = mustProduct(t, "Z", 99)

	assert.Equal(t, "A", o.Products()[0].Name())
}

func TestOrder_Clone(t *testing.T) {
	t.Run("should leave original untouched when clone discount changes", func(t *testing.T) {
		original := sampleOrder(t)

		cloned, err := original.Clone()
		require.NoError(t, err)
		require.NoError(t, cloned.SetDiscount(3.0))

		assert.InDelta(t, 2.0, original.Discount(), 0)
		assert.InDelta(t, 3.0, cloned.Discount(), 0)
		require.Len(t, original.Products(), 2)
		assert.Equal(t, "A: $10.0", original.Products()[0].String())
		assert.Equal(t, "B: $15.0", original.Products()[1].String())
	})

	t.Run("should not share product storage", func(t *testing.T) {
		original := sampleOrder(t)

		cloned, err := original.Clone()
		require.NoError(t, err)
		cloned.AddProduct(mustProduct(t, "C", 1))
		original.AddProduct(mustProduct(t, "D", 2))

		assert.Equal(t, []string{"A", "B", "D"}, names(original.Products()))
		assert.Equal(t, []string{"A", "B", "C"}, names(cloned.Products()))
	})

	t.Run("should copy scalars and assign a fresh identifier", func(t *testing.T) {
		original := sampleOrder(t)

		cloned, err := original.Clone()

		require.NoError(t, err)
		require.NoError(t, cloned.Validate())
		assert.False(t, cloned.ID().IsEqual(original.ID()))
		assert.InDelta(t, original.DeliveryCost(), cloned.DeliveryCost(), 0)
		assert.InDelta(t, original.Discount(), cloned.Discount(), 0)
		assert.Equal(t, original.String(), cloned.String())
	})

	t.Run("should clone empty order", func(t *testing.T) {
		original, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, original.SetDeliveryCost(4))
		require.NoError(t, original.SetDiscount(1))

		cloned, err := original.Clone()

		require.NoError(t, err)
		assert.Empty(t, cloned.Products())
		assert.InDelta(t, 4.0, cloned.DeliveryCost(), 0)
		assert.InDelta(t, 1.0, cloned.Discount(), 0)
	})

	t.Run("should fail with CopyFailedError for unconstructed order", func(t *testing.T) {
		var zero order.Order

		cloned, err := zero.Clone()

		assert.Nil(t, cloned)
		require.ErrorIs(t, err, errs.ErrCopyFailed)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Snapshot(t *testing.T) {
	t.Run("should keep identifier and deep copy products", func(t *testing.T) {
		original := sampleOrder(t)

		snap, err := original.Snapshot()
		require.NoError(t, err)
		snap.AddProduct(mustProduct(t, "C", 1))

		assert.True(t, snap.ID().IsEqual(original.ID()))
		assert.Len(t, original.Products(), 2)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		_, err := o.Snapshot()

		require.ErrorIs(t, err, errs.ErrCopyFailed)
	})
}

func TestOrder_String(t *testing.T) {
	o := sampleOrder(t)

	assert.Equal(t, "Order:\n[A: $10.0, B: $15.0]\nDelivery Cost: $5.0\nDiscount: $2.0", o.String())
}

func TestValidateAmount(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		require.NoError(t, order.ValidateAmount("price", 0))
		require.NoError(t, order.ValidateAmount("price", 10.5))
	})

	t.Run("should reject negative and non-finite amounts", func(t *testing.T) {
		for _, v := range []float64{-0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
			err := order.ValidateAmount("discount", v)

			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, "discount", rangeErr.ParamName)
		}
	})
}

func names(products []order.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name()
	}
	return out
}
