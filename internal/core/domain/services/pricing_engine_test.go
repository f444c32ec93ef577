package services_test

import (
	"testing"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, price string, qty int) order.LineItem {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), "item", m, qty)
	require.NoError(t, err)
	return li
}

func fees(t *testing.T, fee int64, tax bool) catalog.FeeSchedule {
	t.Helper()
	f, err := catalog.NewFeeSchedule(kernel.MustMoney(fee), tax, decimal.Zero)
	require.NoError(t, err)
	return f
}

func TestPricingEngine_Quote(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("cash order without tax", func(t *testing.T) {
		price, err := engine.Quote([]order.LineItem{line(t, "100", 2)}, fees(t, 20, false))

		require.NoError(t, err)
		assert.Equal(t, "200.00", price.Subtotal().String())
		assert.Equal(t, "0.00", price.Tax().String())
		assert.Equal(t, "220.00", price.Total().String())
	})

	t.Run("tax enabled splits evenly", func(t *testing.T) {
		price, err := engine.Quote([]order.LineItem{line(t, "50", 4)}, fees(t, 30, true))

		require.NoError(t, err)
		assert.Equal(t, "200.00", price.Subtotal().String())
		assert.Equal(t, "5.00", price.TaxHalfA().String())
		assert.Equal(t, "5.00", price.TaxHalfB().String())
		assert.Equal(t, "10.00", price.Tax().String())
		assert.Equal(t, "240.00", price.Total().String())
	})

	t.Run("odd minor unit goes to half A", func(t *testing.T) {
		// 0.50 × 5% = 0.025, rounded to 0.03 = 0.02 + 0.01
		price, err := engine.Quote([]order.LineItem{line(t, "0.50", 1)}, fees(t, 0, true))

		require.NoError(t, err)
		assert.Equal(t, "0.03", price.Tax().String())
		assert.Equal(t, "0.02", price.TaxHalfA().String())
		assert.Equal(t, "0.01", price.TaxHalfB().String())
	})

	t.Run("total is always subtotal plus fee plus tax", func(t *testing.T) {
		for _, tc := range []struct {
			lines []order.LineItem
			fees  catalog.FeeSchedule
		}{
			{[]order.LineItem{line(t, "99.99", 3), line(t, "0.01", 7)}, fees(t, 25, true)},
			{[]order.LineItem{line(t, "12.34", 1)}, fees(t, 0, false)},
			{[]order.LineItem{line(t, "333.33", 9)}, fees(t, 49, true)},
		} {
			price, err := engine.Quote(tc.lines, tc.fees)
			require.NoError(t, err)
			assert.True(t, price.Total().IsEqual(price.Subtotal().Add(price.DeliveryFee()).Add(price.Tax())))
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := engine.Quote(nil, fees(t, 20, false))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPricingEngine_QuoteIsImmuneToCatalogEdits(t *testing.T) {
	engine := services.NewPricingEngine()
	item, err := catalog.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Dosa", kernel.MustMoney(100), true)
	require.NoError(t, err)

	li, err := order.NewLineItem(item.ID(), item.Name(), item.Price(), 2)
	require.NoError(t, err)
	price, err := engine.Quote([]order.LineItem{li}, fees(t, 20, false))
	require.NoError(t, err)

	// the vendor raises the price after checkout
	_, err = catalog.NewMenuItem(item.ID(), item.VendorID(), "Dosa", kernel.MustMoney(150), true)
	require.NoError(t, err)

	assert.Equal(t, "220.00", price.Total().String())
	assert.Equal(t, "100.00", li.UnitPrice().String())
}

func TestPricingEngine_Commission(t *testing.T) {
	engine := services.NewPricingEngine()

	c, err := engine.Commission(
		[]kernel.Money{kernel.MustMoney(220), kernel.MustMoney(240), kernel.MustMoney(40)},
		decimal.RequireFromString("0.1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "50.00", c.String())

	zero, err := engine.Commission(nil, decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = engine.Commission(nil, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
