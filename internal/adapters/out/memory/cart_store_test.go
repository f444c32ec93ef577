package memory_test

import (
	"testing"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_GetUnknownCustomer_ReturnsEmptyCart(t *testing.T) {
	customerID := kernel.NewUUID()

	c, err := memory.NewCartStore().Get(t.Context(), customerID)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, customerID, c.CustomerID())
}

func TestCartStore_SaveThenGet(t *testing.T) {
	ctx := t.Context()
	store := memory.NewCartStore()
	customerID, vendorID, itemID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	_, err = c.AddItem(vendorID, itemID, 2)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	// later changes to the caller's copy stay local until saved
	_, err = c.AddItem(vendorID, itemID, 5)
	require.NoError(t, err)

	loaded, err := store.Get(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, vendorID, loaded.VendorID())
	assert.Equal(t, []cart.Line{{ItemID: itemID, Quantity: 2}}, loaded.Lines())
}

func TestCartStore_SaveEmptyOrDelete_Forgets(t *testing.T) {
	ctx := t.Context()
	store := memory.NewCartStore()
	customerID := kernel.NewUUID()

	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Delete(ctx, customerID))
	loaded, err := store.Get(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	require.NoError(t, store.Save(ctx, c))
	c.Clear()
	require.NoError(t, store.Save(ctx, c))
	loaded, err = store.Get(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
