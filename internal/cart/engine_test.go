package cart

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/cartworks-backend/pkg/errors"
)

func addInput(productID int64, name string, price float64, quantity int64) AddItemInput {
	p := decimal.NewFromFloat(price)
	return AddItemInput{
		ProductID: &productID,
		Name:      &name,
		UnitPrice: &p,
		Quantity:  &quantity,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestGetEmptyCart(t *testing.T) {
	engine := NewEngine()

	snap := engine.Get()

	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
	assert.Zero(t, snap.ItemCount)
}

func TestAddItemToEmptyCart(t *testing.T) {
	engine := NewEngine()

	snap, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(1), snap.Items[0].ProductID)
	assert.Equal(t, "Milk", snap.Items[0].Name)
	assert.True(t, snap.Items[0].UnitPrice.Equal(decimal.NewFromFloat(2.50)))
	assert.Equal(t, int64(2), snap.Items[0].Quantity)
	assert.Equal(t, "5", snap.Total.String())
	assert.Equal(t, int64(2), snap.ItemCount)
}

func TestAddSecondItemAccumulatesTotals(t *testing.T) {
	engine := NewEngine()

	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	snap, err := engine.AddItem(addInput(2, "Bread", 1.99, 1))
	require.NoError(t, err)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, "6.99", snap.Total.String())
	assert.Equal(t, int64(3), snap.ItemCount)
}

func TestAddSameProductIncrementsQuantityOnly(t *testing.T) {
	engine := NewEngine()

	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	// A repeat add never overwrites name or price.
	snap, err := engine.AddItem(addInput(1, "Whole Milk", 9.99, 3))
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Milk", snap.Items[0].Name)
	assert.True(t, snap.Items[0].UnitPrice.Equal(decimal.NewFromFloat(2.50)))
	assert.Equal(t, int64(5), snap.Items[0].Quantity)
	assert.Equal(t, "12.5", snap.Total.String())
}

func TestAddItemTrimsName(t *testing.T) {
	engine := NewEngine()

	snap, err := engine.AddItem(addInput(1, "  Milk  ", 2.50, 1))
	require.NoError(t, err)

	assert.Equal(t, "Milk", snap.Items[0].Name)
}

func TestAddItemValidationOrder(t *testing.T) {
	name := "Milk"
	blank := "   "
	price := decimal.NewFromFloat(2.50)
	zeroPrice := decimal.Zero
	qty := int64(1)
	zeroQty := int64(0)

	tests := []struct {
		label   string
		input   AddItemInput
		message string
	}{
		{
			label:   "missing product id",
			input:   AddItemInput{Name: &name, UnitPrice: &price, Quantity: &qty},
			message: "productId is required",
		},
		{
			label:   "missing name",
			input:   AddItemInput{ProductID: int64Ptr(1), UnitPrice: &price, Quantity: &qty},
			message: "name is required",
		},
		{
			label:   "blank name",
			input:   AddItemInput{ProductID: int64Ptr(1), Name: &blank, UnitPrice: &price, Quantity: &qty},
			message: "name is required",
		},
		{
			label:   "missing price",
			input:   AddItemInput{ProductID: int64Ptr(1), Name: &name, Quantity: &qty},
			message: "price must be greater than 0",
		},
		{
			label:   "zero price",
			input:   AddItemInput{ProductID: int64Ptr(1), Name: &name, UnitPrice: &zeroPrice, Quantity: &qty},
			message: "price must be greater than 0",
		},
		{
			label:   "missing quantity",
			input:   AddItemInput{ProductID: int64Ptr(1), Name: &name, UnitPrice: &price},
			message: "quantity must be at least 1",
		},
		{
			label:   "zero quantity",
			input:   AddItemInput{ProductID: int64Ptr(1), Name: &name, UnitPrice: &price, Quantity: &zeroQty},
			message: "quantity must be at least 1",
		},
		{
			label:   "first violation wins",
			input:   AddItemInput{UnitPrice: &zeroPrice},
			message: "productId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			engine := NewEngine()
			_, err := engine.AddItem(tt.input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			assert.Equal(t, tt.message, typed.Message())
			assert.Empty(t, engine.Get().Items, "failed add must not mutate the cart")
		})
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)
	_, err = engine.AddItem(addInput(2, "Bread", 1.99, 1))
	require.NoError(t, err)

	snap, err := engine.UpdateItem(1, UpdateItemInput{Quantity: int64Ptr(4)})
	require.NoError(t, err)

	assert.Equal(t, int64(4), snap.Items[0].Quantity)
	assert.Equal(t, "11.99", snap.Total.String())
}

func TestUpdateItemPriceOnly(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	snap, err := engine.UpdateItem(1, UpdateItemInput{Price: decimalPtr(3.25)})
	require.NoError(t, err)

	assert.True(t, snap.Items[0].UnitPrice.Equal(decimal.NewFromFloat(3.25)))
	assert.Equal(t, int64(2), snap.Items[0].Quantity, "quantity must be untouched")
	assert.Equal(t, "6.5", snap.Total.String())
}

func TestUpdateItemValidation(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	_, err = engine.UpdateItem(1, UpdateItemInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field must be provided")

	_, err = engine.UpdateItem(1, UpdateItemInput{Quantity: int64Ptr(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be at least 1")

	_, err = engine.UpdateItem(1, UpdateItemInput{Price: decimalPtr(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price must be greater than 0")

	before := engine.Get()
	assert.Equal(t, int64(2), before.Items[0].Quantity)
}

func TestUpdateItemNotFoundLeavesCartIntact(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	before := engine.Get()

	_, err = engine.UpdateItem(999, UpdateItemInput{Quantity: int64Ptr(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item with productId 999 not found")

	after := engine.Get()
	assert.Equal(t, before.Items, after.Items)
	assert.True(t, before.Total.Equal(after.Total))
}

func TestRemoveItemKeepsRelativeOrder(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 4))
	require.NoError(t, err)
	_, err = engine.AddItem(addInput(2, "Bread", 1.99, 1))
	require.NoError(t, err)
	_, err = engine.AddItem(addInput(3, "Eggs", 4.10, 1))
	require.NoError(t, err)

	snap, err := engine.RemoveItem(2)
	require.NoError(t, err)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, int64(1), snap.Items[0].ProductID)
	assert.Equal(t, int64(3), snap.Items[1].ProductID)
	assert.Equal(t, "14.1", snap.Total.String())
	assert.Equal(t, int64(5), snap.ItemCount)
}

func TestRemoveItemNotFound(t *testing.T) {
	engine := NewEngine()

	_, err := engine.RemoveItem(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item with productId 42 not found")
}

func TestClearIsIdempotent(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	snap := engine.Clear()
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
	assert.Zero(t, snap.ItemCount)

	snap = engine.Clear()
	assert.Empty(t, snap.Items)
}

func TestCheckoutEmptiesCart(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 4))
	require.NoError(t, err)

	before := time.Now().UTC()
	summary, err := engine.Checkout()
	require.NoError(t, err)

	assert.Equal(t, "10", summary.Total.String())
	assert.Equal(t, int64(4), summary.ItemCount)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(1), summary.Items[0].ProductID)

	assert.Regexp(t, regexp.MustCompile(`^ord-\d+-[0-9a-f]{8}$`), summary.OrderID)
	assert.False(t, summary.CheckoutTime.Before(before))
	assert.Equal(t, time.UTC, summary.CheckoutTime.Location())

	assert.Empty(t, engine.Get().Items, "cart must be empty after checkout")
}

func TestCheckoutGeneratesUniqueOrderIDs(t *testing.T) {
	engine := NewEngine()
	seen := map[string]bool{}

	for i := 0; i < 20; i++ {
		_, err := engine.AddItem(addInput(1, "Milk", 2.50, 1))
		require.NoError(t, err)
		summary, err := engine.Checkout()
		require.NoError(t, err)
		assert.False(t, seen[summary.OrderID], "duplicate order id %s", summary.OrderID)
		seen[summary.OrderID] = true
	}
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Checkout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot checkout with an empty cart")
	assert.Empty(t, engine.Get().Items)
}

func TestTotalAvoidsFloatDrift(t *testing.T) {
	engine := NewEngine()

	// 0.1 * 3 drifts under float64 arithmetic; decimals keep it exact.
	_, err := engine.AddItem(addInput(1, "Gum", 0.10, 3))
	require.NoError(t, err)

	snap := engine.Get()
	assert.Equal(t, "0.3", snap.Total.String())
}

func TestTotalRoundsHalfUp(t *testing.T) {
	engine := NewEngine()

	_, err := engine.AddItem(addInput(1, "Sticker", 0.335, 1))
	require.NoError(t, err)

	snap := engine.Get()
	assert.Equal(t, "0.34", snap.Total.String())
}

func TestSnapshotIsACopy(t *testing.T) {
	engine := NewEngine()
	_, err := engine.AddItem(addInput(1, "Milk", 2.50, 2))
	require.NoError(t, err)

	snap := engine.Get()
	snap.Items[0].Quantity = 99

	assert.Equal(t, int64(2), engine.Get().Items[0].Quantity)
}
