package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jeans = Product{VariantID: 1, Name: "Slim Fit Jeans (Black)", UnitPrice: 45.00}
	shirt = Product{VariantID: 2, Name: "Cotton T-Shirt (White)", UnitPrice: 20.00}
)

func TestAddItem_RepeatedAddsIncrementOneLine(t *testing.T) {
	c := New(DefaultTaxRate)

	for i := 0; i < 5; i++ {
		c.AddItem(jeans)
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].VariantID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 45.00, items[0].UnitPrice)
}

func TestAddItem_KeepsPriceSnapshotFromFirstAdd(t *testing.T) {
	c := New(DefaultTaxRate)

	c.AddItem(jeans)
	repriced := jeans
	repriced.UnitPrice = 99.99
	c.AddItem(repriced)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 45.00, items[0].UnitPrice)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := New(DefaultTaxRate)

	c.AddItem(shirt)
	c.AddItem(jeans)
	c.AddItem(shirt)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].VariantID)
	assert.Equal(t, int64(1), items[1].VariantID)
}

func TestSubtotal_RecomputedAfterEveryMutation(t *testing.T) {
	c := New(DefaultTaxRate)

	c.AddItem(jeans)
	c.AddItem(jeans)
	assert.InDelta(t, 90.00, c.Subtotal(), 1e-9)

	c.UpdateQuantity(jeans.VariantID, 3)
	assert.InDelta(t, 135.00, c.Subtotal(), 1e-9)

	c.RemoveItem(jeans.VariantID)
	assert.Zero(t, c.Subtotal())
}

func TestTotals_KnownScenario(t *testing.T) {
	// Two lines: 2 x 45.00 + 1 x 20.00 at 16% tax.
	c := New(0.16)

	c.AddItem(jeans)
	c.AddItem(jeans)
	c.AddItem(shirt)

	assert.InDelta(t, 110.00, c.Subtotal(), 1e-9)
	assert.InDelta(t, 17.60, c.Tax(), 1e-9)
	assert.InDelta(t, 127.60, c.Total(), 1e-9)
}

func TestTax_EqualsSubtotalTimesRate(t *testing.T) {
	c := New(0.16)
	c.AddItem(Product{VariantID: 9, Name: "Wool Sweater", UnitPrice: 100.00})

	assert.InDelta(t, c.Subtotal()*0.16, c.Tax(), 1e-9)
	assert.InDelta(t, c.Subtotal()+c.Tax(), c.Total(), 1e-9)
}

func TestRemoveItem_MissingVariantIsNoOp(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)

	c.RemoveItem(12345)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItem_DeletesRegardlessOfQuantity(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)
	c.AddItem(jeans)
	c.AddItem(jeans)

	c.RemoveItem(jeans.VariantID)

	assert.Empty(t, c.Items())
}

func TestUpdateQuantity_ZeroKeepsLineContributingNothing(t *testing.T) {
	c := New(0.16)
	c.AddItem(jeans)
	c.AddItem(shirt)

	c.UpdateQuantity(jeans.VariantID, 0)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Quantity)
	assert.InDelta(t, 20.00, c.Subtotal(), 1e-9)
}

func TestUpdateQuantity_NegativeClampsToZero(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)

	c.UpdateQuantity(jeans.VariantID, -3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestUpdateQuantity_UnknownVariantIsNoOp(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)

	c.UpdateQuantity(777, 10)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSetCustomer_DoesNotTouchItems(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)

	id := int64(4)
	c.SetCustomer(&CustomerRef{ID: &id, Name: "Juan Perez"})

	require.Len(t, c.Items(), 1)
	ref := c.Customer()
	require.NotNil(t, ref)
	assert.Equal(t, "Juan Perez", ref.Name)
	require.NotNil(t, ref.ID)
	assert.Equal(t, int64(4), *ref.ID)

	c.SetCustomer(nil)
	assert.Nil(t, c.Customer())
	require.Len(t, c.Items(), 1)
}

func TestClear_ResetsItemsAndCustomer(t *testing.T) {
	c := New(DefaultTaxRate)
	c.AddItem(jeans)
	c.SetCustomer(&CustomerRef{Name: "Maria Lopez"})

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Nil(t, c.Customer())
	assert.Zero(t, c.Total())
}

func TestState_IsConsistentSnapshot(t *testing.T) {
	c := New(0.16)
	c.AddItem(jeans)
	c.AddItem(jeans)
	c.AddItem(shirt)

	st := c.State()
	require.Len(t, st.Items, 2)
	assert.InDelta(t, 110.00, st.Subtotal, 1e-9)
	assert.InDelta(t, 17.60, st.Tax, 1e-9)
	assert.InDelta(t, 127.60, st.Total, 1e-9)

	// Mutating the returned slice must not leak into the cart.
	st.Items[0].Quantity = 99
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestStore_SeparateSessionsGetSeparateCarts(t *testing.T) {
	s := NewStore(0.16)

	s.Get("counter-1").AddItem(jeans)
	s.Get("counter-2").AddItem(shirt)

	assert.Len(t, s.Get("counter-1").Items(), 1)
	assert.Equal(t, int64(1), s.Get("counter-1").Items()[0].VariantID)
	assert.Equal(t, int64(2), s.Get("counter-2").Items()[0].VariantID)

	s.Drop("counter-1")
	assert.Empty(t, s.Get("counter-1").Items())
}

func TestNew_FallsBackToDefaultTaxRate(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTaxRate, c.TaxRate())
}
