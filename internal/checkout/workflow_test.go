package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearstore/gearstore-api/internal/cart"
	"github.com/gearstore/gearstore-api/internal/models"
)

// fakePlacer records the submitted order and can be told to fail.
type fakePlacer struct {
	placed *models.Order
	err    error
}

func (f *fakePlacer) Place(_ context.Context, userID string, items []models.CartItem, shipping models.ShippingAddress, payment models.PaymentMethod) (models.Order, error) {
	if f.err != nil {
		return models.Order{}, f.err
	}
	var subtotal float64
	snapshots := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		subtotal += it.Subtotal()
		snapshots = append(snapshots, models.OrderItem{ProductID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	order := models.Order{
		ID:              "order-1",
		UserID:          userID,
		Items:           snapshots,
		Subtotal:        subtotal,
		Tax:             subtotal * TaxRate,
		Total:           subtotal * (1 + TaxRate),
		Status:          models.OrderStatusProcessing,
		ShippingAddress: shipping,
		Payment:         payment,
	}
	f.placed = &order
	return order, nil
}

func cartWith(t *testing.T, items ...models.CartItem) *cart.Manager {
	t.Helper()
	m := cart.NewManager(nil, nil)
	for _, it := range items {
		m.Add(context.Background(), it)
	}
	return m
}

func validShipping() models.ShippingAddress {
	return models.ShippingAddress{FirstName: "John", LastName: "Doe", Address: "123 Main St"}
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardNumber:     "4242 4242 4242 4242",
		CardholderName: "John Doe",
		ExpiryDate:     "12/27",
		CVV:            "123",
	}
}

func twoLineCart(t *testing.T) *cart.Manager {
	return cartWith(t,
		models.CartItem{ProductID: "p1", Name: "Case", Price: 29.99, Quantity: 1},
		models.CartItem{ProductID: "p2", Name: "Charger", Price: 19.99, Quantity: 2},
	)
}

func TestNew_EmptyCart(t *testing.T) {
	_, err := New("u1", cart.NewManager(nil, nil), &fakePlacer{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNext_ShippingValidationBlocksAdvance(t *testing.T) {
	wf, err := New("u1", twoLineCart(t), &fakePlacer{})
	require.NoError(t, err)

	wf.SetShipping(models.ShippingAddress{FirstName: "John", LastName: "Doe"})
	step, err := wf.Next(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StepShipping, step)
	assert.Equal(t, "Address is required", wf.FieldErrors()["address"])
	assert.NotContains(t, wf.FieldErrors(), "firstName")
}

func TestNext_WhitespaceOnlyFieldsFail(t *testing.T) {
	wf, err := New("u1", twoLineCart(t), &fakePlacer{})
	require.NoError(t, err)

	wf.SetShipping(models.ShippingAddress{FirstName: "  ", LastName: "\t", Address: " "})
	step, _ := wf.Next(context.Background())

	assert.Equal(t, StepShipping, step)
	assert.Len(t, wf.FieldErrors(), 3)
}

func TestNext_ValidShippingAdvancesAndClearsErrors(t *testing.T) {
	wf, err := New("u1", twoLineCart(t), &fakePlacer{})
	require.NoError(t, err)

	wf.SetShipping(models.ShippingAddress{})
	_, _ = wf.Next(context.Background())
	require.NotEmpty(t, wf.FieldErrors())

	wf.SetShipping(validShipping())
	step, err := wf.Next(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StepPayment, step)
	assert.Empty(t, wf.FieldErrors())
}

func TestNext_PaymentValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*PaymentDetails)
		field   string
		message string
	}{
		{"short card number", func(p *PaymentDetails) { p.CardNumber = "4242 4242" }, "cardNumber", "Valid card number is required"},
		{"empty cardholder", func(p *PaymentDetails) { p.CardholderName = "" }, "cardholderName", "Cardholder name is required"},
		{"bad expiry", func(p *PaymentDetails) { p.ExpiryDate = "2027-12" }, "expiryDate", "Valid expiry date (MM/YY) is required"},
		{"short cvv", func(p *PaymentDetails) { p.CVV = "12" }, "cvv", "Valid CVV is required"},
		{"non-digit cvv", func(p *PaymentDetails) { p.CVV = "12a" }, "cvv", "Valid CVV is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wf, err := New("u1", twoLineCart(t), &fakePlacer{})
			require.NoError(t, err)
			wf.SetShipping(validShipping())
			_, err = wf.Next(context.Background())
			require.NoError(t, err)

			payment := validPayment()
			tc.mutate(&payment)
			wf.SetPayment(payment)
			step, err := wf.Next(context.Background())

			require.NoError(t, err)
			assert.Equal(t, StepPayment, step)
			assert.Equal(t, tc.message, wf.FieldErrors()[tc.field])
		})
	}
}

func TestNext_CardNumberSpacesIgnored(t *testing.T) {
	wf, err := New("u1", twoLineCart(t), &fakePlacer{})
	require.NoError(t, err)
	wf.SetShipping(validShipping())
	_, _ = wf.Next(context.Background())

	wf.SetPayment(validPayment())
	step, err := wf.Next(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StepReview, step)
}

func TestBack_SkipsValidation(t *testing.T) {
	wf, err := New("u1", twoLineCart(t), &fakePlacer{})
	require.NoError(t, err)

	// Back at the first step is a no-op.
	assert.Equal(t, StepShipping, wf.Back())

	wf.SetShipping(validShipping())
	_, _ = wf.Next(context.Background())
	wf.SetPayment(validPayment())
	_, _ = wf.Next(context.Background())
	require.Equal(t, StepReview, wf.CurrentStep())

	assert.Equal(t, StepPayment, wf.Back())
	assert.Equal(t, StepShipping, wf.Back())
	assert.Empty(t, wf.FieldErrors())

	// Forward again works without re-entering anything.
	step, err := wf.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepPayment, step)
}

func TestTax_AppliedFromReviewOnward(t *testing.T) {
	m := twoLineCart(t) // subtotal 69.97
	wf, err := New("u1", m, &fakePlacer{})
	require.NoError(t, err)

	assert.Zero(t, wf.Tax())
	assert.InDelta(t, 69.97, wf.Total(), 1e-9)

	wf.SetShipping(validShipping())
	_, _ = wf.Next(context.Background())
	assert.Zero(t, wf.Tax(), "payment step shows subtotal only")

	wf.SetPayment(validPayment())
	_, _ = wf.Next(context.Background())
	require.Equal(t, StepReview, wf.CurrentStep())
	assert.InDelta(t, 69.97*0.08, wf.Tax(), 1e-9)
	assert.InDelta(t, 69.97*1.08, wf.Total(), 1e-9)
}

func TestNext_ReviewPlacesOrderAndClearsCart(t *testing.T) {
	m := twoLineCart(t)
	placer := &fakePlacer{}
	wf, err := New("u1", m, placer)
	require.NoError(t, err)

	wf.SetShipping(validShipping())
	_, _ = wf.Next(context.Background())
	wf.SetPayment(validPayment())
	_, _ = wf.Next(context.Background())

	step, err := wf.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, step)

	require.NotNil(t, placer.placed)
	assert.Equal(t, "u1", placer.placed.UserID)
	assert.Equal(t, "4242", placer.placed.Payment.LastFour)
	assert.Empty(t, m.Items(), "cart is cleared after the order is placed")

	order, ok := wf.Order()
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	// Totals stay frozen to the order even though the cart is empty.
	assert.InDelta(t, 69.97, wf.Subtotal(), 1e-9)
	assert.InDelta(t, 69.97*1.08, wf.Total(), 1e-9)

	// Confirmation is terminal for both directions.
	step, err = wf.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, step)
	assert.Equal(t, StepConfirmation, wf.Back())
}

func TestNext_PlacerFailureStaysAtReview(t *testing.T) {
	m := twoLineCart(t)
	placer := &fakePlacer{err: errors.New("payment processor unavailable")}
	wf, err := New("u1", m, placer)
	require.NoError(t, err)

	wf.SetShipping(validShipping())
	_, _ = wf.Next(context.Background())
	wf.SetPayment(validPayment())
	_, _ = wf.Next(context.Background())

	step, err := wf.Next(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StepReview, step)
	assert.NotEmpty(t, m.Items(), "cart is untouched when the order fails")
}
