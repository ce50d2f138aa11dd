// Package checkout implements the linear four-step checkout workflow:
// shipping -> payment -> review -> confirmation. Each forward transition
// validates the step being left; going back never re-validates.
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/gearstore/gearstore-api/internal/models"
)

// Step is one stage of the checkout flow.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// TaxRate is the fixed rate added to the subtotal from the review step
// onward. Shipping and payment steps show the subtotal only.
const TaxRate = 0.08

// ErrEmptyCart is returned when a checkout is started on an empty cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// PaymentDetails are the raw card fields collected at the payment step.
// Only a redacted descriptor survives onto the order.
type PaymentDetails struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

// Cart is the slice of the cart manager the workflow needs.
type Cart interface {
	Items() []models.CartItem
	Total() float64
	Clear(ctx context.Context)
}

// OrderPlacer submits the order at the end of the review step.
type OrderPlacer interface {
	Place(ctx context.Context, userID string, items []models.CartItem, shipping models.ShippingAddress, payment models.PaymentMethod) (models.Order, error)
}

// Workflow is one in-flight checkout. It snapshots nothing from the cart
// until the order is placed, so cart edits mid-checkout are reflected.
type Workflow struct {
	mu          sync.Mutex
	userID      string
	cart        Cart
	placer      OrderPlacer
	step        Step
	shipping    models.ShippingAddress
	payment     PaymentDetails
	fieldErrors map[string]string
	order       *models.Order
}

// New starts a checkout at the shipping step.
func New(userID string, cart Cart, placer OrderPlacer) (*Workflow, error) {
	if len(cart.Items()) == 0 {
		return nil, ErrEmptyCart
	}
	return &Workflow{
		userID:      userID,
		cart:        cart,
		placer:      placer,
		step:        StepShipping,
		fieldErrors: map[string]string{},
	}, nil
}

// SetShipping stores the shipping fields without validating them;
// validation happens when the step is left via Next.
func (w *Workflow) SetShipping(shipping models.ShippingAddress) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shipping = shipping
}

// SetPayment stores the payment fields without validating them.
func (w *Workflow) SetPayment(payment PaymentDetails) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.payment = payment
}

// Next advances one step. When the current step fails validation the
// workflow stays put and FieldErrors names the offending fields. Leaving the
// review step places the order and clears the cart; that transition is not
// reversible. At confirmation Next is a no-op.
func (w *Workflow) Next(ctx context.Context) (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepShipping:
		w.fieldErrors = validateShipping(w.shipping)
		if len(w.fieldErrors) == 0 {
			w.step = StepPayment
		}
	case StepPayment:
		w.fieldErrors = validatePayment(w.payment)
		if len(w.fieldErrors) == 0 {
			w.step = StepReview
		}
	case StepReview:
		order, err := w.placer.Place(ctx, w.userID, w.cart.Items(), w.shipping, RedactCard(w.payment))
		if err != nil {
			return w.step, err
		}
		w.order = &order
		w.cart.Clear(ctx)
		w.step = StepConfirmation
	case StepConfirmation:
		// Terminal; nothing to advance to.
	}
	return w.step, nil
}

// Back moves to the previous step without validating anything. Allowed from
// payment and review only; confirmation is terminal and shipping is first.
func (w *Workflow) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepPayment:
		w.step = StepShipping
	case StepReview:
		w.step = StepPayment
	}
	w.fieldErrors = map[string]string{}
	return w.step
}

// CurrentStep returns the step the workflow is on.
func (w *Workflow) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// FieldErrors returns the validation errors from the last Next call.
func (w *Workflow) FieldErrors() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]string, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		out[k] = v
	}
	return out
}

// Shipping returns the stored shipping fields.
func (w *Workflow) Shipping() models.ShippingAddress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shipping
}

// Order returns the placed order once the workflow reached confirmation.
func (w *Workflow) Order() (models.Order, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.order == nil {
		return models.Order{}, false
	}
	return *w.order, true
}

// Subtotal is the cart total before tax; after the order is placed it is
// frozen to the order's subtotal.
func (w *Workflow) Subtotal() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.order != nil {
		return w.order.Subtotal
	}
	return w.cart.Total()
}

// Tax is zero before the review step; from review onward the fixed rate
// applies.
func (w *Workflow) Tax() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.order != nil {
		return w.order.Tax
	}
	if w.step < StepReview {
		return 0
	}
	return w.cart.Total() * TaxRate
}

// Total is subtotal plus tax.
func (w *Workflow) Total() float64 {
	return w.Subtotal() + w.Tax()
}

func validateShipping(s models.ShippingAddress) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(s.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "Address is required"
	}
	return errs
}

func validatePayment(p PaymentDetails) map[string]string {
	errs := map[string]string{}
	if len(digits(p.CardNumber)) < 16 {
		errs["cardNumber"] = "Valid card number is required"
	}
	if strings.TrimSpace(p.CardholderName) == "" {
		errs["cardholderName"] = "Cardholder name is required"
	}
	if !expiryPattern.MatchString(strings.TrimSpace(p.ExpiryDate)) {
		errs["expiryDate"] = "Valid expiry date (MM/YY) is required"
	}
	cvv := digits(p.CVV)
	if len(cvv) < 3 || cvv != strings.TrimSpace(p.CVV) {
		errs["cvv"] = "Valid CVV is required"
	}
	return errs
}
