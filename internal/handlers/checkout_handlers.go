package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearstore/gearstore-api/internal/checkout"
	"github.com/gearstore/gearstore-api/internal/models"
)

//
// --- Checkout Handlers (Login Required) ---
//

// checkoutState renders the workflow for the client. Tax and total only
// carry the 8% rate from the review step onward.
func checkoutState(wf *checkout.Workflow) gin.H {
	state := gin.H{
		"step":     wf.CurrentStep().String(),
		"errors":   wf.FieldErrors(),
		"subtotal": wf.Subtotal(),
		"tax":      wf.Tax(),
		"total":    wf.Total(),
	}
	if order, ok := wf.Order(); ok {
		state["order"] = order
	}
	return state
}

// StartCheckout is the handler for POST /v1/checkout. It starts a fresh
// workflow at the shipping step, replacing any earlier attempt. The workflow
// gets a live view of the stored cart, not a snapshot, so cart edits made
// between steps carry through to the order.
func (h *Handlers) StartCheckout(c *gin.Context) {
	id := userID(c)
	wf, err := checkout.New(id, &liveCart{h: h, userID: id}, h.Orders)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
		return
	}

	h.setWorkflow(id, wf)
	c.JSON(http.StatusCreated, checkoutState(wf))
}

// GetCheckout is the handler for GET /v1/checkout
func (h *Handlers) GetCheckout(c *gin.Context) {
	wf, ok := h.workflow(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	c.JSON(http.StatusOK, checkoutState(wf))
}

// SubmitShipping is the handler for PUT /v1/checkout/shipping. Fields are
// stored as-is; validation happens when the step is left.
func (h *Handlers) SubmitShipping(c *gin.Context) {
	wf, ok := h.workflow(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}

	var shipping models.ShippingAddress
	if err := c.ShouldBindJSON(&shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wf.SetShipping(shipping)
	c.JSON(http.StatusOK, checkoutState(wf))
}

// SubmitPayment is the handler for PUT /v1/checkout/payment
func (h *Handlers) SubmitPayment(c *gin.Context) {
	wf, ok := h.workflow(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}

	var payment checkout.PaymentDetails
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wf.SetPayment(payment)
	c.JSON(http.StatusOK, checkoutState(wf))
}

// NextStep is the handler for POST /v1/checkout/next. Validation failures
// keep the step and return the field errors; leaving the review step places
// the order and clears the cart.
func (h *Handlers) NextStep(c *gin.Context) {
	wf, ok := h.workflow(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}

	before := wf.CurrentStep()
	step, err := wf.Next(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if step == before && step != checkout.StepConfirmation {
		c.JSON(http.StatusUnprocessableEntity, checkoutState(wf))
		return
	}
	if step == checkout.StepConfirmation && before == checkout.StepReview {
		c.JSON(http.StatusCreated, checkoutState(wf))
		return
	}
	c.JSON(http.StatusOK, checkoutState(wf))
}

// BackStep is the handler for POST /v1/checkout/back. Going back skips
// validation and is only possible from payment and review.
func (h *Handlers) BackStep(c *gin.Context) {
	wf, ok := h.workflow(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	wf.Back()
	c.JSON(http.StatusOK, checkoutState(wf))
}
