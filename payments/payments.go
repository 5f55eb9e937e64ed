package payments

import (
	"encoding/json"
	"math"
	"net/http"
	"os"
	"sync"

	"toolbase/logx"
	"toolbase/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"go.uber.org/zap"
)

var keyOnce sync.Once

// ensureKey defers the env read until the first request, well past .env load.
func ensureKey() {
	keyOnce.Do(func() {
		stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	})
}

// ToMinorUnits converts a decimal subtotal to integer minor-currency units,
// e.g. 10.00 -> 1000.
func ToMinorUnits(subtotal float64) int64 {
	return int64(math.Round(subtotal * 100))
}

func currency() string {
	if c := os.Getenv("PAYMENT_CURRENCY"); c != "" {
		return c
	}
	return "usd"
}

// POST /create-payment-intent
func CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ensureKey()

	var body struct {
		Subtotal float64 `json:"subtotal"`
		Price    float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	subtotal := body.Subtotal
	if subtotal == 0 {
		subtotal = body.Price
	}
	if subtotal <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Subtotal must be greater than zero")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(subtotal)),
		Currency:           stripe.String(currency()),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		logx.Error("create payment intent", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": pi.ClientSecret})
}
