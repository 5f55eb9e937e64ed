package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"toolbase/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func withInsert(fn func(context.Context, models.Purchase) (*mongo.InsertOneResult, error)) func() {
	orig := InsertPurchase
	InsertPurchase = fn
	return func() { InsertPurchase = orig }
}

func TestCreatePurchaseRejectsBadBody(t *testing.T) {
	for _, body := range []string{
		"not json",
		`{}`,
		`{"toolid":"t1"}`,
		`{"email":"buyer@example.com"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(body))

		CreatePurchase(rec, req, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestCreatePurchaseSuccess(t *testing.T) {
	var inserted models.Purchase
	defer withInsert(func(ctx context.Context, p models.Purchase) (*mongo.InsertOneResult, error) {
		inserted = p
		return &mongo.InsertOneResult{InsertedID: "oid"}, nil
	})()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase",
		strings.NewReader(`{"toolid":"t1","email":"buyer@example.com","quantity":2,"paid":true}`))

	CreatePurchase(rec, req, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"acknowledged":true`)
	assert.Equal(t, "t1", inserted.ToolID)
	assert.Equal(t, "buyer@example.com", inserted.Email)
	assert.NotEmpty(t, inserted.PurchaseID)
	// client cannot pre-mark a purchase paid
	assert.False(t, inserted.Paid)
}

func TestCreatePurchaseDuplicateIsNotAcknowledged(t *testing.T) {
	calls := 0
	defer withInsert(func(ctx context.Context, p models.Purchase) (*mongo.InsertOneResult, error) {
		calls++
		// what the driver surfaces when the unique (toolid, email) index rejects
		return nil, mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
	})()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase",
		strings.NewReader(`{"toolid":"t1","email":"buyer@example.com"}`))

	CreatePurchase(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":false}`, rec.Body.String())
	assert.Equal(t, 1, calls, "a duplicate must not trigger another insert")
}

func TestMarkPaidRequiresTransactionID(t *testing.T) {
	for _, body := range []string{"not json", `{}`, `{"transactionId":""}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/order/p1", strings.NewReader(body))
		ps := httprouter.Params{{Key: "id", Value: "p1"}}

		MarkPaid(rec, req, ps)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}
