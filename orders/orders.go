package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"toolbase/db"
	"toolbase/logx"
	"toolbase/models"
	"toolbase/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// InsertPurchase writes a purchase document. Package variable so tests can
// stub the store away.
var InsertPurchase = func(ctx context.Context, purchase models.Purchase) (*mongo.InsertOneResult, error) {
	return db.PurchaseCollection.InsertOne(ctx, purchase)
}

// POST /purchase
// The unique (toolid, email) index makes the duplicate guard atomic: a second
// purchase for the same pair fails the insert itself instead of racing a
// read-then-write pre-check.
func CreatePurchase(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var purchase models.Purchase
	if err := json.NewDecoder(r.Body).Decode(&purchase); err != nil || purchase.ToolID == "" || purchase.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid purchase data")
		return
	}

	purchase.PurchaseID = utils.GetUUID()
	purchase.Paid = false
	purchase.Shipped = false
	purchase.TransactionID = ""
	purchase.CreatedAt = time.Now()

	result, err := InsertPurchase(ctx, purchase)
	if mongo.IsDuplicateKeyError(err) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": false})
		return
	}
	if err != nil {
		logx.Error("insert purchase", zap.String("toolid", purchase.ToolID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create purchase")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"acknowledged": true,
		"insertedId":   result.InsertedID,
		"purchaseid":   purchase.PurchaseID,
	})
}

// GET /allOrders
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})

	purchases, err := utils.FindAndDecode[models.Purchase](ctx, db.PurchaseCollection, bson.M{}, opts)
	if err != nil {
		logx.Error("list orders", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, purchases)
}

// GET /myOrders?email=
// Gated by Authenticate + RequireSelf, so the email parameter is already
// proven to belong to the caller.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// RequireSelf proved the query email equals the token email
	email := utils.GetEmailFromRequest(r)

	purchases, err := utils.FindAndDecode[models.Purchase](ctx, db.PurchaseCollection, bson.M{"email": email})
	if err != nil {
		logx.Error("list my orders", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, purchases)
}

// GET /myOrder/:id
func GetMyOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var purchase models.Purchase
	err := db.PurchaseCollection.FindOne(ctx, bson.M{"purchaseid": id}).Decode(&purchase)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		logx.Error("get order", zap.String("purchaseid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, purchase)
}

// DELETE /myOrder/:id
func DeleteMyOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	result, err := db.PurchaseCollection.DeleteOne(ctx, bson.M{"purchaseid": id})
	if err != nil {
		logx.Error("delete order", zap.String("purchaseid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"acknowledged": true,
		"deletedCount": result.DeletedCount,
	})
}

// PATCH /order/:id
// Marks a purchase paid and appends a "paid" row to the payment log.
func MarkPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var body struct {
		TransactionID string `json:"transactionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TransactionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing transactionId")
		return
	}

	var purchase models.Purchase
	err := db.PurchaseCollection.FindOne(ctx, bson.M{"purchaseid": id}).Decode(&purchase)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		logx.Error("get order for payment", zap.String("purchaseid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}

	_, err = db.PurchaseCollection.UpdateOne(ctx,
		bson.M{"purchaseid": id},
		bson.M{"$set": bson.M{"paid": true, "transactionId": body.TransactionID}},
	)
	if err != nil {
		logx.Error("mark paid", zap.String("purchaseid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	payment := models.Payment{
		PaymentID:     utils.GetUUID(),
		PurchaseID:    id,
		Email:         purchase.Email,
		Amount:        purchase.Price,
		TransactionID: body.TransactionID,
		Kind:          "paid",
		CreatedAt:     time.Now(),
	}
	if _, err := db.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		// the order is already marked paid; the log row is best effort
		logx.Warn("payment log insert", zap.String("purchaseid", id), zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"acknowledged":  true,
		"transactionId": body.TransactionID,
	})
}

// PATCH /shiftNow/:id
// Marks a purchase shipped and appends a "shipped" row to the payment log.
func MarkShipped(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	result, err := db.PurchaseCollection.UpdateOne(ctx,
		bson.M{"purchaseid": id},
		bson.M{"$set": bson.M{"shipped": true}},
	)
	if err != nil {
		logx.Error("mark shipped", zap.String("purchaseid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	event := models.Payment{
		PaymentID:  utils.GetUUID(),
		PurchaseID: id,
		Kind:       "shipped",
		CreatedAt:  time.Now(),
	}
	if _, err := db.PaymentsCollection.InsertOne(ctx, event); err != nil {
		logx.Warn("shipping log insert", zap.String("purchaseid", id), zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true})
}
