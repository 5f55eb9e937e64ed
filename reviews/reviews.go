package reviews

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// GET /reviews
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})

	reviews, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{}, opts)
	if err != nil {
		logx.Error("list reviews", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviews)
}

// POST /review
// Reviews are append-only: never edited or deleted.
func AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 || review.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	review.ReviewID = utils.GenerateRandomString(16)
	review.CreatedAt = time.Now()

	result, err := db.ReviewsCollection.InsertOne(ctx, review)
	if err != nil {
		logx.Error("insert review", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"acknowledged": true,
		"insertedId":   result.InsertedID,
		"reviewid":     review.ReviewID,
	})
}
