package users

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"toolbase/db"
	"toolbase/logx"
	"toolbase/middleware"
	"toolbase/models"
	"toolbase/rdx"
	"toolbase/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PUT /user/:email
// Upserts the user document and hands back a signed token, so the client
// gets a credential on both first sign-in and profile refresh.
func UpsertUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		body = map[string]interface{}{}
	}
	delete(body, "email")
	delete(body, "role") // role is only granted through the admin route
	body["updated_at"] = time.Now()

	update := bson.M{
		"$set":         body,
		"$setOnInsert": bson.M{"email": email, "created_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)

	result, err := db.UserCollection.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		logx.Error("upsert user", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upsert user")
		return
	}

	token, err := middleware.CreateToken(email, middleware.TokenTTL())
	if err != nil {
		logx.Error("sign token", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"acknowledged": true,
		"upsertedId":   result.UpsertedID,
		"token":        token,
	})
}

// GET /users
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{})
	if err != nil {
		logx.Error("list users", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GET /user/:email and GET /myProfile/:email
func GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logx.Error("get profile", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// PUT /myProfile/:email
func UpdateProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile data")
		return
	}
	delete(body, "email")
	delete(body, "role")
	body["updated_at"] = time.Now()

	opts := options.Update().SetUpsert(true)
	_, err := db.UserCollection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set":         body,
		"$setOnInsert": bson.M{"email": email, "created_at": time.Now()},
	}, opts)
	if err != nil {
		logx.Error("update profile", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true})
}

// PUT /user/:email/admin
// Gated by Authenticate + RequireAdmin: only a caller whose own stored role
// is "admin" reaches this handler.
func GrantAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	result, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": "admin", "updated_at": time.Now()}},
	)
	if err != nil {
		logx.Error("grant admin", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to grant admin role")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	rdx.Del("role:" + email)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true})
}

// GET /admin/:email
func CheckAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		logx.Error("check admin", zap.String("email", email), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check role")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"admin": user.IsAdmin()})
}
