package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"toolbase/db"
	"toolbase/logx"
	"toolbase/models"
	"toolbase/rdx"
	"toolbase/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const catalogCacheKey = "tools:catalog"

// GET /tools
func GetTools(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, ok := rdx.Get(catalogCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	tools, err := utils.FindAndDecode[models.Tool](ctx, db.ToolsCollection, bson.M{})
	if err != nil {
		logx.Error("list tools", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tools")
		return
	}

	if payload, err := json.Marshal(tools); err == nil {
		rdx.Set(catalogCacheKey, string(payload), 1*time.Minute)
	}

	utils.RespondWithJSON(w, http.StatusOK, tools)
}

// GET /tool/:id
func GetTool(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var tool models.Tool
	err := db.ToolsCollection.FindOne(ctx, bson.M{"toolid": id}).Decode(&tool)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Tool not found")
		return
	}
	if err != nil {
		logx.Error("get tool", zap.String("toolid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tool")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tool)
}

// POST /addTool
func AddTool(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var tool models.Tool
	if err := json.NewDecoder(r.Body).Decode(&tool); err != nil || tool.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tool data")
		return
	}

	if tool.ToolID == "" {
		tool.ToolID = utils.GetUUID()
	}

	result, err := db.ToolsCollection.InsertOne(ctx, tool)
	if err != nil {
		logx.Error("insert tool", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add tool")
		return
	}

	rdx.Del(catalogCacheKey)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"acknowledged": true,
		"insertedId":   result.InsertedID,
		"toolid":       tool.ToolID,
	})
}

// DELETE /tool/:id
func DeleteTool(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	result, err := db.ToolsCollection.DeleteOne(ctx, bson.M{"toolid": id})
	if err != nil {
		logx.Error("delete tool", zap.String("toolid", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete tool")
		return
	}

	rdx.Del(catalogCacheKey)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"acknowledged": true,
		"deletedCount": result.DeletedCount,
	})
}
