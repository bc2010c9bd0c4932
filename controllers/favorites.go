package controllers

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/models/favorites"
	"github.com/yevv0ne/placepick/models/place"
)

// ownerKeyHeader carries the opaque caller identity for favorites.
// There are no accounts; the key is whatever the caller chooses.
const ownerKeyHeader = "X-Owner-Key"

func ownerKey(ctx *gin.Context) string {
	return strings.TrimSpace(ctx.GetHeader(ownerKeyHeader))
}

// HandleAddFavorite saves a resolved place under the caller's owner
// key. Saving the same place twice refreshes the note.
func HandleAddFavorite(ctx *gin.Context) {
	owner := ownerKey(ctx)
	if owner == "" {
		replyWithError(ctx, common.InputParamErr, ownerKeyHeader+" header is required")
		return
	}
	if deps.Favorites == nil {
		replyWithError(ctx, common.StoreErr, "favorites storage is not enabled")
		return
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		log.Errorf("read favorite request met error: %s", err.Error())
		replyWithError(ctx, common.ReadRequestErr, err.Error())
		return
	}

	req := &struct {
		Record *place.Record `json:"record"`
		Note   string        `json:"note"`
	}{}
	if err := json.Unmarshal(body, req); err != nil {
		replyWithError(ctx, common.UnmarshalErr, err.Error())
		return
	}
	if req.Record == nil || req.Record.Name == "" {
		replyWithError(ctx, common.InputParamErr, "record with a name is required")
		return
	}

	fav := favorites.FromRecord(owner, req.Record, req.Note)
	if err := deps.Favorites.Save(ctx.Request.Context(), &fav); err != nil {
		log.Errorf("save favorite met error: %s", err.Error())
		replyWithError(ctx, common.StoreErr, err.Error())
		return
	}

	ctx.JSON(200, &fav)
}

// HandleListFavorites returns the caller's saved places, newest first.
func HandleListFavorites(ctx *gin.Context) {
	owner := ownerKey(ctx)
	if owner == "" {
		replyWithError(ctx, common.InputParamErr, ownerKeyHeader+" header is required")
		return
	}
	if deps.Favorites == nil {
		replyWithError(ctx, common.StoreErr, "favorites storage is not enabled")
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))
	rows, err := deps.Favorites.ListByOwner(ctx.Request.Context(), owner, limit)
	if err != nil {
		log.Errorf("list favorites met error: %s", err.Error())
		replyWithError(ctx, common.StoreErr, err.Error())
		return
	}

	ctx.JSON(200, gin.H{"favorites": rows})
}

// HandleDeleteFavorite removes one saved place by id.
func HandleDeleteFavorite(ctx *gin.Context) {
	owner := ownerKey(ctx)
	if owner == "" {
		replyWithError(ctx, common.InputParamErr, ownerKeyHeader+" header is required")
		return
	}
	if deps.Favorites == nil {
		replyWithError(ctx, common.StoreErr, "favorites storage is not enabled")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		replyWithError(ctx, common.InputParamErr, "id must be a positive integer")
		return
	}

	removed, err := deps.Favorites.Delete(ctx.Request.Context(), owner, id)
	if err != nil {
		log.Errorf("delete favorite met error: %s", err.Error())
		replyWithError(ctx, common.StoreErr, err.Error())
		return
	}
	if removed == 0 {
		replyWithError(ctx, common.InputParamErr, "favorite not found")
		return
	}

	replyWithOK(ctx)
}
