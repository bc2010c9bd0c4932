package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/log"
)

// HandleSearchPlace proxies a single query to the place-search
// provider, bypassing extraction and scoring.
func HandleSearchPlace(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("query"))
	if query == "" {
		replyWithError(ctx, common.InputParamErr, "query is required")
		return
	}

	records, err := deps.Searcher.Search(ctx.Request.Context(), query)
	if err != nil {
		log.Warnf("search-place %q met error: %s", query, err.Error())
		replyWithError(ctx, common.SearchUpstreamErr, err.Error())
		return
	}

	ctx.JSON(200, gin.H{"query": query, "records": records})
}
