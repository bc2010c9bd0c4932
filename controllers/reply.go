package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/cache"
	"github.com/yevv0ne/placepick/infrastructures/ocr"
	"github.com/yevv0ne/placepick/infrastructures/scrape"
	"github.com/yevv0ne/placepick/infrastructures/weather"
	"github.com/yevv0ne/placepick/models/favorites"
	"github.com/yevv0ne/placepick/models/history"
	"github.com/yevv0ne/placepick/models/place"
)

// Deps carries the collaborators the handlers need. Optional members
// may be nil; the owning handler replies with a service error then.
type Deps struct {
	Engine    *place.Engine
	Searcher  place.Searcher
	Cache     *cache.Cache
	Favorites *favorites.Repo
	History   *history.Publisher
	Weather   *weather.Client
	OCR       *ocr.Client
	Scraper   *scrape.Scraper
}

var deps Deps

// Setup wires the handler collaborators once at startup.
func Setup(d Deps) {
	deps = d
}

func replyWithError(ctx *gin.Context, errCode int, errMsg string) {
	ctx.JSON(200, struct {
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}{
		ErrCode: errCode,
		ErrMsg:  errMsg,
	})
}

func replyWithOK(ctx *gin.Context) {
	ctx.String(200, "success")
}
