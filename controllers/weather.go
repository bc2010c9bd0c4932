package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/log"
)

// HandleWeather proxies the current-conditions lookup. Location is a
// city name or a lat,lon pair; the client falls back to Seoul when the
// requested location fails.
func HandleWeather(ctx *gin.Context) {
	location := strings.TrimSpace(ctx.Query("city"))
	if location == "" {
		lat := strings.TrimSpace(ctx.Query("lat"))
		lon := strings.TrimSpace(ctx.Query("lon"))
		if lat != "" && lon != "" {
			location = lat + "," + lon
		}
	}
	if location == "" {
		replyWithError(ctx, common.InputParamErr, "city or lat/lon is required")
		return
	}
	if deps.Weather == nil {
		replyWithError(ctx, common.WeatherErr, "weather lookup is not enabled")
		return
	}

	current, err := deps.Weather.CurrentWeather(ctx.Request.Context(), location)
	if err != nil {
		log.Warnf("weather %q met error: %s", location, err.Error())
		replyWithError(ctx, common.WeatherErr, err.Error())
		return
	}

	ctx.JSON(200, gin.H{"fallback": current.Fallback, "weather": current})
}
