package controllers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/keywords"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/models/place"
)

type locateRequest struct {
	Text     string             `json:"text"`
	Hashtags string             `json:"hashtags"`
	Source   string             `json:"source"`
	Keywords []string           `json:"keywords"`
	Menu     []string           `json:"menu"`
	Boost    map[string]float64 `json:"boost"`
}

type locateReply struct {
	*place.Decision
	ShareToken string `json:"shareToken,omitempty"`
}

// HandleLocate resolves the place a text refers to and stores the
// decision under a share token for later replay.
func HandleLocate(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		log.Errorf("read locate request met error: %s", err.Error())
		replyWithError(ctx, common.ReadRequestErr, err.Error())
		return
	}

	req := &locateRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		log.Errorf("unmarshal locate request met error: %s", err.Error())
		replyWithError(ctx, common.UnmarshalErr, err.Error())
		return
	}

	decision, err := deps.Engine.Locate(ctx.Request.Context(), &place.LocateRequest{
		Text:         req.Text,
		Hashtags:     req.Hashtags,
		Source:       req.Source,
		TextKeywords: req.Keywords,
		MenuHints:    req.Menu,
		SourceBoost:  req.Boost,
	})
	if err != nil {
		if errors.Is(err, keywords.ErrEmptyInput) {
			replyWithError(ctx, common.InputParamErr, "text is required")
			return
		}
		log.Errorf("locate met error: %s", err.Error())
		replyWithError(ctx, common.ResolveErr, err.Error())
		return
	}

	deps.History.Publish(decision, req.Source)

	reply := locateReply{Decision: decision}
	if deps.Cache != nil {
		token, err := deps.Cache.StoreWithToken(decision, config.GetInstance().Resolver.ShareTTLSeconds)
		if err != nil {
			// the decision is still usable without a share token
			log.Warnf("store decision for sharing met error: %s", err.Error())
		} else {
			reply.ShareToken = token
		}
	}

	ctx.JSON(200, reply)
}

// HandleDecision replays a stored decision by its share token.
func HandleDecision(ctx *gin.Context) {
	token := ctx.Param("token")
	if token == "" {
		replyWithError(ctx, common.InputParamErr, "token is required")
		return
	}
	if deps.Cache == nil {
		replyWithError(ctx, common.DecisionNotFound, "decision sharing is not enabled")
		return
	}

	var decision place.Decision
	if err := deps.Cache.FetchWithToken(token, &decision); err != nil {
		replyWithError(ctx, common.DecisionNotFound, "decision not found or expired")
		return
	}

	ctx.JSON(200, &decision)
}
