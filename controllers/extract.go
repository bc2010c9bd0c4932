package controllers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yevv0ne/placepick/infrastructures/common"
	"github.com/yevv0ne/placepick/infrastructures/keywords"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/infrastructures/ocr"
)

type extractReply struct {
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
}

// HandleExtract scrapes a page URL into plain text plus the hashtags
// found in it.
func HandleExtract(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		log.Errorf("read extract request met error: %s", err.Error())
		replyWithError(ctx, common.ReadRequestErr, err.Error())
		return
	}

	req := &struct {
		URL string `json:"url"`
	}{}
	if err := json.Unmarshal(body, req); err != nil {
		replyWithError(ctx, common.UnmarshalErr, err.Error())
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		replyWithError(ctx, common.InputParamErr, "url is required")
		return
	}

	text, err := deps.Scraper.FetchText(req.URL)
	if err != nil {
		log.Warnf("scrape %s met error: %s", req.URL, err.Error())
		replyWithError(ctx, common.ScrapeErr, err.Error())
		return
	}

	ctx.JSON(200, extractReply{Text: text, Hashtags: hashtagsIn(text)})
}

// HandleExtractImage runs OCR over a base64 image and returns the
// recognized text plus hashtags. A text field bypasses OCR so callers
// can reuse the endpoint for already-recognized payloads.
func HandleExtractImage(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		log.Errorf("read extract-image request met error: %s", err.Error())
		replyWithError(ctx, common.ReadRequestErr, err.Error())
		return
	}

	req := &struct {
		Image    string `json:"image"`
		MimeType string `json:"mimeType"`
		Text     string `json:"text"`
	}{}
	if err := json.Unmarshal(body, req); err != nil {
		replyWithError(ctx, common.UnmarshalErr, err.Error())
		return
	}

	text := req.Text
	if text == "" {
		if req.Image == "" {
			replyWithError(ctx, common.InputParamErr, "image or text is required")
			return
		}
		if deps.OCR == nil {
			replyWithError(ctx, common.OCRUpstreamErr, "image extraction is not enabled")
			return
		}
		raw, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			replyWithError(ctx, common.InputParamErr, "image is not valid base64")
			return
		}
		text, err = deps.OCR.ParseImage(ctx.Request.Context(), raw, req.MimeType)
		if err != nil {
			if errors.Is(err, ocr.ErrImageTooLarge) {
				replyWithError(ctx, common.InputParamErr, err.Error())
				return
			}
			log.Warnf("ocr met error: %s", err.Error())
			replyWithError(ctx, common.OCRUpstreamErr, err.Error())
			return
		}
	}

	ctx.JSON(200, extractReply{Text: text, Hashtags: hashtagsIn(text)})
}

func hashtagsIn(text string) []string {
	tags := []string{}
	for _, c := range keywords.ExtractCandidates(text) {
		if c.Provenance == keywords.ProvenanceHashtag {
			tags = append(tags, c.Text)
		}
	}
	return tags
}
