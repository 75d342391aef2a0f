package main

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	pronunciation "github.com/baditaflorin/go_pronunciation_similarity"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/render"
	"github.com/baditaflorin/go_pronunciation_similarity/pkg/prompt"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Request is the body of /score, /feedback and /evaluate.
type Request struct {
	Target string `json:"target"`
	Spoken string `json:"spoken"`
}

// ScoreResponse is returned by /score.
type ScoreResponse struct {
	Score            int    `json:"score"`
	Display          string `json:"display"`
	Distance         int    `json:"distance"`
	NormalizedTarget string `json:"normalized_target"`
	NormalizedSpoken string `json:"normalized_spoken"`
}

// FeedbackResponse is returned by /feedback.
type FeedbackResponse struct {
	Words        pronunciation.Feedback `json:"words"`
	MatchedWords int                    `json:"matched_words"`
	TotalWords   int                    `json:"total_words"`
	HTML         string                 `json:"html"`
}

// EvaluateResponse is returned by /evaluate.
type EvaluateResponse struct {
	ScoreResponse
	FeedbackResponse
}

// PromptResponse is returned by /prompts.
type PromptResponse struct {
	Kind prompt.Kind `json:"kind"`
	Text string      `json:"text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type api struct {
	engine  *pronunciation.Engine
	catalog *prompt.Catalog
	logger  l.Logger
}

func newAPI(engine *pronunciation.Engine, catalog *prompt.Catalog, logger l.Logger) *api {
	return &api{engine: engine, catalog: catalog, logger: logger}
}

// requestHandler is the main fasthttp request handler
func (a *api) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		a.handleHealthCheck(ctx)
	case "/score":
		a.handleScore(ctx)
	case "/feedback":
		a.handleFeedback(ctx)
	case "/evaluate":
		a.handleEvaluate(ctx)
	case "/prompts":
		a.handlePrompt(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		a.writeJSONError(ctx, "Not found")
	}

	a.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (a *api) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (a *api) handleScore(ctx *fasthttp.RequestCtx) {
	req, ok := a.parseRequest(ctx)
	if !ok {
		return
	}
	res := a.engine.ScoreResult(req.Target, req.Spoken)
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, scoreResponse(res))
}

func (a *api) handleFeedback(ctx *fasthttp.RequestCtx) {
	req, ok := a.parseRequest(ctx)
	if !ok {
		return
	}
	fb := a.engine.WordFeedback(req.Target, req.Spoken)
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, feedbackResponse(fb))
}

func (a *api) handleEvaluate(ctx *fasthttp.RequestCtx) {
	req, ok := a.parseRequest(ctx)
	if !ok {
		return
	}
	ev := a.engine.Evaluate(req.Target, req.Spoken)
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, EvaluateResponse{
		ScoreResponse: scoreResponse(pronunciation.ScoreResult{
			Score:            ev.Score,
			Distance:         ev.Distance,
			NormalizedTarget: ev.NormalizedTarget,
			NormalizedSpoken: ev.NormalizedSpoken,
		}),
		FeedbackResponse: feedbackResponse(ev.Words),
	})
}

func (a *api) handlePrompt(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return
	}

	args := ctx.QueryArgs()
	kindArg := string(args.Peek("kind"))
	if kindArg == "" {
		kindArg = string(prompt.Sentence)
	}
	kind, err := prompt.ParseKind(kindArg)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, err.Error())
		return
	}

	text, err := a.catalog.Suggest(kind, string(args.Peek("current")))
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, prompt.ErrEmptyCatalog) {
			status = fasthttp.StatusNotFound
		}
		ctx.SetStatusCode(status)
		a.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, PromptResponse{Kind: kind, Text: text})
}

// parseRequest validates method and body. A blank target is rejected so the
// engine is never asked to score against nothing.
func (a *api) parseRequest(ctx *fasthttp.RequestCtx) (Request, bool) {
	var req Request
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return req, false
	}

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Invalid request: "+err.Error())
		return req, false
	}

	if strings.TrimSpace(req.Target) == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Target text is required")
		return req, false
	}

	return req, true
}

func scoreResponse(res pronunciation.ScoreResult) ScoreResponse {
	return ScoreResponse{
		Score:            res.Score,
		Display:          render.ScoreText(res.Score),
		Distance:         res.Distance,
		NormalizedTarget: res.NormalizedTarget,
		NormalizedSpoken: res.NormalizedSpoken,
	}
}

func feedbackResponse(fb pronunciation.Feedback) FeedbackResponse {
	return FeedbackResponse{
		Words:        fb,
		MatchedWords: fb.Matched(),
		TotalWords:   len(fb),
		HTML:         render.HTML(fb),
	}
}

// writeJSONResponse writes a JSON response to the context
func (a *api) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON response", "error", err)
		a.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (a *api) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
