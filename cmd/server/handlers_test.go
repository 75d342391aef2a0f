package main

import (
	"encoding/json"
	"io"
	"net"
	"testing"

	pronunciation "github.com/baditaflorin/go_pronunciation_similarity"
	"github.com/baditaflorin/go_pronunciation_similarity/pkg/prompt"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

func newTestAPI(t *testing.T) *api {
	t.Helper()
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	engine, err := pronunciation.New(pronunciation.WithLogger(logger))
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { engine.Close() })
	return newAPI(engine, prompt.DefaultCatalog(), logger)
}

func do(a *api, method, uri, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}, nil)
	a.requestHandler(ctx)
	return ctx
}

func TestScoreEndpoint(t *testing.T) {
	a := newTestAPI(t)
	ctx := do(a, fasthttp.MethodPost, "/score", `{"target":"Hello world.","spoken":"hello world"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, body %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var resp ScoreResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Score != 100 || resp.Display != "100/100" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.Distance != 0 || resp.NormalizedTarget != "hello world" || resp.NormalizedSpoken != "hello world" {
		t.Errorf("unexpected distance or normalized forms %+v", resp)
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	a := newTestAPI(t)
	ctx := do(a, fasthttp.MethodPost, "/evaluate", `{"target":"The Cat","spoken":"I saw a cat"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, body %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var resp EvaluateResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Score != 36 || resp.TotalWords != 2 || resp.MatchedWords != 1 {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.Words[0].Word != "the" || resp.Words[0].Matched || !resp.Words[1].Matched {
		t.Errorf("unexpected words %+v", resp.Words)
	}
	if resp.HTML != `<span class="miss">the</span> <span class="match">cat</span>` {
		t.Errorf("unexpected html %q", resp.HTML)
	}
}

func TestFeedbackEndpointDuplicates(t *testing.T) {
	a := newTestAPI(t)
	ctx := do(a, fasthttp.MethodPost, "/feedback", `{"target":"cat cat","spoken":"cat"}`)

	var resp FeedbackResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalWords != 2 || resp.MatchedWords != 2 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestRequestValidation(t *testing.T) {
	a := newTestAPI(t)
	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		status int
	}{
		{"Wrong method", fasthttp.MethodGet, "/score", "", fasthttp.StatusMethodNotAllowed},
		{"Bad JSON", fasthttp.MethodPost, "/score", "{", fasthttp.StatusBadRequest},
		{"Blank target", fasthttp.MethodPost, "/evaluate", `{"target":"  ","spoken":"hi"}`, fasthttp.StatusBadRequest},
		{"Unknown path", fasthttp.MethodGet, "/nope", "", fasthttp.StatusNotFound},
		{"Unknown prompt kind", fasthttp.MethodGet, "/prompts?kind=poetry", "", fasthttp.StatusBadRequest},
		{"Prompt wrong method", fasthttp.MethodPost, "/prompts", "", fasthttp.StatusMethodNotAllowed},
		{"Health", fasthttp.MethodGet, "/health", "", fasthttp.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := do(a, tc.method, tc.uri, tc.body)
			if got := ctx.Response.StatusCode(); got != tc.status {
				t.Errorf("status = %d, expected %d (body %s)", got, tc.status, ctx.Response.Body())
			}
		})
	}
}

func TestPromptEndpoint(t *testing.T) {
	a := newTestAPI(t)

	ctx := do(a, fasthttp.MethodGet, "/prompts?kind=tongue-twister", "")
	var resp PromptResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text != "She sells seashells by the seashore." {
		t.Errorf("unexpected prompt %+v", resp)
	}

	ctx = do(a, fasthttp.MethodGet, "/prompts?kind=polish&current=hello+there", "")
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text != "Hello there." || resp.Kind != prompt.Polish {
		t.Errorf("unexpected polished prompt %+v", resp)
	}
}
