// Package ollama talks to a locally running Ollama server. Generation walks
// an ordered list of candidate models and returns the first success; the
// ordering encodes a quality/latency preference, so position one is attempted
// on every call regardless of what worked last time (installed models can
// change between calls).
package ollama

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

const DefaultBaseURL = "http://localhost:11434"

// stopSequences keeps models from appending meta-commentary to a translation.
var stopSequences = []string{"\n\n", "Translation:", "Explanation:", "Note:", "Context:"}

type generateResponse struct {
	Response string `json:"response"`
}

type Client struct {
	baseURL string
	models  []string
	http    *resty.Client
	log     *zap.SugaredLogger
}

// New builds a client over a shared pooled transport. models is the fallback
// chain in preference order; timeout bounds each per-candidate request so an
// unresponsive server cannot stall the whole loop.
func New(baseURL string, models []string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		models:  models,
		http:    resty.New().SetTimeout(timeout),
		log:     log,
	}
}

// Candidates returns the configured model chain in preference order.
func (c *Client) Candidates() []string {
	out := make([]string, len(c.models))
	copy(out, c.models)
	return out
}

// Generate issues the prompt to each candidate model in order and returns the
// first successful completion, trimmed. A connection-level failure aborts the
// loop immediately: every remaining candidate would hit the same dead server.
// HTTP errors and unparseable responses only skip to the next candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (ports.GenerateResult, error) {
	url := c.baseURL + "/api/generate"
	for _, model := range c.models {
		c.log.Debugw("trying model", "model", model)
		body := map[string]any{
			"model":  model,
			"prompt": prompt,
			"stream": false,
			"options": map[string]any{
				"temperature": 0.3,
				"top_p":       0.9,
				"num_predict": 1024,
				"stop":        stopSequences,
			},
		}
		var out generateResponse
		r, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post(url)
		if err != nil {
			if isConnectError(err) {
				return ports.GenerateResult{}, &domain.ConnectionError{Addr: c.baseURL, Err: err}
			}
			c.log.Warnw("request failed", "model", model, "error", err)
			continue
		}
		if r.IsError() {
			c.log.Warnw("api error", "model", model, "status", r.Status(), "body", abbreviate(r.String(), 300))
			continue
		}
		if out.Response == "" {
			c.log.Warnw("empty response", "model", model)
			continue
		}
		c.log.Infow("generation succeeded", "model", model)
		return ports.GenerateResult{Text: strings.TrimSpace(out.Response), Model: model}, nil
	}
	return ports.GenerateResult{}, &domain.NoModelAvailableError{Models: c.Candidates()}
}

// CheckHealth probes the model catalog. An unreachable server is reported as
// unhealthy, not as an error: callers must handle that steady state anyway.
func (c *Client) CheckHealth(ctx context.Context) (bool, error) {
	r, err := c.http.R().SetContext(ctx).Get(c.baseURL + "/api/tags")
	if err != nil {
		c.log.Debugw("health probe failed", "error", err)
		return false, nil
	}
	if r.IsError() {
		c.log.Debugw("health probe returned error status", "status", r.Status())
		return false, nil
	}
	tags := r.String()
	for _, model := range c.models {
		if strings.Contains(tags, model) {
			return true, nil
		}
	}
	c.log.Infow("server running but no suitable model installed", "candidates", c.models)
	return false, nil
}

// isConnectError reports whether err is a dial-level failure, as opposed to a
// timeout or a broken response body.
func isConnectError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
