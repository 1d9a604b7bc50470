// Package reason assigns taxonomy labels to extracted alarms through a
// layered fallback chain: remote model, then local model, then a
// deterministic keyword heuristic. A failure at any tier (disabled mode,
// network error, timeout, unparseable response) falls through to the next
// tier; the heuristic tier always succeeds, so Classify has no error path.
package reason

import (
	"context"
	"log/slog"

	"github.com/o3sigma/manual-extractor/internal/common"
	"github.com/o3sigma/manual-extractor/internal/entity"
)

// classifyMaxTokens bounds the completion: the answer is one small JSON
// object, anything longer is the model rambling.
const classifyMaxTokens = 160

// tier is one strategy in the fallback chain.
type tier struct {
	name      string
	completer Completer
}

// Classifier resolves taxonomy labels for one pipeline run. Create one
// instance per run; its memo cache is scoped to the instance.
type Classifier struct {
	tiers  []tier
	cache  *cache
	logger *slog.Logger
}

// NewClassifier builds the chain for the configured mode: "remote" tries
// the hosted model then the local runtime, "local" tries only the local
// runtime, "heuristic" skips models entirely. Every mode terminates in the
// keyword heuristic.
func NewClassifier(cfg common.ClassifierConfig, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	var tiers []tier
	switch cfg.Mode {
	case common.ModeRemote:
		remote := NewRemoteClient(RemoteConfig{
			APIKey:  cfg.RemoteAPIKey,
			BaseURL: cfg.RemoteBaseURL,
			Model:   cfg.RemoteModel,
			Timeout: cfg.Timeout,
		}, logger)
		local := NewLocalClient(LocalConfig{
			BaseURL: cfg.LocalBaseURL,
			Model:   cfg.LocalModel,
			Timeout: cfg.Timeout,
		}, logger)
		tiers = []tier{{name: "remote", completer: remote}, {name: "local", completer: local}}
	case common.ModeLocal:
		local := NewLocalClient(LocalConfig{
			BaseURL: cfg.LocalBaseURL,
			Model:   cfg.LocalModel,
			Timeout: cfg.Timeout,
		}, logger)
		tiers = []tier{{name: "local", completer: local}}
	}

	return &Classifier{tiers: tiers, cache: newCache(), logger: logger}
}

// NewChain builds a classifier from explicit tiers, in order. Used by tests
// and by callers that bring their own completion clients.
func NewChain(logger *slog.Logger, completers ...Completer) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	tiers := make([]tier, len(completers))
	for i, c := range completers {
		tiers[i] = tier{name: "custom", completer: c}
	}
	return &Classifier{tiers: tiers, cache: newCache(), logger: logger}
}

// Classify resolves taxonomy labels for one alarm. Results are memoized by
// normalized description text.
func (c *Classifier) Classify(ctx context.Context, description, cause string) entity.Classification {
	if cached, ok := c.cache.get(description); ok {
		return cached
	}

	result, ok := c.tryTiers(ctx, description, cause)
	if !ok {
		result = Heuristic(description, cause)
	}

	c.cache.set(description, result)
	return result
}

func (c *Classifier) tryTiers(ctx context.Context, description, cause string) (entity.Classification, bool) {
	prompt := BuildPrompt(description, cause)
	for _, t := range c.tiers {
		raw, err := t.completer.Complete(ctx, prompt, classifyMaxTokens)
		if err != nil {
			c.logger.Warn("reason.tier.failed", "tier", t.name, "error", err)
			continue
		}
		result, err := parseResponse(raw)
		if err != nil {
			c.logger.Warn("reason.tier.parse_failed", "tier", t.name, "error", err)
			continue
		}
		c.logger.Info("reason.tier.ok", "tier", t.name, "confidence", result.Confidence)
		return result, true
	}
	return entity.Classification{}, false
}
