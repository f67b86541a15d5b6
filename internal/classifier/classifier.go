// Package classifier assigns enforcement-case documents to a category from
// the fixed taxonomy via an ordered keyword waterfall. Rule order is load
// bearing: "89/2" must be tested before the generic "haciz ihbarname" rule
// or every second notice files as a first one.
package classifier

import (
	"log/slog"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/common"
	"github.com/tkaraca/icra-analiz/internal/rules"
	"github.com/tkaraca/icra-analiz/internal/textutil"
)

type compiledRule struct {
	name     string
	category constants.Category
	any      []string
	all      []string
}

// Classifier is stateless after construction; Classify is safe for
// concurrent use.
type Classifier struct {
	rules  []compiledRule
	logger *slog.Logger
}

// New compiles the ordered rule list. Keywords are normalized once here so
// per-document classification is pure substring matching.
func New(cfg *rules.Config, logger *slog.Logger) (*Classifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiled := make([]compiledRule, 0, len(cfg.ClassifierRules))
	for _, r := range cfg.ClassifierRules {
		category, ok := constants.CanonicalizeCategory(r.Category)
		if !ok {
			return nil, common.ConfigError("classifier rule "+r.Name+" has unknown category", nil)
		}
		compiled = append(compiled, compiledRule{
			name:     r.Name,
			category: category,
			any:      normalizeAll(r.Any),
			all:      normalizeAll(r.All),
		})
	}
	return &Classifier{rules: compiled, logger: logger}, nil
}

// Classify maps (filename, text) onto a category. Deterministic and
// order-sensitive: the first matching rule wins; no rule -> Unknown.
func (c *Classifier) Classify(filename, text string) constants.Category {
	haystack := textutil.Normalize(filename + " " + text)
	for _, rule := range c.rules {
		if !textutil.ContainsAll(haystack, rule.all) {
			continue
		}
		if len(rule.any) > 0 && !textutil.ContainsAny(haystack, rule.any) {
			continue
		}
		c.logger.Debug("classifier.match", "rule", rule.name, "category", rule.category)
		return rule.category
	}
	return constants.CategoryUnknown
}

func normalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if n := textutil.Normalize(kw); n != "" {
			out = append(out, n)
		}
	}
	return out
}
