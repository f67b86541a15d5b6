// Package rules holds the injected rule-sets the analysis engines run on:
// counterparty aliases, classifier rules, garnishee-response patterns and
// the statutory deadline tariff. Embedded defaults can be overridden by a
// JSON file; every load is schema-validated so a broken rule file aborts
// startup instead of silently corrupting downstream results.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/common"
)

//go:embed defaults.json
var defaultsJSON []byte

// Counterparty maps alias tokens found in filenames or text onto a
// canonical display name and kind.
type Counterparty struct {
	Name    string                     `json:"name"`
	Kind    constants.CounterpartyKind `json:"kind"`
	Aliases []string                   `json:"aliases"`
}

// ClassifierRule is one entry of the ordered classification waterfall. A
// rule matches when every keyword in All and at least one keyword in Any is
// present in the normalized filename+text.
type ClassifierRule struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Any      []string `json:"any"`
	All      []string `json:"all,omitempty"`
}

// DeadlineRules parameterizes the seizure deadline tracker.
type DeadlineRules struct {
	PeriodDays   int                `json:"period_days"`
	WarningDays  int                `json:"warning_days"`
	CriticalDays int                `json:"critical_days"`
	Tariff       map[string]float64 `json:"tariff"` // asset subtype -> required sale advance, TL
}

// Config is the full injected rule-set.
type Config struct {
	Counterparties     []Counterparty   `json:"counterparties"`
	ClassifierRules    []ClassifierRule `json:"classifier_rules"`
	BlockPatterns      []string         `json:"block_patterns"`
	BlockKeywords      []string         `json:"block_keywords"`
	NoAccountPhrases   []string         `json:"no_account_phrases"`
	NoBalancePhrases   []string         `json:"no_balance_phrases"`
	ObjectionPhrases   []string         `json:"objection_phrases"`
	Deadline           DeadlineRules    `json:"deadline"`
	MaxPlausibleAmount float64          `json:"max_plausible_amount"`
	DateYearsBack      int              `json:"date_years_back"`
	DateYearsAhead     int              `json:"date_years_ahead"`
}

// Default returns the embedded rule-set.
func Default() (*Config, error) {
	return parse(defaultsJSON)
}

// Load reads a rule-set: the embedded defaults when path is empty, the JSON
// file at path otherwise. Any schema or semantic violation is fatal.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.ConfigError("read rules file", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Config, error) {
	if err := ValidateJSONAgainstSchema(BuildRulesJSONSchema(), raw); err != nil {
		return nil, common.ConfigError("rules schema", err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, common.ConfigError("decode rules", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applies the semantic checks the JSON schema cannot express.
func (c *Config) validate() error {
	for _, rule := range c.ClassifierRules {
		if _, ok := constants.CanonicalizeCategory(rule.Category); !ok {
			return common.ConfigError(
				fmt.Sprintf("classifier rule %q targets unknown category %q", rule.Name, rule.Category), nil)
		}
		if len(rule.Any) == 0 && len(rule.All) == 0 {
			return common.ConfigError(
				fmt.Sprintf("classifier rule %q has no keywords", rule.Name), nil)
		}
	}
	for _, pattern := range c.BlockPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return common.ConfigError(fmt.Sprintf("block pattern %q", pattern), err)
		}
	}
	if c.Deadline.PeriodDays < 1 {
		return common.ConfigError("deadline.period_days must be positive", nil)
	}
	if c.Deadline.CriticalDays >= c.Deadline.WarningDays {
		return common.ConfigError("deadline.critical_days must be below warning_days", nil)
	}
	for _, asset := range constants.TimeLimitedAssetTypes {
		if _, ok := c.Deadline.Tariff[string(asset)]; !ok {
			return common.ConfigError(fmt.Sprintf("deadline.tariff missing %s", asset), nil)
		}
	}
	for key := range c.Deadline.Tariff {
		if !constants.AssetType(key).Valid() || constants.AssetType(key).IsUnlimited() {
			return common.ConfigError(fmt.Sprintf("deadline.tariff has invalid key %q", key), nil)
		}
	}
	if c.MaxPlausibleAmount <= 0 {
		return common.ConfigError("max_plausible_amount must be positive", nil)
	}
	return nil
}

// AdvanceFor returns the tariff advance for a time-limited asset subtype.
func (c *Config) AdvanceFor(asset constants.AssetType) float64 {
	return c.Deadline.Tariff[string(asset)]
}
