package usecase

import (
	"context"
	"fmt"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// ListRulesInput contains the parameters for listing rules.
type ListRulesInput struct {
	// Kind restricts the listing to one check kind. Empty means all.
	Kind domain.CheckKind
}

// RuleInfo is one catalog entry with its effective configuration applied.
// Fields are ordered to minimize memory padding.
type RuleInfo struct {
	Rule     domain.Rule
	Severity domain.Severity // Effective severity after overrides
	Disabled bool
}

// ListRulesOutput contains the result of listing rules.
type ListRulesOutput struct {
	Rules []RuleInfo
}

// ListRules is the use case for printing the rule catalog.
type ListRules struct {
	configLoader domain.ConfigLoader
}

// NewListRules creates a new ListRules use case.
func NewListRules(configLoader domain.ConfigLoader) *ListRules {
	return &ListRules{configLoader: configLoader}
}

// Execute lists the rule catalog with effective severities.
// Without a loadable config (e.g. outside a repository) the catalog defaults
// are shown.
func (uc *ListRules) Execute(_ context.Context, in ListRulesInput) (*ListRulesOutput, error) {
	cfg := domain.NewDefaultConfig()
	if uc.configLoader != nil {
		loaded, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	out := &ListRulesOutput{}
	for _, rule := range domain.Rules() {
		if in.Kind != "" && rule.Kind != in.Kind {
			continue
		}
		out.Rules = append(out.Rules, RuleInfo{
			Rule:     rule,
			Severity: cfg.EffectiveSeverity(rule),
			Disabled: cfg.RuleDisabled(rule.ID),
		})
	}
	return out, nil
}
