package usecase

import (
	"context"
	"testing"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules_Execute_All(t *testing.T) {
	uc := NewListRules(&mockConfigLoader{})

	out, err := uc.Execute(context.Background(), ListRulesInput{})

	require.NoError(t, err)
	assert.Len(t, out.Rules, len(domain.Rules()))
	for _, info := range out.Rules {
		assert.False(t, info.Disabled)
		assert.Equal(t, info.Rule.Severity, info.Severity)
	}
}

func TestListRules_Execute_KindFilter(t *testing.T) {
	uc := NewListRules(&mockConfigLoader{})

	out, err := uc.Execute(context.Background(), ListRulesInput{Kind: domain.KindChangelog})

	require.NoError(t, err)
	require.NotEmpty(t, out.Rules)
	for _, info := range out.Rules {
		assert.Equal(t, domain.KindChangelog, info.Rule.Kind)
	}
}

func TestListRules_Execute_AppliesOverrides(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Rules.Disabled = []string{domain.RuleWorkflowPinnedAction}
	cfg.Rules.Severity = map[string]string{domain.RuleWorkflowTimeout: "error"}

	uc := NewListRules(&mockConfigLoader{cfg: cfg})

	out, err := uc.Execute(context.Background(), ListRulesInput{})

	require.NoError(t, err)
	byID := make(map[string]RuleInfo, len(out.Rules))
	for _, info := range out.Rules {
		byID[info.Rule.ID] = info
	}
	assert.True(t, byID[domain.RuleWorkflowPinnedAction].Disabled)
	assert.Equal(t, domain.SeverityError, byID[domain.RuleWorkflowTimeout].Severity)
}

func TestListRules_Execute_NilLoaderUsesDefaults(t *testing.T) {
	uc := NewListRules(nil)

	out, err := uc.Execute(context.Background(), ListRulesInput{})

	require.NoError(t, err)
	assert.Len(t, out.Rules, len(domain.Rules()))
}

func TestListRules_Execute_ConfigError(t *testing.T) {
	uc := NewListRules(&mockConfigLoader{err: assert.AnError})

	_, err := uc.Execute(context.Background(), ListRulesInput{})

	assert.Error(t, err)
}
