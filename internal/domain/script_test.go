package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScriptLanguage(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		firstLine string
		want      ScriptLanguage
	}{
		{name: "sh extension", path: "scripts/x.sh", want: LangBash},
		{name: "bash extension", path: "scripts/x.bash", want: LangBash},
		{name: "js extension", path: "scripts/x.js", want: LangJavaScript},
		{name: "mjs extension", path: "scripts/x.mjs", want: LangJavaScript},
		{name: "bash shebang", path: "scripts/x", firstLine: "#!/usr/bin/env bash", want: LangBash},
		{name: "node shebang", path: "scripts/x", firstLine: "#!/usr/bin/env node", want: LangJavaScript},
		{name: "unknown", path: "scripts/x", firstLine: "hello", want: LangUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectScriptLanguage(tt.path, tt.firstLine))
		})
	}
}

func TestParseScriptHeader_Bash(t *testing.T) {
	content := `#!/usr/bin/env bash
# PURPOSE: Validate changelog sections before merge.
# CALLED BY: changelog.yml, release.yml
# MAJOR RULES:
#   - Fail on unknown section headings.
#   - Never mutate the changelog.

set -euo pipefail
`
	header := ParseScriptHeader(strings.Split(content, "\n"), LangBash)

	assert.True(t, header.Found)
	assert.True(t, header.Complete())
	assert.Equal(t, "Validate changelog sections before merge.", header.Purpose)
	assert.Equal(t, []string{"changelog.yml", "release.yml"}, header.CalledBy)
	require.Len(t, header.MajorRules, 2)
	assert.Equal(t, "Fail on unknown section headings.", header.MajorRules[0])
}

func TestParseScriptHeader_JavaScript(t *testing.T) {
	content := `// PURPOSE: Assign issues to the requesting user.
// CALLED BY:
//   - assign.yml
// MAJOR RULES:
//   - Max three open issues per user.

module.exports = async () => {};
`
	header := ParseScriptHeader(strings.Split(content, "\n"), LangJavaScript)

	assert.True(t, header.Found)
	assert.True(t, header.Complete())
	assert.Equal(t, []string{"assign.yml"}, header.CalledBy)
}

func TestParseScriptHeader_StopsAtCode(t *testing.T) {
	content := `#!/usr/bin/env bash
set -euo pipefail
# PURPOSE: This comment is below code and must be ignored.
`
	header := ParseScriptHeader(strings.Split(content, "\n"), LangBash)

	assert.False(t, header.Found)
	assert.Empty(t, header.Purpose)
}

func TestScriptHeader_MissingSections(t *testing.T) {
	header := ScriptHeader{Found: true, Purpose: "x"}
	assert.Equal(t, []string{"CALLED BY", "MAJOR RULES"}, header.MissingSections())
	assert.False(t, header.Complete())
}

func TestCheckScript(t *testing.T) {
	complete := ScriptHeader{
		Found:      true,
		Purpose:    "Assign issues.",
		CalledBy:   []string{"assign.yml"},
		MajorRules: []string{"Max three open issues."},
	}

	tests := []struct {
		name          string
		script        Script
		workflowRefs  map[string][]string
		workflowFiles map[string]bool
		wantRules     []string
	}{
		{
			name: "clean",
			script: Script{
				Path:     ".github/scripts/assign.js",
				Language: LangJavaScript,
				Header:   complete,
			},
			workflowRefs:  map[string][]string{".github/scripts/assign.js": {"assign.yml"}},
			workflowFiles: map[string]bool{"assign.yml": true},
			wantRules:     nil,
		},
		{
			name: "no header",
			script: Script{
				Path:     ".github/scripts/raw.sh",
				Language: LangBash,
			},
			workflowRefs:  map[string][]string{".github/scripts/raw.sh": {"x.yml"}},
			workflowFiles: map[string]bool{},
			wantRules:     []string{RuleScriptHeader},
		},
		{
			name: "unknown called-by and orphan",
			script: Script{
				Path:     ".github/scripts/assign.js",
				Language: LangJavaScript,
				Header:   complete,
			},
			workflowRefs:  map[string][]string{},
			workflowFiles: map[string]bool{"other.yml": true},
			wantRules:     []string{RuleScriptCalledBy, RuleScriptOrphan},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := CheckScript(tt.script, tt.workflowRefs, tt.workflowFiles)

			var rules []string
			for _, f := range findings {
				rules = append(rules, f.Rule)
			}
			assert.Equal(t, tt.wantRules, rules)
		})
	}
}

func TestCheckScript_IncompleteHeader(t *testing.T) {
	s := Script{
		Path:     ".github/scripts/partial.sh",
		Language: LangBash,
		Header:   ScriptHeader{Found: true, Purpose: "Something."},
	}

	findings := CheckScript(s, map[string][]string{s.Path: {"x.yml"}}, nil)

	require.Len(t, findings, 1)
	assert.Equal(t, RuleScriptHeader, findings[0].Rule)
	assert.Contains(t, findings[0].Message, "CALLED BY")
	assert.Contains(t, findings[0].Message, "MAJOR RULES")
}
