package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PROMPT_CATALOG_PATH", "")
	t.Setenv("DEFAULT_LANGUAGE", "")
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)

	var cats []string
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	assert.Equal(t, "matchmaker", cats[0])
}

func TestCategoryCommand(t *testing.T) {
	out, err := run(t, "category", "sandbox")
	require.NoError(t, err)
	assert.Contains(t, out, `"promptCount": 4`)

	_, err = run(t, "category", "nope")
	assert.ErrorContains(t, err, `unknown category "nope"`)
}

func TestSearchAndRecommendCommands(t *testing.T) {
	out, err := run(t, "search", "pilot")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "pilots"`)

	out, err = run(t, "recommend", "engagement", "hub")
	require.NoError(t, err)
	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "engagementHub", recs[0]["name"])

	_, err = run(t, "recommend")
	assert.Error(t, err)
}

func TestStatsCommandWithCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: pilots\n    prompt_count: 5\n"), 0o644))

	out, err := run(t, "stats", "--catalog", path)
	require.NoError(t, err)
	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.EqualValues(t, 5, st["totalPrompts"])
}

func TestPreviewCommand(t *testing.T) {
	out, err := run(t, "preview", "challenges/challengeDescription",
		"--context", `{"title": "Reduce leaks", "municipality": "Riyadh"}`,
		"--mode", "bilingual")
	require.NoError(t, err)

	var p map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Contains(t, p["prompt"], "TITLE: Reduce leaks")
	assert.Contains(t, p["prompt"], "IMPORTANT: Provide all text content in both English and Arabic")
	schema, _ := p["response_json_schema"].(map[string]any)
	props, _ := schema["properties"].(map[string]any)
	assert.Equal(t, true, props["_bilingual"])
	assert.Len(t, p["fingerprint"], 64)
}

func TestPreviewCommandErrors(t *testing.T) {
	_, err := run(t, "preview", "challenges")
	assert.ErrorContains(t, err, "category/name")

	_, err = run(t, "preview", "challenges/challengeDescription", "--context", "{")
	assert.ErrorContains(t, err, "parse context")

	_, err = run(t, "preview", "challenges/challengeDescription")
	assert.ErrorContains(t, err, "Missing required fields: title, municipality")

	_, err = run(t, "preview", "challenges/challengeDescription", "--skip-validation")
	assert.NoError(t, err)
}
