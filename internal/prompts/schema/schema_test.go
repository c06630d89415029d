package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredSubset(t *testing.T) {
	ok := Object(map[string]*Schema{
		"items": ArrayOf(BilingualArrayItem()),
	}, "items")
	require.NoError(t, ok.Validate())

	bad := Object(map[string]*Schema{
		"items": ArrayOf(&Schema{Type: TypeObject, Required: []string{"missing"}}),
	})
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.properties.items.items")
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestCloneIsDeep(t *testing.T) {
	orig := BilingualListSchema("Steps")
	cp := orig.Clone()
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.Items.Required[0] = "mutated"
	cp.Items.Properties["priority"].Enum[0] = "mutated"
	assert.Equal(t, "text_en", orig.Items.Required[0])
	assert.Equal(t, "high", orig.Items.Properties["priority"].Enum[0])
}

func TestBooleanSchemaRoundTrip(t *testing.T) {
	s := Object(map[string]*Schema{"_bilingual": True()})
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{"_bilingual":true}}`, string(raw))

	var back Schema
	require.NoError(t, json.Unmarshal(raw, &back))
	require.True(t, back.Properties["_bilingual"].IsLiteral())
	assert.True(t, *back.Properties["_bilingual"].Literal)
}

func TestMap(t *testing.T) {
	m, err := ScoreField().Map()
	require.NoError(t, err)
	assert.Equal(t, "number", m["type"])
	assert.Equal(t, float64(100), m["maximum"])

	_, err = True().Map()
	assert.Error(t, err)
}

func TestStandardPatterns(t *testing.T) {
	p := StandardPatterns()
	assert.Equal(t, []string{
		PatternBilingualTitle,
		PatternBilingualDescription,
		PatternPriority,
		PatternScore,
		PatternConfidence,
		PatternRecommendations,
		PatternNextSteps,
		PatternKeywords,
	}, p.Names())

	for _, name := range p.Names() {
		s, ok := p.Get(name)
		require.True(t, ok, name)
		require.NoError(t, s.Validate(), name)
	}

	first := p.MustGet(PatternPriority)
	first.Enum[0] = "mutated"
	assert.Equal(t, "high", p.MustGet(PatternPriority).Enum[0])

	_, ok := p.Get("nope")
	assert.False(t, ok)
	assert.Panics(t, func() { p.MustGet("nope") })
}
