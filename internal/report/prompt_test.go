package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designlens/internal/figma"
)

func reducedFixture(t *testing.T) figma.ReducedNode {
	t.Helper()
	var n figma.Node
	require.NoError(t, json.Unmarshal([]byte(`{
	  "id": "1:1", "name": "Root <Card>", "type": "FRAME",
	  "absoluteBoundingBox": {"x": 0, "y": 0, "width": 320, "height": 200},
	  "fills": [{"type": "SOLID", "color": {"r": 0.2, "g": 0.2, "b": 0.2, "a": 1}}],
	  "children": [
	    {"id": "1:2", "name": "Label", "type": "TEXT", "characters": "Hi & bye",
	     "style": {"fontFamily": "Inter", "fontWeight": 400, "fontSize": 12, "letterSpacing": 0, "lineHeightPx": 16}},
	    {"id": "1:3", "name": "Button", "type": "INSTANCE",
	     "absoluteBoundingBox": {"x": 10, "y": 150, "width": 40, "height": 32}}
	  ]
	}`), &n))
	return figma.Reduce(n)
}

func TestBuild_ContainsAxes(t *testing.T) {
	out, err := Build(reducedFixture(t))
	require.NoError(t, err)

	for _, want := range []string{
		"# DESIGN DATA (JSON)",
		"# ANALYSIS AXES",
		"## 1. Accessibility",
		"## 2. Consistency",
		"## 3. Improvement suggestions",
		"below 14px",
		"44x44",
		"fontFamily or fontWeight",
		"by id and name",
		"# OUTPUT FORMAT",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestBuild_EmbedsReducedTreeUnescaped(t *testing.T) {
	out, err := Build(reducedFixture(t))
	require.NoError(t, err)

	assert.Contains(t, out, `"name": "Root <Card>"`)
	assert.Contains(t, out, `"characters": "Hi & bye"`)
	assert.Contains(t, out, `"fontSize": 12`)
	assert.NotContains(t, out, "\\u003c")

	start := strings.Index(out, "```json\n")
	end := strings.LastIndex(out, "\n```")
	require.True(t, start >= 0 && end > start)
	var back figma.Node
	require.NoError(t, json.Unmarshal([]byte(out[start+len("```json\n"):end]), &back))
	assert.Equal(t, "1:2", back.Children[0].ID)
	assert.Equal(t, 12.0, *back.Children[0].Style.FontSize)
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := Build(reducedFixture(t))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Build(reducedFixture(t))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuild_InstructionsPrecedeData(t *testing.T) {
	out, err := Build(reducedFixture(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, intro))
	assert.Less(t, strings.Index(out, "# ANALYSIS AXES"), strings.Index(out, "# DESIGN DATA"))
	assert.Less(t, strings.Index(out, "# OUTPUT FORMAT"), strings.Index(out, "# DESIGN DATA"))
}

func TestBuild_InvalidFills(t *testing.T) {
	_, err := Build(figma.ReducedNode{ID: "1:1", Name: "x", Type: "FRAME", Fills: json.RawMessage(`{broken`)})
	assert.Error(t, err)
}
