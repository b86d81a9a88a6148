package render

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"checklist/show.html": &fstest.MapFile{
			Data: []byte(`<h1>{{.app_name}}</h1><p>Hello {{.name}}</p>`),
		},
		"admin/checklists.html": &fstest.MapFile{
			Data: []byte(`<h1>{{.app_name}}</h1>`),
		},
	}
}

func TestRenderKnownTemplate(t *testing.T) {
	renderer, err := NewHTMLRenderer(testFS())
	require.NoError(t, err)

	body, err := renderer.Render("checklist/show.html", map[string]interface{}{
		"app_name": "Besteller",
		"name":     "Jane",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Besteller")
	assert.Contains(t, body, "Hello Jane")
}

func TestRenderUnknownPathFails(t *testing.T) {
	renderer, err := NewHTMLRenderer(testFS())
	require.NoError(t, err)

	_, err = renderer.Render("checklist/missing.html", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}

func TestRenderUndeclaredVariableFails(t *testing.T) {
	renderer, err := NewHTMLRenderer(testFS())
	require.NoError(t, err)

	// name is referenced by the template but missing from the map
	_, err = renderer.Render("checklist/show.html", map[string]interface{}{
		"app_name": "Besteller",
	})
	require.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	renderer, err := NewHTMLRenderer(testFS())
	require.NoError(t, err)

	body, err := renderer.Render("checklist/show.html", map[string]interface{}{
		"app_name": "Besteller",
		"name":     "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
