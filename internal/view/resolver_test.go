package view

import (
	"errors"
	"testing"

	checklistdomain "besteller-backend/internal/checklist/domain"
	"besteller-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records what it was asked to render
type fakeRenderer struct {
	lastPath   string
	lastParams map[string]interface{}
	err        error
}

func (f *fakeRenderer) Render(path string, params map[string]interface{}) (string, error) {
	f.lastPath = path
	f.lastParams = params
	if f.err != nil {
		return "", f.err
	}
	return "<body>", nil
}

func TestBuildParametersCustomWins(t *testing.T) {
	resolver := NewResolver(NewConfig(), &fakeRenderer{})

	custom := map[string]interface{}{
		"app_name":        "Overridden",
		"show_navigation": false,
		"extra":           42,
	}
	params := resolver.BuildParameters("checklist/show.html", custom)

	for key, want := range custom {
		assert.Equal(t, want, params[key], key)
	}
}

func TestBuildParametersAdminDefaults(t *testing.T) {
	resolver := NewResolver(NewConfig(), &fakeRenderer{})

	params := resolver.BuildParameters("admin/checklists.html", nil)
	assert.Equal(t, true, params["show_admin_menu"])
	assert.Equal(t, "admin/base.html.twig", params["layout"])

	params = resolver.BuildParameters("security/login.html", nil)
	assert.Equal(t, false, params["show_navigation"])

	params = resolver.BuildParameters("checklist/show.html", nil)
	assert.Equal(t, true, params["show_navigation"])
}

func TestRenderErrorUsesRegisteredPath(t *testing.T) {
	renderer := &fakeRenderer{}
	resolver := NewResolver(NewConfig(), renderer)

	body, err := resolver.RenderError("Diese Checkliste existiert nicht oder wurde entfernt.")
	require.NoError(t, err)
	assert.NotEmpty(t, body)
	assert.Equal(t, "checklist/error.html", renderer.lastPath)
	assert.Equal(t, "Diese Checkliste existiert nicht oder wurde entfernt.", renderer.lastParams["message"])
	assert.Equal(t, "Besteller", renderer.lastParams["app_name"])
}

func TestRenderChecklistUsesRegisteredPath(t *testing.T) {
	renderer := &fakeRenderer{}
	resolver := NewResolver(NewConfig(), renderer)
	checklist := &checklistdomain.Checklist{ID: "c1", Title: "Onboarding"}

	body, err := resolver.RenderChecklist(checklist, "Jane", "EMP-1", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "<body>", body)
	assert.Equal(t, "checklist/show.html", renderer.lastPath)
	assert.Equal(t, checklist, renderer.lastParams["checklist"])
	assert.Equal(t, "Besteller", renderer.lastParams["app_name"])
}

func TestRenderAdminListGetsAdminDefaults(t *testing.T) {
	renderer := &fakeRenderer{}
	resolver := NewResolver(NewConfig(), renderer)

	_, err := resolver.RenderAdminList("admin_checklists", []string{}, "checklist", 0)
	require.NoError(t, err)
	assert.Equal(t, "admin/checklists.html", renderer.lastPath)
	assert.Equal(t, true, renderer.lastParams["show_admin_menu"])
	assert.Equal(t, "Besteller Admin", renderer.lastParams["app_name"])
}

func TestRendererFailurePropagatesAsRenderError(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("undeclared variable")}
	resolver := NewResolver(NewConfig(), renderer)

	_, err := resolver.RenderSuccess(&checklistdomain.Checklist{}, "Jane")
	require.Error(t, err)
	assert.Equal(t, apperr.KindRender, apperr.KindOf(err))
}

func TestGetTemplatePath(t *testing.T) {
	resolver := NewResolver(NewConfig(), &fakeRenderer{})

	path, ok := resolver.GetTemplatePath("checklist", "show")
	assert.True(t, ok)
	assert.Equal(t, "checklist/show.html", path)

	_, ok = resolver.GetTemplatePath("checklist", "missing")
	assert.False(t, ok)
}
