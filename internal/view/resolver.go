package view

import (
	checklistdomain "besteller-backend/internal/checklist/domain"
	submissiondomain "besteller-backend/internal/submission/domain"
	"besteller-backend/pkg/apperr"
	"besteller-backend/pkg/render"
)

// Resolver composes the template registry with a renderer. All rendered
// pages of the application go through it.
type Resolver struct {
	config   *Config
	renderer render.Renderer
}

// NewResolver creates a resolver over an explicit registry and renderer.
func NewResolver(config *Config, renderer render.Renderer) *Resolver {
	return &Resolver{
		config:   config,
		renderer: renderer,
	}
}

// BuildParameters merges the type defaults of a template path with custom
// parameters. Custom values always win on key collision.
func (r *Resolver) BuildParameters(templatePath string, customParams map[string]interface{}) map[string]interface{} {
	params := r.config.GetDefaultParameters(r.config.GetTemplateType(templatePath))
	for k, v := range customParams {
		params[k] = v
	}
	return params
}

// GetTemplatePath exposes the registry lookup for diagnostics.
func (r *Resolver) GetTemplatePath(controller, action string) (string, bool) {
	return r.config.GetTemplate(controller, action)
}

// render resolves the registered path for a view and renders it. Renderer
// failures propagate as render-kind errors; there is no retry.
func (r *Resolver) render(controller, action string, customParams map[string]interface{}) (string, error) {
	path, ok := r.config.GetTemplate(controller, action)
	if !ok {
		return "", apperr.NotFound("no template registered for " + controller + "/" + action)
	}
	body, err := r.renderer.Render(path, r.BuildParameters(path, customParams))
	if err != nil {
		return "", apperr.Wrap(apperr.KindRender, "rendering "+path+" failed", err)
	}
	return body, nil
}

// RenderChecklist renders the employee-facing checklist form.
func (r *Resolver) RenderChecklist(checklist *checklistdomain.Checklist, name, mitarbeiterID, email string) (string, error) {
	return r.render("checklist", "show", BuildChecklistParameters(checklist, name, mitarbeiterID, email))
}

// RenderSuccess renders the page shown after a successful submission.
func (r *Resolver) RenderSuccess(checklist *checklistdomain.Checklist, name string) (string, error) {
	return r.render("checklist", "success", map[string]interface{}{
		"checklist": checklist,
		"name":      name,
	})
}

// RenderAlreadySubmitted renders the page shown for a duplicate visit.
func (r *Resolver) RenderAlreadySubmitted(checklist *checklistdomain.Checklist, submission *submissiondomain.Submission, name string) (string, error) {
	return r.render("checklist", "already_submitted", BuildAlreadySubmittedParameters(checklist, submission, name))
}

// RenderError renders the employee-facing error page.
func (r *Resolver) RenderError(message string) (string, error) {
	return r.render("checklist", "error", map[string]interface{}{
		"message": message,
	})
}

// RenderAdminEdit renders the admin edit page of one checklist.
func (r *Resolver) RenderAdminEdit(checklist *checklistdomain.Checklist) (string, error) {
	return r.render("admin", "checklist_edit", map[string]interface{}{
		"checklist": checklist,
	})
}

// RenderLogin renders the admin login page.
func (r *Resolver) RenderLogin() (string, error) {
	return r.render("security", "login", nil)
}

// RenderAdminList renders a generic admin list page.
func (r *Resolver) RenderAdminList(routeName string, items interface{}, itemType string, totalCount int) (string, error) {
	return r.render("admin", "checklists", BuildAdminListParameters(routeName, items, itemType, totalCount))
}

// RenderEmailTemplate renders the admin preview of a checklist's mail template.
func (r *Resolver) RenderEmailTemplate(checklist *checklistdomain.Checklist, templateType string, placeholders map[string]string) (string, error) {
	return r.render("admin", "email_template", BuildEmailTemplateParameters(checklist, templateType, placeholders))
}
