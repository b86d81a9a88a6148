package view

import "strings"

// TemplateType classifies a template path and selects its default parameters
type TemplateType string

const (
	TypeAdmin    TemplateType = "admin"
	TypeSecurity TemplateType = "security"
	TypeDefault  TemplateType = "default"
)

// Config is the template registry: which template a (controller, action)
// pair renders with, and which default parameters each template type gets.
// It is plain data handed to the resolver at construction, nothing global.
type Config struct {
	templates map[string]map[string]string
	defaults  map[TemplateType]map[string]interface{}
}

// NewConfig builds the registry for all views the application renders.
func NewConfig() *Config {
	return &Config{
		templates: map[string]map[string]string{
			"checklist": {
				"show":              "checklist/show.html",
				"success":           "checklist/success.html",
				"already_submitted": "checklist/already_submitted.html",
				"error":             "checklist/error.html",
			},
			"admin": {
				"checklists":     "admin/checklists.html",
				"checklist_edit": "admin/checklist_edit.html",
				"email_template": "admin/email_template.html",
			},
			"security": {
				"login": "security/login.html",
			},
		},
		defaults: map[TemplateType]map[string]interface{}{
			TypeAdmin: {
				"app_name":        "Besteller Admin",
				"show_admin_menu": true,
				"layout":          "admin/base.html.twig",
			},
			TypeSecurity: {
				"app_name":        "Besteller",
				"show_navigation": false,
			},
			TypeDefault: {
				"app_name":        "Besteller",
				"show_navigation": true,
			},
		},
	}
}

// GetTemplate returns the template path registered for a controller action.
func (c *Config) GetTemplate(controller, action string) (string, bool) {
	actions, ok := c.templates[controller]
	if !ok {
		return "", false
	}
	path, ok := actions[action]
	return path, ok
}

// TemplateExists reports whether a (controller, action) pair is registered.
func (c *Config) TemplateExists(controller, action string) bool {
	_, ok := c.GetTemplate(controller, action)
	return ok
}

// GetTemplateType classifies a template path by its prefix.
func (c *Config) GetTemplateType(path string) TemplateType {
	switch {
	case strings.HasPrefix(path, "admin/"):
		return TypeAdmin
	case strings.HasPrefix(path, "security/"):
		return TypeSecurity
	default:
		return TypeDefault
	}
}

// GetDefaultParameters returns a copy of the default parameters for a type.
func (c *Config) GetDefaultParameters(t TemplateType) map[string]interface{} {
	defaults, ok := c.defaults[t]
	if !ok {
		defaults = c.defaults[TypeDefault]
	}
	params := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		params[k] = v
	}
	return params
}

// GetAvailableControllers lists all registered controllers.
func (c *Config) GetAvailableControllers() []string {
	controllers := make([]string, 0, len(c.templates))
	for name := range c.templates {
		controllers = append(controllers, name)
	}
	return controllers
}

// GetControllerTemplates returns the action-to-path map of one controller.
func (c *Config) GetControllerTemplates(controller string) map[string]string {
	actions, ok := c.templates[controller]
	if !ok {
		return map[string]string{}
	}
	templates := make(map[string]string, len(actions))
	for action, path := range actions {
		templates[action] = path
	}
	return templates
}
