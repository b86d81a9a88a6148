package view

import (
	checklistdomain "besteller-backend/internal/checklist/domain"
	submissiondomain "besteller-backend/internal/submission/domain"
)

// Parameter builders are pure: they map entities plus caller-supplied
// values into the parameter map a template consumes. No I/O happens here.

// BuildChecklistParameters builds the parameters of the checklist show view.
// mitarbeiterID and email are optional and omitted when empty.
func BuildChecklistParameters(checklist *checklistdomain.Checklist, name, mitarbeiterID, email string) map[string]interface{} {
	params := map[string]interface{}{
		"checklist": checklist,
		"name":      name,
	}
	if mitarbeiterID != "" {
		params["mitarbeiterId"] = mitarbeiterID
	}
	if email != "" {
		params["email"] = email
	}
	return params
}

// BuildAlreadySubmittedParameters builds the parameters of the page shown
// when an employee follows a link for a checklist they already completed.
func BuildAlreadySubmittedParameters(checklist *checklistdomain.Checklist, submission *submissiondomain.Submission, name string) map[string]interface{} {
	return map[string]interface{}{
		"checklist":  checklist,
		"submission": submission,
		"name":       name,
	}
}

// BuildAdminListParameters builds the parameters of a generic admin list view.
func BuildAdminListParameters(routeName string, items interface{}, itemType string, totalCount int) map[string]interface{} {
	return map[string]interface{}{
		"route_name":  routeName,
		"items":       items,
		"item_type":   itemType,
		"total_count": totalCount,
	}
}

// BuildEmailTemplateParameters builds the parameters of the email template
// preview view, exposing the placeholders the template may use.
func BuildEmailTemplateParameters(checklist *checklistdomain.Checklist, templateType string, placeholders map[string]string) map[string]interface{} {
	return map[string]interface{}{
		"checklist":     checklist,
		"template_type": templateType,
		"placeholders":  placeholders,
	}
}
