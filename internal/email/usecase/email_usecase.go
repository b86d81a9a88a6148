package usecase

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	checklistdomain "besteller-backend/internal/checklist/domain"
	"besteller-backend/internal/email/repository"
	submissiondomain "besteller-backend/internal/submission/domain"
	"besteller-backend/pkg/apperr"
	"besteller-backend/pkg/mailer"
)

// Built-in fallbacks used when a checklist has no template configured.
const (
	defaultEmailTemplate = `Neue Checklisten-Einreichung

Checkliste: {{checklist_title}}
Name: {{name}}
Mitarbeiter-ID: {{mitarbeiter_id}}
E-Mail: {{email}}

Antworten:
{{answers}}
`

	defaultConfirmationTemplate = `Hallo {{name}},

vielen Dank! Ihre Angaben zur Checkliste "{{checklist_title}}" wurden übermittelt.

Antworten:
{{answers}}
`

	defaultLinkTemplate = `Hallo {{name}},

bitte füllen Sie die Checkliste "{{checklist_title}}" aus:

{{link}}
`
)

// emailUsecase implements EmailUsecase interface
type emailUsecase struct {
	settingsRepo  repository.SettingsRepository
	mailer        mailer.Mailer
	publicBaseURL string
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(settingsRepo repository.SettingsRepository, m mailer.Mailer, publicBaseURL string) EmailUsecase {
	return &emailUsecase{
		settingsRepo:  settingsRepo,
		mailer:        m,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *emailUsecase) GenerateAndSendEmail(checklist *checklistdomain.Checklist, submission *submissiondomain.Submission) (string, error) {
	settings, err := u.smtpSettings()
	if err != nil {
		return "", err
	}

	body := substitute(templateOrDefault(checklist.EmailTemplate, defaultEmailTemplate), checklist, submission)

	replyTo := checklist.ReplyEmail
	if replyTo == "" {
		replyTo = settings.Sender
	}

	err = u.mailer.Send(settings, mailer.Message{
		To:      checklist.TargetEmail,
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("Neue Einreichung: %s - %s", checklist.Title, submission.Name),
		Body:    body,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindDelivery, "sending summary email failed", err)
	}

	// Confirmation copy to the submitter is best effort only.
	if submission.Email != "" {
		confirmation := substitute(templateOrDefault(checklist.ConfirmationTemplate, defaultConfirmationTemplate), checklist, submission)
		err = u.mailer.Send(settings, mailer.Message{
			To:      submission.Email,
			ReplyTo: replyTo,
			Subject: fmt.Sprintf("Bestätigung: %s", checklist.Title),
			Body:    confirmation,
		})
		if err != nil {
			log.Printf("[WARN] confirmation email to %s failed: %v", submission.Email, err)
		}
	}

	return body, nil
}

func (u *emailUsecase) SendChecklistLink(checklist *checklistdomain.Checklist, name, mitarbeiterID, email string) error {
	settings, err := u.smtpSettings()
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/checklist/%s?name=%s&mitarbeiter_id=%s&email=%s",
		u.publicBaseURL, checklist.ID,
		url.QueryEscape(name), url.QueryEscape(mitarbeiterID), url.QueryEscape(email))

	body := strings.NewReplacer(
		"{{name}}", name,
		"{{mitarbeiter_id}}", mitarbeiterID,
		"{{checklist_title}}", checklist.Title,
		"{{link}}", link,
	).Replace(templateOrDefault(checklist.LinkEmailTemplate, defaultLinkTemplate))

	err = u.mailer.Send(settings, mailer.Message{
		To:      email,
		ReplyTo: settings.Sender,
		Subject: fmt.Sprintf("Checkliste ausfüllen: %s", checklist.Title),
		Body:    body,
	})
	if err != nil {
		return apperr.Wrap(apperr.KindDelivery, "sending link email failed", err)
	}
	return nil
}

// smtpSettings loads the stored transport settings; missing configuration
// is a delivery error so callers surface it like any other send failure.
func (u *emailUsecase) smtpSettings() (mailer.SMTPConfig, error) {
	settings, err := u.settingsRepo.Get()
	if err != nil {
		return mailer.SMTPConfig{}, err
	}
	if settings == nil {
		return mailer.SMTPConfig{}, apperr.New(apperr.KindDelivery, "email settings are not configured")
	}
	return mailer.SMTPConfig{
		Host:      settings.Host,
		Port:      settings.Port,
		Username:  settings.Username,
		Password:  settings.Password,
		IgnoreTLS: settings.IgnoreTLS,
		Sender:    settings.SenderEmail,
	}, nil
}

// templateOrDefault returns the configured template or the built-in one.
func templateOrDefault(configured, fallback string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	return fallback
}

// substitute fills the placeholders of a mail template from the submission.
func substitute(template string, checklist *checklistdomain.Checklist, submission *submissiondomain.Submission) string {
	return strings.NewReplacer(
		"{{name}}", submission.Name,
		"{{mitarbeiter_id}}", submission.MitarbeiterID,
		"{{email}}", submission.Email,
		"{{checklist_title}}", checklist.Title,
		"{{answers}}", FlattenAnswers(checklist, submission.Data),
	).Replace(template)
}

// FlattenAnswers renders the nested answer map as human-readable lines,
// following the checklist's group and item ordering.
func FlattenAnswers(checklist *checklistdomain.Checklist, answers submissiondomain.AnswerMap) string {
	var sb strings.Builder
	for _, group := range checklist.SortedGroups() {
		groupAnswers, ok := answers[group.ID]
		if !ok {
			continue
		}
		sb.WriteString(group.Title + ":\n")
		for _, item := range group.SortedItems() {
			answer, ok := groupAnswers[item.ID]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s: %s\n", item.Label, formatAnswer(answer)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatAnswer flattens one answer value. Checkbox answers arrive as
// []string fresh from collection and as []interface{} after a JSON
// round-trip through the database; bare yes/no checkboxes are bools.
func formatAnswer(answer interface{}) string {
	switch v := answer.(type) {
	case bool:
		if v {
			return "Ja"
		}
		return "Nein"
	case string:
		if v == "" {
			return "-"
		}
		return v
	case []string:
		if len(v) == 0 {
			return "-"
		}
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, fmt.Sprint(elem))
		}
		if len(parts) == 0 {
			return "-"
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
