package delivery

import (
	"log"
	"net/http"

	checklistusecase "besteller-backend/internal/checklist/usecase"
	"besteller-backend/internal/submission/usecase"
	"besteller-backend/internal/view"
	"besteller-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the employee-facing checklist pages and the
// admin submission listing.
type SubmissionHandler struct {
	submissionUsecase usecase.SubmissionUsecase
	checklistUsecase  checklistusecase.ChecklistUsecase
	resolver          *view.Resolver
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionUc usecase.SubmissionUsecase, checklistUc checklistusecase.ChecklistUsecase, resolver *view.Resolver) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUsecase: submissionUc,
		checklistUsecase:  checklistUc,
		resolver:          resolver,
	}
}

// Show renders the checklist form for one employee
// GET /checklist/:id?name=...&mitarbeiter_id=...&email=...
func (h *SubmissionHandler) Show(c *gin.Context) {
	name := c.Query("name")
	mitarbeiterID := c.Query("mitarbeiter_id")
	email := c.Query("email")
	if name == "" || mitarbeiterID == "" {
		h.renderError(c, apperr.Validation("name and mitarbeiter_id are required"))
		return
	}

	checklist, err := h.checklistUsecase.GetChecklist(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	existing, err := h.submissionUsecase.FindExisting(checklist.ID, mitarbeiterID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if existing != nil {
		h.renderHTML(c, func() (string, error) {
			return h.resolver.RenderAlreadySubmitted(checklist, existing, name)
		})
		return
	}

	h.renderHTML(c, func() (string, error) {
		return h.resolver.RenderChecklist(checklist, name, mitarbeiterID, email)
	})
}

// Submit handles a posted checklist form
// POST /checklist/:id
func (h *SubmissionHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderError(c, apperr.Validation("invalid form data"))
		return
	}
	// The show page posts back to its own URL, so the identity fields
	// arrive in the query string and merge into Form here.
	form := c.Request.Form

	checklistID := c.Param("id")
	name := form.Get("name")
	mitarbeiterID := form.Get("mitarbeiter_id")

	submission, err := h.submissionUsecase.Submit(checklistID, usecase.SubmitRequest{
		Name:          name,
		MitarbeiterID: mitarbeiterID,
		Email:         form.Get("email"),
		Form:          form,
	})
	if err != nil {
		// A duplicate gets the same friendly page as a repeated visit.
		if apperr.IsKind(err, apperr.KindConflict) {
			h.renderAlreadySubmitted(c, checklistID, mitarbeiterID, name)
			return
		}
		h.renderError(c, err)
		return
	}

	checklist, err := h.checklistUsecase.GetChecklist(checklistID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderHTML(c, func() (string, error) {
		return h.resolver.RenderSuccess(checklist, submission.Name)
	})
}

// ListByChecklist returns all submissions of a checklist
// GET /api/admin/checklists/:id/submissions
func (h *SubmissionHandler) ListByChecklist(c *gin.Context) {
	checklistID := c.Param("id")
	if _, err := h.checklistUsecase.GetChecklist(checklistID); err != nil {
		apperr.AbortWithError(c, err)
		return
	}

	submissions, err := h.submissionUsecase.ListByChecklist(checklistID)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

func (h *SubmissionHandler) renderAlreadySubmitted(c *gin.Context, checklistID, mitarbeiterID, name string) {
	checklist, err := h.checklistUsecase.GetChecklist(checklistID)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	existing, err := h.submissionUsecase.FindExisting(checklistID, mitarbeiterID)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	h.renderHTML(c, func() (string, error) {
		return h.resolver.RenderAlreadySubmitted(checklist, existing, name)
	})
}

// renderError serves errors on the employee-facing routes as a rendered
// page instead of the JSON error body the API routes get. Falls back to
// the central JSON mapping when the error page itself cannot render.
func (h *SubmissionHandler) renderError(c *gin.Context, err error) {
	message := "Die Anfrage konnte nicht verarbeitet werden."
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		message = "Der Link ist unvollständig."
	case apperr.KindNotFound:
		message = "Diese Checkliste existiert nicht oder wurde entfernt."
	case apperr.KindDelivery:
		message = "Die E-Mail konnte nicht versendet werden. Bitte versuchen Sie es später erneut."
	}

	body, renderErr := h.resolver.RenderError(message)
	if renderErr != nil {
		apperr.AbortWithError(c, err)
		return
	}
	log.Printf("[WARN] %s: %v (uri=%s)", apperr.KindOf(err), err, c.Request.RequestURI)
	c.Data(apperr.HTTPStatus(apperr.KindOf(err)), "text/html; charset=utf-8", []byte(body))
}

func (h *SubmissionHandler) renderHTML(c *gin.Context, render func() (string, error)) {
	body, err := render()
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
