package delivery

import (
	"net/http"

	"besteller-backend/internal/checklist/domain"
	"besteller-backend/internal/checklist/usecase"
	"besteller-backend/internal/view"
	"besteller-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler handles checklist administration requests
type ChecklistHandler struct {
	checklistUsecase usecase.ChecklistUsecase
	resolver         *view.Resolver
}

// NewChecklistHandler creates a new ChecklistHandler
func NewChecklistHandler(checklistUsecase usecase.ChecklistUsecase, resolver *view.Resolver) *ChecklistHandler {
	return &ChecklistHandler{
		checklistUsecase: checklistUsecase,
		resolver:         resolver,
	}
}

// CreateChecklistRequest represents the request body for creating a checklist
type CreateChecklistRequest struct {
	Title                string `json:"title" binding:"required"`
	TargetEmail          string `json:"target_email" binding:"required,email"`
	ReplyEmail           string `json:"reply_email"`
	EmailTemplate        string `json:"email_template"`
	LinkEmailTemplate    string `json:"link_email_template"`
	ConfirmationTemplate string `json:"confirmation_template"`
}

// SendLinkRequest represents the request body for mailing a submission link
type SendLinkRequest struct {
	Name          string `json:"name" binding:"required"`
	MitarbeiterID string `json:"mitarbeiter_id" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
}

// List returns all checklists
// GET /api/admin/checklists
func (h *ChecklistHandler) List(c *gin.Context) {
	checklists, err := h.checklistUsecase.ListChecklists()
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"checklists": checklists,
		"total":      len(checklists),
	})
}

// Get returns one checklist with groups and items
// GET /api/admin/checklists/:id
func (h *ChecklistHandler) Get(c *gin.Context) {
	checklist, err := h.checklistUsecase.GetChecklist(c.Param("id"))
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// Create creates a checklist
// POST /api/admin/checklists
func (h *ChecklistHandler) Create(c *gin.Context) {
	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checklist := &domain.Checklist{
		Title:                req.Title,
		TargetEmail:          req.TargetEmail,
		ReplyEmail:           req.ReplyEmail,
		EmailTemplate:        req.EmailTemplate,
		LinkEmailTemplate:    req.LinkEmailTemplate,
		ConfirmationTemplate: req.ConfirmationTemplate,
	}
	if err := h.checklistUsecase.CreateChecklist(checklist); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checklist)
}

// Update updates a checklist's fields
// PUT /api/admin/checklists/:id
func (h *ChecklistHandler) Update(c *gin.Context) {
	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checklist := &domain.Checklist{
		ID:                   c.Param("id"),
		Title:                req.Title,
		TargetEmail:          req.TargetEmail,
		ReplyEmail:           req.ReplyEmail,
		EmailTemplate:        req.EmailTemplate,
		LinkEmailTemplate:    req.LinkEmailTemplate,
		ConfirmationTemplate: req.ConfirmationTemplate,
	}
	if err := h.checklistUsecase.UpdateChecklist(checklist); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// Delete removes a checklist with its groups and items
// DELETE /api/admin/checklists/:id
func (h *ChecklistHandler) Delete(c *gin.Context) {
	if err := h.checklistUsecase.DeleteChecklist(c.Param("id")); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checklist deleted"})
}

// CreateGroupRequest represents the request body for adding a group
type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// AddGroup appends a group to a checklist
// POST /api/admin/checklists/:id/groups
func (h *ChecklistHandler) AddGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := &domain.ChecklistGroup{
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := h.checklistUsecase.AddGroup(c.Param("id"), group); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup applies a partial update to a group
// PUT /api/admin/groups/:id
func (h *ChecklistHandler) UpdateGroup(c *gin.Context) {
	var updates usecase.GroupUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.checklistUsecase.UpdateGroup(c.Param("id"), updates)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup removes a group and its items
// DELETE /api/admin/groups/:id
func (h *ChecklistHandler) DeleteGroup(c *gin.Context) {
	if err := h.checklistUsecase.DeleteGroup(c.Param("id")); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}

// CreateItemRequest represents the request body for adding an item
type CreateItemRequest struct {
	Label     string   `json:"label" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Options   []string `json:"options"`
	Active    bool     `json:"active"`
	SortOrder int      `json:"sort_order"`
}

// AddItem appends an item to a group
// POST /api/admin/groups/:id/items
func (h *ChecklistHandler) AddItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &domain.GroupItem{
		Label:     req.Label,
		Type:      domain.ItemType(req.Type),
		SortOrder: req.SortOrder,
	}
	if len(req.Options) > 0 {
		item.SetOptionsArray(req.Options, req.Active)
	}
	if err := h.checklistUsecase.AddItem(c.Param("id"), item); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem applies a partial update to an item
// PUT /api/admin/items/:id
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	var updates usecase.ItemUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.checklistUsecase.UpdateItem(c.Param("id"), updates)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item
// DELETE /api/admin/items/:id
func (h *ChecklistHandler) DeleteItem(c *gin.Context) {
	if err := h.checklistUsecase.DeleteItem(c.Param("id")); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// SendLink mails an employee their personal submission link
// POST /api/admin/checklists/:id/send-link
func (h *ChecklistHandler) SendLink(c *gin.Context) {
	var req SendLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.checklistUsecase.SendLink(c.Param("id"), req.Name, req.MitarbeiterID, req.Email); err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "link sent"})
}

// ListPage renders the admin checklist overview
// GET /admin/checklists
func (h *ChecklistHandler) ListPage(c *gin.Context) {
	checklists, err := h.checklistUsecase.ListChecklists()
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	body, err := h.resolver.RenderAdminList("admin_checklists", checklists, "checklist", len(checklists))
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// EditPage renders the admin edit view of one checklist
// GET /admin/checklists/:id
func (h *ChecklistHandler) EditPage(c *gin.Context) {
	checklist, err := h.checklistUsecase.GetChecklist(c.Param("id"))
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	body, err := h.resolver.RenderAdminEdit(checklist)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// EmailTemplatePage renders the template preview of a checklist
// GET /admin/checklists/:id/email-template
func (h *ChecklistHandler) EmailTemplatePage(c *gin.Context) {
	checklist, err := h.checklistUsecase.GetChecklist(c.Param("id"))
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}

	placeholders := map[string]string{
		"{{name}}":            "Name des Mitarbeiters",
		"{{mitarbeiter_id}}":  "Mitarbeiter-ID",
		"{{email}}":           "E-Mail des Mitarbeiters",
		"{{checklist_title}}": "Titel der Checkliste",
		"{{answers}}":         "Zusammenfassung der Antworten",
		"{{link}}":            "Persönlicher Link (nur Link-Vorlage)",
	}
	body, err := h.resolver.RenderEmailTemplate(checklist, c.DefaultQuery("type", "email"), placeholders)
	if err != nil {
		apperr.AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
