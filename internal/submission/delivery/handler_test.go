package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	checklistdomain "besteller-backend/internal/checklist/domain"
	checklistusecase "besteller-backend/internal/checklist/usecase"
	"besteller-backend/internal/submission/domain"
	"besteller-backend/internal/submission/usecase"
	"besteller-backend/internal/view"
	"besteller-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeChecklistUsecase serves a single checklist by ID
type fakeChecklistUsecase struct {
	checklistusecase.ChecklistUsecase
	checklist *checklistdomain.Checklist
}

func (f *fakeChecklistUsecase) GetChecklist(id string) (*checklistdomain.Checklist, error) {
	if f.checklist != nil && f.checklist.ID == id {
		return f.checklist, nil
	}
	return nil, apperr.NotFound("checklist not found")
}

type fakeSubmissionUsecase struct {
	usecase.SubmissionUsecase
}

func (f *fakeSubmissionUsecase) FindExisting(checklistID, mitarbeiterID string) (*domain.Submission, error) {
	return nil, nil
}

// plainRenderer renders any template as its message parameter
type plainRenderer struct{}

func (plainRenderer) Render(path string, params map[string]interface{}) (string, error) {
	return fmt.Sprintf("<html>%v</html>", params["message"]), nil
}

func newShowRouter(checklist *checklistdomain.Checklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := view.NewResolver(view.NewConfig(), plainRenderer{})
	h := NewSubmissionHandler(&fakeSubmissionUsecase{}, &fakeChecklistUsecase{checklist: checklist}, resolver)

	r := gin.New()
	r.GET("/checklist/:id", h.Show)
	return r
}

func TestShowMissingIdentityRendersErrorPage(t *testing.T) {
	router := newShowRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checklist/c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Der Link ist unvollständig.")
}

func TestShowUnknownChecklistRendersErrorPage(t *testing.T) {
	router := newShowRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checklist/missing?name=Jane&mitarbeiter_id=EMP-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "existiert nicht")
}

func TestShowRendersChecklistForm(t *testing.T) {
	checklist := &checklistdomain.Checklist{ID: "c1", Title: "IT Onboarding", TargetEmail: "it@example.com"}
	router := newShowRouter(checklist)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checklist/c1?name=Jane&mitarbeiter_id=EMP-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
