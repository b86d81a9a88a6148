package usecase

import (
	"errors"
	"net/url"
	"testing"

	checklistdomain "besteller-backend/internal/checklist/domain"
	"besteller-backend/internal/submission/domain"
	"besteller-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmissionRepo keeps submissions in memory and enforces uniqueness
type fakeSubmissionRepo struct {
	submissions []*domain.Submission
	createErr   error
}

func (f *fakeSubmissionRepo) Create(s *domain.Submission) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.submissions {
		if existing.ChecklistID == s.ChecklistID && existing.MitarbeiterID == s.MitarbeiterID {
			return apperr.Conflict("submission already exists for this checklist and employee")
		}
	}
	s.ID = "generated"
	f.submissions = append(f.submissions, s)
	return nil
}

func (f *fakeSubmissionRepo) FindByChecklistAndMitarbeiter(checklistID, mitarbeiterID string) (*domain.Submission, error) {
	for _, s := range f.submissions {
		if s.ChecklistID == checklistID && s.MitarbeiterID == mitarbeiterID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) FindByChecklistID(checklistID string) ([]*domain.Submission, error) {
	var out []*domain.Submission
	for _, s := range f.submissions {
		if s.ChecklistID == checklistID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeChecklistRepo serves a single checklist
type fakeChecklistRepo struct {
	checklist *checklistdomain.Checklist
}

func (f *fakeChecklistRepo) Create(*checklistdomain.Checklist) error { return nil }
func (f *fakeChecklistRepo) FindByID(id string) (*checklistdomain.Checklist, error) {
	if f.checklist != nil && f.checklist.ID == id {
		return f.checklist, nil
	}
	return nil, nil
}
func (f *fakeChecklistRepo) FindAll() ([]*checklistdomain.Checklist, error)    { return nil, nil }
func (f *fakeChecklistRepo) Update(*checklistdomain.Checklist) error           { return nil }
func (f *fakeChecklistRepo) Delete(string) error                               { return nil }
func (f *fakeChecklistRepo) CreateGroup(*checklistdomain.ChecklistGroup) error { return nil }
func (f *fakeChecklistRepo) FindGroupByID(string) (*checklistdomain.ChecklistGroup, error) {
	return nil, nil
}
func (f *fakeChecklistRepo) UpdateGroup(*checklistdomain.ChecklistGroup) error { return nil }
func (f *fakeChecklistRepo) DeleteGroup(string) error                          { return nil }
func (f *fakeChecklistRepo) CreateItem(*checklistdomain.GroupItem) error { return nil }
func (f *fakeChecklistRepo) FindItemByID(string) (*checklistdomain.GroupItem, error) {
	return nil, nil
}
func (f *fakeChecklistRepo) UpdateItem(*checklistdomain.GroupItem) error { return nil }
func (f *fakeChecklistRepo) DeleteItem(string) error                           { return nil }

// fakeEmailUsecase counts sends
type fakeEmailUsecase struct {
	sendCount int
	err       error
}

func (f *fakeEmailUsecase) GenerateAndSendEmail(*checklistdomain.Checklist, *domain.Submission) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sendCount++
	return "generated body", nil
}

func (f *fakeEmailUsecase) SendChecklistLink(*checklistdomain.Checklist, string, string, string) error {
	return nil
}

func onboardingChecklist() *checklistdomain.Checklist {
	return &checklistdomain.Checklist{
		ID:    "c1",
		Title: "IT Onboarding",
		Groups: []checklistdomain.ChecklistGroup{
			{
				ID:    "g1",
				Title: "Hardware",
				Items: []checklistdomain.GroupItem{
					{ID: "i1", Label: "Geräte", Type: checklistdomain.ItemTypeCheckbox,
						Options: checklistdomain.ItemOptions{{Label: "Laptop"}, {Label: "Dock"}}},
					{ID: "i2", Label: "Monitor", Type: checklistdomain.ItemTypeRadio, SortOrder: 1,
						Options: checklistdomain.ItemOptions{{Label: "24 Zoll"}, {Label: "27 Zoll"}}},
					{ID: "i3", Label: "Bemerkung", Type: checklistdomain.ItemTypeText, SortOrder: 2},
					{ID: "i4", Label: "Homeoffice", Type: checklistdomain.ItemTypeCheckbox, SortOrder: 3},
				},
			},
		},
	}
}

func newUsecase(subRepo *fakeSubmissionRepo, emailUc *fakeEmailUsecase) SubmissionUsecase {
	return NewSubmissionUsecase(subRepo, &fakeChecklistRepo{checklist: onboardingChecklist()}, emailUc)
}

func TestCollectSubmissionDataNormalizes(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})
	checklist := onboardingChecklist()

	form := url.Values{
		"group_g1_item_i1": {"Laptop", "Dock", "Beamer"}, // Beamer is not an option
		"group_g1_item_i2": {"27 Zoll"},
		"group_g1_item_i3": {"  bitte schnell  "},
		"group_g1_item_i4": {"on"},
	}

	answers := u.CollectSubmissionData(checklist, form)
	require.Contains(t, answers, "g1")
	assert.Equal(t, []string{"Laptop", "Dock"}, answers["g1"]["i1"])
	assert.Equal(t, "27 Zoll", answers["g1"]["i2"])
	assert.Equal(t, "bitte schnell", answers["g1"]["i3"])
	assert.Equal(t, true, answers["g1"]["i4"])
}

func TestCollectSubmissionDataMissingFieldsAreEmpty(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})

	answers := u.CollectSubmissionData(onboardingChecklist(), url.Values{})
	require.Contains(t, answers, "g1")
	assert.Equal(t, []string{}, answers["g1"]["i1"])
	assert.Equal(t, "", answers["g1"]["i2"])
	assert.Equal(t, "", answers["g1"]["i3"])
	assert.Equal(t, false, answers["g1"]["i4"])
}

func TestCollectSubmissionDataRejectsUnknownRadioValue(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})

	form := url.Values{"group_g1_item_i2": {"32 Zoll"}}
	answers := u.CollectSubmissionData(onboardingChecklist(), form)
	assert.Equal(t, "", answers["g1"]["i2"])
}

func TestCollectSubmissionDataIsIdempotent(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})
	checklist := onboardingChecklist()
	form := url.Values{
		"group_g1_item_i1": {"Laptop"},
		"group_g1_item_i3": {"text"},
	}

	first := u.CollectSubmissionData(checklist, form)
	second := u.CollectSubmissionData(checklist, form)
	assert.Equal(t, first, second)
}

func TestSubmitPersistsWithSnapshot(t *testing.T) {
	subRepo := &fakeSubmissionRepo{}
	emailUc := &fakeEmailUsecase{}
	u := newUsecase(subRepo, emailUc)

	submission, err := u.Submit("c1", SubmitRequest{
		Name:          "Jane Doe",
		MitarbeiterID: "EMP-1",
		Email:         "jane@example.com",
		Form:          url.Values{"group_g1_item_i3": {"hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated body", submission.GeneratedEmail)
	assert.Equal(t, 1, emailUc.sendCount)
	assert.Len(t, subRepo.submissions, 1)
}

func TestSubmitTwiceIsConflictWithoutSecondEmail(t *testing.T) {
	subRepo := &fakeSubmissionRepo{}
	emailUc := &fakeEmailUsecase{}
	u := newUsecase(subRepo, emailUc)

	_, err := u.Submit("c1", SubmitRequest{Name: "Jane", MitarbeiterID: "EMP-1"})
	require.NoError(t, err)

	_, err = u.Submit("c1", SubmitRequest{Name: "Jane", MitarbeiterID: "EMP-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	assert.Len(t, subRepo.submissions, 1)
	assert.Equal(t, 1, emailUc.sendCount)
}

func TestSubmitRaceLostAtInsertIsConflict(t *testing.T) {
	// The existence check passes but the insert hits the unique index.
	subRepo := &fakeSubmissionRepo{createErr: apperr.Conflict("submission already exists for this checklist and employee")}
	u := newUsecase(subRepo, &fakeEmailUsecase{})

	_, err := u.Submit("c1", SubmitRequest{Name: "Jane", MitarbeiterID: "EMP-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSubmitUnknownChecklistIsNotFound(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})

	_, err := u.Submit("missing", SubmitRequest{Name: "Jane", MitarbeiterID: "EMP-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitDeliveryFailurePersistsNothing(t *testing.T) {
	subRepo := &fakeSubmissionRepo{}
	emailUc := &fakeEmailUsecase{err: apperr.Wrap(apperr.KindDelivery, "send failed", errors.New("boom"))}
	u := newUsecase(subRepo, emailUc)

	_, err := u.Submit("c1", SubmitRequest{Name: "Jane", MitarbeiterID: "EMP-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindDelivery, apperr.KindOf(err))
	assert.Empty(t, subRepo.submissions)
}

func TestSubmitMissingIdentityIsValidation(t *testing.T) {
	u := newUsecase(&fakeSubmissionRepo{}, &fakeEmailUsecase{})

	_, err := u.Submit("c1", SubmitRequest{Name: "", MitarbeiterID: ""})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
