package studies

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func answerFor(t *testing.T, repo *fakeStudiesRepo, studyID, questionID string) *Answer {
	t.Helper()
	for _, answer := range repo.answers {
		if answer.StudyID == studyID && answer.QuestionID == questionID {
			return answer
		}
	}
	t.Fatalf("no answer for question %s", questionID)
	return nil
}

func TestLoadSection(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	view, err := svc.LoadSection(context.Background(), study.ID, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if view.Numero != 1 || view.Name != "Datos generales" {
		t.Fatalf("unexpected section header: %+v", view)
	}
	if view.NextNumero == nil || *view.NextNumero != 4 {
		t.Fatalf("expected next section 4, got %v", view.NextNumero)
	}
	if view.Last {
		t.Fatalf("expected section 1 not to be last")
	}
	if len(view.Subsections) != 1 {
		t.Fatalf("expected 1 subsection, got %d", len(view.Subsections))
	}

	questions := view.Subsections[0].Questions
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	for _, question := range questions {
		if len(question.Answers) != 1 {
			t.Fatalf("expected 1 seeded answer for %s, got %d", question.QuestionID, len(question.Answers))
		}
	}
	if len(questions[1].Options) != 2 {
		t.Fatalf("expected options attached, got %d", len(questions[1].Options))
	}
}

func TestLoadSectionLast(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	view, err := svc.LoadSection(context.Background(), study.ID, 6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.Last || view.NextNumero != nil {
		t.Fatalf("expected 6 to be the last section, got last=%v next=%v", view.Last, view.NextNumero)
	}
}

func TestLoadSectionUnknownNumero(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	_, err := svc.LoadSection(context.Background(), study.ID, 5)
	if err == nil {
		t.Fatalf("expected an error for a numero outside the catalog")
	}
}

func TestSubmitSectionSavesAndAdvances(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	addr := answerFor(t, repo, study.ID, "q-addr")
	house := answerFor(t, repo, study.ID, "q-house")
	optionID := "opt-own"

	result, err := svc.SubmitSection(context.Background(), study.ID, 1, []AnswerEdit{
		{AnswerID: addr.ID, Text: "Calle 5 #12"},
		{AnswerID: house.ID, OptionID: &optionID},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Saved != 2 || len(result.Errors) != 0 {
		t.Fatalf("expected both answers saved, got %+v", result)
	}
	if result.NextNumero == nil || *result.NextNumero != 4 {
		t.Fatalf("expected next section 4, got %v", result.NextNumero)
	}
	if repo.answers[addr.ID].Text != "Calle 5 #12" {
		t.Fatalf("expected text persisted, got %q", repo.answers[addr.ID].Text)
	}
	if repo.answers[house.ID].OptionID == nil || *repo.answers[house.ID].OptionID != optionID {
		t.Fatalf("expected option persisted")
	}
}

// A submission moving past section 4 lands on 6: the catalog has no section 5
// and traversal follows the seeded sequence, not arithmetic.
func TestSubmitSectionNonContiguousSuccessor(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	rooms := answerFor(t, repo, study.ID, "q-rooms")

	result, err := svc.SubmitSection(context.Background(), study.ID, 4, []AnswerEdit{
		{AnswerID: rooms.ID, Text: "3"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.NextNumero == nil || *result.NextNumero != 6 {
		t.Fatalf("expected successor of 4 to be 6, got %v", result.NextNumero)
	}
}

func TestSubmitSectionLastCompletes(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	motive := answerFor(t, repo, study.ID, "q-motive")

	result, err := svc.SubmitSection(context.Background(), study.ID, 6, []AnswerEdit{
		{AnswerID: motive.ID, Text: "Ingresos insuficientes"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Completed || result.NextNumero != nil {
		t.Fatalf("expected completion on the last section, got %+v", result)
	}
}

// One bad edit collects an error while its siblings still persist.
func TestSubmitSectionPartialSave(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	addr := answerFor(t, repo, study.ID, "q-addr")
	house := answerFor(t, repo, study.ID, "q-house")
	wrongOption := "opt-unknown"

	result, err := svc.SubmitSection(context.Background(), study.ID, 1, []AnswerEdit{
		{AnswerID: addr.ID, Text: "Calle 5 #12"},
		{AnswerID: house.ID, OptionID: &wrongOption},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Saved != 1 {
		t.Fatalf("expected 1 saved answer, got %d", result.Saved)
	}
	if len(result.Errors) != 1 || result.Errors[0].AnswerID != house.ID {
		t.Fatalf("expected an error for the bad option, got %+v", result.Errors)
	}
	if repo.answers[addr.ID].Text != "Calle 5 #12" {
		t.Fatalf("expected sibling answer to persist despite the error")
	}
}

func TestSubmitSectionRejectsLongText(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	addr := answerFor(t, repo, study.ID, "q-addr")

	result, err := svc.SubmitSection(context.Background(), study.ID, 1, []AnswerEdit{
		{AnswerID: addr.ID, Text: strings.Repeat("a", maxAnswerTextLen+1)},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Saved != 0 || len(result.Errors) != 1 {
		t.Fatalf("expected the oversized answer rejected, got %+v", result)
	}
}

func TestSubmitSectionRejectsForeignAnswer(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")
	other := createDraft(t, svc, repo, "fam-2")

	foreign := answerFor(t, repo, other.ID, "q-addr")

	result, err := svc.SubmitSection(context.Background(), study.ID, 1, []AnswerEdit{
		{AnswerID: foreign.ID, Text: "hijacked"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Saved != 0 || len(result.Errors) != 1 {
		t.Fatalf("expected the foreign answer rejected, got %+v", result)
	}
	if repo.answers[foreign.ID].Text != "" {
		t.Fatalf("expected the foreign answer untouched")
	}
}

func TestSubmitSectionNotEditable(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")
	repo.studies[study.ID].Status = StatusUnderReview

	_, err := svc.SubmitSection(context.Background(), study.ID, 1, nil)
	if !errors.Is(err, ErrStudyNotEditable) {
		t.Fatalf("expected ErrStudyNotEditable, got %v", err)
	}
}

func TestSubmitSectionEditableAfterRejection(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")
	repo.studies[study.ID].Status = StatusRejected

	addr := answerFor(t, repo, study.ID, "q-addr")
	result, err := svc.SubmitSection(context.Background(), study.ID, 1, []AnswerEdit{
		{AnswerID: addr.ID, Text: "Calle nueva"},
	})
	if err != nil {
		t.Fatalf("expected rejected study to stay editable, got %v", err)
	}
	if result.Saved != 1 {
		t.Fatalf("expected 1 saved answer, got %d", result.Saved)
	}
}

func TestAddAndRemoveAnswer(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	answer, err := svc.AddAnswer(context.Background(), study.ID, "q-rooms")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	count, _ := repo.CountAnswersByStudy(context.Background(), study.ID)
	if count != 5 {
		t.Fatalf("expected 5 answers after add, got %d", count)
	}

	if err := svc.RemoveAnswer(context.Background(), answer.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.RemoveAnswer(context.Background(), answer.ID); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("expected ErrAnswerNotFound, got %v", err)
	}
}

func TestAddAnswerUnknownQuestion(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")

	_, err := svc.AddAnswer(context.Background(), study.ID, "q-missing")
	if err == nil {
		t.Fatalf("expected an error for an unknown question")
	}
}

func TestAddAnswerNotEditable(t *testing.T) {
	repo := newFakeStudiesRepo()
	svc, _, _ := newTestService(t, repo)
	study := createDraft(t, svc, repo, "fam-1")
	repo.studies[study.ID].Status = StatusApproved

	_, err := svc.AddAnswer(context.Background(), study.ID, "q-rooms")
	if !errors.Is(err, ErrStudyNotEditable) {
		t.Fatalf("expected ErrStudyNotEditable, got %v", err)
	}
}
