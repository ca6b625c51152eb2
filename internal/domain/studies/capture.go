package studies

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxAnswerTextLen = 2000

// LoadSection builds the renderable view of one questionnaire section for a
// study: subsections ordered by numero, questions ordered by orden, and for
// every question the study's current answers paired with the question's
// options.
func (s *Service) LoadSection(ctx context.Context, studyID string, numero int) (*SectionView, error) {
	if _, err := s.repo.GetStudyByID(ctx, studyID); err != nil {
		return nil, err
	}

	section, err := s.catalog.Section(numero)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.ListAnswersByStudy(ctx, studyID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[string][]Answer, len(answers))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
	}

	view := SectionView{
		Numero: section.Numero,
		Name:   section.Name,
		Last:   s.catalog.IsLast(section.Numero),
	}
	if next, ok := s.catalog.NextSection(section.Numero); ok {
		view.NextNumero = &next
	}

	for _, subsection := range section.Subsections {
		sv := SubsectionView{
			Numero: subsection.Numero,
			Name:   subsection.Name,
		}
		for _, question := range subsection.Questions {
			qv := QuestionView{
				QuestionID: question.ID,
				Text:       question.Text,
				PerMember:  question.PerMember,
				Options:    question.Options,
				Answers:    byQuestion[question.ID],
			}
			if qv.Answers == nil {
				qv.Answers = []Answer{}
			}
			sv.Questions = append(sv.Questions, qv)
		}
		view.Subsections = append(view.Subsections, sv)
	}

	return &view, nil
}

// SubmitSection binds each submitted edit back to its answer row and saves
// it. Answers are validated and saved one by one, deliberately outside any
// shared transaction: a bad field collects an error for that answer while its
// siblings still persist. The result carries the next section number in
// catalog order; section numbers are not contiguous, so the successor of 4
// can be 6.
func (s *Service) SubmitSection(ctx context.Context, studyID string, numero int, edits []AnswerEdit) (*SubmitResult, error) {
	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	if !editable(study.Status) {
		return nil, ErrStudyNotEditable
	}

	section, err := s.catalog.Section(numero)
	if err != nil {
		return nil, err
	}

	result := SubmitResult{Errors: []AnswerError{}}

	for _, edit := range edits {
		if err := s.saveAnswer(ctx, studyID, edit); err != nil {
			result.Errors = append(result.Errors, AnswerError{
				AnswerID: edit.AnswerID,
				Message:  err.Error(),
			})
			continue
		}
		result.Saved++
	}

	if next, ok := s.catalog.NextSection(section.Numero); ok {
		result.NextNumero = &next
	} else {
		result.Completed = true
	}

	return &result, nil
}

func (s *Service) saveAnswer(ctx context.Context, studyID string, edit AnswerEdit) error {
	answer, err := s.repo.GetAnswerByID(ctx, edit.AnswerID)
	if err != nil {
		return err
	}
	if answer.StudyID != studyID {
		return ErrAnswerNotFound
	}

	text := strings.TrimSpace(edit.Text)
	if len(text) > maxAnswerTextLen {
		return errTextTooLong
	}

	if edit.OptionID != nil && !s.catalog.HasOption(answer.QuestionID, *edit.OptionID) {
		return errOptionMismatch
	}

	answer.Text = text
	answer.OptionID = edit.OptionID
	answer.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateAnswer(ctx, answer)
}

// AddAnswer appends one more empty answer row for a repeatable question, e.g.
// a member listing a second job.
func (s *Service) AddAnswer(ctx context.Context, studyID, questionID string) (*Answer, error) {
	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return nil, err
	}
	if !editable(study.Status) {
		return nil, ErrStudyNotEditable
	}

	if _, err := s.catalog.Question(questionID); err != nil {
		return nil, err
	}

	answer := Answer{
		ID:         uuid.NewString(),
		StudyID:    studyID,
		QuestionID: questionID,
	}

	if err := s.repo.CreateAnswers(ctx, []Answer{answer}); err != nil {
		return nil, err
	}

	return &answer, nil
}

// RemoveAnswer deletes exactly one answer row; nothing cascades from it.
func (s *Service) RemoveAnswer(ctx context.Context, answerID string) error {
	deleted, err := s.repo.DeleteAnswer(ctx, answerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAnswerNotFound
	}
	return nil
}

// Capture edits are open while the capturista still owns the study: in draft
// and after a rejection.
func editable(status string) bool {
	return status == StatusDraft || status == StatusRejected
}
