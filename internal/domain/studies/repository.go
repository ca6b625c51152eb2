package studies

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	FamilyExists(ctx context.Context, familyID string) (bool, error)

	CreateStudy(ctx context.Context, study *Study) error
	GetStudyByID(ctx context.Context, studyID string) (*Study, error)
	GetStudyByFamily(ctx context.Context, familyID string) (*Study, error)
	ListStudies(ctx context.Context, filter ListFilter) ([]Study, error)
	UpdateStudyStatus(ctx context.Context, studyID, status string) error

	CreateAnswers(ctx context.Context, answers []Answer) error
	GetAnswerByID(ctx context.Context, answerID string) (*Answer, error)
	ListAnswersByStudy(ctx context.Context, studyID string) ([]Answer, error)
	UpdateAnswer(ctx context.Context, answer *Answer) error
	DeleteAnswer(ctx context.Context, answerID string) (bool, error)
	CountAnswersByStudy(ctx context.Context, studyID string) (int64, error)

	CreateFeedback(ctx context.Context, feedback *Feedback) error
	ListFeedbackByStudy(ctx context.Context, studyID string) ([]Feedback, error)
}
