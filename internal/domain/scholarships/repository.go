package scholarships

import "context"

type Repository interface {
	CreateScholarship(ctx context.Context, scholarship *Scholarship) error
	GetScholarshipByStudy(ctx context.Context, studyID string) (*Scholarship, error)
	StudentExists(ctx context.Context, memberID string) (bool, error)
}
