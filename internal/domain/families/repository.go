package families

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateFamily(ctx context.Context, family *Family) error
	GetFamilyByID(ctx context.Context, familyID string) (*Family, error)
	UpdateFamily(ctx context.Context, family *Family) error
	ListFamilies(ctx context.Context) ([]Family, error)

	CreateMember(ctx context.Context, member *Member) error
	GetMemberByID(ctx context.Context, familyID, memberID string) (*Member, error)
	ListMembersByFamily(ctx context.Context, familyID string) ([]Member, error)
	GetStudentsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]Student, error)
	GetTutorsByMemberIDs(ctx context.Context, memberIDs []string) (map[string]Tutor, error)
	CreateStudent(ctx context.Context, student *Student) error
	CreateTutor(ctx context.Context, tutor *Tutor) error

	DeactivateMembersByFamily(ctx context.Context, familyID string) error
	DeactivateStudentsByFamily(ctx context.Context, familyID string) error

	CreateComment(ctx context.Context, comment *Comment) error
	ListCommentsByFamily(ctx context.Context, familyID string) ([]Comment, error)
}
