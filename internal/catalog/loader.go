package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CountSections(ctx context.Context) (int64, error)
	ListSections(ctx context.Context) ([]Section, error)
	CreateSections(ctx context.Context, sections []Section) error
}

type fixtureQuestion struct {
	Text      string   `json:"text"`
	Orden     int      `json:"orden"`
	PerMember bool     `json:"per_member"`
	Options   []string `json:"options"`
}

type fixtureSubsection struct {
	Numero    int               `json:"numero"`
	Name      string            `json:"name"`
	Questions []fixtureQuestion `json:"questions"`
}

type fixtureSection struct {
	Numero      int                 `json:"numero"`
	Name        string              `json:"name"`
	Subsections []fixtureSubsection `json:"subsections"`
}

type fixtureFile struct {
	Sections []fixtureSection `json:"sections"`
}

// Load builds the catalog from the store when it has already been seeded, and
// otherwise parses the fixture file, persists the rows and indexes them. The
// fixture is the deployment-time source of truth; rows are never re-seeded
// over an existing catalog.
func Load(ctx context.Context, repo Repository, fixturePath string) (*Catalog, error) {
	count, err := repo.CountSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sections: %w", err)
	}

	if count > 0 {
		sections, err := repo.ListSections(ctx)
		if err != nil {
			return nil, fmt.Errorf("list sections: %w", err)
		}
		return New(sections)
	}

	sections, err := ParseFixtureFile(fixturePath)
	if err != nil {
		return nil, err
	}

	err = repo.Transaction(ctx, func(tx Repository) error {
		return tx.CreateSections(ctx, sections)
	})
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return New(sections)
}

func ParseFixtureFile(path string) ([]Section, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(contents)
}

func ParseFixture(contents []byte) ([]Section, error) {
	var file fixtureFile
	if err := json.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(file.Sections) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int]struct{}, len(file.Sections))
	sections := make([]Section, 0, len(file.Sections))
	for _, fs := range file.Sections {
		if fs.Numero <= 0 {
			return nil, fmt.Errorf("section %q: numero must be positive", fs.Name)
		}
		if _, ok := seen[fs.Numero]; ok {
			return nil, fmt.Errorf("duplicate section numero %d", fs.Numero)
		}
		seen[fs.Numero] = struct{}{}

		section := Section{
			ID:     uuid.NewString(),
			Numero: fs.Numero,
			Name:   fs.Name,
		}

		for _, fsub := range fs.Subsections {
			subsection := Subsection{
				ID:        uuid.NewString(),
				SectionID: section.ID,
				Numero:    fsub.Numero,
				Name:      fsub.Name,
			}

			for _, fq := range fsub.Questions {
				question := Question{
					ID:           uuid.NewString(),
					SubsectionID: subsection.ID,
					Text:         fq.Text,
					Orden:        fq.Orden,
					PerMember:    fq.PerMember,
				}
				for _, text := range fq.Options {
					question.Options = append(question.Options, AnswerOption{
						ID:         uuid.NewString(),
						QuestionID: question.ID,
						Text:       text,
					})
				}
				subsection.Questions = append(subsection.Questions, question)
			}

			section.Subsections = append(section.Subsections, subsection)
		}

		sections = append(sections, section)
	}

	return sections, nil
}
