package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCatalogRepo struct {
	sections []Section
}

func (r *fakeCatalogRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeCatalogRepo) CountSections(ctx context.Context) (int64, error) {
	return int64(len(r.sections)), nil
}

func (r *fakeCatalogRepo) ListSections(ctx context.Context) ([]Section, error) {
	return r.sections, nil
}

func (r *fakeCatalogRepo) CreateSections(ctx context.Context, sections []Section) error {
	r.sections = append(r.sections, sections...)
	return nil
}

const fixtureJSON = `{
	"sections": [
		{
			"numero": 4,
			"name": "Vivienda",
			"subsections": [
				{
					"numero": 1,
					"name": "Características",
					"questions": [
						{"text": "Habitaciones", "orden": 1},
						{"text": "Tipo de vivienda", "orden": 2, "options": ["Propia", "Rentada"]}
					]
				}
			]
		},
		{
			"numero": 6,
			"name": "Economía",
			"subsections": [
				{
					"numero": 1,
					"name": "Situación",
					"questions": [
						{"text": "Motivo", "orden": 1, "per_member": true}
					]
				}
			]
		}
	]
}`

func TestParseFixture(t *testing.T) {
	sections, err := ParseFixture([]byte(fixtureJSON))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	questions := sections[0].Subsections[0].Questions
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID == "" || questions[0].SubsectionID != sections[0].Subsections[0].ID {
		t.Fatalf("expected generated ids to link questions to their subsection")
	}
	if len(questions[1].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(questions[1].Options))
	}
	if questions[1].Options[0].QuestionID != questions[1].ID {
		t.Fatalf("expected options to link back to their question")
	}
	if !sections[1].Subsections[0].Questions[0].PerMember {
		t.Fatalf("expected per_member flag to carry over")
	}
}

func TestParseFixtureRejectsDuplicateNumero(t *testing.T) {
	contents := `{"sections": [
		{"numero": 1, "name": "A"},
		{"numero": 1, "name": "B"}
	]}`

	_, err := ParseFixture([]byte(contents))
	if err == nil || !strings.Contains(err.Error(), "duplicate section numero") {
		t.Fatalf("expected duplicate numero error, got %v", err)
	}
}

func TestParseFixtureRejectsNonPositiveNumero(t *testing.T) {
	contents := `{"sections": [{"numero": 0, "name": "A"}]}`

	_, err := ParseFixture([]byte(contents))
	if err == nil || !strings.Contains(err.Error(), "numero must be positive") {
		t.Fatalf("expected positive numero error, got %v", err)
	}
}

func TestParseFixtureEmpty(t *testing.T) {
	_, err := ParseFixture([]byte(`{"sections": []}`))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestLoadUsesSeededRows(t *testing.T) {
	repo := &fakeCatalogRepo{sections: testSections()}

	cat, err := Load(context.Background(), repo, "ignored.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cat.QuestionCount() != 4 {
		t.Fatalf("expected catalog built from seeded rows, got %d questions", cat.QuestionCount())
	}
}
