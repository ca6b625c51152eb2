package catalog

import (
	"errors"
	"testing"
)

func testSections() []Section {
	return []Section{
		{
			ID:     "sec-6",
			Numero: 6,
			Name:   "Economía familiar",
			Subsections: []Subsection{
				{
					ID:        "sub-6-1",
					SectionID: "sec-6",
					Numero:    1,
					Name:      "Situación económica",
					Questions: []Question{
						{ID: "q-debt", SubsectionID: "sub-6-1", Text: "¿La familia tiene deudas?", Orden: 2},
						{
							ID:           "q-motive",
							SubsectionID: "sub-6-1",
							Text:         "Motivo de la solicitud",
							Orden:        1,
							Options: []AnswerOption{
								{ID: "opt-econ", QuestionID: "q-motive", Text: "Económico"},
								{ID: "opt-acad", QuestionID: "q-motive", Text: "Académico"},
							},
						},
					},
				},
			},
		},
		{
			ID:     "sec-1",
			Numero: 1,
			Name:   "Datos generales",
			Subsections: []Subsection{
				{
					ID:        "sub-1-1",
					SectionID: "sec-1",
					Numero:    1,
					Name:      "Identificación",
					Questions: []Question{
						{ID: "q-addr", SubsectionID: "sub-1-1", Text: "Dirección", Orden: 1},
					},
				},
			},
		},
		{
			ID:     "sec-4",
			Numero: 4,
			Name:   "Vivienda",
			Subsections: []Subsection{
				{
					ID:        "sub-4-1",
					SectionID: "sec-4",
					Numero:    1,
					Name:      "Características",
					Questions: []Question{
						{ID: "q-rooms", SubsectionID: "sub-4-1", Text: "Habitaciones", Orden: 1, PerMember: true},
					},
				},
			},
		},
	}
}

func TestNewOrdersSectionsAndQuestions(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sections := cat.Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Numero != 1 || sections[1].Numero != 4 || sections[2].Numero != 6 {
		t.Fatalf("expected sections ordered 1,4,6, got %d,%d,%d", sections[0].Numero, sections[1].Numero, sections[2].Numero)
	}

	// Questions inside a subsection come back in orden order.
	section, err := cat.Section(6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	questions := section.Subsections[0].Questions
	if questions[0].ID != "q-motive" || questions[1].ID != "q-debt" {
		t.Fatalf("expected questions ordered by orden, got %s,%s", questions[0].ID, questions[1].ID)
	}
}

func TestNewEmptyCatalog(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestNextSectionSkipsGaps(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	next, ok := cat.NextSection(4)
	if !ok || next != 6 {
		t.Fatalf("expected successor of 4 to be 6, got %d ok=%v", next, ok)
	}

	next, ok = cat.NextSection(1)
	if !ok || next != 4 {
		t.Fatalf("expected successor of 1 to be 4, got %d ok=%v", next, ok)
	}

	if _, ok := cat.NextSection(6); ok {
		t.Fatalf("expected no successor after the last section")
	}
	if _, ok := cat.NextSection(2); ok {
		t.Fatalf("expected no successor for an unknown numero")
	}
}

func TestIsLast(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cat.IsLast(6) {
		t.Fatalf("expected 6 to be the last section")
	}
	if cat.IsLast(4) {
		t.Fatalf("expected 4 not to be the last section")
	}
}

func TestSectionNotFound(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := cat.Section(5); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestQuestionIDsFollowCatalogOrder(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ids := cat.QuestionIDs()
	want := []string{"q-addr", "q-rooms", "q-motive", "q-debt"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d question ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected question %d to be %s, got %s", i, want[i], ids[i])
		}
	}
	if cat.QuestionCount() != 4 {
		t.Fatalf("expected 4 questions, got %d", cat.QuestionCount())
	}
}

func TestHasOption(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cat.HasOption("q-motive", "opt-econ") {
		t.Fatalf("expected opt-econ to belong to q-motive")
	}
	if cat.HasOption("q-debt", "opt-econ") {
		t.Fatalf("expected opt-econ not to belong to q-debt")
	}
	if cat.HasOption("missing", "opt-econ") {
		t.Fatalf("expected unknown question to have no options")
	}
}

func TestQuestionNotFound(t *testing.T) {
	cat, err := New(testSections())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := cat.Question("missing"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
