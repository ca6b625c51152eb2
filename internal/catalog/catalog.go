package catalog

import "sort"

// Catalog is the immutable in-memory index over the seeded rows. It is built
// once at startup and shared read-only afterwards.
type Catalog struct {
	sections    []Section
	byNumero    map[int]*Section
	questions   map[string]*Question
	questionIDs []string
}

func New(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCatalog
	}

	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Numero < ordered[j].Numero
	})

	c := &Catalog{
		sections:  ordered,
		byNumero:  make(map[int]*Section, len(ordered)),
		questions: make(map[string]*Question),
	}

	for i := range c.sections {
		section := &c.sections[i]
		c.byNumero[section.Numero] = section

		sort.Slice(section.Subsections, func(a, b int) bool {
			return section.Subsections[a].Numero < section.Subsections[b].Numero
		})

		for j := range section.Subsections {
			subsection := &section.Subsections[j]
			sort.Slice(subsection.Questions, func(a, b int) bool {
				return subsection.Questions[a].Orden < subsection.Questions[b].Orden
			})

			for k := range subsection.Questions {
				question := &subsection.Questions[k]
				c.questions[question.ID] = question
				c.questionIDs = append(c.questionIDs, question.ID)
			}
		}
	}

	return c, nil
}

func (c *Catalog) Sections() []Section {
	return c.sections
}

func (c *Catalog) Section(numero int) (*Section, error) {
	section, ok := c.byNumero[numero]
	if !ok {
		return nil, ErrSectionNotFound
	}
	return section, nil
}

func (c *Catalog) Question(questionID string) (*Question, error) {
	question, ok := c.questions[questionID]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// QuestionIDs returns every question id in catalog order. The studies domain
// seeds one answer per id when a study is created.
func (c *Catalog) QuestionIDs() []string {
	ids := make([]string, len(c.questionIDs))
	copy(ids, c.questionIDs)
	return ids
}

func (c *Catalog) QuestionCount() int {
	return len(c.questionIDs)
}

// NextSection returns the section number following numero in ascending order.
// Section numbers are not contiguous, so this walks the observed sequence
// rather than incrementing.
func (c *Catalog) NextSection(numero int) (int, bool) {
	for i := range c.sections {
		if c.sections[i].Numero == numero {
			if i+1 < len(c.sections) {
				return c.sections[i+1].Numero, true
			}
			return 0, false
		}
	}
	return 0, false
}

func (c *Catalog) IsLast(numero int) bool {
	if len(c.sections) == 0 {
		return false
	}
	return c.sections[len(c.sections)-1].Numero == numero
}

// HasOption reports whether optionID is one of questionID's answer options.
func (c *Catalog) HasOption(questionID, optionID string) bool {
	question, ok := c.questions[questionID]
	if !ok {
		return false
	}
	for _, option := range question.Options {
		if option.ID == optionID {
			return true
		}
	}
	return false
}
