package paper

// Reconcile aligns every section's question list with its configured
// QuestionCount and Type. Short lists grow with default questions
// appended at the end; long lists truncate from the end, discarding the
// excess — shrink is a deliberate, destructive operation. Existing
// questions keep their identity and position, but their option lists are
// reshaped to the section type: multiple-choice questions without options
// get the placeholder set, and any other type has options cleared.
// Reconcile is idempotent: when every list already matches, nothing
// changes.
//
// Callers gate this behind metadata validation; see workspace.EnterBuilder.
func Reconcile(p *Paper) {
	for _, s := range p.Sections {
		switch {
		case len(s.Questions) < s.QuestionCount:
			for len(s.Questions) < s.QuestionCount {
				s.Questions = append(s.Questions, NewDefaultQuestion(s.Type))
			}
		case len(s.Questions) > s.QuestionCount:
			s.Questions = s.Questions[:s.QuestionCount]
		}

		for _, q := range s.Questions {
			if s.Type == TypeMultipleChoice {
				if len(q.Options) == 0 {
					q.Options = DefaultOptions()
				}
			} else {
				q.Options = nil
			}
		}
	}
}
