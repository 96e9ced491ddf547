package catalog

// Paginate returns the 1-indexed page of a question sequence, clipped to
// the available length. Pages past the end yield an empty slice; callers
// decide whether that is a not-found condition.
func Paginate(questions []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []Question{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
