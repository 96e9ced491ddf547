package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedQuestions(n int) []Question {
	questions := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   i%6 + 1,
			Difficulty: i%5 + 1,
		})
	}
	return questions
}

func TestPaginateSlicesFixedPages(t *testing.T) {
	questions := seedQuestions(19)

	page1 := Paginate(questions, 1)
	assert.Len(t, page1, 10)
	assert.Equal(t, 1, page1[0].ID)
	assert.Equal(t, 10, page1[9].ID)

	page2 := Paginate(questions, 2)
	assert.Len(t, page2, 9)
	assert.Equal(t, 11, page2[0].ID)
	assert.Equal(t, 19, page2[8].ID)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	questions := seedQuestions(19)

	assert.Empty(t, Paginate(questions, 3))
	assert.Empty(t, Paginate(questions, 100))
	assert.Empty(t, Paginate(nil, 1))
}

func TestPaginateDefaultsInvalidPageToFirst(t *testing.T) {
	questions := seedQuestions(12)

	assert.Equal(t, Paginate(questions, 1), Paginate(questions, 0))
	assert.Equal(t, Paginate(questions, 1), Paginate(questions, -3))
}

func TestPaginateConcatenationReconstructsSequence(t *testing.T) {
	questions := seedQuestions(37)

	var rebuilt []Question
	for page := 1; ; page++ {
		chunk := Paginate(questions, page)
		if len(chunk) == 0 {
			break
		}
		assert.LessOrEqual(t, len(chunk), QuestionsPerPage)
		rebuilt = append(rebuilt, chunk...)
	}

	assert.Equal(t, questions, rebuilt, "pages concatenated in order must have no gaps or duplicates")
}
