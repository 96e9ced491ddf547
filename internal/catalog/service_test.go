package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListAll(ctx context.Context) ([]Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Question), args.Error(1)
}

func (m *mockQuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]Question), args.Error(1)
}

func (m *mockQuestionStore) Search(ctx context.Context, term string) ([]Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]Question), args.Error(1)
}

func (m *mockQuestionStore) Insert(ctx context.Context, params InsertParams) (Question, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Question), args.Error(1)
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockQuestionStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Category), args.Error(1)
}

func (m *mockCategoryStore) Get(ctx context.Context, id int) (Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Category), args.Error(1)
}

func newTestService(questions *mockQuestionStore, categories *mockCategoryStore) *Service {
	return NewService(questions, categories, zerolog.Nop())
}

func TestListQuestionsReturnsPageAndGlobalTotal(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	all := seedQuestions(19)
	cats := []Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}

	questions.On("ListAll", mock.Anything).Return(all, nil)
	categories.On("List", mock.Anything).Return(cats, nil)

	svc := newTestService(questions, categories)

	page, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 9)
	assert.Equal(t, 19, page.TotalQuestions)
	assert.Equal(t, cats, page.Categories)
	questions.AssertExpectations(t)
}

func TestListQuestionsEmptyPageIsNotFound(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	questions.On("ListAll", mock.Anything).Return(seedQuestions(19), nil)

	svc := newTestService(questions, categories)

	_, err := svc.ListQuestions(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
	categories.AssertNotCalled(t, "List", mock.Anything)
}

func TestSearchQuestionsToleratesEmptyResult(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	questions.On("Search", mock.Anything, "Lekki").Return([]Question{}, nil)

	svc := newTestService(questions, categories)

	result, err := svc.SearchQuestions(context.Background(), "Lekki", 1)
	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Zero(t, result.TotalQuestions)
}

func TestSearchQuestionsTotalIsMatchedSetSize(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	matched := seedQuestions(14)
	questions.On("Search", mock.Anything, "what").Return(matched, nil)

	svc := newTestService(questions, categories)

	result, err := svc.SearchQuestions(context.Background(), "what", 2)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 4)
	assert.Equal(t, 14, result.TotalQuestions)
}

func TestListByCategoryUnknownCategoryIsUnprocessable(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	categories.On("Get", mock.Anything, 2000).Return(Category{}, ErrNotFound)

	svc := newTestService(questions, categories)

	_, err := svc.ListByCategory(context.Background(), 2000, 1)
	assert.ErrorIs(t, err, ErrUnprocessable)
	questions.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestListByCategoryEmptyCategoryIsZeroResults(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	categories.On("Get", mock.Anything, 3).Return(Category{ID: 3, Type: "Geography"}, nil)
	questions.On("ListByCategory", mock.Anything, 3).Return([]Question{}, nil)

	svc := newTestService(questions, categories)

	result, err := svc.ListByCategory(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "Geography", result.Category)
	assert.Empty(t, result.Questions)
	assert.Zero(t, result.TotalQuestions)
}

func TestCreateQuestionRejectsBlankFields(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	svc := newTestService(questions, categories)

	_, err := svc.CreateQuestion(context.Background(), InsertParams{
		Question: "  ",
		Answer:   "12",
		Category: 2,
	})
	assert.ErrorIs(t, err, ErrUnprocessable)
	questions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateQuestionRefreshesFirstPage(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	params := InsertParams{Question: "How many months are in a year?", Answer: "12", Category: 2, Difficulty: 1}
	created := Question{ID: 20, Question: params.Question, Answer: params.Answer, Category: 2, Difficulty: 1}

	questions.On("Insert", mock.Anything, params).Return(created, nil)
	questions.On("ListAll", mock.Anything).Return(append(seedQuestions(19), created), nil)
	questions.On("Count", mock.Anything).Return(20, nil)

	svc := newTestService(questions, categories)

	result, err := svc.CreateQuestion(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 20, result.ID)
	assert.Equal(t, 20, result.TotalQuestions)
	assert.Len(t, result.Questions, QuestionsPerPage)
	questions.AssertExpectations(t)
}

func TestDeleteQuestionUnknownIDIsUnprocessable(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	questions.On("Delete", mock.Anything, 1000).Return(ErrNotFound)

	svc := newTestService(questions, categories)

	_, err := svc.DeleteQuestion(context.Background(), 1000)
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestDeleteQuestionRefreshesListing(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	remaining := seedQuestions(18)
	questions.On("Delete", mock.Anything, 19).Return(nil)
	questions.On("ListAll", mock.Anything).Return(remaining, nil)
	questions.On("Count", mock.Anything).Return(18, nil)

	svc := newTestService(questions, categories)

	result, err := svc.DeleteQuestion(context.Background(), 19)
	require.NoError(t, err)
	assert.Equal(t, 19, result.ID)
	assert.Equal(t, 18, result.TotalQuestions)
	for _, q := range result.Questions {
		assert.NotEqual(t, 19, q.ID)
	}
}

func TestNextQuizQuestionExcludesHistory(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	pool := seedQuestions(5)
	questions.On("ListAll", mock.Anything).Return(pool, nil)

	svc := newTestService(questions, categories)
	previous := []int{1, 2, 3}

	for i := 0; i < 25; i++ {
		next, err := svc.NextQuizQuestion(context.Background(), AllCategories, previous)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.NotContains(t, previous, next.ID)
	}
}

func TestNextQuizQuestionExhaustionIsSuccess(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	questions.On("ListByCategory", mock.Anything, 6).Return(seedQuestions(2), nil)

	svc := newTestService(questions, categories)

	next, err := svc.NextQuizQuestion(context.Background(), 6, []int{1, 2})
	require.NoError(t, err)
	assert.Nil(t, next, "exhausted pool yields no question, not an error")
}

func TestNextQuizQuestionFilteredByStoreCategory(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	questions.On("ListByCategory", mock.Anything, 4).Return(seedQuestions(3), nil)

	svc := newTestService(questions, categories)

	next, err := svc.NextQuizQuestion(context.Background(), 4, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	questions.AssertCalled(t, "ListByCategory", mock.Anything, 4)
	questions.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestStoreFailuresSurfaceAsInternal(t *testing.T) {
	questions := new(mockQuestionStore)
	categories := new(mockCategoryStore)
	dbErr := errors.New("db down")
	questions.On("ListAll", mock.Anything).Return([]Question(nil), dbErr)

	svc := newTestService(questions, categories)

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}
