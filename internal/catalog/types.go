package catalog

import "errors"

// QuestionsPerPage is the fixed page size for every listing endpoint.
const QuestionsPerPage = 10

// AllCategories is the reserved category id meaning "no category filter"
// on quiz draws.
const AllCategories = 0

// Typed failures raised by the store and selector, translated to HTTP
// statuses at the handler boundary.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
)

// Question is a catalog entry. Category references a Category id but is
// deliberately not enforced as a foreign key; the catalog tolerates
// dangling references.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is static reference data seeded at setup time. The API never
// creates or mutates categories.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// InsertParams carries an already-validated question for the store.
type InsertParams struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}
