package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsTotal counts HTTP requests by route pattern and status class.
var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_http_requests_total",
	Help: "HTTP requests served, by method, route and status code.",
}, []string{"method", "route", "status"})

// QuizDrawsTotal counts quiz question draws, split by outcome so an
// exhausted session is visible separately from a served question.
var QuizDrawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_quiz_draws_total",
	Help: "Quiz question draws, by outcome (served or exhausted).",
}, []string{"outcome"})
