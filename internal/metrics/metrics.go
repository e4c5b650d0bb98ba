package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dailyhome_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dailyhome_registrations_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	postsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dailyhome_posts_created_total",
		Help: "Number of board posts created.",
	})

	commentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dailyhome_comments_created_total",
		Help: "Number of comments created.",
	})

	diaryWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dailyhome_diary_writes_total",
		Help: "Number of diary entries written or updated.",
	})

	todoReschedules = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dailyhome_todo_reschedules_total",
		Help: "Number of todo reschedules grouped by resulting status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dailyhome_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRegistration increments the registration counter.
func IncRegistration(status string) {
	registrations.WithLabelValues(status).Inc()
}

// IncPostCreated increments the created-posts counter.
func IncPostCreated() {
	postsCreated.Inc()
}

// IncCommentCreated increments the created-comments counter.
func IncCommentCreated() {
	commentsCreated.Inc()
}

// IncDiaryWrite increments the diary-writes counter.
func IncDiaryWrite() {
	diaryWrites.Inc()
}

// IncTodoReschedule increments the reschedule counter.
func IncTodoReschedule(status string) {
	todoReschedules.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
