package ports

import "context"

// HealthChecker is a dependency the readiness probe reports on, such as the
// postgres pool or the billing API client.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness response.
	Name() string
	// HealthCheck returns nil when the dependency can serve requests.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
