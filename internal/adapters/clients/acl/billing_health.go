package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *BillingClient) Name() string {
	return BillingServiceName
}

// HealthCheck reports the billing API as failing while its circuit breaker is
// open and degraded while half-open. No network call is made.
func (c *BillingClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
