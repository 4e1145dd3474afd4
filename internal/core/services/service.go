package services

import "context"

// Service is a single application use case. Decorators such as
// authentication and rate limiting wrap one Service into another.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
