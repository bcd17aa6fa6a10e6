package transport

import "context"

// Transport performs JSON requests against the service. Implementations resolve
// path against their base URL, decode a successful response into out and report
// every failure as an error the caller receives unchanged.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Logger defines a standard interface for structured, leveled logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type routeKey struct{}

// WithRoute tags ctx with a low-cardinality name for the request about to be made.
// It is used as the metrics label in place of the concrete path, which may embed
// addresses.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

func routeFrom(ctx context.Context) (string, bool) {
	route, ok := ctx.Value(routeKey{}).(string)
	return route, ok && route != ""
}
