// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"

	"github.com/arvana/storefront/internal/storefront/session"
)

type visitorKey struct{}

// WithVisitor returns ctx carrying visitor.
func WithVisitor(ctx context.Context, visitor *session.Visitor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if visitor == nil {
		return ctx
	}
	return context.WithValue(ctx, visitorKey{}, visitor)
}

// Visitor returns the visitor stored in ctx.
func Visitor(ctx context.Context) (*session.Visitor, bool) {
	if ctx == nil {
		return nil, false
	}
	visitor, ok := ctx.Value(visitorKey{}).(*session.Visitor)
	return visitor, ok && visitor != nil
}

// RequestVisitor returns the visitor resolved for r.
func RequestVisitor(r *http.Request) (*session.Visitor, bool) {
	if r == nil {
		return nil, false
	}
	return Visitor(r.Context())
}
