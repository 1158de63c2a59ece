package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var requestDataKey ctxKey

// RequestData is the per-request identity resolved from a verified token.
// It lives on the request context and is never persisted.
type RequestData struct {
	UserID      uuid.UUID
	Email       string
	TokenString string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
