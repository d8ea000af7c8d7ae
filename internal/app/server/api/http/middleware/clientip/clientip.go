// Package clientip stashes the submitting client's network origin into the
// request context so handlers behind huma can record it.
package clientip

import (
	"context"
	"net"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const ipKey contextKey = "clientIP"

func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		addr := ctx.RemoteAddr()
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}

		// За прокси берём первый hop из X-Forwarded-For
		if fwd := ctx.Header("X-Forwarded-For"); fwd != "" {
			if i := strings.IndexByte(fwd, ','); i >= 0 {
				fwd = fwd[:i]
			}
			addr = strings.TrimSpace(fwd)
		}

		next(huma.WithContext(ctx, context.WithValue(ctx.Context(), ipKey, addr)))
	}
}

func FromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ipKey).(string)
	return ip, ok
}
