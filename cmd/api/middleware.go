package main

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every response with a request ID, reusing the
// caller's when present, and logs the request once it completes
func (app *App) requestIDMiddleware(ctx huma.Context, next func(huma.Context)) {
	id := ctx.Header(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.SetHeader(requestIDHeader, id)

	start := time.Now()
	next(ctx)

	u := ctx.URL()
	app.logger.Info("request handled",
		"request_id", id,
		"method", ctx.Method(),
		"path", u.Path,
		"status", ctx.Status(),
		"duration", time.Since(start),
	)
}
