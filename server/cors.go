package server

import (
	"net/http"

	"github.com/go-zoox/headers"
	"github.com/go-zoox/zoox"
)

// cors allows the configured frontend origin on every response, the origin
// comes from FRONTEND_ORIGIN (a GitHub Pages site in the default deployment).
func cors(origin string) zoox.HandlerFunc {
	return func(ctx *zoox.Context) {
		ctx.Set(headers.AccessControlAllowOrigin, origin)
		ctx.Set(headers.AccessControlAllowMethods, "GET,POST,OPTIONS")
		ctx.Set(headers.AccessControlAllowHeaders, "Content-Type,Authorization")

		if ctx.Request.Method == http.MethodOptions {
			ctx.Status(204)
			return
		}

		ctx.Next()
	}
}
