package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxLoggedBodyBytes caps how much of a request body ends up in the log
const maxLoggedBodyBytes = 4096

// RequestLogger logs every inbound request's method, path and JSON body.
// The body is read and restored so handlers can still bind it.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path)

		if c.Request.Body != nil && c.ContentType() == "application/json" {
			body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBodyBytes))
			if err == nil {
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
				if len(body) > 0 {
					event = event.Str("body", string(body))
				}
			}
		}

		event.Msg("Request")
		c.Next()
	}
}
