package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// responseWriter holds the body back until the handler chain is done so the
// tag can be computed before anything reaches the client.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *responseWriter) WriteHeaderNow() {}

// ETagMiddleware tags successful GET responses and answers 304 Not Modified
// when the client already holds the current representation.
func ETagMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		original := c.Writer
		writer := &responseWriter{
			ResponseWriter: original,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer
		defer func() { c.Writer = original }()

		c.Next()

		if original.Status() != http.StatusOK {
			original.Write(writer.body.Bytes())
			return
		}

		etag := ETag(writer.body.Bytes())
		original.Header().Set("ETag", etag)
		if Matches(c.GetHeader("If-None-Match"), etag) {
			original.Header().Del("Content-Type")
			original.Header().Del("Content-Length")
			original.WriteHeader(http.StatusNotModified)
			original.WriteHeaderNow()
			return
		}

		original.Write(writer.body.Bytes())
	}
}
