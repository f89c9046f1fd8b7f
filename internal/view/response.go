package view

import (
	"encoding/json"
	"net/http"

	"codeberg.org/algorave/viewkit/internal/logger"
	"github.com/gin-gonic/gin"
)

const fallbackBody = `{"title":"Server Error","message":"Please contact developer.","errors":null}`

// Response is the transport envelope produced by a Handler
type Response struct {
	Status      int
	ContentType string
	Body        any
}

// encodes the body; failures degrade to a fixed server error body
func (r *Response) encode() (int, []byte) {
	b, err := json.Marshal(r.Body)
	if err != nil {
		logger.ErrorErr(err, "failed to encode response body", "status", r.Status)
		return http.StatusInternalServerError, []byte(fallbackBody)
	}

	return r.Status, b
}

// Render writes the response through gin
func (r *Response) Render(c *gin.Context) {
	if r == nil {
		return
	}

	status, body := r.encode()
	c.Data(status, r.ContentType, body)
}

// Write writes the response to a plain http.ResponseWriter
func (r *Response) Write(w http.ResponseWriter) error {
	if r == nil {
		return nil
	}

	status, body := r.encode()

	w.Header().Set("Content-Type", r.ContentType)
	w.WriteHeader(status)

	_, err := w.Write(body)
	return err
}
