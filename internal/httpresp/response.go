// Package httpresp holds the success-side response envelopes. The
// error side lives in httperr.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps collection payloads so clients always get an
// explicit count next to the data.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// OK renders data as-is with a 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List renders a collection inside a ListResponse envelope.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
