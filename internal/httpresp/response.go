package httpresp

import "github.com/gin-gonic/gin"

// ListResponse mirrors the envelope the central API uses for its own
// collections, so the web UI reads both the same way.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
