package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/httpresp"
)

type BranchesHandler struct {
	registry *branches.Registry
}

func NewBranchesHandler(registry *branches.Registry) *BranchesHandler {
	return &BranchesHandler{registry: registry}
}

// List backs the branch-picker page.
func (h *BranchesHandler) List(c *gin.Context) {
	httpresp.List(c, h.registry.All())
}
