package fwtype

import (
	"github.com/hnimtadd/fwtype/layout/geometry"
	"github.com/hnimtadd/fwtype/layout/pagelist"
	"github.com/hnimtadd/fwtype/layout/render"
	"github.com/hnimtadd/fwtype/logger"
)

var _ pagelist.Handler = (*PageHandler)(nil)

// PageHandler draws the pages of one input as the paginator completes
// them. All pages of an input share its geometry.
type PageHandler struct {
	renderer *render.Renderer
	geometry geometry.Geometry
	logger   logger.Logger
}

func (h *PageHandler) HandlePage(p *pagelist.Page) error {
	h.logger.Debug("rendering page",
		"page", p.Index,
		"offset", p.Offset,
		"rows", p.Len(),
		"height", p.Height,
	)
	return h.renderer.Page(h.geometry, p)
}
