// Package pagelist slices the rows of an input into pages.
package pagelist

import (
	"fmt"

	"github.com/hnimtadd/fwtype/layout/datastruct"
	"github.com/hnimtadd/fwtype/layout/geometry"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/utils"
)

type (
	List struct {
		datastruct.IntrusiveLinkedList[*Page]
	}

	Options struct {
		// Maximum number of rows on one page.
		LinesPerPage int
	}

	PageList struct {
		// Every page emitted so far, in order.
		Pages *List

		linesPerPage int
	}
)

func NewPageList(opts Options) *PageList {
	utils.Assert(opts.LinesPerPage > 0, "lines per page must be positive")
	return &PageList{
		Pages:        &List{},
		linesPerPage: opts.LinesPerPage,
	}
}

// Paginate cuts rows into pages of at most LinesPerPage rows and hands
// each one to h in order. No rows means no pages. An error from h stops
// the pagination and is returned.
func (p *PageList) Paginate(rows row.Chunk, g geometry.Geometry, h Handler) error {
	offset := 0
	if last := p.Pages.Last; last != nil {
		offset = last.Data.Offset + last.Data.Len()
	}

	for len(rows) > 0 {
		n := min(len(rows), p.linesPerPage)
		page := &Page{
			Index:  p.Pages.Len(),
			Offset: offset,
			Rows:   rows[:n:n],
			Height: g.PageHeight(n),
		}
		p.Pages.Append(datastruct.NewNode(page))
		if err := h.HandlePage(page); err != nil {
			return fmt.Errorf("pagelist: page %d: %w", page.Index, err)
		}
		offset += n
		rows = rows[n:]
	}
	return nil
}

// Len returns the number of pages emitted.
func (p *PageList) Len() int {
	return p.Pages.Len()
}

// Rows joins the rows of all pages back together.
func (p *PageList) Rows() row.Chunk {
	var rows row.Chunk
	for page := range p.Pages.All() {
		rows = append(rows, page.Rows...)
	}
	return rows
}
