package pagelist

import (
	"fmt"

	"github.com/hnimtadd/fwtype/layout/row"
)

// Page is one picture worth of rows.
type Page struct {
	// 0-based position of the page in its input.
	Index int
	// Number of rows of the input that precede this page.
	Offset int
	Rows   row.Chunk
	// Picture height.
	Height int
}

// Len returns the number of rows on the page.
func (p *Page) Len() int {
	return len(p.Rows)
}

func (p *Page) String() string {
	return fmt.Sprintf("page %d: rows %d..%d height %d",
		p.Index, p.Offset+1, p.Offset+p.Len(), p.Height)
}

// Handler receives every page as soon as it is complete.
type Handler interface {
	HandlePage(p *Page) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(p *Page) error

func (f HandlerFunc) HandlePage(p *Page) error {
	return f(p)
}
