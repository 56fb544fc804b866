// Package disclosure owns the single expansion selection of the page.
//
// At most one item is expanded at any instant. Switching from one item to
// another is a single assignment, so no observer sees both or neither open
// in between.
package disclosure

import "github.com/chille/showcase/internal/catalog"

// Selection is the expanded item, if any. The zero value means none.
type Selection struct {
	ID   catalog.ID
	Open bool
}

// None is the empty selection.
var None = Selection{}

// Of returns a selection holding id.
func Of(id catalog.ID) Selection { return Selection{ID: id, Open: true} }

// Matches reports whether the card with id is the expanded one.
func (s Selection) Matches(id catalog.ID) bool { return s.Open && s.ID == id }

// Controller is the only writer of the selection. It is not safe for
// concurrent use; the UI loop is its single caller.
type Controller struct {
	sel Selection
}

func NewController() *Controller { return &Controller{} }

// Toggle collapses id if it is expanded, otherwise expands it and implicitly
// collapses whatever was open. Unknown ids are accepted and simply never match
// a card.
func (c *Controller) Toggle(id catalog.ID) Selection {
	if c.sel.Matches(id) {
		return c.Collapse()
	}
	return c.Expand(id)
}

// Expand makes id the expanded item.
func (c *Controller) Expand(id catalog.ID) Selection {
	c.sel = Of(id)
	return c.sel
}

// Collapse clears the selection.
func (c *Controller) Collapse() Selection {
	c.sel = None
	return c.sel
}

func (c *Controller) Current() Selection { return c.sel }
