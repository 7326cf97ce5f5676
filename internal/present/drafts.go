package present

// Drafts holds in-place edits of card emails, keyed by card index.
// Edits are display state only: they never reach the workflow or the service.
// The zero value is ready to use.
type Drafts struct {
	edits map[int]string
}

// NewDrafts creates an empty set of edits.
func NewDrafts() *Drafts {
	return &Drafts{edits: make(map[int]string)}
}

// Set records the edited text for a card.
func (d *Drafts) Set(index int, text string) {
	if d.edits == nil {
		d.edits = make(map[int]string)
	}
	d.edits[index] = text
}

// Text returns the edited email of c, or its original email when unedited.
func (d *Drafts) Text(c Card) string {
	if text, ok := d.edits[c.Index]; ok {
		return text
	}
	return c.Email
}

// Edited reports whether card index has local edits.
func (d *Drafts) Edited(index int) bool {
	_, ok := d.edits[index]
	return ok
}

// CopyText is what the card's copy action puts on the clipboard: the original email.
func (d *Drafts) CopyText(c Card) string {
	return c.Email
}

// Reset drops every edit, used when a new result set replaces the cards.
func (d *Drafts) Reset() {
	d.edits = nil
}
