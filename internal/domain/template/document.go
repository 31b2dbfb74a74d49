package template

import (
	"go.uber.org/multierr"
)

// Document is the ordered set of templates for one editing session.
// Template order is insertion order and drives stylesheet order.
type Document struct {
	Templates []Template
}

// NewDocument builds a document from templates in the given order.
func NewDocument(templates ...Template) Document {
	return Document{Templates: templates}
}

// Index returns the position of the template with id, or -1.
func (d Document) Index(id string) int {
	for i := range d.Templates {
		if d.Templates[i].ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether a template with id exists.
func (d Document) Has(id string) bool {
	return d.Index(id) >= 0
}

// Get returns a deep copy of the template with id.
func (d Document) Get(id string) (Template, error) {
	i := d.Index(id)
	if i < 0 {
		return Template{}, NewTemplateNotFoundError(id)
	}
	return d.Templates[i].Clone(), nil
}

// IDs lists template ids in document order.
func (d Document) IDs() []string {
	ids := make([]string, len(d.Templates))
	for i, t := range d.Templates {
		ids[i] = t.ID
	}
	return ids
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d.Templates == nil {
		return Document{}
	}
	out := Document{Templates: make([]Template, len(d.Templates))}
	for i, t := range d.Templates {
		out.Templates[i] = t.Clone()
	}
	return out
}

// Validate checks every template plus id uniqueness.
func (d Document) Validate() error {
	_, err := d.Normalized()
	return err
}

// Normalized validates the document and returns a normalised deep copy.
func (d Document) Normalized() (Document, error) {
	var errs error
	out := Document{Templates: make([]Template, 0, len(d.Templates))}
	seen := make(map[string]struct{}, len(d.Templates))
	for _, t := range d.Templates {
		if _, dup := seen[t.ID]; dup {
			errs = multierr.Append(errs, newConflictError(t.ID))
			continue
		}
		seen[t.ID] = struct{}{}

		normalized, err := t.Normalized()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out.Templates = append(out.Templates, normalized)
	}
	if errs != nil {
		return Document{}, errs
	}
	return out, nil
}
