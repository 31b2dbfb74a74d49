// Package templates owns the template document at runtime: it applies
// changes all-or-nothing, keeps the compiled stylesheet current and emits
// exactly one domain event per successful change.
package templates

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/stylesheet"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

// Selection records which template applies to the caller's active table.
// Active is false when no table is selected.
type Selection struct {
	TemplateID          string
	Active              bool
	CellSelectionActive bool
}

// Service is the single writer of a template document. It is not safe for
// concurrent use; callers serialise access the way a UI event loop does.
type Service struct {
	doc       template.Document
	css       string
	selection Selection
	compiler  *stylesheet.Compiler
	events    ports.EventPublisher
	logger    ports.Logger
}

// NewService constructs a Service holding an empty document. A nil compiler
// compiles without a scope prefix.
func NewService(compiler *stylesheet.Compiler, events ports.EventPublisher, logger ports.Logger) *Service {
	if compiler == nil {
		compiler = stylesheet.NewCompiler(stylesheet.Options{})
	}
	return &Service{compiler: compiler, events: events, logger: logger}
}

// Document returns a deep copy of the current document.
func (s *Service) Document() template.Document {
	return s.doc.Clone()
}

// Template returns a deep copy of the template with the given id.
func (s *Service) Template(id string) (template.Template, error) {
	return s.doc.Get(id)
}

// CSS returns the stylesheet compiled after the last successful change.
func (s *Service) CSS() string {
	return s.css
}

// Selection returns the current selection.
func (s *Service) Selection() Selection {
	return s.selection
}

// Initialize replaces the whole document. The new document is validated in
// full first; on success a single initialized event carries a clone of it.
func (s *Service) Initialize(ctx context.Context, doc template.Document) error {
	normalized, err := doc.Normalized()
	if err != nil {
		s.reject(ctx, "initialize", "", err)
		return err
	}

	s.commit(normalized)
	if s.selection.Active && s.selection.TemplateID != "" && !s.doc.Has(s.selection.TemplateID) {
		s.selection = Selection{}
	}

	s.logDebug(ctx, "templates initialized", "templates", len(s.doc.Templates))
	publishEvent(ctx, s.events, s.logger, ports.EventTemplatesInitialized, DocumentInitialized{
		Document:   s.doc.Clone(),
		FromClient: ports.IsFromClient(ctx),
		CSS:        s.css,
	})
	return nil
}

// Create adds a template. initial, when non-nil, supplies the content; its
// own ID is ignored in favour of id.
func (s *Service) Create(ctx context.Context, id string, initial *template.Template) (template.Template, error) {
	if err := s.checkNewID(id); err != nil {
		s.reject(ctx, "create", id, err)
		return template.Template{}, err
	}

	created := template.New(id)
	if initial != nil {
		created = initial.Clone()
		created.ID = id
	}
	created, err := created.Normalized()
	if err != nil {
		s.reject(ctx, "create", id, err)
		return template.Template{}, err
	}

	s.commit(s.withTemplates(append(s.doc.Templates[:len(s.doc.Templates):len(s.doc.Templates)], created)))

	s.logDebug(ctx, "template created", "template_id", id)
	s.publishChange(ctx, ports.EventTemplateCreated, created, "")
	return created.Clone(), nil
}

// Copy clones the content of sourceID under newID. An empty newID picks the
// first free id of the form template<N>.
func (s *Service) Copy(ctx context.Context, sourceID, newID string) (template.Template, error) {
	source, err := s.doc.Get(sourceID)
	if err != nil {
		s.reject(ctx, "copy", sourceID, err)
		return template.Template{}, err
	}

	if newID == "" {
		newID = s.nextFreeID()
	}
	if err := s.checkNewID(newID); err != nil {
		s.reject(ctx, "copy", newID, err)
		return template.Template{}, err
	}

	source.ID = newID
	s.commit(s.withTemplates(append(s.doc.Templates[:len(s.doc.Templates):len(s.doc.Templates)], source)))

	s.logDebug(ctx, "template copied", "template_id", newID, "source_id", sourceID)
	s.publishChange(ctx, ports.EventTemplateCopied, source, sourceID)
	return source.Clone(), nil
}

// Update sets (or, with a nil value, clears) one property at addr.
func (s *Service) Update(ctx context.Context, id string, addr template.Address, prop style.Property, value *string) error {
	return s.mutate(ctx, "update", id, func(t *template.Template) error {
		return t.Set(addr, prop, value)
	}, "address", addr.String(), "property", string(prop))
}

// DeleteRule removes a row, column or cell rule.
func (s *Service) DeleteRule(ctx context.Context, id string, addr template.Address) error {
	return s.mutate(ctx, "delete rule", id, func(t *template.Template) error {
		return t.DeleteRule(addr)
	}, "address", addr.String())
}

// InsertLine renumbers the template after a row or column was inserted into
// a table of lineCount lines.
func (s *Service) InsertLine(ctx context.Context, id string, axis style.AddressKind, position int, placement template.Placement, lineCount int) error {
	return s.mutate(ctx, "insert line", id, func(t *template.Template) error {
		return t.InsertLine(axis, position, placement, lineCount)
	}, "axis", string(axis), "position", position, "placement", placement.String())
}

// RemoveLine renumbers the template after a row or column was removed from a
// table of lineCount lines.
func (s *Service) RemoveLine(ctx context.Context, id string, axis style.AddressKind, position, lineCount int) error {
	return s.mutate(ctx, "remove line", id, func(t *template.Template) error {
		return t.RemoveLine(axis, position, lineCount)
	}, "axis", string(axis), "position", position)
}

// Delete removes a template. Deleting the selected template clears the
// selection without a separate selected event.
func (s *Service) Delete(ctx context.Context, id string) error {
	i := s.doc.Index(id)
	if i < 0 {
		err := template.NewTemplateNotFoundError(id)
		s.reject(ctx, "delete", id, err)
		return err
	}

	removed := s.doc.Templates[i]
	templates := make([]template.Template, 0, len(s.doc.Templates)-1)
	templates = append(templates, s.doc.Templates[:i]...)
	templates = append(templates, s.doc.Templates[i+1:]...)
	s.commit(s.withTemplates(templates))

	if s.selection.TemplateID == id {
		s.selection = Selection{}
	}

	s.logDebug(ctx, "template deleted", "template_id", id)
	s.publishChange(ctx, ports.EventTemplateDeleted, removed, "")
	return nil
}

// Select records the template applied to the active table. A nil id means no
// table is selected.
func (s *Service) Select(ctx context.Context, id *string, cellSelectionActive bool) error {
	next := Selection{CellSelectionActive: cellSelectionActive}
	if id != nil {
		if !s.doc.Has(*id) {
			err := template.NewTemplateNotFoundError(*id)
			s.reject(ctx, "select", *id, err)
			return err
		}
		next.TemplateID = *id
		next.Active = true
	}
	s.selection = next

	s.logDebug(ctx, "template selected", "template_id", next.TemplateID, "cell_selection_active", cellSelectionActive)
	publishEvent(ctx, s.events, s.logger, ports.EventTemplateSelected, SelectionChange{
		Selection:  next,
		FromClient: ports.IsFromClient(ctx),
		CSS:        s.css,
	})
	return nil
}

// mutate applies fn to a copy of the template and commits it only when fn
// succeeds, so a failed change leaves the document untouched.
func (s *Service) mutate(ctx context.Context, op, id string, fn func(*template.Template) error, fields ...interface{}) error {
	i := s.doc.Index(id)
	if i < 0 {
		err := template.NewTemplateNotFoundError(id)
		s.reject(ctx, op, id, err, fields...)
		return err
	}

	next := s.doc.Templates[i].Clone()
	if err := fn(&next); err != nil {
		s.reject(ctx, op, id, err, fields...)
		return err
	}

	templates := make([]template.Template, len(s.doc.Templates))
	copy(templates, s.doc.Templates)
	templates[i] = next
	s.commit(s.withTemplates(templates))

	s.logDebug(ctx, "template updated", append([]interface{}{"template_id", id, "operation", op}, fields...)...)
	s.publishChange(ctx, ports.EventTemplateUpdated, next, "")
	return nil
}

func (s *Service) withTemplates(templates []template.Template) template.Document {
	return template.Document{Templates: templates}
}

// commit installs doc and recompiles the stylesheet before any event goes out.
func (s *Service) commit(doc template.Document) {
	s.doc = doc
	s.css = s.compiler.Compile(doc)
}

func (s *Service) publishChange(ctx context.Context, eventType string, t template.Template, sourceID string) {
	publishEvent(ctx, s.events, s.logger, eventType, TemplateChange{
		Template:   t.Clone(),
		SourceID:   sourceID,
		FromClient: ports.IsFromClient(ctx),
		CSS:        s.css,
	})
}

func (s *Service) checkNewID(id string) error {
	if err := style.ValidateTemplateID(id); err != nil {
		return template.NewIDFormatError(id, err)
	}
	if s.doc.Has(id) {
		return template.NewConflictError(id)
	}
	return nil
}

func (s *Service) nextFreeID() string {
	for n := 1; ; n++ {
		id := fmt.Sprintf("template%d", n)
		if !s.doc.Has(id) {
			return id
		}
	}
}

func (s *Service) reject(ctx context.Context, op, id string, err error, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	args := append([]interface{}{"operation", op, "template_id", id, "error", err}, fields...)
	s.logger.Warn(ctx, "template change rejected", args...)
}

func (s *Service) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, fields...)
}
