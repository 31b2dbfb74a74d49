package templates

import (
	"context"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

// TemplateChange is the payload of the created, copied, updated and deleted
// events. Template is a clone owned by the receiver; for deletions it is the
// template as it was just before removal.
type TemplateChange struct {
	Template   template.Template
	SourceID   string
	FromClient bool
	CSS        string
}

// LogFields implements ports.LogFielder.
func (c TemplateChange) LogFields() map[string]interface{} {
	fields := map[string]interface{}{
		"template_id": c.Template.ID,
		"from_client": c.FromClient,
		"css_bytes":   len(c.CSS),
	}
	if c.SourceID != "" {
		fields["source_id"] = c.SourceID
	}
	return fields
}

// SelectionChange is the payload of the selected event.
type SelectionChange struct {
	Selection  Selection
	FromClient bool
	CSS        string
}

// LogFields implements ports.LogFielder.
func (c SelectionChange) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"template_id":           c.Selection.TemplateID,
		"table_selected":        c.Selection.Active,
		"cell_selection_active": c.Selection.CellSelectionActive,
		"from_client":           c.FromClient,
	}
}

// DocumentInitialized is the payload of the initialized event, emitted once
// when the whole document is replaced.
type DocumentInitialized struct {
	Document   template.Document
	FromClient bool
	CSS        string
}

// LogFields implements ports.LogFielder.
func (d DocumentInitialized) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"templates":   len(d.Document.Templates),
		"from_client": d.FromClient,
		"css_bytes":   len(d.CSS),
	}
}

type domainEvent struct {
	eventType string
	payload   interface{}
}

func (e domainEvent) EventType() string {
	return e.eventType
}

func (e domainEvent) Payload() interface{} {
	return e.payload
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	event := domainEvent{
		eventType: eventType,
		payload:   payload,
	}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish domain event", "event_type", eventType, "error", err)
	}
}
