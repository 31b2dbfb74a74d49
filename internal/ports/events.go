package ports

import "context"

const (
	// EventTemplateCreated is emitted after a new template is added.
	EventTemplateCreated = "template.created"
	// EventTemplateCopied is emitted after a template is cloned under a new id.
	EventTemplateCopied = "template.copied"
	// EventTemplateUpdated is emitted after any change to an existing template.
	EventTemplateUpdated = "template.updated"
	// EventTemplateDeleted is emitted after a template is removed.
	EventTemplateDeleted = "template.deleted"
	// EventTemplateSelected is emitted when the template applied to the
	// active table changes.
	EventTemplateSelected = "template.selected"
	// EventTemplatesInitialized is emitted when the whole document is replaced.
	EventTemplatesInitialized = "templates.initialized"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// LogFielder is implemented by payloads that know how to flatten
// themselves into log fields.
type LogFielder interface {
	LogFields() map[string]interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler ran, so a subscriber
// always observes state consistent with the event it receives.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// surfaced via returned errors so publishers can log diagnostics and continue
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers invoke Unsubscribe
// to stop receiving events.
type Subscription interface {
	Unsubscribe()
}

type clientOriginKey struct{}

// WithClientOrigin marks ctx as carrying a change requested by the client
// (the editing surface) rather than by the server side.
func WithClientOrigin(ctx context.Context) context.Context {
	return context.WithValue(ctx, clientOriginKey{}, true)
}

// IsFromClient reports whether ctx was marked with WithClientOrigin.
func IsFromClient(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(clientOriginKey{}).(bool)
	return v
}
