// events.go defines notifications sent to extensions after something
// happened. Handlers observe; they cannot veto.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventCatalogLoad    EventType = "catalog:load"
	EventLanguageChange EventType = "language:change"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
}

// CatalogLoadEvent is sent once a catalog has finished loading.
type CatalogLoadEvent struct {
	Source  string
	Variant string
	Count   int
	Err     error // manifest failure, nil otherwise
}

func (e CatalogLoadEvent) EventType() EventType { return EventCatalogLoad }

// LanguageChangeEvent is sent after the language preference is saved.
type LanguageChangeEvent struct {
	From string
	To   string
}

func (e LanguageChangeEvent) EventType() EventType { return EventLanguageChange }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}

// Dispatch delivers e to every registered extension that handles events
// and returns the first handler error. All handlers run regardless.
func Dispatch(ctx Context, e Event) error {
	var first error
	for _, ext := range All() {
		h, ok := ext.(EventHandler)
		if !ok {
			continue
		}
		if err := h.HandleEvent(ctx, e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
