// Package input routes pointer and touch events to listeners attached at the
// document level, so a gesture keeps receiving events after the pointer
// leaves the element it started on.
package input

// Kind is the event type.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// Touch is one active contact point in logical page coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// Event carries pointer coordinates or, for touch kinds, every active touch.
type Event struct {
	Kind    Kind
	X, Y    float64
	Touches []Touch
}

// Listener handles an event.
type Listener func(Event)

type entry struct {
	fn      Listener
	removed bool
}

// Document holds listeners per event kind. Not safe for concurrent use.
type Document struct {
	listeners map[Kind][]*entry
}

// NewDocument returns a document with no listeners.
func NewDocument() *Document {
	return &Document{listeners: map[Kind][]*entry{}}
}

// Subscription detaches a listener.
type Subscription struct {
	doc  *Document
	kind Kind
	e    *entry
}

// Listen attaches fn for events of kind.
func (d *Document) Listen(kind Kind, fn Listener) *Subscription {
	e := &entry{fn: fn}
	d.listeners[kind] = append(d.listeners[kind], e)
	return &Subscription{doc: d, kind: kind, e: e}
}

// Remove detaches the listener. Only the first call has an effect; it reports
// whether this call removed it.
func (s *Subscription) Remove() bool {
	if s == nil || s.e.removed {
		return false
	}
	s.e.removed = true
	list := s.doc.listeners[s.kind]
	for i, e := range list {
		if e == s.e {
			s.doc.listeners[s.kind] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	return true
}

// Dispatch delivers ev to the listeners attached when dispatch began. A
// listener removed by an earlier listener in the same dispatch is skipped.
func (d *Document) Dispatch(ev Event) {
	list := d.listeners[ev.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*entry, len(list))
	copy(snapshot, list)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn(ev)
	}
}

// Count returns the number of listeners attached for kind.
func (d *Document) Count(kind Kind) int { return len(d.listeners[kind]) }
