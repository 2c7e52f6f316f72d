package ecs

// Status is returned by a system's Update to steer the scene's frame loop.
type Status int

const (
	// Continue lets the frame proceed normally.
	Continue Status = iota
	// Terminate asks the scene to stop the frame and surface the system's
	// exit message to the caller.
	Terminate
)

// HandlerFunc handles one signal delivered to a system's inbox.
type HandlerFunc func(scene *Scene, signal Signal)

// System is a priority-ordered unit of per-frame logic plus signal-handling
// behavior. Concrete systems embed BaseSystem and override Update.
type System interface {
	// Update runs one frame of the system's logic.
	Update() Status

	base() *BaseSystem
}

type signalHandler struct {
	sub Signature
	fn  HandlerFunc
}

type handlerKey struct {
	kind int
	sig  Signature
}

// noopHandler is invoked when no registered handler matches a dequeued signal.
func noopHandler(*Scene, Signal) {}

// BaseSystem carries the state shared by every system: the owning scene, a
// priority (lower runs earlier, ties broken by insertion order), an enabled
// flag, a FIFO inbox of pending signals, and the signal handler table built
// at construction time.
type BaseSystem struct {
	scene    *Scene
	priority int
	enabled  bool
	required Signature

	inbox    []Signal
	handlers map[SignalKind][]signalHandler
	resolved map[handlerKey]HandlerFunc

	name        string
	exitMessage string
	stats       systemStats
}

// NewBaseSystem binds a system to its scene with the given priority.
// Systems start enabled.
func NewBaseSystem(scene *Scene, priority int) BaseSystem {
	return BaseSystem{
		scene:    scene,
		priority: priority,
		enabled:  true,
	}
}

func (b *BaseSystem) base() *BaseSystem { return b }

// Scene returns the scene this system is bound to.
func (b *BaseSystem) Scene() *Scene {
	return b.scene
}

// Priority returns the system's priority. Lower values run earlier.
func (b *BaseSystem) Priority() int {
	return b.priority
}

// Enabled reports whether the system participates in frame updates.
func (b *BaseSystem) Enabled() bool {
	return b.enabled
}

// SetEnabled toggles the system. Disabled systems are skipped entirely by the
// scene but remain in the priority-sorted list.
func (b *BaseSystem) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// RequireKinds declares the component kinds this system operates on. The OR
// of their bits becomes the system's required signature, computed once.
func (b *BaseSystem) RequireKinds(kinds ...ComponentKind) {
	b.required = SignatureOf(kinds...)
}

// RequiredSignature returns the OR of the declared required component kinds.
func (b *BaseSystem) RequiredSignature() Signature {
	return b.required
}

// Matches reports whether the entity owns every component kind this system
// requires.
func (b *BaseSystem) Matches(e *Entity) bool {
	return Contains(e.Signature(), b.required)
}

// OnSignal registers a handler for a signal kind under a sub-signature.
// When a signal of that kind is dequeued, the handlers registered for the
// kind are scanned in registration order and the first whose sub-signature is
// contained in the signal's signature fires. Register sub-signature 0 to
// handle every signal of the kind regardless of signature.
func (b *BaseSystem) OnSignal(kind SignalKind, sub Signature, fn HandlerFunc) {
	if b.handlers == nil {
		b.handlers = make(map[SignalKind][]signalHandler)
	}
	b.handlers[kind] = append(b.handlers[kind], signalHandler{sub: sub, fn: fn})
	b.resolved = nil
}

// handlesKind reports whether a handler category exists for the kind.
// Checked by the scene before pushing a signal onto the inbox.
func (b *BaseSystem) handlesKind(kind SignalKind) bool {
	_, ok := b.handlers[kind]
	return ok
}

// push appends a signal to the inbox. Delivery is immediate; consumption
// waits for the system's own next HandleSignals pass, which keeps dispatch
// from recursing within one frame.
func (b *BaseSystem) push(signal Signal) {
	b.inbox = append(b.inbox, signal)
}

// InboxLen returns the number of pending signals.
func (b *BaseSystem) InboxLen() int {
	return len(b.inbox)
}

// HandleSignals drains the inbox in FIFO order, dispatching each signal to
// the first matching handler of its kind, or to a no-op if none matches.
// Call this from Update in systems that declared handlers.
func (b *BaseSystem) HandleSignals() {
	for len(b.inbox) > 0 {
		signal := b.inbox[0]
		b.inbox = b.inbox[1:]
		handler := b.resolveHandler(signal.Kind(), signal.Signature())
		handler(b.scene, signal)
	}
}

// resolveHandler picks the handler for a (kind, signature) pair. Resolution
// is memoized: it is a pure function of the table built at construction time.
func (b *BaseSystem) resolveHandler(kind SignalKind, sig Signature) HandlerFunc {
	key := handlerKey{kind: kind.ID(), sig: sig}
	if fn, ok := b.resolved[key]; ok {
		return fn
	}
	fn := HandlerFunc(noopHandler)
	for _, h := range b.handlers[kind] {
		if Contains(sig, h.sub) {
			fn = h.fn
			break
		}
	}
	if b.resolved == nil {
		b.resolved = make(map[handlerKey]HandlerFunc)
	}
	b.resolved[key] = fn
	return fn
}

// Terminate records the exit message and returns the termination sentinel.
// Intended as `return s.Terminate("...")` from a concrete Update.
func (b *BaseSystem) Terminate(message string) Status {
	b.exitMessage = message
	return Terminate
}

// ExitMessage returns the message recorded by the last Terminate call.
func (b *BaseSystem) ExitMessage() string {
	return b.exitMessage
}

// Update panics: embedding BaseSystem without overriding Update is a
// programming error that must fail loudly, not be silently skipped.
func (b *BaseSystem) Update() Status {
	panic("ecs: system " + b.name + " embeds BaseSystem but does not override Update")
}
