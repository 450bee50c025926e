package ports

// EventEmitter delivers named application events to the GUI layer.
type EventEmitter interface {
	Emit(name string, payload any)
}
