package feeclient

// observable is the notification half shared by the screen controllers:
// renderers subscribe and are called back after every state change.
// Like the controllers themselves it is owned by a single goroutine.
type observable struct {
	observers map[int]func()
	nextID    int
}

// Subscribe registers an observer invoked after every state change. The
// returned function removes it.
func (o *observable) Subscribe(fn func()) func() {
	if o.observers == nil {
		o.observers = make(map[int]func())
	}
	id := o.nextID
	o.nextID++
	o.observers[id] = fn
	return func() {
		delete(o.observers, id)
	}
}

func (o *observable) notify() {
	for _, fn := range o.observers {
		fn()
	}
}
