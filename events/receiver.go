package events

import "sync"

type Receiver struct {
	mu        sync.Mutex
	listeners []chan interface{}
}

func New() *Receiver {
	return &Receiver{
		listeners: make([]chan interface{}, 0),
	}
}

func (er *Receiver) Listen() <-chan interface{} {
	ch := make(chan interface{})
	er.mu.Lock()
	er.listeners = append(er.listeners, ch)
	er.mu.Unlock()
	return ch
}

// Send blocks until every listener has received the event.
func (er *Receiver) Send(event interface{}) {
	er.mu.Lock()
	listeners := er.listeners
	er.mu.Unlock()

	for _, ch := range listeners {
		ch <- event
	}
}

func (er *Receiver) Close() {
	er.mu.Lock()
	defer er.mu.Unlock()

	for _, ch := range er.listeners {
		close(ch)
	}
	er.listeners = make([]chan interface{}, 0)
}
