// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий.
// Dispatch доставляет сразу, Enqueue откладывает до Flush: так системы
// не меняют мир посреди чужого обхода.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Enqueue ставит событие в очередь.
func (d *Dispatcher) Enqueue(event Event) {
	d.queue = append(d.queue, event)
}

// Flush доставляет очередь в порядке постановки, включая события,
// поставленные подписчиками во время доставки.
func (d *Dispatcher) Flush() {
	for len(d.queue) > 0 {
		pending := d.queue
		d.queue = nil
		for _, e := range pending {
			d.Dispatch(e)
		}
	}
}

// Drop очищает очередь без доставки.
func (d *Dispatcher) Drop() {
	d.queue = nil
}

// Pending — длина очереди.
func (d *Dispatcher) Pending() int { return len(d.queue) }
