package notify

import "log"

// Event is one pending client notification.
type Event struct {
	WorkshopID uint
	WorkID     uint
	Phone      string
	Message    string
}

// LinkSink receives the generated share link. The default sink only logs;
// callers can capture links for display or delivery elsewhere.
type LinkSink func(ev Event, link string)

type Dispatcher struct {
	sink  LinkSink
	queue chan Event
}

func NewDispatcher(sink LinkSink) *Dispatcher {
	if sink == nil {
		sink = func(ev Event, link string) {
			log.Printf("notify: work=%d link=%s", ev.WorkID, link)
		}
	}

	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		link, err := DeepLink(ev.Phone, ev.Message)
		if err != nil {
			log.Println("notify error:", err)
			continue
		}
		d.sink(ev, link)
	}
}

// Dispatch never blocks; a full queue drops the notification rather than
// holding up the status change that triggered it.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
