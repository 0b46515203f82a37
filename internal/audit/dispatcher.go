package audit

import (
	"log"
	"time"
)

type Event struct {
	Username string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(Entry{
			Timestamp: time.Now(),
			Username:  ev.Username,
			Action:    ev.Action,
			Entity:    ev.Entity,
			EntityID:  ev.EntityID,
			Metadata:  ev.Metadata,
		}); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: nunca bloquear a API por causa de auditoria
		log.Println("audit queue full, dropping event")
	}
}
