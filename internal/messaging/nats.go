package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subjects published on successful writes.
const (
	SubjectUserCreated = "exercise.user.created"
	SubjectLogAdded    = "exercise.log.added"
)

// Event is the envelope for every published message.
type Event struct {
	ID   string      `json:"id"`
	Type string      `json:"type"`
	At   time.Time   `json:"at"`
	Data interface{} `json:"data"`
}

// Publisher emits domain events over NATS. A nil Publisher is a no-op, so
// callers never need to care whether eventing is configured.
type Publisher struct {
	nc *nats.Conn
}

// Connect establishes the NATS connection. An empty URL disables publishing
// and returns a nil Publisher.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		log.Println("NATS_URL not set, event publishing disabled")
		return nil, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("connected to NATS at", url)
	return &Publisher{nc: nc}, nil
}

// Publish sends data wrapped in an Event envelope. Publish failures are
// logged and never fail the request that triggered them.
func (p *Publisher) Publish(subject string, data interface{}) {
	if p == nil || p.nc == nil || !p.nc.IsConnected() {
		return
	}

	payload, err := json.Marshal(Event{
		ID:   uuid.NewString(),
		Type: subject,
		At:   time.Now().UTC(),
		Data: data,
	})
	if err != nil {
		log.Println("event encode:", err)
		return
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		log.Println("event publish:", err)
	}
}

func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	p.nc.Close()
}
