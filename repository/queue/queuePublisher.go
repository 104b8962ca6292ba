// Package queue publishes domain events to RabbitMQ. Publish failures are
// logged and returned so callers can ignore them without interrupting the
// request flow.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const sewaCreatedQueue = "sewa.created"

type SewaCreatedEventItem struct {
	IDBarang int64 `json:"id_barang"`
	Jumlah   int64 `json:"jumlah"`
}

type SewaCreatedEvent struct {
	IDSewaReq int64                  `json:"id_sewa_req"`
	IDUser    int64                  `json:"id_user"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Items     []SewaCreatedEventItem `json:"items"`
}

type Publisher interface {
	PublishSewaCreated(ctx context.Context, ev SewaCreatedEvent) error
}

type amqpPublisher struct {
	url string
	log *slog.Logger
}

// NewAMQP returns a Publisher that dials the broker per publish. A fresh
// connection per event is slower but never leaves a stale channel behind
// after a broker restart.
func NewAMQP(url string, log *slog.Logger) Publisher {
	return &amqpPublisher{url: url, log: log}
}

func (p *amqpPublisher) PublishSewaCreated(ctx context.Context, ev SewaCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("amqp dial failed", "err", err)
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("amqp channel open failed", "err", err)
		return err
	}
	defer ch.Close()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(sewaCreatedQueue, true, false, false, false, nil); err != nil {
		p.log.Warn("amqp queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", sewaCreatedQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Warn("amqp publish failed", "err", err)
	}
	return err
}

type nopPublisher struct{}

// Nop returns a Publisher that drops every event. Used when no broker is
// configured.
func Nop() Publisher { return nopPublisher{} }

func (nopPublisher) PublishSewaCreated(context.Context, SewaCreatedEvent) error { return nil }
