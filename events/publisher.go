// Package events publishes reservation lifecycle events to RabbitMQ.
// Publishing is best-effort: errors are logged and returned so callers can
// ignore them without interrupting the booking flow.
package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReservationMessage is the body published for every reservation lifecycle
// event. EventType doubles as the queue name (reservation.created,
// reservation.updated, reservation.checked_in, reservation.checked_out,
// reservation.cancelled).
type ReservationMessage struct {
	EventType     string  `json:"event_type"`
	ReservationID uint    `json:"reservation_id"`
	ReferenceCode string  `json:"reference_code"`
	RoomNumber    *int    `json:"room_number"`
	GuestName     string  `json:"guest_name,omitempty"`
	StartOfStay   string  `json:"start_of_stay"`
	EndDate       string  `json:"end_date"`
	StatusCode    string  `json:"status_code"`
	Price         float64 `json:"price"`
	OccurredAt    string  `json:"occurred_at"`
}

func brokerURL() string {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return url
}

// Enabled reports whether a broker is configured. Without RABBITMQ_URL or
// AMQP_URL the publisher is a no-op and the service runs standalone.
func Enabled() bool {
	return brokerURL() != ""
}

// PublishReservationEvent declares the durable queue named after the event
// type and publishes the message to it. The function never panics; any
// failure is logged and returned for the caller to ignore.
func PublishReservationEvent(ctx context.Context, msg ReservationMessage) error {
	url := brokerURL()
	if url == "" {
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		msg.EventType, // name
		true,          // durable
		false,         // autoDelete
		false,         // exclusive
		false,         // noWait
		nil,           // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",            // default exchange
		msg.EventType, // routing key = queue name
		false,         // mandatory
		false,         // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
