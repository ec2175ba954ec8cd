package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Deliverer is the outbound mail hop. Delivery is a black box to the
// worker: in development it logs, in production it would call the mail
// provider.
type Deliverer interface {
	Deliver(recipient, subject, body string) error
}

// LogDeliverer writes each outbound email to the process log. It stands
// in for a real provider and never fails.
type LogDeliverer struct{}

func (LogDeliverer) Deliver(recipient, subject, _ string) error {
	log.Printf("[EMAIL SENT] To: %s | Subject: %s", recipient, subject)
	return nil
}

// StartEmailConsumer connects to RabbitMQ, declares the notify.email
// queue (durable), and consumes tasks, handing each to the deliverer
// and appending an audit line to logs/notifications.log. It runs a
// reconnect loop with capped backoff and keeps running through
// processing errors, rejecting bad messages without requeueing so the
// worker cannot spin on a poison payload.
func StartEmailConsumer(d Deliverer) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("email-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeEmails(conn, d); err != nil {
			log.Printf("email-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeEmails(conn *amqp.Connection, d Deliverer) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("email-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(emailQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(emailQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for m := range msgs {
		if err := handleEmail(m.Body, d); err != nil {
			log.Printf("email-consumer: handle task failed: %v", err)
			_ = m.Nack(false, false)
			continue
		}
		_ = m.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleEmail(body []byte, d Deliverer) error {
	var task EmailTask
	if err := json.Unmarshal(body, &task); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := d.Deliver(task.Recipient, task.Subject, task.Body); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}
	return appendAuditLine(task)
}

func appendAuditLine(task EmailTask) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "notifications.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Email delivered | to=%s | subject=%q | booking_id=%s\n",
		task.QueuedAt, task.Recipient, task.Subject, task.BookingID)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
