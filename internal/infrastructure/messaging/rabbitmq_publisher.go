package messaging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

const statusExchange = "order_status_fanout"

// RabbitMQStatusPublisher fans order status events out to the notification
// dispatcher. The exchange is declared idempotently on connect.

type RabbitMQStatusPublisher struct {
	conn *amqp091.Connection
	ch   *amqp091.Channel
}

var _ interfaces.IStatusPublisher = (*RabbitMQStatusPublisher)(nil)

func NewRabbitMQStatusPublisher(url string) (*RabbitMQStatusPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(statusExchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQStatusPublisher{conn: conn, ch: ch}, nil
}

func (p *RabbitMQStatusPublisher) PublishStatusChange(ctx context.Context, evt entities.OrderStatusEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		statusExchange,
		"", // routing key ignored by fanout
		false,
		false,
		amqp091.Publishing{
			DeliveryMode:  amqp091.Persistent,
			ContentType:   "application/json",
			MessageId:     newMsgID(),
			CorrelationId: evt.OrderID,
			Timestamp:     time.Now().UTC(),
			Headers: amqp091.Table{
				"x-source": "admission-core",
			},
			Body: body,
		},
	)
}

func (p *RabbitMQStatusPublisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func newMsgID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
