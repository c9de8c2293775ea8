package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует исходящие события сервиса в RabbitMQ (topic exchange)
// Публикация всегда best-effort: ядро бронирования не зависит от брокера
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      Logger
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %q: %v", ErrConnect, exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// Publish сериализует событие в JSON и отправляет с указанным routing key
func (p *Publisher) Publish(ctx context.Context, key string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, key, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, key, err)
	}

	p.log.Info("events: published %s", key)
	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher заглушка на случай выключенных событий в конфигурации
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(_ context.Context, _ string, _ interface{}) error {
	return nil
}
