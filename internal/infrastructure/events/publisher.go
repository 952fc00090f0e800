// Package events publica los eventos de dominio de ventas después del commit.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/autoparts-api/internal/application/sales"
	"github.com/jhoicas/autoparts-api/pkg/config"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

var (
	_ sales.EventPublisher = (*KafkaPublisher)(nil)
	_ sales.EventPublisher = (*LogPublisher)(nil)
)

// ── Kafka ──

// messageWriter lo implementa *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escribe cada evento como un mensaje JSON con el ID de la orden como clave,
// así todos los eventos de una orden caen en la misma partición.
type KafkaPublisher struct {
	writer messageWriter
	log    *logger.Logger
}

// NewKafkaPublisher crea el writer contra los brokers configurados.
func NewKafkaPublisher(cfg config.KafkaConfig, log *logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	return &KafkaPublisher{writer: w, log: log}
}

// Publish serializa y escribe el evento.
func (p *KafkaPublisher) Publish(ctx context.Context, evt sales.Event) error {
	msg, err := toMessage(evt)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write %s: %w", evt.Type, err)
	}
	p.log.Debug().Str("event", evt.Type).Str("order_number", evt.OrderNumber).Msg("evento publicado")
	return nil
}

// Close vacía y cierra el writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(evt sales.Event) (kafka.Message, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event %s: %w", evt.Type, err)
	}
	return kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}, nil
}

// ── Log ──

// LogPublisher registra los eventos en el log cuando no hay brokers configurados.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador de respaldo.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish escribe el evento como una línea de log.
func (p *LogPublisher) Publish(_ context.Context, evt sales.Event) error {
	p.log.Info().
		Str("event", evt.Type).
		Str("order_id", evt.OrderID).
		Str("order_number", evt.OrderNumber).
		Interface("payload", evt.Payload).
		Msg("evento de dominio")
	return nil
}

// Close no hace nada.
func (p *LogPublisher) Close() error { return nil }
