package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/sales"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func sampleEvent() sales.Event {
	return sales.Event{
		Type:        sales.EventOrderCreated,
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		OrderID:     "0b9a0d44-5f7e-4e7c-9f51-2d1f0c1b7a10",
		OrderNumber: "ORD-260102-0001",
		Payload:     map[string]string{"total_amount": "5000"},
	}
}

func TestKafkaPublisher_ClaveEsLaOrden(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w, log: logger.Nop()}

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "0b9a0d44-5f7e-4e7c-9f51-2d1f0c1b7a10", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, sales.EventOrderCreated, string(msg.Headers[0].Value))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "order.created", body["type"])
	assert.Equal(t, "ORD-260102-0001", body["order_number"])
}

func TestKafkaPublisher_PropagaErrorDeEscritura(t *testing.T) {
	p := &KafkaPublisher{writer: &recordingWriter{err: errors.New("broker caído")}, log: logger.Nop()}
	assert.Error(t, p.Publish(context.Background(), sampleEvent()))
}

func TestLogPublisher_EscribeEvento(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}))

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), `"event":"order.created"`)
	assert.Contains(t, buf.String(), `"order_number":"ORD-260102-0001"`)
}
