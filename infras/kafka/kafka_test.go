package kafka_test

import (
	"context"
	"testing"

	"arena/config"
	"arena/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "facility-1", Value: map[string]string{"event": "reservation.created"}}

	got, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("facility-1"), got.Key)
	assert.JSONEq(t, `{"event":"reservation.created"}`, string(got.Value))
}

func TestMessage_ToKafkaMessageUnsupported(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNewWithoutBrokersDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "reservation.events", []kafka.Message{{Key: "k", Value: 1}})

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}
