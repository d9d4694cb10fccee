package rabbitmq_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"blog/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEvent_Acks(t *testing.T) {
	assert.NoError(t, rabbitmq.LogEvent(amqp.Delivery{Type: "post.liked", Body: []byte(`{}`)}))
}

func TestClient_PublishAndConsume(t *testing.T) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		t.Skip("Skipping test - no RabbitMQ connection configured")
	}

	client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url, Queue: "blog_events_test"})
	require.NoError(t, err)
	defer client.Close()

	received := make(chan amqp.Delivery, 1)
	require.NoError(t, client.ConsumeEvents(func(msg amqp.Delivery) error {
		received <- msg
		return nil
	}))

	body, _ := json.Marshal(map[string]interface{}{"post_id": 1})
	require.NoError(t, client.Publish("post.liked", body))

	select {
	case msg := <-received:
		assert.Equal(t, "post.liked", msg.Type)
		assert.JSONEq(t, string(body), string(msg.Body))
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for RabbitMQ message")
	}
}
