package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pico-pos/internal/app"
	"pico-pos/internal/catalog"
	"pico-pos/internal/events"
	"pico-pos/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testExchange = "pos.orders.test"

// TestBroker represents a RabbitMQ test instance.
type TestBroker struct {
	Container *rabbitmq.RabbitMQContainer
	URL       string
}

// SetupTestBroker starts a RabbitMQ container.
func SetupTestBroker(t *testing.T) *TestBroker {
	t.Helper()

	ctx := context.Background()

	container, err := rabbitmq.Run(ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start rabbitmq container: %v", err)
	}

	url, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("failed to get amqp url: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestBroker{Container: container, URL: url}
}

// Subscribe binds an exclusive queue to the test exchange and returns its deliveries.
func (b *TestBroker) Subscribe(t *testing.T) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(b.URL)
	if err != nil {
		t.Fatalf("failed to dial broker: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("failed to open channel: %v", err)
	}
	t.Cleanup(func() {
		ch.Close()
		conn.Close()
	})

	if err := ch.ExchangeDeclare(testExchange, "fanout", true, false, false, false, nil); err != nil {
		t.Fatalf("failed to declare exchange: %v", err)
	}
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.QueueBind(q.Name, "", testExchange, false, nil); err != nil {
		t.Fatalf("failed to bind queue: %v", err)
	}

	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		t.Fatalf("failed to consume: %v", err)
	}
	return deliveries
}

// NewTestServer builds the full application over the default seed.
func NewTestServer(t *testing.T, opts app.Options) *app.App {
	t.Helper()
	if opts.DemoMarker == "" {
		opts.DemoMarker = "demo"
	}
	return app.New(catalog.DefaultSeed(), opts, zerolog.Nop())
}

// NewBrokerPublisher connects an order event publisher to the test broker.
func NewBrokerPublisher(t *testing.T, broker *TestBroker) events.Publisher {
	t.Helper()

	publisher, err := events.NewAMQPPublisher(broker.URL, testExchange, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create publisher: %v", err)
	}
	t.Cleanup(func() {
		publisher.Close()
	})
	return publisher
}

// Do sends a JSON request to the server.
func Do(server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

// Login starts a session for account.
func Login(t *testing.T, server http.Handler, account string) model.StoreProfile {
	t.Helper()

	w := Do(server, http.MethodPost, "/api/session/login", model.LoginRequest{Account: account})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var profile model.StoreProfile
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("failed to decode profile: %v", err)
	}
	return profile
}
