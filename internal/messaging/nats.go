package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"

	"innkeeper/internal/logger"
)

// Client wraps a NATS Streaming connection. Publishers log-and-continue on
// failure so a broker outage never fails a guest-facing request.
type Client struct {
	conn      stan.Conn
	clusterID string
	clientID  string
}

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

func NewClient(cfg Config) (*Client, error) {
	conn, err := stan.Connect(
		cfg.ClusterID,
		cfg.ClientID,
		stan.NatsURL(cfg.URL),
		stan.ConnectWait(10*time.Second),
		stan.Pings(10, 5),
		stan.SetConnectionLostHandler(func(_ stan.Conn, reason error) {
			logger.Get().Error("NATS streaming connection lost", "error", reason)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS streaming: %w", err)
	}

	logger.Get().Info("Connected to NATS streaming", "cluster_id", cfg.ClusterID, "client_id", cfg.ClientID)

	return &Client{
		conn:      conn,
		clusterID: cfg.ClusterID,
		clientID:  cfg.ClientID,
	}, nil
}

// Publish marshals the payload and publishes it on the subject
func (c *Client) Publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

// Subscribe starts a durable subscription on the subject
func (c *Client) Subscribe(subject, durableName string, handler stan.MsgHandler) (stan.Subscription, error) {
	sub, err := c.conn.Subscribe(
		subject,
		handler,
		stan.DurableName(durableName),
		stan.SetManualAckMode(),
		stan.AckWait(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	logger.Get().Info("Subscribed to subject", "subject", subject, "durable", durableName)
	return sub, nil
}

// SubscribeQueue starts a durable queue subscription so work is load
// balanced across worker instances
func (c *Client) SubscribeQueue(subject, queueGroup, durableName string, handler stan.MsgHandler) (stan.Subscription, error) {
	sub, err := c.conn.QueueSubscribe(
		subject,
		queueGroup,
		handler,
		stan.DurableName(durableName),
		stan.SetManualAckMode(),
		stan.AckWait(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to queue-subscribe to %s: %w", subject, err)
	}

	logger.Get().Info("Subscribed to queue", "subject", subject, "queue", queueGroup, "durable", durableName)
	return sub, nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
