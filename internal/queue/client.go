package queue

import "context"

// Client sends event messages to a queue backend.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// NoopClient discards messages. It is used when no Redis is configured.
type NoopClient struct{}

// Send does nothing.
func (NoopClient) Send(ctx context.Context, msg Message) error {
	_ = ctx
	_ = msg
	return nil
}

var _ Client = NoopClient{}
