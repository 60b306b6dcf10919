package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const defaultQueue = "events"

// AsynqClient enqueues event messages as asynq tasks on Redis.
type AsynqClient struct {
	client *asynq.Client
	queue  string
}

// RedisOptFromURL converts a redis:// URL into asynq connection options.
func RedisOptFromURL(redisURL string) (asynq.RedisClientOpt, error) {
	if strings.TrimSpace(redisURL) == "" {
		return asynq.RedisClientOpt{}, fmt.Errorf("REDIS_URL is required")
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, fmt.Errorf("parse redis url: %w", err)
	}
	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}

// NewAsynqClient constructs a Redis-backed event client.
func NewAsynqClient(redisURL string) (*AsynqClient, error) {
	opt, err := RedisOptFromURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &AsynqClient{client: asynq.NewClient(opt), queue: defaultQueue}, nil
}

// Send enqueues msg as a task named after the event.
func (a *AsynqClient) Send(ctx context.Context, msg Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("encode event message: %w", err)
	}
	task := asynq.NewTask(msg.Name, payload)
	if _, err := a.client.EnqueueContext(ctx, task, asynq.Queue(a.queue), asynq.MaxRetry(0)); err != nil {
		return fmt.Errorf("enqueue %s: %w", msg.Name, err)
	}
	return nil
}

// Close releases the Redis connection.
func (a *AsynqClient) Close() error {
	return a.client.Close()
}

var _ Client = (*AsynqClient)(nil)
