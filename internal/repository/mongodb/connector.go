package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// ErrConnectionReset is returned to callers whose in-flight dial was overtaken by Reset or Disconnect.
var ErrConnectionReset = errors.New("mongodb connection reset while dialing")

const connectKey = "connect"

// DialFunc opens a ready-to-use client for uri.
type DialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// Connector lazily opens a single MongoDB client and shares it for the life of the process.
// Concurrent Connect calls wait on the same dial; a failed dial is not cached.
type Connector struct {
	uri    string
	dial   DialFunc
	close  func(ctx context.Context, client *mongo.Client) error
	logger *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	// generation is bumped by Reset and Disconnect; a dial started in an older
	// generation closes its client instead of caching it.
	generation uint64
	client     *mongo.Client
}

// NewConnector returns a Connector for uri. A nil dial uses Dial.
func NewConnector(uri string, logger *slog.Logger, dial DialFunc) *Connector {
	if dial == nil {
		dial = Dial
	}
	return &Connector{uri: uri, dial: dial, close: disconnectClient, logger: logger}
}

// Dial connects to uri and pings the primary before returning the client.
func Dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}

// Connect returns the cached client, dialing on first use.
// The dial outlives a caller whose ctx ends first; that caller gets ctx.Err().
func (c *Connector) Connect(ctx context.Context) (*mongo.Client, error) {
	if client := c.cached(); client != nil {
		return client, nil
	}

	ch := c.group.DoChan(connectKey, func() (any, error) {
		c.mu.RLock()
		client, gen := c.client, c.generation
		c.mu.RUnlock()
		if client != nil {
			return client, nil
		}

		dialCtx := context.WithoutCancel(ctx)
		client, err := c.dial(dialCtx, c.uri)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation != gen {
			c.mu.Unlock()
			if err := c.close(dialCtx, client); err != nil {
				c.logger.Warn("closing stale mongodb client failed", "err", err)
			}
			return nil, ErrConnectionReset
		}
		c.client = client
		c.mu.Unlock()
		c.logger.Info("mongodb connected")
		return client, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.logger.Error("mongodb connection failed", "err", res.Err)
			return nil, fmt.Errorf("connect to mongodb: %w", res.Err)
		}
		return res.Val.(*mongo.Client), nil
	}
}

// Disconnect closes and forgets the cached client. It is a no-op when not connected.
func (c *Connector) Disconnect(ctx context.Context) error {
	client := c.forget()
	if client == nil {
		return nil
	}
	if err := c.close(ctx, client); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	c.logger.Info("mongodb disconnected")
	return nil
}

// Reset forgets the cached client without closing it, so the next Connect dials again.
// A dial already in flight is discarded when it completes.
func (c *Connector) Reset() {
	c.forget()
}

// forget drops the cached client and invalidates any in-flight dial.
func (c *Connector) forget() *mongo.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	client := c.client
	c.client = nil
	c.generation++
	c.group.Forget(connectKey)
	return client
}

func disconnectClient(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

func (c *Connector) cached() *mongo.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}
