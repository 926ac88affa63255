package db

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/tutormarket/internal/config"
)

// Driver timeouts, fixed at client construction.
const (
	ConnectTimeout         = 10 * time.Second
	SocketTimeout          = 45 * time.Second
	ServerSelectionTimeout = 30 * time.Second
)

// Store owns the single MongoDB client of the process. It is built once at
// startup and handed to every repository; the driver does its own pooling.
//
// The client pointer is published by Connect, which runs in the background
// while the HTTP listener is already serving. Until then every accessor
// returns ErrNotConnected.
type Store struct {
	opts   *options.ClientOptions
	dbName string
	client atomic.Pointer[mongo.Client]
}

// NewStore prepares a Store from configuration without doing any I/O.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		opts:   ClientOptions(cfg),
		dbName: cfg.MongoDatabase,
	}
}

// NewStoreWithClient wraps an already connected client.
func NewStoreWithClient(client *mongo.Client, dbName string) *Store {
	s := &Store{dbName: dbName}
	s.client.Store(client)
	return s
}

// ClientOptions builds the driver options: stable API v1 in strict mode and
// the fixed connect, socket and server selection timeouts.
func ClientOptions(cfg *config.Config) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(ConnectTimeout).
		SetSocketTimeout(SocketTimeout).
		SetServerSelectionTimeout(ServerSelectionTimeout)

	if cfg.MongoForceIPv4 {
		opts.SetDialer(&ipv4Dialer{Dialer: net.Dialer{Timeout: ConnectTimeout}})
	}
	return opts
}

// ipv4Dialer forces IPv4 for plain tcp dials. Some hosting networks hand out
// AAAA records for Atlas shards that are not routable.
type ipv4Dialer struct {
	net.Dialer
}

func (d *ipv4Dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if network == "tcp" {
		network = "tcp4"
	}
	return d.Dialer.DialContext(ctx, network, address)
}

// Connect creates the client and pings the admin database.
//
// A client that was created but failed the ping is kept: the driver keeps
// monitoring the deployment and later requests succeed once it is reachable.
func (s *Store) Connect(ctx context.Context) error {
	if s.client.Load() != nil {
		return nil
	}

	client, err := mongo.Connect(ctx, s.opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !s.client.CompareAndSwap(nil, client) {
		// Lost a race with another Connect; keep the first client.
		_ = client.Disconnect(ctx)
		return nil
	}

	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Ping runs the ping command against the admin database.
func (s *Store) Ping(ctx context.Context) error {
	client := s.client.Load()
	if client == nil {
		return ErrNotConnected
	}
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Collection returns a handle on a collection of the configured database.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	client := s.client.Load()
	if client == nil {
		return nil, ErrNotConnected
	}
	return client.Database(s.dbName).Collection(name), nil
}

// DatabaseName returns the configured database name.
func (s *Store) DatabaseName() string {
	return s.dbName
}

// Disconnect closes the client, if any.
func (s *Store) Disconnect(ctx context.Context) error {
	client := s.client.Swap(nil)
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
