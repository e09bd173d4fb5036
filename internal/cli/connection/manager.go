package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

// Manager owns the active drop service connection. The connection can be
// replaced while the CLI runs, for example when the config file changes.
type Manager struct {
	mu      sync.RWMutex
	current *Connection
	client  *HTTPClient
	opts    []Option
}

// Connection describes how to reach the drop service.
type Connection struct {
	Endpoints  Endpoints
	Credential Credential
	Timeout    time.Duration
}

// ErrNotConnected is returned by drop operations before Connect.
var ErrNotConnected = errors.New("not connected to a drop service")

// NewManager creates a new connection manager. opts are applied to every
// client it builds.
func NewManager(opts ...Option) *Manager {
	return &Manager{opts: opts}
}

// Connect makes conn the active connection.
func (m *Manager) Connect(conn *Connection) error {
	if conn == nil {
		return fmt.Errorf("connection is nil")
	}
	if conn.Credential.Header == "" {
		return fmt.Errorf("credential header name is empty")
	}

	opts := append([]Option{WithTimeout(conn.Timeout)}, m.opts...)
	client := NewHTTPClient(conn.Endpoints, conn.Credential, opts...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = conn
	m.client = client
	return nil
}

// Disconnect drops the active connection.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.client = nil
}

// Current returns the active connection.
func (m *Manager) Current() *Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsConnected returns true if a connection is active.
func (m *Manager) IsConnected() bool {
	return m.Current() != nil
}

// Client returns the client for the active connection.
func (m *Manager) Client() (*HTTPClient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.client == nil {
		return nil, ErrNotConnected
	}
	return m.client, nil
}

// ListDrops calls ListDrops on the active client.
func (m *Manager) ListDrops(ctx context.Context) ([]domain.Drop, error) {
	c, err := m.Client()
	if err != nil {
		return nil, err
	}
	return c.ListDrops(ctx)
}

// GetDrop calls GetDrop on the active client.
func (m *Manager) GetDrop(ctx context.Context, name string) (domain.Drop, error) {
	c, err := m.Client()
	if err != nil {
		return domain.Drop{}, err
	}
	return c.GetDrop(ctx, name)
}

// CreateDrop calls CreateDrop on the active client.
func (m *Manager) CreateDrop(ctx context.Context, req domain.DropCreateRequest) (domain.OperationResult, error) {
	c, err := m.Client()
	if err != nil {
		return domain.OperationResult{}, err
	}
	return c.CreateDrop(ctx, req)
}

// EditDrop calls EditDrop on the active client.
func (m *Manager) EditDrop(ctx context.Context, req domain.DropEditRequest) (domain.EditResult, error) {
	c, err := m.Client()
	if err != nil {
		return domain.EditResult{}, err
	}
	return c.EditDrop(ctx, req)
}

// DeleteDrop calls DeleteDrop on the active client.
func (m *Manager) DeleteDrop(ctx context.Context, name string) (domain.OperationResult, error) {
	c, err := m.Client()
	if err != nil {
		return domain.OperationResult{}, err
	}
	return c.DeleteDrop(ctx, name)
}
