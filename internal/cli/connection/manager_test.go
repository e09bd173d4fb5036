package connection

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestManager_Connect(t *testing.T) {
	m := NewManager()
	if m.IsConnected() {
		t.Error("new manager should not be connected")
	}

	conn := &Connection{
		Endpoints:  testEndpoints("http://localhost:3000"),
		Credential: testCredential,
	}
	if err := m.Connect(conn); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if !m.IsConnected() {
		t.Error("manager should be connected")
	}
	if m.Current() != conn {
		t.Error("Current() should return the connected connection")
	}

	client, err := m.Client()
	if err != nil {
		t.Fatalf("Client() error = %v", err)
	}
	if client.endpoints.List != "http://localhost:3000/list" {
		t.Errorf("List endpoint = %q", client.endpoints.List)
	}

	m.Disconnect()
	if m.IsConnected() {
		t.Error("manager should be disconnected")
	}
	if _, err := m.Client(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Client() after Disconnect error = %v, want ErrNotConnected", err)
	}
}

func TestManager_ConnectInvalid(t *testing.T) {
	m := NewManager()
	if err := m.Connect(nil); err == nil {
		t.Error("Connect(nil) should fail")
	}
	if err := m.Connect(&Connection{}); err == nil {
		t.Error("Connect() without credential header should fail")
	}
}

func TestManager_NotConnected(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	if _, err := m.ListDrops(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("ListDrops() error = %v, want ErrNotConnected", err)
	}
	if _, err := m.GetDrop(ctx, "x"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("GetDrop() error = %v, want ErrNotConnected", err)
	}
	if _, err := m.DeleteDrop(ctx, "x"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("DeleteDrop() error = %v, want ErrNotConnected", err)
	}
}

func TestManager_SwapConnection(t *testing.T) {
	var hitsA, hitsB int
	var mu sync.Mutex
	serverA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hitsA++
		mu.Unlock()
		w.Write([]byte(`[]`))
	}))
	defer serverA.Close()
	serverB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Other"); got != "v2" {
			t.Errorf("credential = %q, want v2", got)
		}
		mu.Lock()
		hitsB++
		mu.Unlock()
		w.Write([]byte(`[]`))
	}))
	defer serverB.Close()

	m := NewManager()
	if err := m.Connect(&Connection{Endpoints: testEndpoints(serverA.URL), Credential: testCredential}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.ListDrops(context.Background()); err != nil {
		t.Fatalf("ListDrops() error = %v", err)
	}

	if err := m.Connect(&Connection{
		Endpoints:  testEndpoints(serverB.URL),
		Credential: Credential{Header: "X-Other", Value: "v2"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.ListDrops(context.Background()); err != nil {
		t.Fatalf("ListDrops() error = %v", err)
	}

	if hitsA != 1 || hitsB != 1 {
		t.Errorf("hits = %d/%d, want 1/1", hitsA, hitsB)
	}
}
