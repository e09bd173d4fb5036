package command

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kappa-go/internal/cli/connection"
	"github.com/yndnr/kappa-go/internal/cli/output"
	"github.com/yndnr/kappa-go/internal/core/domain"
)

// recordedRequest is one request seen by a mock server.
type recordedRequest struct {
	Method string
	Query  string
	Header http.Header
	Body   []byte
}

// mockServer is an in-memory drop service. Like the default configuration
// it serves every operation on one URL, telling them apart by method, query
// and body shape. Handlers can be overridden to return arbitrary replies.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	drops    []domain.Drop
	requests []recordedRequest
	override http.HandlerFunc
}

// newMockServer creates a new mock server holding drops.
func newMockServer(t *testing.T, drops ...domain.Drop) *mockServer {
	t.Helper()

	m := &mockServer{drops: drops}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Close)
	return m
}

// handle replaces the drop service behaviour with handler.
func (m *mockServer) handle(handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override = handler
}

// requestCount returns how many requests the server has received.
func (m *mockServer) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// lastRequest returns the most recent request.
func (m *mockServer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		t.Fatal("no requests received")
	}
	return m.requests[len(m.requests)-1]
}

func (m *mockServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method: r.Method,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	override := m.override
	m.mu.Unlock()

	if override != nil {
		r.Body = io.NopCloser(bytes.NewReader(body))
		override(w, r)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if r.Method == http.MethodGet {
		if r.URL.Query().Get("all_drops") == "true" {
			drops := m.drops
			if drops == nil {
				drops = []domain.Drop{}
			}
			jsonResponse(w, http.StatusOK, drops)
			return
		}
		name := r.URL.Query().Get("drop")
		if i := m.find(name); i >= 0 {
			jsonResponse(w, http.StatusOK, m.drops[i])
			return
		}
		jsonResponse(w, http.StatusOK, nil)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	switch {
	case fields["argument"] != nil:
		m.edit(w, body)
	case fields["param"] != nil:
		m.create(w, body)
	default:
		m.delete(w, body)
	}
}

func (m *mockServer) find(name string) int {
	for i, d := range m.drops {
		if d.Name == name {
			return i
		}
	}
	return -1
}

func (m *mockServer) create(w http.ResponseWriter, body []byte) {
	var req domain.DropCreateRequest
	json.Unmarshal(body, &req)
	if m.find(req.Name) >= 0 {
		jsonResponse(w, http.StatusOK, domain.OperationResult{Success: false})
		return
	}
	m.drops = append(m.drops, domain.Drop{
		Name:   req.Name,
		Param:  req.Param,
		Secret: req.Secret,
		Type:   req.Type,
		Stock:  req.Stock,
	})
	jsonResponse(w, http.StatusOK, domain.OperationResult{Success: true})
}

func (m *mockServer) edit(w http.ResponseWriter, body []byte) {
	var req struct {
		Name     string          `json:"name"`
		Argument string          `json:"argument"`
		Value    json.RawMessage `json:"value"`
	}
	json.Unmarshal(body, &req)

	i := m.find(req.Name)
	if i < 0 {
		jsonResponse(w, http.StatusOK, domain.EditResult{Success: false})
		return
	}

	d := &m.drops[i]
	var s string
	switch req.Argument {
	case "stock":
		json.Unmarshal(req.Value, &d.Stock)
	case "type":
		json.Unmarshal(req.Value, &s)
		d.Type = domain.DropType(s)
	case "name":
		json.Unmarshal(req.Value, &d.Name)
	case "param":
		json.Unmarshal(req.Value, &d.Param)
	case "secret":
		json.Unmarshal(req.Value, &d.Secret)
	}
	updated := *d
	jsonResponse(w, http.StatusOK, domain.EditResult{Success: true, Message: &updated})
}

func (m *mockServer) delete(w http.ResponseWriter, body []byte) {
	var req domain.DeleteRequest
	json.Unmarshal(body, &req)

	i := m.find(req.Name)
	if i < 0 {
		jsonResponse(w, http.StatusOK, domain.OperationResult{Success: false})
		return
	}
	m.drops = append(m.drops[:i], m.drops[i+1:]...)
	jsonResponse(w, http.StatusOK, domain.OperationResult{Success: true})
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// newTestExecutor returns an executor talking to server and the buffer it
// writes to.
func newTestExecutor(server *mockServer, format output.Format) (*Executor, *bytes.Buffer) {
	url := server.URL + "/"
	client := connection.NewHTTPClient(
		connection.Endpoints{List: url, Create: url, Edit: url, Delete: url},
		connection.Credential{Header: "header", Value: "value"},
	)

	var buf bytes.Buffer
	return NewExecutor(client, &buf, format, false), &buf
}

// runApp runs the CLI with args and stdin against an isolated home
// directory, returning what it wrote to stdout.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runAppStderr(t, stdin, args...)
	return stdout, err
}

// runAppStderr is runApp that also returns what was logged.
func runAppStderr(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	app := App()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err = app.Run(append([]string{"kappa-cli"}, args...))
	return out.String(), errOut.String(), err
}

// testContext creates a CLI context with the global flags parsed from args.
func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	app := &cli.App{
		Name:     "test",
		Flags:    globalFlags(),
		Metadata: map[string]any{},
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		if err := f.Apply(set); err != nil {
			t.Fatalf("apply flag: %v", err)
		}
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	return cli.NewContext(app, set, nil)
}

func sampleDrop() domain.Drop {
	return domain.Drop{
		Name:      "sneakers",
		Param:     "size",
		Secret:    "abc123",
		Type:      domain.DropTypeInitialLifetime,
		Stock:     50,
		Purchased: 3,
	}
}

const sneakersText = "Name: sneakers\n" +
	"Parameter: size\n" +
	"Secret token: abc123\n" +
	"Type: initial-lifetime\n" +
	"Stock: 50\n" +
	"Purchased: 3\n" +
	"\n"
