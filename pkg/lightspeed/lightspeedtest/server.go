package lightspeedtest

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

//go:embed testdata/*.json
var fixtures embed.FS

// AccountFixture returns the account payload served by default: account
// 19609 without an app (appId false).
func AccountFixture() []byte {
	return mustFixture("testdata/account.json")
}

// AppAccountFixture returns an account payload whose appId is a string.
func AppAccountFixture() []byte {
	return mustFixture("testdata/account_app.json")
}

func mustFixture(name string) []byte {
	data, err := fixtures.ReadFile(name)
	if err != nil {
		panic(err)
	}

	return data
}

// Route is a canned response.
type Route struct {
	Status      int
	ContentType string
	Body        []byte
}

// RecordedRequest is a request received by a Server.
type RecordedRequest struct {
	Method    string
	Path      string
	Header    http.Header
	Username  string
	Password  string
	BasicAuth bool
}

// Server is an httptest server that answers GET requests with canned
// responses. By default it serves AccountFixture on /account.json. Safe for
// concurrent use.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []RecordedRequest
}

// NewServer starts a Server. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		routes: map[string]Route{
			"/account.json": {
				Status:      http.StatusOK,
				ContentType: "application/json",
				Body:        AccountFixture(),
			},
		},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))

	return s
}

// Stub replaces the response for path.
func (s *Server) Stub(path string, route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes["/"+strings.TrimPrefix(path, "/")] = route
}

// StubJSON answers path with status and a JSON body.
func (s *Server) StubJSON(path string, status int, body []byte) {
	s.Stub(path, Route{Status: status, ContentType: "application/json", Body: body})
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

// Config returns a Config pointing at the server.
func (s *Server) Config() *Config {
	return NewConfig(s.URL)
}

func (s *Server) serve(writer http.ResponseWriter, request *http.Request) {
	username, password, ok := request.BasicAuth()

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:    request.Method,
		Path:      request.URL.Path,
		Header:    request.Header.Clone(),
		Username:  username,
		Password:  password,
		BasicAuth: ok,
	})
	route, found := s.routes[request.URL.Path]
	s.mu.Unlock()

	if request.Method != http.MethodGet {
		writer.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	if !found {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error":{"code":404,"method":"GET","request":"` + request.URL.Path + `","message":"Not found"}}`))

		return
	}

	if route.ContentType != "" {
		writer.Header().Set("Content-Type", route.ContentType)
	}

	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}

	writer.WriteHeader(status)
	_, _ = writer.Write(route.Body)
}
