// Package testutil provides testing utilities for the stats client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock API endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockAPI is a configurable mock game-stats API server for testing. Unless
// a custom handler is installed, every path answers with a retcode-0
// envelope and an empty data object.
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	PathCounts        map[string]int
	LastRequestHeader http.Header
	LastQuery         url.Values
	LastCookies       []*http.Cookie
}

// NewMockAPI creates a new mock API server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		PathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.PathCounts[r.URL.Path]++
		mock.LastRequestHeader = r.Header.Clone()
		mock.LastQuery = r.URL.Query()
		mock.LastCookies = r.Cookies()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.PathCounts = make(map[string]int)
	m.LastRequestHeader = nil
	m.LastQuery = nil
	m.LastCookies = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockAPI) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a raw response for a path.
func (m *MockAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetData configures a path to answer with a retcode-0 envelope wrapping
// the given JSON data payload.
func (m *MockAPI) SetData(path string, data string) {
	m.SetResponse(path, MockResponse{
		StatusCode: http.StatusOK,
		Body:       Envelope(0, "OK", data),
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	})
}

// SetRetcode configures a path to answer with a business-error envelope.
// The HTTP status stays 200, matching the remote API's behavior.
func (m *MockAPI) SetRetcode(path string, retcode int, message string) {
	m.SetResponse(path, MockResponse{
		StatusCode: http.StatusOK,
		Body:       Envelope(retcode, message, "null"),
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockAPI) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetPathCount returns the number of requests made to a specific path.
func (m *MockAPI) GetPathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.PathCounts[path]
}

// GetLastQuery returns the query values of the most recent request.
func (m *MockAPI) GetLastQuery() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastQuery
}

// GetLastHeader returns the headers of the most recent request.
func (m *MockAPI) GetLastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastRequestHeader
}

// GetLastCookies returns the cookies of the most recent request.
func (m *MockAPI) GetLastCookies() []*http.Cookie {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastCookies
}

// defaultHandler answers with an empty successful envelope.
func (m *MockAPI) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Envelope(0, "OK", "{}")))
}

// Envelope builds a {retcode, message, data} response body. The data
// argument must be valid JSON.
func Envelope(retcode int, message string, data string) string {
	msg, _ := json.Marshal(message)
	return fmt.Sprintf(`{"retcode":%d,"message":%s,"data":%s}`, retcode, msg, data)
}

// WishPage builds a gacha log page payload. Entries are emitted as given,
// so callers control ordering and page length.
func WishPage(entries ...string) string {
	body := "["
	for i, e := range entries {
		if i > 0 {
			body += ","
		}
		body += e
	}
	body += "]"
	return fmt.Sprintf(`{"page":"1","size":"20","total":"0","list":%s,"region":"os_euro"}`, body)
}

// WishEntry builds a single gacha log entry with the given id, item name
// and timestamp (in the API's "2006-01-02 15:04:05" layout).
func WishEntry(id int64, name, ts string, bannerType int) string {
	return fmt.Sprintf(`{"uid":"710785423","gacha_type":"%d","item_id":"","count":"1","time":"%s","name":%q,"lang":"en-us","item_type":"Character","rank_type":"4","id":"%d"}`,
		bannerType, ts, name, id)
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "internal server error"}`,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	}
}

// NewFlakyHandler fails with HTTP 500 for the first failCount requests to
// the path, then answers with the given successful envelope data.
func NewFlakyHandler(failCount int, data string) func(w http.ResponseWriter, r *http.Request) {
	var mu sync.Mutex
	calls := 0
	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if n <= failCount {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "internal server error"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(Envelope(0, "OK", data)))
	}
}
