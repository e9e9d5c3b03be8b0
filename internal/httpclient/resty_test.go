package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Errorf("RequestID(empty) = %q", got)
	}
	if got := RequestID(WithRequestID(ctx, "abc")); got != "abc" {
		t.Errorf("RequestID() = %q, want abc", got)
	}
}

func TestNewClient_LogsResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient("TestClient", logger, 5*time.Second)
	defer client.Close()

	var result map[string]any
	resp, err := client.R().
		SetContext(WithRequestID(context.Background(), "req-1")).
		SetQueryParam("key", "secret").
		SetResult(&result).
		Get(srv.URL + "/v1/thing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.StatusCode() != 200 || result["ok"] != true {
		t.Fatalf("status = %d, result = %v", resp.StatusCode(), result)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", buf.String())
	}
	want := map[string]any{
		"msg":        "api call",
		"request_id": "req-1",
		"client":     "TestClient",
		"method":     "GET",
		"path":       "/v1/thing",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("log[%q] = %v, want %v", k, entry[k], v)
		}
	}
	if strings.Contains(buf.String(), "secret") {
		t.Error("log leaked the query string")
	}
}
