package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_WithRequestIDs_Generated(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRequestIDs(NewUUIDGenerator())
	if _, err := client.R().Get(srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected a uuid request id, got %q", got)
	}
}

func TestHTTPClient_WithRequestIDs_FromContext(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRequestIDs(NewUUIDGenerator())
	ctx := WithRequestID(context.Background(), "batch-1")
	if _, err := client.R().SetContext(ctx).Get(srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "batch-1" {
		t.Fatalf("expected 'batch-1', got %q", got)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	gen := NewUUIDGenerator()
	a, b := gen.Generate(), gen.Generate()
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}
