package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("api-key", "", "")
	if c.APIKey != "api-key" {
		t.Errorf("APIKey = %q, want %q", c.APIKey, "api-key")
	}
	if c.BaseURL == "" {
		t.Error("BaseURL should have a default")
	}
	if c.Sender == "" {
		t.Error("Sender should have a default")
	}
	if c.HTTPClient == nil || c.HTTPClient.Timeout != defaultTimeout {
		t.Error("HTTPClient should be set with the default timeout")
	}
}

func TestSendPasscode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		text, _ := body["text"].(string)
		if !strings.Contains(text, "123456") {
			t.Errorf("body text %q should contain the passcode", text)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	c := NewClient("test-api-key", server.URL, "otp@jendo.health")
	if err := c.SendPasscode(context.Background(), "a@x.com", "123456"); err != nil {
		t.Fatalf("SendPasscode: %v", err)
	}
}

func TestSendPasscode_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	c := NewClient("test-api-key", server.URL, "")
	if err := c.SendPasscode(context.Background(), "a@x.com", "123456"); err == nil {
		t.Fatal("SendPasscode should fail on non-2xx response")
	}
}

func TestSendPasscode_MissingAPIKey(t *testing.T) {
	c := NewClient("", "http://localhost:1", "")
	if err := c.SendPasscode(context.Background(), "a@x.com", "123456"); err == nil {
		t.Fatal("SendPasscode should fail without an API key")
	}
}
