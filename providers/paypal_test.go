package providers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func paypalStub(t *testing.T, orderStatus string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			user, pass, ok := r.BasicAuth()
			if !ok || user != "client-id" || pass != "client-secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"access_token":"tok-123"}`)
		case "/v2/checkout/orders/ORDER-1":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprintf(w, `{"status":%q,"purchase_units":[{"amount":{"value":"1.29","currency_code":"USD"}}]}`, orderStatus)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testClient(srv *httptest.Server) *PayPalClient {
	client := NewPayPalClient("client-id", "client-secret", false)
	client.BaseURL = srv.URL
	return client
}

func TestVerifyOrderCompleted(t *testing.T) {
	srv := paypalStub(t, "COMPLETED")
	defer srv.Close()

	order, err := testClient(srv).VerifyOrder("ORDER-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if order == nil {
		t.Fatal("completed order came back nil")
	}
	if order.Status != "COMPLETED" {
		t.Errorf("status = %q", order.Status)
	}
	if !order.Amount.Equal(decimal.NewFromFloat(1.29)) {
		t.Errorf("amount = %s, want 1.29", order.Amount)
	}
	if order.Currency != "USD" {
		t.Errorf("currency = %q, want USD", order.Currency)
	}
}

func TestVerifyOrderRejectsPendingState(t *testing.T) {
	srv := paypalStub(t, "CREATED")
	defer srv.Close()

	order, err := testClient(srv).VerifyOrder("ORDER-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if order != nil {
		t.Fatalf("non-completed order verified: %+v", order)
	}
}

func TestVerifyOrderUnknownOrder(t *testing.T) {
	srv := paypalStub(t, "COMPLETED")
	defer srv.Close()

	order, err := testClient(srv).VerifyOrder("ORDER-MISSING")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if order != nil {
		t.Fatal("unknown order must not verify")
	}
}

func TestAccessTokenRequiresCredentials(t *testing.T) {
	srv := paypalStub(t, "COMPLETED")
	defer srv.Close()

	client := NewPayPalClient("client-id", "wrong-secret", false)
	client.BaseURL = srv.URL

	if _, err := client.AccessToken(); err == nil {
		t.Fatal("bad credentials should fail the token request")
	}
}

func TestConfigured(t *testing.T) {
	if NewPayPalClient("", "", false).Configured() {
		t.Error("empty credentials reported configured")
	}
	if !NewPayPalClient("id", "secret", false).Configured() {
		t.Error("real credentials reported unconfigured")
	}
}

func TestLiveFlagPicksEndpoint(t *testing.T) {
	if got := NewPayPalClient("id", "secret", true).BaseURL; got != paypalLiveURL {
		t.Errorf("live base = %q", got)
	}
	if got := NewPayPalClient("id", "secret", false).BaseURL; got != paypalSandboxURL {
		t.Errorf("sandbox base = %q", got)
	}
}
