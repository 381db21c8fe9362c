package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	paypalLiveURL    = "https://api-m.paypal.com"
	paypalSandboxURL = "https://api-m.sandbox.paypal.com"
)

// PayPalClient talks to the PayPal Orders API: a client-credentials token
// first, then the order lookup. BaseURL is a field so tests can point the
// client at a local server.
type PayPalClient struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTP         *http.Client
}

func NewPayPalClient(clientID, clientSecret string, live bool) *PayPalClient {
	base := paypalSandboxURL
	if live {
		base = paypalLiveURL
	}
	return &PayPalClient{
		BaseURL:      base,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTP:         &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether credentials were provided at all.
func (p *PayPalClient) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// VerifiedOrder is a PayPal order that came back COMPLETED.
type VerifiedOrder struct {
	OrderID  string
	Status   string
	Amount   decimal.Decimal
	Currency string
}

// AccessToken fetches an OAuth token with the client-credentials grant.
func (p *PayPalClient) AccessToken() (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest("POST", p.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.ClientID, p.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request failed, status: %s", resp.Status)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token")
	}
	return result.AccessToken, nil
}

// VerifyOrder fetches an order and returns it only when PayPal reports it
// COMPLETED with a parseable amount. A nil order with nil error means the
// order exists in no grantable state; an error means PayPal was unreachable.
func (p *PayPalClient) VerifyOrder(orderID string) (*VerifiedOrder, error) {
	token, err := p.AccessToken()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", p.BaseURL+"/v2/checkout/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var order struct {
		Status        string `json:"status"`
		PurchaseUnits []struct {
			Amount struct {
				Value        string `json:"value"`
				CurrencyCode string `json:"currency_code"`
			} `json:"amount"`
		} `json:"purchase_units"`
	}
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		return nil, nil
	}

	if order.Status != "COMPLETED" || len(order.PurchaseUnits) == 0 {
		return nil, nil
	}

	amount, err := decimal.NewFromString(order.PurchaseUnits[0].Amount.Value)
	if err != nil {
		return nil, nil
	}

	currency := order.PurchaseUnits[0].Amount.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	return &VerifiedOrder{
		OrderID:  orderID,
		Status:   order.Status,
		Amount:   amount,
		Currency: currency,
	}, nil
}
