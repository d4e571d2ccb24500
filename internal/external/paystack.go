package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaystackClient talks to the Paystack-compatible payment gateway.
// The only contract the dashboard relies on is: initialize a transaction,
// get back a hosted authorization URL, and hand the browser to it.
type PaystackClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

type PaystackConfig struct {
	BaseURL     string
	SecretKey   string
	CallbackURL string
	Timeout     time.Duration
}

type InitializeTransactionRequest struct {
	Amount      int64  `json:"amount"`
	Email       string `json:"email"`
	Reference   string `json:"reference"`
	Currency    string `json:"currency,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type InitializeTransactionResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type VerifyTransactionResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

type RefundResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func NewPaystackClient(cfg PaystackConfig) *PaystackClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &PaystackClient{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// InitializeTransaction starts a hosted checkout and returns the
// authorization URL the frontend redirects to
func (pc *PaystackClient) InitializeTransaction(amount int64, email, reference, callbackURL string) (*InitializeTransactionResponse, error) {
	req := InitializeTransactionRequest{
		Amount:      amount,
		Email:       email,
		Reference:   reference,
		Currency:    "NGN",
		CallbackURL: callbackURL,
	}

	var resp InitializeTransactionResponse
	if err := pc.post("/transaction/initialize", req, &resp); err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, fmt.Errorf("payment gateway rejected transaction: %s", resp.Message)
	}

	return &resp, nil
}

// VerifyTransaction checks the final state of a transaction by reference
func (pc *PaystackClient) VerifyTransaction(reference string) (*VerifyTransactionResponse, error) {
	var resp VerifyTransactionResponse
	if err := pc.get("/transaction/verify/"+reference, &resp); err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, fmt.Errorf("payment gateway verify failed: %s", resp.Message)
	}

	return &resp, nil
}

// Refund requests a full refund for a transaction
func (pc *PaystackClient) Refund(reference string) error {
	req := map[string]string{"transaction": reference}

	var resp RefundResponse
	if err := pc.post("/refund", req, &resp); err != nil {
		return err
	}

	if !resp.Status {
		return fmt.Errorf("payment gateway refund failed: %s", resp.Message)
	}

	return nil
}

func (pc *PaystackClient) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, pc.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pc.secretKey)

	return pc.do(req, out)
}

func (pc *PaystackClient) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, pc.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+pc.secretKey)

	return pc.do(req, out)
}

func (pc *PaystackClient) do(req *http.Request, out interface{}) error {
	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
