package ledger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// Config holds the ledger RPC client settings.
type Config struct {
	// Endpoints in preference order. On a connectivity failure the
	// client rotates to the next one and stays there.
	Endpoints           []string
	RequestTimeout      time.Duration
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
}

// RPCClient implements ports.LedgerClient over JSON-RPC.
type RPCClient struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger

	mu      sync.Mutex
	current int
}

// NewRPCClient creates a ledger RPC client.
func NewRPCClient(cfg Config, log zerolog.Logger) *RPCClient {
	return &RPCClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC call, rotating endpoints on connectivity
// failures. An RPC-level error is returned as *rpcError; exhausting
// every endpoint is a LedgerUnavailable.
func (c *RPCClient) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal rpc request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < len(c.cfg.Endpoints); attempt++ {
		endpoint := c.endpoint()

		resp, err := c.post(ctx, endpoint, body)
		if err != nil {
			lastErr = err
			c.log.Warn().
				Err(err).
				Str("endpoint", endpoint).
				Str("method", method).
				Msg("ledger endpoint unreachable, rotating")
			c.rotate()
			continue
		}

		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}

	return nil, apperror.ErrLedgerUnavailable(fmt.Errorf("all ledger endpoints failed: %w", lastErr))
}

func (c *RPCClient) post(ctx context.Context, endpoint string, body []byte) (*rpcResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc http status %d", httpResp.StatusCode)
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rpc response: %w", err)
	}

	resp := &rpcResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	return resp, nil
}

func (c *RPCClient) endpoint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Endpoints[c.current]
}

func (c *RPCClient) rotate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % len(c.cfg.Endpoints)
}

// GetBalance returns an address's balance in base units.
func (c *RPCClient) GetBalance(ctx context.Context, address string) (int64, error) {
	result, err := c.call(ctx, "getBalance", []any{address})
	if err != nil {
		return 0, wrapUnavailable(err)
	}

	var out struct {
		Value int64 `json:"value"`
	}
	if err := json.Unmarshal(result, &out); err != nil {
		return 0, fmt.Errorf("decode balance: %w", err)
	}
	return out.Value, nil
}

// GetTransaction returns the ledger's view of a finalized transfer, or
// nil, nil when the signature is unknown.
func (c *RPCClient) GetTransaction(ctx context.Context, signature string) (*ports.TransferInfo, error) {
	result, err := c.call(ctx, "getTransaction", []any{signature, map[string]any{"encoding": "json"}})
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	if len(result) == 0 || string(result) == "null" {
		return nil, nil
	}

	var out struct {
		Meta struct {
			PreBalances  []int64 `json:"preBalances"`
			PostBalances []int64 `json:"postBalances"`
		} `json:"meta"`
		Confirmations int64 `json:"confirmations"`
	}
	if err := json.Unmarshal(result, &out); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}

	return &ports.TransferInfo{
		PreBalances:   out.Meta.PreBalances,
		PostBalances:  out.Meta.PostBalances,
		Confirmations: out.Confirmations,
	}, nil
}

// SubmitTransaction broadcasts a signed transaction and returns its
// signature. A definitive ledger rejection is a TransferFailed.
func (c *RPCClient) SubmitTransaction(ctx context.Context, signedTx []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(signedTx)

	result, err := c.call(ctx, "sendTransaction", []any{encoded, map[string]any{"encoding": "base64"}})
	if err != nil {
		var rpcErr *rpcError
		if errors.As(err, &rpcErr) {
			return "", apperror.ErrTransferFailed(rpcErr)
		}
		return "", wrapUnavailable(err)
	}

	var signature string
	if err := json.Unmarshal(result, &signature); err != nil {
		return "", fmt.Errorf("decode submit result: %w", err)
	}
	return signature, nil
}

// WaitForConfirmation polls signature status until the transfer
// reaches minConfirmations or the configured timeout elapses.
func (c *RPCClient) WaitForConfirmation(ctx context.Context, signature string, minConfirmations int64) error {
	deadline := time.NewTimer(c.cfg.ConfirmationTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := c.signatureStatus(ctx, signature)
		if err != nil {
			// Transient: keep polling until the deadline.
			c.log.Warn().Err(err).Str("signature", signature).Msg("confirmation poll failed")
		} else if status != nil {
			if status.Err != nil {
				return apperror.ErrTransferFailed(fmt.Errorf("transaction rejected: %s", string(status.Err)))
			}
			// Finalized transactions report no confirmation count.
			if status.Confirmations == nil || *status.Confirmations >= minConfirmations {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return apperror.ErrConfirmationTimeout(ctx.Err())
		case <-deadline.C:
			return apperror.ErrConfirmationTimeout(
				fmt.Errorf("signature %s not confirmed within %s", signature, c.cfg.ConfirmationTimeout))
		case <-ticker.C:
		}
	}
}

type signatureStatus struct {
	Confirmations *int64          `json:"confirmations"`
	Err           json.RawMessage `json:"err"`
}

func (c *RPCClient) signatureStatus(ctx context.Context, signature string) (*signatureStatus, error) {
	result, err := c.call(ctx, "getSignatureStatuses", []any{[]string{signature}})
	if err != nil {
		return nil, err
	}

	var out struct {
		Value []*signatureStatus `json:"value"`
	}
	if err := json.Unmarshal(result, &out); err != nil {
		return nil, fmt.Errorf("decode signature statuses: %w", err)
	}
	if len(out.Value) == 0 {
		return nil, nil
	}
	st := out.Value[0]
	if st != nil && len(st.Err) > 0 && string(st.Err) == "null" {
		st.Err = nil
	}
	return st, nil
}

// wrapUnavailable maps a read-path failure to LedgerUnavailable. An
// RPC-level error on a read is still just an unusable endpoint, not a
// rejected transfer; only SubmitTransaction maps rpc errors to
// TransferFailed.
func wrapUnavailable(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrLedgerUnavailable(err)
}
