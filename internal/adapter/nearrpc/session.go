package nearrpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"near-crowdfund/internal/config/configs"
)

// Session implements port.LedgerSession against a NEAR node. View calls go
// straight to the node's JSON-RPC endpoint; signed function calls are
// delegated to a wallet signer bridge that holds the key material, since key
// custody is not this service's concern. Both paths share one http.Client
// whose timeout comes from configuration.
type Session struct {
	client     *http.Client
	rpcURL     string
	signerURL  string
	contractID string
}

// NewSession creates a ledger session from configuration.
func NewSession(cfg configs.Ledger) *Session {
	return &Session{
		client:     &http.Client{Timeout: cfg.Timeout},
		rpcURL:     cfg.RPCURL.String(),
		signerURL:  cfg.SignerURL.String(),
		contractID: cfg.ContractID,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *rpcError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, e.Data)
	}
	return e.Message
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type queryParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	MethodName  string `json:"method_name"`
	ArgsBase64  string `json:"args_base64"`
}

// callFunctionResult is the node's view-call envelope. The contract's return
// value arrives as a JSON array of byte values.
type callFunctionResult struct {
	Result []int    `json:"result"`
	Logs   []string `json:"logs"`
	Error  string   `json:"error"`
}

// viewFunction performs one read-only call_function query and decodes the
// contract's JSON return value into out.
func (s *Session) viewFunction(ctx context.Context, method string, args, out any) error {
	argJSON, err := json.Marshal(args)
	if err != nil {
		return err
	}
	params := queryParams{
		RequestType: "call_function",
		Finality:    "final",
		AccountID:   s.contractID,
		MethodName:  method,
		ArgsBase64:  base64.StdEncoding.EncodeToString(argJSON),
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "near-crowdfund",
		Method:  "query",
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.rpcURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc status %d", resp.StatusCode)
	}

	var envelope rpcResponse
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}

	var call callFunctionResult
	if err = json.Unmarshal(envelope.Result, &call); err != nil {
		return fmt.Errorf("decode call result: %w", err)
	}
	if call.Error != "" {
		return fmt.Errorf("contract error: %s", call.Error)
	}

	payload := make([]byte, len(call.Result))
	for i, b := range call.Result {
		payload[i] = byte(b)
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s return value: %w", method, err)
	}
	return nil
}

// signRequest is the payload sent to the wallet signer bridge for a signed
// function call. Deposit is yoctoNEAR as a decimal string.
type signRequest struct {
	ContractID string `json:"contract_id"`
	MethodName string `json:"method_name"`
	Args       any    `json:"args"`
	Deposit    string `json:"deposit"`
}

type signResponse struct {
	TxHash string `json:"tx_hash"`
	Error  string `json:"error"`
}

// signedCall submits one function call through the signer bridge. Any
// non-2xx status or error body fails the call; the bridge never retries on
// this side.
func (s *Session) signedCall(ctx context.Context, method string, args any, deposit string) error {
	body, err := json.Marshal(signRequest{
		ContractID: s.contractID,
		MethodName: method,
		Args:       args,
		Deposit:    deposit,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.signerURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("signer status %d: %s", resp.StatusCode, msg)
	}

	var out signResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode signer response: %w", err)
	}
	if out.Error != "" {
		return fmt.Errorf("signer error: %s", out.Error)
	}
	return nil
}
