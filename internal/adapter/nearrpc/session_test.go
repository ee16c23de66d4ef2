package nearrpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"near-crowdfund/internal/config/configs"
	"near-crowdfund/internal/core/port"
)

func testSession(t *testing.T, rpc, signer string) *Session {
	t.Helper()
	cfg := configs.Ledger{
		ContractID: "crowdfund.testnet",
		Timeout:    5 * time.Second,
	}
	if rpc != "" {
		u, err := url.Parse(rpc)
		require.NoError(t, err)
		cfg.RPCURL = *u
	}
	if signer != "" {
		u, err := url.Parse(signer)
		require.NoError(t, err)
		cfg.SignerURL = *u
	}
	return NewSession(cfg)
}

// viewEnvelope wraps a contract return value the way the node does: the
// JSON bytes arrive as an array of numbers inside the rpc result.
func viewEnvelope(t *testing.T, contractReturn any) []byte {
	t.Helper()
	payload, err := json.Marshal(contractReturn)
	require.NoError(t, err)
	nums := make([]int, len(payload))
	for i, b := range payload {
		nums[i] = int(b)
	}
	envelope := map[string]any{
		"jsonrpc": "2.0",
		"id":      "near-crowdfund",
		"result":  map[string]any{"result": nums, "logs": []string{}},
	}
	out, err := json.Marshal(envelope)
	require.NoError(t, err)
	return out
}

func TestQueryCampaigns(t *testing.T) {
	contractReturn := []any{
		[]any{0, map[string]any{
			"creator":          "alice.near",
			"image":            "https://gw/ipfs/QmA",
			"title":            "A",
			"description":      "first",
			"target":           "100000000000000000000000000",
			"deadline":         1893456000000000000,
			"amount_collected": "0",
		}},
		[]any{1, map[string]any{
			"creator":          "bob.near",
			"image":            "https://gw/ipfs/QmB",
			"title":            "B",
			"description":      "second",
			"target":           "5000000000000000000000000 yoctoNEAR",
			"deadline":         1893456000000000000,
			"amount_collected": "2500000000000000000000000 yoctoNEAR",
		}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "query", req.Method)

		params, err := json.Marshal(req.Params)
		require.NoError(t, err)
		var q queryParams
		require.NoError(t, json.Unmarshal(params, &q))
		require.Equal(t, "call_function", q.RequestType)
		require.Equal(t, "crowdfund.testnet", q.AccountID)
		require.Equal(t, "get_campaigns", q.MethodName)
		args, err := base64.StdEncoding.DecodeString(q.ArgsBase64)
		require.NoError(t, err)
		require.JSONEq(t, "{}", string(args))

		w.Write(viewEnvelope(t, contractReturn))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, "")
	got, err := s.QueryCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, uint64(0), got[0].ID)
	require.Equal(t, "alice.near", got[0].Creator)
	require.Equal(t, "100000000000000000000000000", got[0].Target)
	require.Equal(t, int64(1893456000000000000), got[0].Deadline)

	// suffixed amounts are normalized to bare integer strings
	require.Equal(t, "5000000000000000000000000", got[1].Target)
	require.Equal(t, "2500000000000000000000000", got[1].Collected)
}

func TestQueryCampaignsRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":"x","error":{"message":"UNKNOWN_ACCOUNT"}}`))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, "")
	_, err := s.QueryCampaigns(context.Background())
	require.ErrorContains(t, err, "UNKNOWN_ACCOUNT")
}

func TestQueryDonations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		params, _ := json.Marshal(req.Params)
		var q queryParams
		require.NoError(t, json.Unmarshal(params, &q))
		require.Equal(t, "get_donations", q.MethodName)
		args, err := base64.StdEncoding.DecodeString(q.ArgsBase64)
		require.NoError(t, err)
		require.JSONEq(t, `{"campaign_id":4}`, string(args))

		w.Write(viewEnvelope(t, [][2]string{{"carol.near", "7000000000000000000000000"}}))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, "")
	got, err := s.QueryDonations(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, []port.RawDonation{{Donor: "carol.near", Amount: "7000000000000000000000000"}}, got)
}

func TestCreateCampaignSignedCall(t *testing.T) {
	var received signRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"tx_hash":"abc"}`))
	}))
	defer srv.Close()

	s := testSession(t, "", srv.URL)
	target, _ := new(big.Int).SetString("2500000000000000000000000", 10)
	fee, _ := new(big.Int).SetString("10000000000000000000000", 10)
	err := s.CreateCampaign(context.Background(), port.CreateTx{
		Image:       "https://gw/ipfs/QmA",
		Title:       "A",
		Description: "first",
		Target:      target,
		Deadline:    1893456000000000000,
		Fee:         fee,
	})
	require.NoError(t, err)

	require.Equal(t, "crowdfund.testnet", received.ContractID)
	require.Equal(t, "create_campaign", received.MethodName)
	require.Equal(t, "10000000000000000000000", received.Deposit)

	args, _ := json.Marshal(received.Args)
	require.JSONEq(t, `{
		"image": "https://gw/ipfs/QmA",
		"title": "A",
		"description": "first",
		"target": "2500000000000000000000000",
		"deadline": 1893456000000000000
	}`, string(args))
}

func TestFundCampaignSignerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Campaign has ended"}`))
	}))
	defer srv.Close()

	s := testSession(t, "", srv.URL)
	err := s.FundCampaign(context.Background(), 2, big.NewInt(1))
	require.ErrorContains(t, err, "Campaign has ended")
}

func TestSignerNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := testSession(t, "", srv.URL)
	err := s.FundCampaign(context.Background(), 2, big.NewInt(1))
	require.ErrorContains(t, err, "signer status 502")
}
