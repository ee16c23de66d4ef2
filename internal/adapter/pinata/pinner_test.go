package pinata

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"near-crowdfund/internal/config/configs"
)

func testPinner(t *testing.T, apiURL string) *Pinner {
	t.Helper()
	u, err := url.Parse(apiURL)
	require.NoError(t, err)
	return NewPinner(configs.Pinner{
		APIURL:  *u,
		Gateway: "gw.mypinata.cloud",
		JWT:     "test-jwt",
		Timeout: 5 * time.Second,
	})
}

func TestPinFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "cover.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte("fake image bytes"), data)

		w.Write([]byte(`{"IpfsHash":"QmFakeHash"}`))
	}))
	defer srv.Close()

	p := testPinner(t, srv.URL)
	addr, err := p.PinFile(context.Background(), "cover.png", []byte("fake image bytes"))
	require.NoError(t, err)
	require.Equal(t, "https://gw.mypinata.cloud/ipfs/QmFakeHash", addr)
}

func TestPinFileRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := testPinner(t, srv.URL)
	_, err := p.PinFile(context.Background(), "cover.png", []byte("x"))
	require.ErrorContains(t, err, "pinata status 401")
}

func TestPinFileMissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := testPinner(t, srv.URL)
	_, err := p.PinFile(context.Background(), "cover.png", []byte("x"))
	require.ErrorContains(t, err, "missing hash")
}
