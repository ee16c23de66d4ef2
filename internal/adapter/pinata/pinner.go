package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"near-crowdfund/internal/config/configs"
)

// Pinner implements port.ContentPinner against the Pinata pinning REST API.
// A successful pin returns the full gateway URL for the new content hash,
// which is the string the ledger record will carry. Pins are never
// deduplicated here: identical bytes pinned twice produce two pins.
type Pinner struct {
	client  *http.Client
	apiURL  string
	gateway string
	jwt     string
}

// NewPinner creates a pinner from configuration.
func NewPinner(cfg configs.Pinner) *Pinner {
	return &Pinner{
		client:  &http.Client{Timeout: cfg.Timeout},
		apiURL:  cfg.APIURL.String(),
		gateway: cfg.Gateway,
		jwt:     cfg.JWT,
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinFile uploads the image payload as a multipart form and returns its
// gateway URL.
func (p *Pinner) PinFile(ctx context.Context, name string, data []byte) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err = part.Write(data); err != nil {
		return "", err
	}
	if err = form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+p.jwt)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("pinata status %d: %s", resp.StatusCode, msg)
	}

	var out pinResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pin response missing hash")
	}
	return fmt.Sprintf("https://%s/ipfs/%s", p.gateway, out.IpfsHash), nil
}
