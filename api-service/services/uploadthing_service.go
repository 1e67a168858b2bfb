package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"marigold-backend/shared/config"
)

// UploadThingService proxies files to the UploadThing HTTP API
type UploadThingService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewUploadThingService creates the proxy client; fails when no API key is set
func NewUploadThingService(cfg *config.Config) (*UploadThingService, error) {
	if cfg.UploadThingAPIKey == "" {
		return nil, fmt.Errorf("UploadThing not configured (missing UPLOADTHING_API_KEY)")
	}

	return &UploadThingService{
		apiKey:  cfg.UploadThingAPIKey,
		baseURL: strings.TrimRight(cfg.UploadThingAPIBaseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Upload forwards one file as multipart form data and returns the parsed
// success body; remote failures come back as *UpstreamError
func (s *UploadThingService) Upload(ctx context.Context, file UploadFile) (interface{}, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, file.Name))
	header.Set("Content-Type", file.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v6/uploadFiles", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Uploadthing-Api-Key", s.apiKey)

	return s.do(req)
}

// Delete forwards a delete request for the given file key
func (s *UploadThingService) Delete(ctx context.Context, fileKey string) (interface{}, error) {
	payload, err := json.Marshal(map[string]string{"fileKey": fileKey})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v6/deleteFile", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uploadthing-Api-Key", s.apiKey)

	return s.do(req)
}

// do executes a single attempt and relays the remote response.
// No retries: failures surface verbatim to the caller.
func (s *UploadThingService) do(req *http.Request) (interface{}, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse storage response: %w", err)
	}
	return data, nil
}

// BuildUploadThingToken returns the configured token, or derives one from
// the API key, app id and regions the way the hosted SDK does
func BuildUploadThingToken(cfg *config.Config) string {
	if cfg.UploadThingToken != "" {
		return cfg.UploadThingToken
	}
	if cfg.UploadThingAPIKey == "" || cfg.UploadThingAppID == "" {
		return ""
	}

	regions := make([]string, 0)
	for _, region := range strings.Split(cfg.UploadThingRegions, ",") {
		if trimmed := strings.TrimSpace(region); trimmed != "" {
			regions = append(regions, trimmed)
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"apiKey":  cfg.UploadThingAPIKey,
		"appId":   cfg.UploadThingAppID,
		"regions": regions,
	})
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(payload)
}
