package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type Upload struct {
	Key  string
	URL  string
	MIME string
	Size int64
}

// UploadMedia sends an image to the media endpoint. kind is "cover" or
// "avatar"; the returned URL goes into the matching game or profile
// field.
func (c *Client) UploadMedia(ctx context.Context, kind string, filename string, content io.Reader) (Upload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Upload{}, fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return Upload{}, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("kind", kind); err != nil {
		return Upload{}, fmt.Errorf("build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Upload{}, fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/media/upload", &buf)
	if err != nil {
		return Upload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.store.State().Auth.Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Upload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return Upload{}, apiErr
	}

	var out struct {
		Upload struct {
			Key  string `json:"key"`
			URL  string `json:"url"`
			MIME string `json:"mime"`
			Size int64  `json:"sizeBytes"`
		} `json:"upload"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Upload{}, fmt.Errorf("decode response: %w", err)
	}

	return Upload{
		Key:  out.Upload.Key,
		URL:  out.Upload.URL,
		MIME: out.Upload.MIME,
		Size: out.Upload.Size,
	}, nil
}
