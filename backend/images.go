package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListImageIDs returns the image ids associated with a product, in
// backend order. An empty list is not an error; the image may still be
// processing.
func (c *Client) ListImageIDs(ctx context.Context, token string, productID uint) ([]uint, error) {
	var ids []uint
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/images/%d", productID), nil, token, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FetchImage returns the base64-encoded bytes of one image.
func (c *Client) FetchImage(ctx context.Context, token string, imageID uint) (string, error) {
	query := url.Values{"id": {strconv.FormatUint(uint64(imageID), 10)}}
	var resp struct {
		File string `json:"file"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/images", query, token, nil, &resp); err != nil {
		return "", err
	}
	return resp.File, nil
}

// UploadImage posts one image file for a product as a multipart form
// under the "file" field.
func (c *Client) UploadImage(ctx context.Context, token string, productID uint, filename string, file io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/products/images/%d", c.BaseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Message: extractMessage(data)}
	}
	return nil
}
