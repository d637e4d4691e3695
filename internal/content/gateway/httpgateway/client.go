// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package httpgateway implements [gateway.Gateway] over the Bibble REST API.

Every call maps onto one HTTP request and one envelope. A non-success
envelope, a non-2xx status, a transport error and a malformed body all come
back as [*gateway.Error]. The client never retries.
*/
package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// maxResponseBytes caps how much of a response body is decoded.
const maxResponseBytes = 8 << 20

// Client talks to one API base URL such as "http://localhost:8080/api/v1".
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithToken sends "Authorization: Bearer <token>" on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithTimeout sets the per-request timeout. The HTTP client in use is copied
// first, so one passed to [WithHTTPClient] is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		clone := *c.http
		clone.Timeout = timeout
		c.http = &clone
	}
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

var _ gateway.Gateway = (*Client)(nil)

func (c *Client) Products() gateway.ProductResource {
	return products{resource: resource[hierarchy.Product, gateway.ProductPayload]{client: c, collection: "products"}}
}

func (c *Client) Stories() gateway.Resource[hierarchy.Story, gateway.StoryPayload] {
	return resource[hierarchy.Story, gateway.StoryPayload]{client: c, collection: "stories", parent: "products"}
}

func (c *Client) Chapters() gateway.Resource[hierarchy.Chapter, gateway.ChapterPayload] {
	return resource[hierarchy.Chapter, gateway.ChapterPayload]{client: c, collection: "chapters", parent: "stories"}
}

func (c *Client) Verses() gateway.Resource[hierarchy.Verse, gateway.VersePayload] {
	return resource[hierarchy.Verse, gateway.VersePayload]{client: c, collection: "verses", parent: "chapters"}
}

func (c *Client) Hymns() gateway.Resource[hierarchy.Hymn, gateway.HymnPayload] {
	return resource[hierarchy.Hymn, gateway.HymnPayload]{client: c, collection: "hymns", parent: "products"}
}

func (c *Client) Languages() gateway.LanguageResource {
	return languages{resource: resource[hierarchy.Language, gateway.LanguagePayload]{client: c, collection: "languages"}}
}

func (c *Client) Imports() gateway.ImportResource {
	return imports{client: c}
}

// # Transport

// send performs one request and decodes its envelope.
func send[T any](ctx context.Context, c *Client, method, path, contentType string, body io.Reader) (gateway.Envelope[T], int, error) {
	var envelope gateway.Envelope[T]

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope, 0, &gateway.Error{Cause: err}
	}

	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return envelope, 0, &gateway.Error{Cause: err}
	}
	defer response.Body.Close()

	if err := json.NewDecoder(io.LimitReader(response.Body, maxResponseBytes)).Decode(&envelope); err != nil {
		failure := &gateway.Error{
			Status: response.StatusCode,
			Cause:  fmt.Errorf("decode %s %s: %w", method, path, err),
		}
		// A proxy or router error page has no envelope; its status still says what happened.
		if response.StatusCode >= http.StatusBadRequest {
			failure.Message = http.StatusText(response.StatusCode)
		}
		return envelope, response.StatusCode, failure
	}

	return envelope, response.StatusCode, nil
}

// call sends an optional JSON body and unwraps the envelope's data.
func call[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var (
		body        io.Reader
		contentType string
	)

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			var zero T
			return zero, &gateway.Error{Cause: fmt.Errorf("encode %s %s: %w", method, path, err)}
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	envelope, status, err := send[T](ctx, c, method, path, contentType, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return gateway.Decode(envelope, status).Unwrap()
}

// upload posts file as the multipart field "file".
func upload[T any](ctx context.Context, c *Client, path, filename string, file io.Reader) (gateway.Envelope[T], error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	part, err := writer.CreateFormFile("file", filename)
	if err == nil {
		_, err = io.Copy(part, file)
	}
	if err == nil {
		err = writer.Close()
	}
	if err != nil {
		return gateway.Envelope[T]{}, &gateway.Error{Cause: fmt.Errorf("build upload: %w", err)}
	}

	envelope, status, err := send[T](ctx, c, http.MethodPost, path, writer.FormDataContentType(), &buffer)
	if err != nil {
		return envelope, err
	}

	if _, err := gateway.Decode(envelope, status).Unwrap(); err != nil {
		return envelope, err
	}
	return envelope, nil
}
