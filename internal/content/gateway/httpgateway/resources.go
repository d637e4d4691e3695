// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package httpgateway

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/bibble/internal/content/gateway"
	"github.com/taibuivan/bibble/internal/content/hierarchy"
)

// resource maps the generic CRUD calls onto
//
//	GET    /{parent}/{parentID}/{collection}
//	GET    /{collection}/{id}
//	POST   /{collection}
//	PUT    /{collection}/{id}
//	DELETE /{collection}/{id}
type resource[T any, P any] struct {
	client     *Client
	collection string
	parent     string
}

func (r resource[T, P]) item(id string) string {
	return "/" + r.collection + "/" + url.PathEscape(id)
}

func (r resource[T, P]) ListByParent(ctx context.Context, parentID string) ([]T, error) {
	path := "/" + r.parent + "/" + url.PathEscape(parentID) + "/" + r.collection
	return call[[]T](ctx, r.client, http.MethodGet, path, nil)
}

func (r resource[T, P]) Get(ctx context.Context, id string) (T, error) {
	return call[T](ctx, r.client, http.MethodGet, r.item(id), nil)
}

func (r resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	return call[T](ctx, r.client, http.MethodPost, "/"+r.collection, payload)
}

func (r resource[T, P]) Update(ctx context.Context, id string, payload P) (T, error) {
	return call[T](ctx, r.client, http.MethodPut, r.item(id), payload)
}

func (r resource[T, P]) Delete(ctx context.Context, id string) error {
	_, err := call[any](ctx, r.client, http.MethodDelete, r.item(id), nil)
	return err
}

// # Products

type products struct {
	resource[hierarchy.Product, gateway.ProductPayload]
}

func (p products) List(ctx context.Context, filter gateway.ProductFilter) ([]hierarchy.Product, error) {
	query := url.Values{}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query.Set("type", strings.Join(types, ","))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return call[[]hierarchy.Product](ctx, p.client, http.MethodGet, path, nil)
}

// # Languages

type languages struct {
	resource[hierarchy.Language, gateway.LanguagePayload]
}

func (l languages) List(ctx context.Context) ([]hierarchy.Language, error) {
	return call[[]hierarchy.Language](ctx, l.client, http.MethodGet, "/languages", nil)
}

// # Imports

type imports struct {
	client *Client
}

func (i imports) Validate(ctx context.Context, filename string, file io.Reader) (gateway.ImportReport, error) {
	envelope, err := upload[gateway.ImportReport](ctx, i.client, "/imports/validate", filename, file)
	return envelope.Data, err
}

func (i imports) Commit(ctx context.Context, productID, filename string, file io.Reader) (string, error) {
	path := "/products/" + url.PathEscape(productID) + "/imports"
	envelope, err := upload[any](ctx, i.client, path, filename, file)
	return envelope.Message, err
}

// # Auth

// Session is the part of a login response the CLI keeps.
type Session struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Login exchanges credentials for a bearer token. It is not part of
// [gateway.Gateway]; only the CLI signs in.
func (c *Client) Login(ctx context.Context, login, password string) (Session, error) {
	body := map[string]string{"login": login, "password": password}
	return call[Session](ctx, c, http.MethodPost, "/auth/login", body)
}
