// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// package remote fetches the canonical menu document. Fetch failures are
// reported as errors here; the cache populator decides to treat them as an
// empty menu.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/toeirei/littlelemon/internal/logging"
	"github.com/toeirei/littlelemon/internal/model"
)

// DefaultMenuURL is the published capstone menu document.
const DefaultMenuURL = "https://raw.githubusercontent.com/Meta-Mobile-Developer-PC/Working-With-Data-API/main/capstone.json"

// DefaultImageBase is where the menu images referenced by the capstone
// document live.
const DefaultImageBase = "https://github.com/Meta-Mobile-Developer-PC/Working-With-Data-API/blob/main/images/"

// maxDocumentSize bounds the response body read by HTTPFetcher.
const maxDocumentSize = 8 << 20

// Fetcher loads the canonical menu.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.MenuItem, error)
}

// FetchFunc adapts a plain function to Fetcher.
type FetchFunc func(ctx context.Context) ([]model.MenuItem, error)

// Fetch implements Fetcher.
func (f FetchFunc) Fetch(ctx context.Context) ([]model.MenuItem, error) { return f(ctx) }

// HTTPFetcher downloads and decodes the menu JSON document at URL.
type HTTPFetcher struct {
	URL string
	// Client defaults to http.DefaultClient, whose transport applies no
	// overall timeout.
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher for url, or for DefaultMenuURL when url
// is empty.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if url == "" {
		url = DefaultMenuURL
	}
	return &HTTPFetcher{URL: url, Client: client}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]model.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch menu: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return Decode(body)
}

// document is the wire shape of the remote menu. Entries stay raw so one
// malformed item cannot reject the whole document.
type document struct {
	Menu []json.RawMessage `json:"menu"`
}

type wireItem struct {
	Name        string `json:"name"`
	Price       price  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// price accepts a JSON number or a numeric string.
type price float64

func (p *price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", b, err)
	}
	*p = price(v)
	return nil
}

// Decode parses a menu document. A document without a menu field decodes
// to an empty slice. Items that fail to decode, have no name or carry a
// negative price are logged and skipped.
func Decode(data []byte) ([]model.MenuItem, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	out := make([]model.MenuItem, 0, len(doc.Menu))
	for i, raw := range doc.Menu {
		var w wireItem
		if err := json.Unmarshal(raw, &w); err != nil {
			logging.Warnf("skipping menu item %d: %v", i, err)
			continue
		}
		if strings.TrimSpace(w.Name) == "" || w.Price < 0 {
			logging.Debugf("skipping menu item %d (%q): missing name or negative price", i, w.Name)
			continue
		}
		out = append(out, model.MenuItem{
			Name:        w.Name,
			Price:       float64(w.Price),
			Description: w.Description,
			Image:       w.Image,
			Category:    w.Category,
		})
	}
	return out, nil
}

// ImageURL resolves an image reference from the menu document to a
// displayable URL under base (DefaultImageBase when empty). Absolute URLs
// are returned unchanged and an empty reference yields "".
func ImageURL(base, image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	if u, err := url.Parse(image); err == nil && u.IsAbs() {
		return image
	}
	if base == "" {
		base = DefaultImageBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(image) + "?raw=true"
}
