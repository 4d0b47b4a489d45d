// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toeirei/littlelemon/internal/model"
)

const capstone = `{"menu":[
 {"name":"Greek Salad","price":12.99,"description":"The famous greek salad.","image":"greekSalad.jpg","category":"starters"},
 {"name":"Bruschetta","price":"7.99","description":"Grilled bread.","image":"bruschetta.jpg","category":"starters"},
 {"name":"Lemon Dessert","price":4.99,"description":"Ricotta cake.","image":"lemonDessert.jpg","category":"desserts"}
]}`

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(capstone))
	}))
	defer srv.Close()

	items, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := model.MenuItem{Name: "Bruschetta", Price: 7.99, Description: "Grilled bread.", Image: "bruschetta.jpg", Category: "starters"}
	if items[1] != want {
		t.Fatalf("item mismatch: got %+v want %+v", items[1], want)
	}
}

func TestHTTPFetcher_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.URL, nil).Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for 503")
	}
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	if _, err := NewHTTPFetcher(url, nil).Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for closed server")
	}
}

func TestNewHTTPFetcher_DefaultURL(t *testing.T) {
	if f := NewHTTPFetcher("", nil); f.URL != DefaultMenuURL {
		t.Fatalf("expected default URL, got %s", f.URL)
	}
}

func TestDecode(t *testing.T) {
	items, err := Decode([]byte(`{}`))
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("missing menu should be an empty slice, got %v err=%v", items, err)
	}
	items, err = Decode([]byte(`{"menu":null}`))
	if err != nil || len(items) != 0 {
		t.Fatalf("null menu should be empty, got %v err=%v", items, err)
	}
	if _, err := Decode([]byte(`<html>`)); err == nil {
		t.Fatalf("expected parse error for non-JSON body")
	}
	items, err = Decode([]byte(`{"menu":[{"name":"A","price":1},{"name":"B","price":"market price"},{"name":"C","price":{}},"junk",{"name":"D","price":"3"}]}`))
	if err != nil {
		t.Fatalf("one bad item should not fail the document: %v", err)
	}
	if len(items) != 2 || items[0].Name != "A" || items[1].Name != "D" || items[1].Price != 3 {
		t.Fatalf("expected malformed items to be skipped, got %+v", items)
	}
	items, err = Decode([]byte(`{"menu":[{"name":"","price":1},{"name":"Neg","price":-1},{"name":"Ok","price":"$2.50"},{"name":"Free","price":null}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Ok" || items[0].Price != 2.5 || items[1].Price != 0 {
		t.Fatalf("unexpected decoded items: %+v", items)
	}
}

func TestFetchFunc(t *testing.T) {
	called := false
	f := FetchFunc(func(ctx context.Context) ([]model.MenuItem, error) {
		called = true
		return nil, nil
	})
	_, _ = f.Fetch(context.Background())
	if !called {
		t.Fatalf("FetchFunc did not call through")
	}
}

func TestImageURL(t *testing.T) {
	cases := []struct{ base, image, want string }{
		{"", "", ""},
		{"", "greekSalad.jpg", DefaultImageBase + "greekSalad.jpg?raw=true"},
		{"https://cdn.example.com/img", "a b.jpg", "https://cdn.example.com/img/a%20b.jpg?raw=true"},
		{"", "https://other.example.com/x.png", "https://other.example.com/x.png"},
	}
	for _, c := range cases {
		if got := ImageURL(c.base, c.image); got != c.want {
			t.Fatalf("ImageURL(%q, %q) = %q, want %q", c.base, c.image, got, c.want)
		}
	}
}
