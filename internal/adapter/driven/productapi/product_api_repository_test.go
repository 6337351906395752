package productapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestFetchAllProducts(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"products": [
				{"id": 1, "title": "Essence Mascara", "category": "beauty", "brand": "Essence", "price": 9.99, "rating": 4.94},
				{"id": 2, "title": "Powder Canister", "category": "beauty", "brand": "Velvet Touch", "price": 14.99, "rating": 3.82}
			],
			"total": 2, "skip": 0, "limit": 100
		}`)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	products, err := repo.FetchAllProducts(context.Background(), server.URL, 100)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if gotPath != "/products" {
		t.Errorf("path = %q, esperado /products", gotPath)
	}
	if gotQuery != "limit=100" {
		t.Errorf("query = %q, esperado limit=100", gotQuery)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, esperado 2", len(products))
	}
	if products[0].ID != 1 || products[0].Brand != "Essence" || products[0].Rating != 4.94 {
		t.Errorf("products[0] = %+v", products[0])
	}
}

func TestFetchAllProductsLimitePadrao(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"products": [], "total": 0, "skip": 0, "limit": 100}`)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	if _, err := repo.FetchAllProducts(context.Background(), server.URL, 0); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if gotQuery != "limit=100" {
		t.Errorf("query = %q, esperado o limite padrão de 100", gotQuery)
	}
}

func TestFetchAllProductsRetentaErro5xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"products": [{"id": 1, "title": "Essence Mascara", "category": "beauty", "brand": "Essence", "price": 9.99, "rating": 4.94}], "total": 1, "skip": 0, "limit": 100}`)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	products, err := repo.FetchAllProducts(context.Background(), server.URL, 100)
	if err != nil {
		t.Fatalf("erro inesperado após retry: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("calls = %d, esperado 2", calls)
	}
	if len(products) != 1 {
		t.Errorf("len(products) = %d, esperado 1", len(products))
	}
}

func TestFetchAllProductsNaoRetenta4xx(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	_, err := repo.FetchAllProducts(context.Background(), server.URL, 100)
	if err == nil {
		t.Fatal("esperado erro para status 404")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d, esperado 1 sem retry", calls)
	}
}

func TestFetchAllProductsEsgotaTentativas(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	_, err := repo.FetchAllProducts(context.Background(), server.URL, 100)
	if err == nil {
		t.Fatal("esperado erro após esgotar as tentativas")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("err = %v, esperado menção às tentativas", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, esperado 3", calls)
	}
}

func TestFetchAllProductsJSONInvalido(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	repo := NewProductAPIRepository()
	if _, err := repo.FetchAllProducts(context.Background(), server.URL, 100); err == nil {
		t.Fatal("esperado erro de decode")
	}
}

func TestFetchAllProductsContextoCancelado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewProductAPIRepository()
	if _, err := repo.FetchAllProducts(ctx, server.URL, 100); err == nil {
		t.Fatal("esperado erro de contexto cancelado")
	}
}
