package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
	"github.com/kako-jun/noun-gender-backend/internal/service/search"
)

type searchServiceMock struct {
	SearchFunc func(ctx context.Context, input search.Input) (*search.Result, error)
}

func (m *searchServiceMock) Search(ctx context.Context, input search.Input) (*search.Result, error) {
	return m.SearchFunc(ctx, input)
}

func TestSearch_HappyPath(t *testing.T) {
	t.Parallel()

	var gotInput search.Input
	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, input search.Input) (*search.Result, error) {
			gotInput = input
			return &search.Result{
				Words: []domain.WordGroup{
					{
						Headword: "cat",
						Translations: []domain.Translation{
							{Lang: domain.LangFrench, Text: "chat", Gender: domain.GenderMasculine},
						},
					},
				},
				Count: 1,
			}, nil
		},
	}
	h := NewSearchHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=cat&languages=fr,de&limit=10", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if gotInput.Query != "cat" {
		t.Errorf("expected query 'cat', got %q", gotInput.Query)
	}
	if len(gotInput.Languages) != 2 || gotInput.Languages[0] != domain.LangFrench || gotInput.Languages[1] != domain.LangGerman {
		t.Errorf("unexpected languages: %v", gotInput.Languages)
	}
	if gotInput.Limit != 10 {
		t.Errorf("expected limit 10, got %d", gotInput.Limit)
	}

	var resp struct {
		Results []struct {
			Word         string `json:"word"`
			Translations []struct {
				Language    string `json:"language"`
				Translation string `json:"translation"`
				Gender      string `json:"gender"`
			} `json:"translations"`
		} `json:"results"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].Word != "cat" || resp.Results[0].Translations[0].Gender != "m" {
		t.Fatalf("unexpected result payload: %+v", resp.Results[0])
	}
}

func TestSearch_OmittedLanguagesStaysEmpty(t *testing.T) {
	t.Parallel()

	var gotInput search.Input
	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, input search.Input) (*search.Result, error) {
			gotInput = input
			return &search.Result{Words: []domain.WordGroup{}}, nil
		},
	}
	h := NewSearchHandler(svc, slog.Default())

	for _, target := range []string{"/api/search?q=cat", "/api/search?q=cat&languages=", "/api/search?q=cat&languages=%20,%20"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
		// No language selected means nothing is searched: the engine
		// must see an empty set, never a broadened one.
		if len(gotInput.Languages) != 0 {
			t.Fatalf("%s: expected no languages, got %v", target, gotInput.Languages)
		}
	}
}

func TestSearch_ValidationErrorIs400(t *testing.T) {
	t.Parallel()

	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, _ search.Input) (*search.Result, error) {
			return nil, domain.NewValidationError("q", "must not be blank")
		},
	}
	h := NewSearchHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearch_BadLimitIs400(t *testing.T) {
	t.Parallel()

	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, _ search.Input) (*search.Result, error) {
			t.Fatal("service must not be called for a malformed limit")
			return nil, nil
		},
	}
	h := NewSearchHandler(svc, slog.Default())

	for _, limit := range []string{"abc", "-1", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=cat&limit="+limit, nil)
		rec := httptest.NewRecorder()

		h.Search(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", limit, rec.Code)
		}
	}
}

func TestSearch_ServiceErrorIs500WithGenericBody(t *testing.T) {
	t.Parallel()

	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, _ search.Input) (*search.Result, error) {
			return nil, errors.New("pq: secret table missing")
		},
	}
	h := NewSearchHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=cat", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("expected generic error body, got %q", resp["error"])
	}
}

func TestSearch_EmptyResultIs200(t *testing.T) {
	t.Parallel()

	svc := &searchServiceMock{
		SearchFunc: func(_ context.Context, _ search.Input) (*search.Result, error) {
			return &search.Result{Words: []domain.WordGroup{}}, nil
		},
	}
	h := NewSearchHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=xyzzy", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if body == "" || body == "null\n" {
		t.Fatalf("expected JSON body with empty results, got %q", body)
	}
}
