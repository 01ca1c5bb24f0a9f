package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/service"
)

type mockCryptoService struct {
	symbol  string
	rows    int
	sorted  []string
	summary models.SymbolSummary
	best    string
	err     error
}

func (m *mockCryptoService) ProcessUpload(_ context.Context, _ string, body io.Reader) (string, int, error) {
	_, _ = io.ReadAll(body)
	return m.symbol, m.rows, m.err
}
func (m *mockCryptoService) SortedSymbols(_ string) ([]string, error) { return m.sorted, m.err }
func (m *mockCryptoService) SummaryFor(_ string) (models.SymbolSummary, error) {
	return m.summary, m.err
}
func (m *mockCryptoService) BestMover(_ string) (string, error) { return m.best, m.err }

var _ service.CryptoService = (*mockCryptoService)(nil)

func setupRouterWithMock(s service.CryptoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	cryptos := v1.Group("/cryptos")
	cryptos.POST("/upload", h.UploadBatch)
	cryptos.GET("/sorted/:sortingType", h.GetSortedSymbols)
	cryptos.GET("/metadata/:symbol", h.GetSummary)
	cryptos.GET("/best-mover/:date", h.GetBestMover)
	return r
}

// multipartBody builds a multipart form with one file field.
func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadBatch_TableDriven(t *testing.T) {
	cases := []struct {
		name     string
		svc      *mockCryptoService
		filename string
		content  string
		noFile   bool
		status   int
	}{
		{
			name:     "success",
			svc:      &mockCryptoService{symbol: "btc", rows: 2},
			filename: "btc_values.csv",
			content:  "timestamp,symbol,price\n1,btc,2\n3,btc,4\n",
			status:   http.StatusOK,
		},
		{
			name:   "missing file field",
			svc:    &mockCryptoService{},
			noFile: true,
			status: http.StatusBadRequest,
		},
		{
			name:     "empty file",
			svc:      &mockCryptoService{},
			filename: "btc_values.csv",
			content:  "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "validation error from service",
			svc:      &mockCryptoService{err: service.Validationf("symbol x is not allowed")},
			filename: "x_values.csv",
			content:  "header\n",
			status:   http.StatusBadRequest,
		},
		{
			name:     "computation failure from service",
			svc:      &mockCryptoService{err: service.Computationf(nil, "no data was retrieved from file")},
			filename: "btc_values.csv",
			content:  "header\n",
			status:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)

			var req *http.Request
			if tc.noFile {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/cryptos/upload", nil)
			} else {
				body, contentType := multipartBody(t, tc.filename, tc.content)
				req = httptest.NewRequest(http.MethodPost, "/api/v1/cryptos/upload", body)
				req.Header.Set("Content-Type", contentType)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}

			if tc.status == http.StatusOK {
				var out dto.UploadResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Symbol != "btc" || out.Rows != 2 {
					t.Fatalf("unexpected body: %+v", out)
				}
			}
		})
	}
}

func TestGetSortedSymbols_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockCryptoService
		status int
		want   []string
	}{
		{
			name:   "success",
			svc:    &mockCryptoService{sorted: []string{"eth", "btc"}},
			status: http.StatusOK,
			want:   []string{"eth", "btc"},
		},
		{
			name:   "unknown mode",
			svc:    &mockCryptoService{err: service.Validationf("wrong sorting type, available: normalized_desc")},
			status: http.StatusBadRequest,
		},
		{
			name:   "nothing ingested",
			svc:    &mockCryptoService{err: service.NoContentf("no symbols ingested yet")},
			status: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cryptos/sorted/normalized_desc", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.want != nil {
				var out []string
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != len(tc.want) || out[0] != tc.want[0] {
					t.Fatalf("unexpected body: %v", out)
				}
			}
		})
	}
}

func TestGetSummary(t *testing.T) {
	svc := &mockCryptoService{summary: models.SymbolSummary{
		Symbol: "btc", OldestPrice: 1, NewestPrice: 2, MinPrice: 0.5, MaxPrice: 3, NormalizedRange: 5,
	}}
	r := setupRouterWithMock(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cryptos/metadata/BTC", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["oldest_price"] != 1.0 || out["max_price"] != 3.0 {
		t.Fatalf("unexpected body: %v", out)
	}
	// The normalized range is not part of the public summary payload.
	if _, ok := out["normalized_range"]; ok {
		t.Fatalf("normalized_range must not be exposed: %v", out)
	}
}

func TestGetSummary_NotFound(t *testing.T) {
	svc := &mockCryptoService{err: service.NoContentf("nothing was found for symbol xyz")}
	r := setupRouterWithMock(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cryptos/metadata/xyz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetBestMover_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockCryptoService
		date   string
		status int
	}{
		{name: "success", svc: &mockCryptoService{best: "xrp"}, date: "2022-01-01", status: http.StatusOK},
		{name: "bad date", svc: &mockCryptoService{err: service.Validationf("invalid date")}, date: "22-01-5", status: http.StatusBadRequest},
		{name: "no data", svc: &mockCryptoService{err: service.NoContentf("no data registered for date")}, date: "2099-01-01", status: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cryptos/best-mover/"+tc.date, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.status == http.StatusOK {
				var out dto.BestMoverResponse
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Symbol != "xrp" || out.Date != tc.date {
					t.Fatalf("unexpected body: %+v", out)
				}
			}
		})
	}
}
