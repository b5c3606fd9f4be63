package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/streameme/streameme/internal/analyzer"
	"github.com/streameme/streameme/internal/api/middleware"
	"github.com/streameme/streameme/internal/memelib"
	"github.com/streameme/streameme/internal/session"
)

type stubAnalyzer struct {
	resp *analyzer.Response
	err  error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, fileName string, file io.Reader) (*analyzer.Response, error) {
	return s.resp, s.err
}

type nullStorage struct{}

func (nullStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := io.Copy(io.Discard, r)
	return err
}
func (nullStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}
func (nullStorage) GetURL(key string) string                        { return "/media/" + key }
func (nullStorage) Delete(ctx context.Context, key string) error    { return nil }
func (nullStorage) Exists(ctx context.Context, key string) (bool, error) { return true, nil }

func newTestRouter(an session.Analyzer) http.Handler {
	lib := memelib.New("/memes")
	sess := session.New(session.Options{
		Analyzer:       an,
		Staging:        nullStorage{},
		Library:        lib,
		Rand:           rand.New(rand.NewSource(1)),
		MaxUploadBytes: 2 * 1024 * 1024 * 1024,
	})
	return SetupRouter(Options{
		Session:      sess,
		Library:      lib,
		PreviewCount: 15,
		Mode:         "test",
		CORS:         middleware.CORSConfig{AllowAllOrigins: true},
	})
}

func postVideo(t *testing.T, router http.Handler, name, contentType, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	io.WriteString(part, content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/file", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSelectFileEndpoint(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{}})

	w := postVideo(t, router, "clip.mp4", "video/mp4", "bytes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Selected bool `json:"selected"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Selected {
		t.Errorf("selected = false for a video file: %s", w.Body.String())
	}
}

func TestSelectFileEndpointRejectsNonVideoSilently(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{}})

	w := postVideo(t, router, "notes.txt", "text/plain", "bytes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (silent no-op)", w.Code)
	}
	var resp struct {
		Selected bool `json:"selected"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Selected {
		t.Error("non-video selection was applied")
	}
}

func TestUploadEndpointEmptySuggestions(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{FileName: "clip.mp4"}})

	postVideo(t, router, "clip.mp4", "video/mp4", "bytes")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Summary struct {
			SuggestionCount string `json:"suggestion_count"`
		} `json:"summary"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Summary.SuggestionCount != "0" {
		t.Errorf("suggestion_count = %q, want \"0\"", resp.Summary.SuggestionCount)
	}
}

func TestUploadEndpointWithoutSelection(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestTimelineEndpoints(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{
		FileName: "clip.mp4",
		Suggestions: []analyzer.RawSuggestion{
			{Start: 12, End: 14, MemeTypeDesc: "anger"},
			{Start: 3, End: 5, MemeTypeDesc: "love"},
		},
	}})

	postVideo(t, router, "clip.mp4", "video/mp4", "bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/upload", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline", nil))
	var resp struct {
		Rows []struct {
			StartTime float64 `json:"start_time"`
		} `json:"rows"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Rows) != 2 || resp.Rows[0].StartTime != 3 || resp.Rows[1].StartTime != 12 {
		t.Fatalf("timeline rows not chronological: %s", w.Body.String())
	}

	// Jump drives the playhead
	jump := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/jump", strings.NewReader(`{"start_time": 12}`))
	jump.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jump)
	if w.Code != http.StatusOK {
		t.Fatalf("jump status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline/playhead", nil))
	var ph struct {
		Position float64 `json:"position"`
		Playing  bool    `json:"playing"`
	}
	json.Unmarshal(w.Body.Bytes(), &ph)
	if ph.Position != 12 || !ph.Playing {
		t.Errorf("playhead = %+v", ph)
	}
}

func TestLibraryEndpoints(t *testing.T) {
	router := newTestRouter(&stubAnalyzer{resp: &analyzer.Response{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/library/categories", nil))
	var cats struct {
		Categories []struct {
			Total   int      `json:"total"`
			Preview []string `json:"preview"`
			More    int      `json:"more"`
		} `json:"categories"`
	}
	json.Unmarshal(w.Body.Bytes(), &cats)
	if len(cats.Categories) != 6 {
		t.Fatalf("got %d categories", len(cats.Categories))
	}
	for _, cat := range cats.Categories {
		if cat.Total != 100 || len(cat.Preview) != 15 || cat.More != 85 {
			t.Errorf("category listing = %+v", cat)
		}
	}

	// Unknown category: empty listing, not an error
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/library/categories/disgust/assets", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unknown category status = %d", w.Code)
	}
	var assets struct {
		Known  bool     `json:"known"`
		Total  int      `json:"total"`
		Assets []string `json:"assets"`
	}
	json.Unmarshal(w.Body.Bytes(), &assets)
	if assets.Known || assets.Total != 0 || len(assets.Assets) != 0 {
		t.Errorf("unknown category yields %+v", assets)
	}
}
