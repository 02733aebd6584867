package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkBodyContains(t *testing.T, resp *http.Response, substr string) {
	t.Helper()
	defer resp.Body.Close()
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(bodyBytes)

	if !strings.Contains(body, substr) {
		t.Errorf("expected %#v in the body:\n%s", substr, body)
	}
}

func TestHomepage(t *testing.T) {
	app := NewApp()

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	app.Homepage(w, r)

	result := w.Result()
	if result.StatusCode != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", result.StatusCode)
	}
	checkBodyContains(t, result, "<form")
}

func TestAvatarSVG(t *testing.T) {
	app := NewApp()

	r, _ := http.NewRequest(http.MethodGet, "/avatar?email=max@example.com", nil)
	w := httptest.NewRecorder()
	app.Avatar(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "image/svg+xml", result.Header.Get("Content-Type"))
	assert.Equal(t, avatarCacheControl, result.Header.Get("Cache-Control"))
	checkBodyContains(t, result, "</svg>")
}

func TestAvatarPNG(t *testing.T) {
	app := NewApp()

	r, _ := http.NewRequest(http.MethodGet, "/avatar?email=max@example.com&format=png&size=128", nil)
	w := httptest.NewRecorder()
	app.Avatar(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "image/png", result.Header.Get("Content-Type"))

	defer result.Body.Close()
	body, err := io.ReadAll(result.Body)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, body[:8])
}

func TestAvatarValidation(t *testing.T) {
	var testCases = []struct {
		query          url.Values
		expectedStatus int
	}{
		{url.Values{}, 400},
		{url.Values{"email": {"nope"}}, 400},
		{url.Values{"email": {"max@example.com"}, "size": {"big"}}, 400},
		{url.Values{"email": {"max@example.com"}, "mood": {"grumpy"}}, 400},
		{url.Values{"email": {"max@example.com"}, "format": {"gif"}}, 400},
		// Unknown palettes and backgrounds fall back instead of erroring
		{url.Values{"email": {"max@example.com"}, "palette": {"typo"}, "bg": {"???"}}, 200},
	}

	app := NewApp()
	for _, testCase := range testCases {
		t.Run(testCase.query.Encode(), func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/avatar?"+testCase.query.Encode(), nil)
			w := httptest.NewRecorder()
			app.Avatar(w, r)
			assert.Equal(t, testCase.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestAvatarIsDeterministic(t *testing.T) {
	app := NewApp()
	get := func() string {
		r, _ := http.NewRequest(http.MethodGet, "/avatar?email=max@example.com&mood=smile&gender=fem", nil)
		w := httptest.NewRecorder()
		app.Avatar(w, r)
		return w.Body.String()
	}
	assert.Equal(t, get(), get())
}

func TestServerRoutesAndHeaders(t *testing.T) {
	server := newServer(NewApp())

	r, _ := http.NewRequest(http.MethodGet, "/avatar?email=max@example.com", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, r)

	result := w.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "nosniff", result.Header.Get("X-Content-Type-Options"))

	// Unknown paths 404
	for _, path := range []string{"/nope", "/avatar/extra"} {
		r, _ = http.NewRequest(http.MethodGet, path, nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, r)
		if w.Result().StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 for %s, got %d", path, w.Result().StatusCode)
		}
	}
}
