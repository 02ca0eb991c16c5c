package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/resolve"
	"github.com/stretchr/testify/assert"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(resolve.New(), NewLogger(io.Discard, 0))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCombinations(t *testing.T) {
	w := get(t, "/combinations?root=C&type=dim7")

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("application/json", w.Header().Get("Content-Type"))
	assert.Len(w.Header().Get("X-Request-Id"), 36)

	var res model.CombinationsResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal("C", res.Root)
	assert.Equal(4, res.Total)
	assert.Len(res.Combinations, 4)
	assert.Equal("Diminished 7", res.Combinations[0].ChordType)
}

func TestHandleCombinationsLimit(t *testing.T) {
	var res model.CombinationsResponse
	w := get(t, "/combinations?root=C&type=dim7&limit=1")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 4, res.Total)
	assert.Len(t, res.Combinations, 1)

	w = get(t, "/combinations?root=C&type=dim7&limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCombinationsUnresolvable(t *testing.T) {
	for _, target := range []string{
		"/combinations?root=H&type=maj",
		"/combinations?root=C&type=nope",
	} {
		w := get(t, target)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []any{}, body["combinations"], target)
	}
}

func TestHandleCombinationsRequiresParams(t *testing.T) {
	w := get(t, "/combinations?root=C")

	var res model.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "root and type are required", res.Error)
}

func TestHandleNotes(t *testing.T) {
	var res model.NotesResponse
	w := get(t, "/notes")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Bass, 20)
	assert.Equal(t, "Bbb", res.Bass[0])
	assert.Equal(t, "Cx", res.Counterbass[19])
}

func TestHandleChords(t *testing.T) {
	var res model.ChordsResponse
	w := get(t, "/chords?q=sus4")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Chords)
	for _, c := range res.Chords {
		assert.Contains(t, strings.ToLower(c.Name+c.AltName+c.FullName), "sus4")
	}
}

func TestHandleChordsWithoutMatchIsAnEmptyList(t *testing.T) {
	w := get(t, "/chords?q=zzz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"chords":[]}`, w.Body.String())
}

func TestOnlyGetIsRouted(t *testing.T) {
	router := NewRouter(resolve.New(), NewLogger(io.Discard, 0))
	req := httptest.NewRequest(http.MethodPost, "/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
