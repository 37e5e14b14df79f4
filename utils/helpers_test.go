package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewID_Returns_Distinct_Ids(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Len(t, id, 21)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func Test_DecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Title string `json:"title"`
	}

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "Valid", body: `{"title":"Algebra"}`},
		{name: "Empty", body: ``, wantErr: true},
		{name: "UnknownField", body: `{"title":"x","extra":1}`, wantErr: true},
		{name: "TrailingObject", body: `{"title":"x"}{"title":"y"}`, wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testCase.body))
			var p payload
			err := DecodeJSON(r, &p)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Algebra", p.Title)
		})
	}
}

func Test_WriteError_Writes_JSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "Subject not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Subject not found"}`, rec.Body.String())
}
