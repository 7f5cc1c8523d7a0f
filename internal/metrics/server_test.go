package metrics

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthDocument(t *testing.T) {
	s := NewServer(":0")

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "ok", doc["status"])

	s.SetStatus(func() map[string]any {
		return map[string]any{"role": "master", "applied_seq": 42}
	})

	rec = httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "ok", doc["status"])
	require.Equal(t, "master", doc["role"])
	require.EqualValues(t, 42, doc["applied_seq"])
}

func TestSplitFullMethod(t *testing.T) {
	svc, method := splitFullMethod("/datatier.DataTier/Put")
	require.Equal(t, "datatier.DataTier", svc)
	require.Equal(t, "Put", method)

	svc, method = splitFullMethod("Put")
	require.Equal(t, "unknown", svc)
	require.Equal(t, "Put", method)
}
