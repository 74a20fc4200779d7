// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hcorbage/corb3d/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gz.Close()
	out, err := io.ReadAll(gz)
	require.NoError(t, err)
	return out
}

const backupDocument = `{"clients":[{"name":"Maria"}],"inventory":[{"name":"PLA","costPerKg":120}]}`

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "gzip with quality value", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzipped: true},
		{name: "no accept-encoding", acceptEncoding: "", wantGzipped: false},
		{name: "only deflate", acceptEncoding: "deflate", wantGzipped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(backupDocument))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				assert.JSONEq(t, backupDocument, string(gunzipBytes(t, rec.Body.Bytes())))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.JSONEq(t, backupDocument, rec.Body.String())
			}
		})
	}
}

func TestGZip_RequestBody(t *testing.T) {
	var received []byte
	var contentLength int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		received, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		contentLength = r.ContentLength
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader(gzipBytes(t, []byte(backupDocument))))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, backupDocument, string(received))
	assert.Equal(t, int64(-1), contentLength)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader([]byte("not gzip at all")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, rec))
}

func TestGZip_RoundTrip(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(body)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader(gzipBytes(t, []byte(backupDocument))))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, backupDocument, string(gunzipBytes(t, rec.Body.Bytes())))
}

func TestGZip_ErrorStatusPreserved(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"x"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, `{"message":"x"}`, string(gunzipBytes(t, rec.Body.Bytes())))
}

func TestGZip_NothingWritten(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Body.Bytes())
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestGZip_LargeBody(t *testing.T) {
	payload := bytes.Repeat([]byte(`{"name":"PETG","costPerKg":95.5},`), 4096)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Less(t, rec.Body.Len(), len(payload))
	assert.Equal(t, payload, gunzipBytes(t, rec.Body.Bytes()))
}
