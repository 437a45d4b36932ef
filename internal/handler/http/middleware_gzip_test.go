// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		acceptEncoding  string
		handlerStatus   int
		handlerEncoding string
		body            string
		wantGzipped     bool
	}{
		{name: "compress when client accepts gzip", method: http.MethodGet, acceptEncoding: "gzip", handlerStatus: http.StatusOK, body: `{"success":true}`, wantGzipped: true},
		{name: "gzip among several encodings", method: http.MethodGet, acceptEncoding: "deflate, gzip;q=1.0, br", handlerStatus: http.StatusOK, body: "hello", wantGzipped: true},
		{name: "client does not accept gzip", method: http.MethodGet, handlerStatus: http.StatusOK, body: "hello"},
		{name: "error responses are compressed too", method: http.MethodGet, acceptEncoding: "gzip", handlerStatus: http.StatusNotFound, body: `{"success":false}`, wantGzipped: true},
		{name: "no content is left alone", method: http.MethodDelete, acceptEncoding: "gzip", handlerStatus: http.StatusNoContent},
		{name: "already encoded response", method: http.MethodGet, acceptEncoding: "gzip", handlerStatus: http.StatusOK, handlerEncoding: "identity", body: "raw"},
		{name: "HEAD is not compressed", method: http.MethodHead, acceptEncoding: "gzip", handlerStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerEncoding != "" {
					w.Header().Set("Content-Encoding", tt.handlerEncoding)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, tt.handlerStatus, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				assert.Equal(t, tt.body, gunzip(t, rec.Body))
				return
			}

			assert.NotEqual(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGZip_RequestBody(t *testing.T) {
	t.Run("gzipped body is inflated", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			got = string(body)
			assert.Empty(t, r.Header.Get("Content-Encoding"))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, []byte(`{"email":"a@b.co"}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"email":"a@b.co"}`, got)
	})

	t.Run("invalid gzip body is rejected", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not be called")
		})

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("not gzipped"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"invalid gzip body"}`, rec.Body.String())
	})
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("transaction ", 100)))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			defer zr.Close()
			out, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, strings.Repeat("transaction ", 100), string(out))
		}()
	}
	wg.Wait()
}
