// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/diffeo/go-geoserver/restdata"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedName(t *testing.T) {
	for _, tc := range []struct {
		Text, Name string
	}{
		{"topp", "topp"},
		{"  roads\n", "roads"},
		{`{"name":"topp"}`, "topp"},
		{`{"workspace":{"name":"topp","isolated":false}}`, "topp"},
		{`{"a":{"name":"x"},"b":{"name":"y"}}`, `{"a":{"name":"x"},"b":{"name":"y"}}`},
		{`{"workspace":{}}`, `{"workspace":{}}`},
		{"{not json", "{not json"},
	} {
		assert.Equal(t, tc.Name, createdName(tc.Text), "%q", tc.Text)
	}
}

func TestCreateJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.Header().Set("Content-Type", restdata.JSONMediaType)
		resp.WriteHeader(http.StatusCreated)
		_, _ = resp.Write([]byte(`{"workspace":{"name":"topp"}}`))
	}))
	defer srv.Close()
	log, _ := test.NewNullLogger()
	gs := NewFromConfig(Config{URL: srv.URL, HTTPClient: srv.Client(), Logger: log})

	name, err := gs.Workspaces.Create(context.Background(), "topp")
	require.NoError(t, err)
	assert.Equal(t, "topp", name)
}

// trackingFs records how many files opened through it remain open.
type trackingFs struct {
	afero.Fs
	mu     sync.Mutex
	opened int
	open   int
}

func (fs *trackingFs) Open(name string) (afero.File, error) {
	f, err := fs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.opened++
	fs.open++
	return &trackedFile{File: f, fs: fs}, nil
}

func (fs *trackingFs) counts() (opened, open int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.opened, fs.open
}

type trackedFile struct {
	afero.File
	fs     *trackingFs
	closed bool
}

func (f *trackedFile) Close() error {
	f.fs.mu.Lock()
	if !f.closed {
		f.closed = true
		f.fs.open--
	}
	f.fs.mu.Unlock()
	return f.File.Close()
}

func TestUploadReleasesFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	failing := httptest.NewServer(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		http.Error(resp, "boom", http.StatusInternalServerError)
	}))
	defer failing.Close()
	accepting := httptest.NewServer(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.WriteHeader(http.StatusCreated)
	}))
	defer accepting.Close()
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	for _, tc := range []struct {
		Name string
		URL  string
		OK   bool
	}{
		{"server error", failing.URL, false},
		{"unreachable", closedURL, false},
		{"accepted", accepting.URL, true},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			fs := &trackingFs{Fs: afero.NewMemMapFs()}
			require.NoError(t, afero.WriteFile(fs.Fs, "/data/dem.tif", []byte("II*\x00fake"), 0644))
			require.NoError(t, afero.WriteFile(fs.Fs, "/data/ndvi.zip", []byte("PK\x03\x04"), 0644))
			gs := NewFromConfig(Config{URL: tc.URL, Logger: log, Fs: fs})
			ctx := context.Background()

			_, err := gs.DataStores.CreateGeoTIFFFromFile(ctx, "topp", "dem", "dem", "dem", "/data/dem.tif")
			assert.Equal(t, tc.OK, err == nil, "%v", err)
			_, err = gs.DataStores.CreateImageMosaicStore(ctx, "topp", "ndvi", "/data/ndvi.zip")
			assert.Equal(t, tc.OK, err == nil, "%v", err)

			opened, open := fs.counts()
			assert.Equal(t, 2, opened)
			assert.Equal(t, 0, open)
		})
	}
}

func TestUploadMissingFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	fs := &trackingFs{Fs: afero.NewMemMapFs()}
	gs := NewFromConfig(Config{URL: "http://localhost:1/geoserver/rest", Logger: log, Fs: fs})

	_, err := gs.DataStores.CreateGeoTIFFFromFile(context.Background(), "topp", "dem", "dem", "dem", "/data/missing.tif")
	assert.Error(t, err)
	opened, open := fs.counts()
	assert.Equal(t, 0, opened)
	assert.Equal(t, 0, open)
}
