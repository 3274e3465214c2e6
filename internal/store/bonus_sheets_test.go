package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
)

func newSheetsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/spreadsheets/sheet-123/values/"+BonusSheetRange), "unexpected path %s", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func connectTo(srv *httptest.Server) func(ctx context.Context) (*sheets.Service, error) {
	return func(ctx context.Context) (*sheets.Service, error) {
		return sheets.NewService(ctx,
			option.WithEndpoint(srv.URL+"/"),
			option.WithHTTPClient(srv.Client()),
		)
	}
}

func TestSheetsListBonuses(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusOK, `{
		"range": "Entries!A2:H6",
		"majorDimension": "ROWS",
		"values": [
			["Acme", "https://drive.google.com/file/d/ABC123/view", "100%", "details", "35x", "$20", "https://t.example.com/acme", "vip, crypto"],
			["", "https://logo.example.com/x.png", "orphan bonus"],
			["Beta"],
			[]
		]
	}`)
	s := NewSheetsBonusStore("sheet-123", connectTo(srv))

	bonuses, err := s.ListBonuses(context.Background())
	require.NoError(t, err)
	require.Len(t, bonuses, 2)

	assert.Equal(t, "2", bonuses[0].ID)
	assert.Equal(t, "Acme", bonuses[0].BrandName)
	assert.Equal(t, "https://drive.usercontent.google.com/download?id=ABC123&export=view&authuser=0", bonuses[0].Logo)
	assert.Equal(t, []string{"vip", "crypto"}, bonuses[0].Tags)

	assert.Equal(t, "4", bonuses[1].ID)
	assert.Equal(t, "Beta", bonuses[1].BrandName)
	assert.Equal(t, []string{}, bonuses[1].Tags)
}

func TestSheetsListBonusesEmpty(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusOK, `{"range": "Entries!A2:H", "majorDimension": "ROWS"}`)
	s := NewSheetsBonusStore("sheet-123", connectTo(srv))

	bonuses, err := s.ListBonuses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bonuses)
	assert.Empty(t, bonuses)
}

func TestSheetsListBonusesFetchFailed(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusForbidden, `{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`)
	s := NewSheetsBonusStore("sheet-123", connectTo(srv))

	bonuses, err := s.ListBonuses(context.Background())
	assert.Nil(t, bonuses)

	var fetchErr *errs.FetchFailedError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "sheets", fetchErr.Source)
	assert.Contains(t, err.Error(), "The caller does not have permission")
}

func TestSheetsNotConfiguredRetries(t *testing.T) {
	srv, hits := newSheetsServer(t, http.StatusOK, `{"values": [["Acme"]]}`)

	var attempts atomic.Int32
	connect := func(ctx context.Context) (*sheets.Service, error) {
		if attempts.Add(1) == 1 {
			return nil, errs.NewMissingConfigurationError("GOOGLE_APPLICATION_CREDENTIALS", "GOOGLE_CREDENTIALS_JSON")
		}
		return connectTo(srv)(ctx)
	}
	s := NewSheetsBonusStore("sheet-123", connect)

	_, err := s.ListBonuses(context.Background())
	var notConfigured *errs.NotConfiguredError
	require.True(t, errors.As(err, &notConfigured))
	var missing *errs.MissingConfigurationError
	require.True(t, errors.As(err, &missing))
	assert.Zero(t, hits.Load(), "no read without a client")

	bonuses, err := s.ListBonuses(context.Background())
	require.NoError(t, err)
	assert.Len(t, bonuses, 1)

	_, err = s.ListBonuses(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, attempts.Load())
	assert.EqualValues(t, 2, hits.Load())

	require.NoError(t, s.Close())
}
