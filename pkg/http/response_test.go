package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "entrycheck/pkg/errors"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteSuccess(rec, map[string]string{"formatted": "1234-5678"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"formatted":"1234-5678"}}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: apperrors.InvalidInput("bad"), wantStatus: http.StatusBadRequest, wantCode: apperrors.CodeInvalidInput},
		{name: "validation", err: apperrors.Validation("bad", map[string]any{"kind": "required"}), wantStatus: http.StatusUnprocessableEntity, wantCode: apperrors.CodeValidation},
		{name: "plain error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, WriteError(rec, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Value string `json:"value"`
	}

	tests := []struct {
		name     string
		body     string
		limit    int64
		wantErr  string
		wantCode string
	}{
		{name: "ok", body: `{"value":"x"}`},
		{name: "empty", body: ``, wantCode: apperrors.CodeInvalidInput, wantErr: "empty"},
		{name: "malformed", body: `{"value":`, wantCode: apperrors.CodeInvalidInput},
		{name: "unknown field", body: `{"other":1}`, wantCode: apperrors.CodeInvalidInput},
		{name: "trailing object", body: `{"value":"x"}{"value":"y"}`, wantCode: apperrors.CodeInvalidInput, wantErr: "single JSON object"},
		{name: "too large", body: `{"value":"` + strings.Repeat("x", 100) + `"}`, limit: 16, wantCode: apperrors.CodeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.limit > 0 {
				req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, tt.limit)
			}

			var p payload
			err := DecodeJSON(req, &p)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "x", p.Value)
				return
			}

			require.Error(t, err)
			appErr := apperrors.AsAppError(err)
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantErr != "" {
				assert.Contains(t, appErr.Message, tt.wantErr)
			}
		})
	}
}
