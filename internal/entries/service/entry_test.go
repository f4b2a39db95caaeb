package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrycheck/internal/entries/validator"
	"entrycheck/pkg/config"
	apperrors "entrycheck/pkg/errors"
	"entrycheck/pkg/logger"
	"entrycheck/pkg/model"
	"entrycheck/pkg/sanitizer"
)

func newTestService(t *testing.T, variant sanitizer.Variant) EntryService {
	t.Helper()

	cfg := &config.Config{
		MaxBatchSize: 5,
		Log:          logger.Discard(),
	}
	return NewEntryService(sanitizer.NewParserForVariant(variant), validator.NewEntryValidator(), cfg)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		req         model.EntryRequest
		wantValid   bool
		wantField   string
		wantProblem sanitizer.Problem
		wantMessage string
		wantRegion  string
	}{
		{
			name:      "valid code",
			req:       model.EntryRequest{Kind: model.KindCode, Value: "1234-5678"},
			wantValid: true,
			wantField: "Confirmation code",
		},
		{
			name:        "blank code uses default field name",
			req:         model.EntryRequest{Kind: model.KindCode, Value: ""},
			wantField:   "Confirmation code",
			wantProblem: sanitizer.ProblemBlank,
			wantMessage: "Please enter your Confirmation code.",
		},
		{
			name:        "custom field name",
			req:         model.EntryRequest{Kind: model.KindCode, Field: "Booking code", Value: "12"},
			wantField:   "Booking code",
			wantProblem: sanitizer.ProblemWrongCount,
			wantMessage: "Booking code has the wrong number of digits.",
		},
		{
			name:        "non-string value is blank",
			req:         model.EntryRequest{Kind: model.KindPhone, Value: 2125550199.0},
			wantField:   "Phone number",
			wantProblem: sanitizer.ProblemBlank,
			wantMessage: "Please enter your Phone number.",
		},
		{
			name:       "valid phone gets a region",
			req:        model.EntryRequest{Kind: model.KindPhone, Value: "(212) 555-0199"},
			wantValid:  true,
			wantField:  "Phone number",
			wantRegion: "US",
		},
		{
			name:        "bad area code",
			req:         model.EntryRequest{Kind: model.KindPhone, Value: "012-555-0199"},
			wantField:   "Phone number",
			wantProblem: sanitizer.ProblemBadAreaCode,
			wantMessage: "Phone number has an invalid area code. Area codes cannot start with 0 or 1.",
		},
		{
			name:        "invalid char beats wrong count",
			req:         model.EntryRequest{Kind: model.KindPhone, Value: "555-CALL-NOW"},
			wantField:   "Phone number",
			wantProblem: sanitizer.ProblemInvalidChar,
			wantMessage: "Phone number contains a character that is not allowed.",
		},
	}

	svc := newTestService(t, sanitizer.VariantExtended)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Parse(context.Background(), &tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.req.Kind, got.Kind)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantField, got.Field)
			assert.Equal(t, tt.wantProblem, got.Problem)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantRegion, got.Region)
			assert.NotNil(t, got.Result)
		})
	}
}

func TestParse_ResultCarriesCleanedValue(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantMinimal)

	got, err := svc.Parse(context.Background(), &model.EntryRequest{Kind: model.KindCode, Value: "1234.5678"})
	require.NoError(t, err)

	res, ok := got.Result.(sanitizer.CodeResult)
	require.True(t, ok, "got %T", got.Result)
	assert.True(t, res.InvalidChar)
	assert.Equal(t, "1234", res.CleanedValue)
	assert.Equal(t, sanitizer.ProblemInvalidChar, got.Problem)
}

func TestParse_PhoneTimezone(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	got, err := svc.Parse(context.Background(), &model.EntryRequest{Kind: model.KindPhone, Value: "+1 212 555 0199"})
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", got.Timezone)
}

func TestParse_InvalidRequest(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	_, err := svc.Parse(context.Background(), &model.EntryRequest{Kind: "zip", Value: "12345"})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, "must be one of: code, phone", appErr.Details["kind"])
}

func TestParse_CancelledContext(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Parse(ctx, &model.EntryRequest{Kind: model.KindCode, Value: "1234-5678"})
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeTimeout, appErr.Code)
}

func TestParseBatch_PreservesOrder(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	req := &model.BatchRequest{Entries: []model.EntryRequest{
		{Kind: model.KindCode, Value: "1234-5678"},
		{Kind: model.KindPhone, Value: "212-555-0199"},
		{Kind: model.KindCode, Value: ""},
		{Kind: model.KindPhone, Value: "112-555-0199"},
		{Kind: model.KindCode, Value: "8765 4321"},
	}}

	got, err := svc.ParseBatch(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, got.Entries, len(req.Entries))

	wantValid := []bool{true, true, false, false, true}
	wantProblem := []sanitizer.Problem{
		sanitizer.ProblemNone,
		sanitizer.ProblemNone,
		sanitizer.ProblemBlank,
		sanitizer.ProblemBadAreaCode,
		sanitizer.ProblemNone,
	}
	for i, entry := range got.Entries {
		assert.Equal(t, req.Entries[i].Kind, entry.Kind, "entry %d", i)
		assert.Equal(t, wantValid[i], entry.Valid, "entry %d", i)
		assert.Equal(t, wantProblem[i], entry.Problem, "entry %d", i)
	}

	last, ok := got.Entries[4].Result.(sanitizer.CodeResult)
	require.True(t, ok)
	assert.Equal(t, "8765-4321", last.Formatted)
}

func TestParseBatch_TooLarge(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	entries := make([]model.EntryRequest, 6)
	for i := range entries {
		entries[i] = model.EntryRequest{Kind: model.KindCode, Value: fmt.Sprintf("%08d", i)}
	}

	_, err := svc.ParseBatch(context.Background(), &model.BatchRequest{Entries: entries})
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "more than 5 entries")
}

func TestParseBatch_InvalidEntry(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	_, err := svc.ParseBatch(context.Background(), &model.BatchRequest{Entries: []model.EntryRequest{
		{Kind: model.KindCode, Value: "1"},
		{Value: "2"},
	}})
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "is required", appErr.Details["entries[1].kind"])
}

func TestParseBatch_Empty(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)

	_, err := svc.ParseBatch(context.Background(), &model.BatchRequest{})
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestParseBatch_ConcurrentCalls(t *testing.T) {
	svc := newTestService(t, sanitizer.VariantExtended)
	req := &model.BatchRequest{Entries: []model.EntryRequest{
		{Kind: model.KindCode, Value: "1234-5678"},
		{Kind: model.KindPhone, Value: "(212) 555-0199"},
	}}

	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			got, err := svc.ParseBatch(context.Background(), req)
			if err == nil && (!got.Entries[0].Valid || !got.Entries[1].Valid) {
				err = fmt.Errorf("unexpected invalid entry: %+v", got.Entries)
			}
			errs <- err
		}()
	}
	for i := 0; i < 20; i++ {
		assert.NoError(t, <-errs)
	}
}
