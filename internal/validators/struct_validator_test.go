// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrFloat(f float64) *float64 { return &f }

func validQuote() models.QuoteRequest {
	return models.QuoteRequest{
		ClientName:  "ACME",
		ProjectName: "Bracket",
		Lines: []models.QuoteLine{
			{Description: "part", Grams: 100, Hours: 2, Minutes: 30, Qty: 1},
		},
	}
}

func fieldError(t *testing.T, err error) *FieldError {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalidPayload)

	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected FieldError, got %v", err)
	return fe
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_ValidPayloads(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, validQuote()))
	assert.NoError(t, v.Validate(ctx, &models.Client{Name: "ACME"}))
	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "u", Password: "p"}))
	assert.NoError(t, v.Validate(ctx, models.SettingsUpdate{}))
}

func TestValidate_UnsupportedTypes(t *testing.T) {
	v := NewStructValidator()

	var nilClient *models.Client
	assert.ErrorIs(t, v.Validate(context.Background(), nilClient), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantRule  string
	}{
		{
			name:      "missing project name",
			input:     models.QuoteRequest{},
			wantField: "projectName",
			wantRule:  "required",
		},
		{
			name: "negative grams inside a line",
			input: func() models.QuoteRequest {
				q := validQuote()
				q.Lines = append(q.Lines, models.QuoteLine{Grams: -1, Qty: 1})
				return q
			}(),
			wantField: "lines[1].grams",
			wantRule:  "gte",
		},
		{
			name: "unknown status",
			input: func() models.QuoteRequest {
				q := validQuote()
				q.Status = "archived"
				return q
			}(),
			wantField: "status",
			wantRule:  "oneof",
		},
		{
			name:      "commission rate above 100",
			input:     models.Employee{Name: "Ana", CommissionRatePercent: 150},
			wantField: "commissionRatePercent",
			wantRule:  "lte",
		},
		{
			name:      "negative labour cost",
			input:     models.SettingsUpdate{LaborCostPerHour: ptrFloat(-5)},
			wantField: "laborCostPerHour",
			wantRule:  "gte",
		},
		{
			name:      "stock item without material",
			input:     models.StockItem{Brand: "Voolt"},
			wantField: "materialId",
			wantRule:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := fieldError(t, v.Validate(context.Background(), tt.input))
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantRule, fe.Rule)
		})
	}
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewStructValidator()

	q := validQuote()
	q.Lines = []models.QuoteLine{{Grams: -10}}

	// only the project name is checked, the broken line is ignored
	assert.NoError(t, v.Validate(context.Background(), q, "ProjectName"))

	err := v.Validate(context.Background(), q, "Missing")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, "field qty failed rule gte=0", (&FieldError{Field: "qty", Rule: "gte", Param: "0"}).Error())
	assert.Equal(t, "field name failed rule required", (&FieldError{Field: "name", Rule: "required"}).Error())
}
