package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := map[string]string{
		`{"amount": 12.50}`:  "12.50",
		`{"amount": "7.25"}`: "7.25",
		`{"amount": "abc"}`:  "abc",
		`{"amount": null}`:   "",
		`{}`:                 "",
	}
	for body, want := range cases {
		var req dto.CreateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.Amount.String(), body)
	}
}

func TestUpdateBudgetRequest_Partial(t *testing.T) {
	var req dto.UpdateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 150}`), &req))

	assert.Nil(t, req.Category)
	assert.Nil(t, req.Period)
	require.NotNil(t, req.Amount)
	assert.Equal(t, "150", req.Amount.String())
}
