package mobility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMobilityRequest_Decode_ScalarFields(t *testing.T) {
	body := `{
		"department": "Engineering",
		"position": "Backend Engineer",
		"salary": 5000,
		"userId": "user-1",
		"transfer": true,
		"promotion": true
	}`

	var req UpdateMobilityRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Engineering", req.Department.Value())
	assert.Equal(t, "Backend Engineer", req.Position.Value())
	assert.Equal(t, "5000", req.Salary.String())
	assert.Equal(t, "user-1", req.UserID)
	assert.True(t, req.Transfer)
	require.NotNil(t, req.Promotion.Value())
	assert.Equal(t, "true", *req.Promotion.Value())
}

func TestUpdateMobilityRequest_Decode_ArrayFields(t *testing.T) {
	body := `{
		"department": ["Sales", "ignored"],
		"position": ["Account Executive"],
		"salary": "4200.50",
		"userId": "user-2",
		"transfer": false,
		"promotion": "senior track"
	}`

	var req UpdateMobilityRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	// Arrays contribute only their first element.
	assert.Equal(t, "Sales", req.Department.Value())
	assert.Equal(t, "Account Executive", req.Position.Value())
	assert.Equal(t, "4200.50", req.Salary.String())
	require.NotNil(t, req.Promotion.Value())
	assert.Equal(t, "senior track", *req.Promotion.Value())
}

func TestUpdateMobilityRequest_Decode_EmptyArrayAndNulls(t *testing.T) {
	body := `{
		"department": [],
		"position": "Engineer",
		"salary": null,
		"userId": "user-3",
		"promotion": null
	}`

	var req UpdateMobilityRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.False(t, req.Department.IsSet())
	assert.False(t, req.Salary.IsSet())
	assert.Nil(t, req.Promotion.Value())
}

func TestSalary_PreservesLiteral(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"integer", `7000`, "7000"},
		{"decimal", `7000.25`, "7000.25"},
		{"large number keeps digits", `12345678901234567`, "12345678901234567"},
		{"string number", `"7000"`, "7000"},
		{"scientific notation", `1e3`, "1e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Salary
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &s))
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestStringOrList_RejectsOtherShapes(t *testing.T) {
	var s StringOrList
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"name":"x"}`), &s))
}

func TestPromotion_FalseBecomesLiteral(t *testing.T) {
	var p Promotion
	require.NoError(t, json.Unmarshal([]byte(`false`), &p))
	require.NotNil(t, p.Value())
	assert.Equal(t, "false", *p.Value())
}

func TestUpdateMobilityRequest_Validate(t *testing.T) {
	valid := func() UpdateMobilityRequest {
		var req UpdateMobilityRequest
		body := `{"department":"Engineering","position":"Engineer","salary":5000,"userId":"user-1"}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatal(err)
		}
		return req
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing userId fails", func(t *testing.T) {
		req := valid()
		req.UserID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("missing department fails", func(t *testing.T) {
		req := valid()
		req.Department = StringOrList{}
		assert.Error(t, req.Validate())
	})

	t.Run("non-numeric salary fails", func(t *testing.T) {
		var req UpdateMobilityRequest
		body := `{"department":"Engineering","position":"Engineer","salary":"abc","userId":"user-1"}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Error(t, req.Validate())
	})

	t.Run("non-finite salary fails", func(t *testing.T) {
		var req UpdateMobilityRequest
		body := `{"department":"Engineering","position":"Engineer","salary":"NaN","userId":"user-1"}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Error(t, req.Validate())
	})
}
