package test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"payroll_keeper/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStaffForm(t *testing.T) {
	app, staffStore := SetupTest(t)

	t.Run("Valid Submission Redirects And Persists", func(t *testing.T) {
		form := url.Values{}
		form.Set("name", "Ada Obi")
		form.Set("role", "Accountant")
		form.Set("basic", "20000")
		form.Set("housing", "5000")
		form.Set("transport", "3000")
		form.Set("feeding", "2000")

		req := httptest.NewRequest("POST", "/staff", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 303, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		records, err := staffStore.ListAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Ada Obi", records[0].Name)
		assert.Equal(t, "Accountant", records[0].Role)
		assert.Equal(t, 20000.0, records[0].Basic)
		assert.Equal(t, 5000.0, records[0].Housing)
		assert.Equal(t, 3000.0, records[0].Transport)
		assert.Equal(t, 2000.0, records[0].Feeding)
		assert.NotZero(t, records[0].ID)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("Non Numeric Amount Is Rejected", func(t *testing.T) {
		before, err := staffStore.Count()
		require.NoError(t, err)

		form := url.Values{}
		form.Set("name", "Bad Entry")
		form.Set("role", "Clerk")
		form.Set("basic", "abc")
		form.Set("housing", "5000")
		form.Set("transport", "3000")
		form.Set("feeding", "2000")

		req := httptest.NewRequest("POST", "/staff", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		after, err := staffStore.Count()
		require.NoError(t, err)
		assert.Equal(t, before, after, "a rejected submission must not write a record")
	})

	t.Run("Missing Name Is Rejected", func(t *testing.T) {
		form := url.Values{}
		form.Set("name", "   ")
		form.Set("role", "Clerk")
		form.Set("basic", "1000")
		form.Set("housing", "0")
		form.Set("transport", "0")
		form.Set("feeding", "0")

		req := httptest.NewRequest("POST", "/staff", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestAddStaffRequestValidation(t *testing.T) {
	t.Run("Valid Input Parses", func(t *testing.T) {
		req, err := types.NewAddStaffRequest(" Ada ", "Engineer", "20000", "5000.50", "0", "150")
		require.NoError(t, err)
		assert.Equal(t, "Ada", req.Name)
		assert.Equal(t, "Engineer", req.Role)
		assert.Equal(t, 5000.50, req.Housing)
		assert.Equal(t, 0.0, req.Transport)
	})

	t.Run("Negative Amount Fails", func(t *testing.T) {
		_, err := types.NewAddStaffRequest("Ada", "Engineer", "-1", "0", "0", "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("Empty Role Fails", func(t *testing.T) {
		_, err := types.NewAddStaffRequest("Ada", "", "1", "0", "0", "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})
}

func TestStaffAPI(t *testing.T) {
	app, staffStore := SetupTest(t)

	t.Run("Post Staff Creates Record", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":      "Chinedu Eze",
			"role":      "Driver",
			"basic":     "12000",
			"housing":   "4000",
			"transport": "2500",
			"feeding":   "1500",
		})
		req := httptest.NewRequest("POST", "/api/staff", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var response types.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
		assert.True(t, response.Success)

		record := response.Data.(map[string]interface{})
		assert.Equal(t, "Chinedu Eze", record["name"])
		assert.NotZero(t, record["id"])
	})

	t.Run("Get Staff Returns All Records", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/staff", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var response types.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
		assert.True(t, response.Success)

		list := response.Data.([]interface{})
		count, err := staffStore.Count()
		require.NoError(t, err)
		assert.Equal(t, int(count), len(list))
	})

	t.Run("Post Staff Rejects Bad Amount", func(t *testing.T) {
		before, err := staffStore.Count()
		require.NoError(t, err)

		body, _ := json.Marshal(map[string]string{
			"name":      "Bad",
			"role":      "Entry",
			"basic":     "not-a-number",
			"housing":   "0",
			"transport": "0",
			"feeding":   "0",
		})
		req := httptest.NewRequest("POST", "/api/staff", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		after, err := staffStore.Count()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
