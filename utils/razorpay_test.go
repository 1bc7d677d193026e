package utils

import (
	"elearn/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRazorpayOrder(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test_key", user)
		assert.Equal(t, "test_secret", pass)
		assert.Equal(t, "/orders", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test_1",
			"entity":   "order",
			"amount":   200000,
			"currency": "INR",
			"receipt":  gotBody["receipt"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	config.AppConfig = &config.Config{
		RazorpayKeyID:   "test_key",
		RazorpaySecret:  "test_secret",
		RazorpayBaseURL: srv.URL,
	}

	order, err := CreateRazorpayOrder(200000, "INR", "rcpt_1")
	require.NoError(t, err)

	assert.Equal(t, "order_test_1", order.ID)
	assert.Equal(t, int64(200000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rcpt_1", order.Receipt)
	assert.NotEmpty(t, order.Raw)

	assert.Equal(t, float64(200000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, "rcpt_1", gotBody["receipt"])
}

func TestCreateRazorpayOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "Order amount less than minimum amount allowed",
			},
		})
	}))
	defer srv.Close()

	config.AppConfig = &config.Config{
		RazorpayKeyID:   "test_key",
		RazorpaySecret:  "test_secret",
		RazorpayBaseURL: srv.URL,
	}

	order, err := CreateRazorpayOrder(1, "INR", "rcpt_2")
	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order amount less than minimum")
}

func TestGenerateReceiptIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := GenerateReceipt()
		assert.False(t, seen[r])
		seen[r] = true
	}
}
