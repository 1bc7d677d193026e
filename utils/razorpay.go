package utils

import (
	"elearn/config"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RazorpayOrder is the order handle returned by the gateway's Orders API.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Raw      []byte `json:"-"`
}

type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateRazorpayOrder opens a payment order with the gateway for the given
// amount in minor currency units.
func CreateRazorpayOrder(amount int64, currency, receipt string) (*RazorpayOrder, error) {
	client := resty.New().
		SetBaseURL(config.AppConfig.RazorpayBaseURL).
		SetBasicAuth(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpaySecret).
		SetTimeout(15 * time.Second)

	var order RazorpayOrder
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order request failed: %v", err)
	}

	if resp.IsError() {
		var gatewayErr razorpayErrorResponse
		if jsonErr := json.Unmarshal(resp.Body(), &gatewayErr); jsonErr == nil && gatewayErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay order rejected: %s", gatewayErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay order rejected: %s", resp.Status())
	}

	if order.ID == "" {
		return nil, fmt.Errorf("razorpay response missing order id")
	}

	order.Raw = resp.Body()
	return &order, nil
}
