//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

// Package currency provides payment-fee and exchange-rate lookup tools for AI
// agents, backed by static read-only tables.
package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// feeTable maps payment-method names to their fee fraction (0.02 = 2%).
var feeTable = map[string]float64{
	"platinum credit card": 0.02,
	"gold debit card":      0.035,
	"bank transfer":        0.01,
}

// rateTable maps base currency -> target currency -> multiplicative rate.
var rateTable = map[string]map[string]float64{
	"usd": {
		"eur": 0.93,
		"jpy": 157.50,
		"inr": 83.58,
	},
}

// FeeForMethod returns the fee fraction for a payment method. The match is
// case-insensitive and exact.
func FeeForMethod(method string) (float64, error) {
	if strings.TrimSpace(method) == "" {
		return 0, fmt.Errorf("no payment method provided")
	}
	fee, ok := feeTable[strings.ToLower(strings.TrimSpace(method))]
	if !ok {
		return 0, fmt.Errorf("payment method %q not found", method)
	}
	return fee, nil
}

// Rate returns the multiplicative exchange rate from base to target currency.
// The match is case-insensitive and exact.
func Rate(base, target string) (float64, error) {
	b := strings.ToLower(strings.TrimSpace(base))
	t := strings.ToLower(strings.TrimSpace(target))
	if b == "" || t == "" {
		return 0, fmt.Errorf("both base and target currencies are required")
	}
	rate, ok := rateTable[b][t]
	if !ok {
		return 0, fmt.Errorf("unsupported currency pair: %s/%s", b, t)
	}
	return rate, nil
}

// Quote is a deterministic conversion breakdown: the fee charged in the base
// currency, the remainder after the fee, and the converted result.
type Quote struct {
	Amount      float64 `json:"amount"`
	FeeFraction float64 `json:"fee_fraction"`
	FeeAmount   float64 `json:"fee_amount"`
	NetAmount   float64 `json:"net_amount"`
	Rate        float64 `json:"rate"`
	Converted   float64 `json:"converted"`
}

// NewQuote computes a conversion breakdown for an amount in the base currency
// paid with the given method. Arithmetic is done in decimal so the breakdown
// is exact for table values.
func NewQuote(amount float64, method, base, target string) (Quote, error) {
	if amount <= 0 {
		return Quote{}, fmt.Errorf("amount must be positive, got %v", amount)
	}
	fee, err := FeeForMethod(method)
	if err != nil {
		return Quote{}, err
	}
	rate, err := Rate(base, target)
	if err != nil {
		return Quote{}, err
	}

	amt := decimal.NewFromFloat(amount)
	feeAmt := amt.Mul(decimal.NewFromFloat(fee))
	net := amt.Sub(feeAmt)
	converted := net.Mul(decimal.NewFromFloat(rate))

	return Quote{
		Amount:      amount,
		FeeFraction: fee,
		FeeAmount:   feeAmt.InexactFloat64(),
		NetAmount:   net.InexactFloat64(),
		Rate:        rate,
		Converted:   converted.InexactFloat64(),
	}, nil
}

// feeRequest represents the input for the payment-fee tool.
type feeRequest struct {
	Method string `json:"payment_method" jsonschema:"description=Payment method name, e.g. 'bank transfer' or 'platinum credit card'"`
}

// feeResponse represents the output from the payment-fee tool.
type feeResponse struct {
	Status        string  `json:"status"`
	FeePercentage float64 `json:"fee_percentage,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
}

// rateRequest represents the input for the exchange-rate tool.
type rateRequest struct {
	BaseCurrency   string `json:"base_currency" jsonschema:"description=Base currency code, e.g. 'USD'"`
	TargetCurrency string `json:"target_currency" jsonschema:"description=Target currency code, e.g. 'EUR'"`
}

// rateResponse represents the output from the exchange-rate tool.
type rateResponse struct {
	Status       string  `json:"status"`
	Rate         float64 `json:"rate,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// quoteRequest represents the input for the conversion-quote tool.
type quoteRequest struct {
	Amount         float64 `json:"amount" jsonschema:"description=Amount in the base currency"`
	Method         string  `json:"payment_method" jsonschema:"description=Payment method name, e.g. 'bank transfer'"`
	BaseCurrency   string  `json:"base_currency" jsonschema:"description=Base currency code, e.g. 'USD'"`
	TargetCurrency string  `json:"target_currency" jsonschema:"description=Target currency code, e.g. 'EUR'"`
}

// quoteResponse represents the output from the conversion-quote tool.
type quoteResponse struct {
	Status       string `json:"status"`
	Quote        *Quote `json:"quote,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewFeeTool creates the payment-fee lookup tool.
func NewFeeTool() tool.CallableTool {
	return function.NewFunctionTool(
		lookupFee,
		function.WithName("payment_fee"),
		function.WithDescription("Look up the fee fraction charged for a payment method "+
			"(e.g. 0.02 means a 2% fee). Supported methods: platinum credit card, "+
			"gold debit card, bank transfer."),
	)
}

// NewRateTool creates the exchange-rate lookup tool.
func NewRateTool() tool.CallableTool {
	return function.NewFunctionTool(
		lookupRate,
		function.WithName("exchange_rate"),
		function.WithDescription("Look up the multiplicative exchange rate from a base "+
			"currency to a target currency, e.g. USD to EUR."),
	)
}

// NewQuoteTool creates the conversion-quote tool, a deterministic breakdown
// the currency agent can use to cross-check executed arithmetic.
func NewQuoteTool() tool.CallableTool {
	return function.NewFunctionTool(
		lookupQuote,
		function.WithName("conversion_quote"),
		function.WithDescription("Compute a deterministic currency conversion breakdown: "+
			"fee amount in the base currency, amount after the fee, and the converted "+
			"result. Useful for verifying conversion arithmetic."),
	)
}

// lookupFee performs the fee lookup for a single tool invocation. Failures
// are reported through the status field, never as a Go error.
func lookupFee(_ context.Context, req feeRequest) (feeResponse, error) {
	fee, err := FeeForMethod(req.Method)
	if err != nil {
		return feeResponse{Status: statusError, ErrorMessage: err.Error()}, nil
	}
	return feeResponse{Status: statusSuccess, FeePercentage: fee}, nil
}

// lookupRate performs the rate lookup for a single tool invocation.
func lookupRate(_ context.Context, req rateRequest) (rateResponse, error) {
	rate, err := Rate(req.BaseCurrency, req.TargetCurrency)
	if err != nil {
		return rateResponse{Status: statusError, ErrorMessage: err.Error()}, nil
	}
	return rateResponse{Status: statusSuccess, Rate: rate}, nil
}

// lookupQuote computes a conversion breakdown for a single tool invocation.
func lookupQuote(_ context.Context, req quoteRequest) (quoteResponse, error) {
	q, err := NewQuote(req.Amount, req.Method, req.BaseCurrency, req.TargetCurrency)
	if err != nil {
		return quoteResponse{Status: statusError, ErrorMessage: err.Error()}, nil
	}
	return quoteResponse{Status: statusSuccess, Quote: &q}, nil
}
