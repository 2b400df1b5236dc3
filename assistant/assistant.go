//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

// Package assistant wires the fxassist agent topology: a root agent that
// answers time questions with the world clock tool and hands currency
// conversions to a specialist sub-agent, which delegates arithmetic to a
// code-executing calculation agent.
package assistant

import (
	"trpc.group/trpc-go/trpc-agent-go/agent/llmagent"
	"trpc.group/trpc-go/trpc-agent-go/codeexecutor/local"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/model/openai"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	agenttool "trpc.group/trpc-go/trpc-agent-go/tool/agent"

	"trpc.group/trpc-go/fxassist/tool/currency"
	"trpc.group/trpc-go/fxassist/tool/worldclock"
)

// Agent names, also the authors on emitted events.
const (
	RootAgentName        = "fx-assistant"
	CurrencyAgentName    = "currency-agent"
	CalculationAgentName = "calculation-agent"
)

const calculationInstruction = "You are a specialized calculator that ONLY responds with " +
	"valid Python code inside a single code block. Do not provide prose. The code must " +
	"print() the final numeric result and any intermediate values needed for a readable " +
	"breakdown. You are forbidden from writing any explanations outside the code block."

const currencyInstruction = "You are a precise currency conversion assistant. For any " +
	"conversion request, strictly do the following:\n" +
	"1) Call payment_fee(payment_method) to find the fee fraction.\n" +
	"2) Call exchange_rate(base_currency, target_currency) to get the conversion rate.\n" +
	"3) Do NOT perform arithmetic yourself. Instead, generate Python code that computes " +
	"the fee amount in the original currency, the amount after the fee, and the final " +
	"converted amount, then call the calculation agent (provided as a tool) to execute " +
	"the code and return the results.\n" +
	"4) Cross-check the executed numbers by calling conversion_quote(amount, " +
	"payment_method, base_currency, target_currency); if the values disagree, trust " +
	"conversion_quote and say so.\n" +
	"5) Present a clear breakdown: original amount, fee fraction, fee amount, amount " +
	"after fee, exchange rate, and final result.\n" +
	"6) If any tool returns an error status, stop and explain the error."

const rootInstruction = "You are a multi-tool assistant. You can tell the current time " +
	"for cities and timezones using current_time(city), and perform currency conversions " +
	"using the currency agent tool. When users ask about money conversion, call the " +
	"currency agent. When users ask about time, call current_time. Decide which tool to " +
	"call based on the user's request and return helpful, structured responses. If a tool " +
	"reports an error status, relay its message instead of guessing."

// Config controls how the assistant is assembled.
type Config struct {
	// ModelName is used by the specialist agents.
	ModelName string
	// RootModelName is used by the root agent; defaults to ModelName.
	RootModelName string
	// MaxTokens bounds each generation; defaults to 2000.
	MaxTokens int
	// Temperature applies to the root and currency agents; the calculation
	// agent always runs cold. Nil means the default of 0.7, so an explicit
	// zero temperature is honored.
	Temperature *float64
	// Streaming enables streamed responses and inner-agent forwarding.
	Streaming bool
	// ClockOptions configure the world clock tool (endpoint, timeout).
	ClockOptions []worldclock.Option
}

// New assembles the root agent with its tools and sub-agents. Model instances
// read OPENAI_API_KEY and OPENAI_BASE_URL from the environment.
func New(cfg Config) *llmagent.LLMAgent {
	cfg = cfg.withDefaults()

	rootModel := openai.New(cfg.RootModelName)
	currencyAgent := newCurrencyAgent(cfg)

	return llmagent.New(
		RootAgentName,
		llmagent.WithModel(rootModel),
		llmagent.WithDescription("A multi-tool assistant for world-clock lookups and currency conversions"),
		llmagent.WithInstruction(rootInstruction),
		llmagent.WithGenerationConfig(model.GenerationConfig{
			MaxTokens:   intPtr(cfg.MaxTokens),
			Temperature: cfg.Temperature,
			Stream:      cfg.Streaming,
		}),
		llmagent.WithTools([]tool.Tool{
			worldclock.NewTool(cfg.ClockOptions...),
			currency.NewFeeTool(),
			currency.NewRateTool(),
			agenttool.NewTool(
				currencyAgent,
				agenttool.WithSkipSummarization(true),
				agenttool.WithStreamInner(cfg.Streaming),
			),
		}),
	)
}

// withDefaults fills the zero-value fields that have defaults.
func (cfg Config) withDefaults() Config {
	if cfg.RootModelName == "" {
		cfg.RootModelName = cfg.ModelName
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Temperature == nil {
		cfg.Temperature = floatPtr(0.7)
	}
	return cfg
}

// newCurrencyAgent builds the currency conversion specialist: fee, rate and
// quote tools plus the calculation agent wrapped as a tool.
func newCurrencyAgent(cfg Config) *llmagent.LLMAgent {
	specialistModel := openai.New(cfg.ModelName)

	calculationAgent := llmagent.New(
		CalculationAgentName,
		llmagent.WithModel(specialistModel),
		llmagent.WithDescription("A code-only specialist that executes Python for exact arithmetic"),
		llmagent.WithInstruction(calculationInstruction),
		llmagent.WithGenerationConfig(model.GenerationConfig{
			MaxTokens:   intPtr(cfg.MaxTokens),
			Temperature: floatPtr(0.1),
			Stream:      cfg.Streaming,
		}),
		llmagent.WithCodeExecutor(local.New()),
	)

	return llmagent.New(
		CurrencyAgentName,
		llmagent.WithModel(specialistModel),
		llmagent.WithDescription("A currency conversion specialist that looks up fees and rates "+
			"and delegates arithmetic to the calculation agent"),
		llmagent.WithInstruction(currencyInstruction),
		llmagent.WithGenerationConfig(model.GenerationConfig{
			MaxTokens:   intPtr(cfg.MaxTokens),
			Temperature: cfg.Temperature,
			Stream:      cfg.Streaming,
		}),
		llmagent.WithTools([]tool.Tool{
			currency.NewFeeTool(),
			currency.NewRateTool(),
			currency.NewQuoteTool(),
			agenttool.NewTool(
				calculationAgent,
				agenttool.WithSkipSummarization(true),
				agenttool.WithStreamInner(cfg.Streaming),
			),
		}),
	)
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
