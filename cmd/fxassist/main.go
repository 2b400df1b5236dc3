//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

// Package main runs an interactive chat with the fxassist agent: world-clock
// lookups plus currency conversions delegated to specialist sub-agents.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/runner"

	"trpc.group/trpc-go/fxassist/assistant"
	"trpc.group/trpc-go/fxassist/tool/worldclock"
)

var (
	modelName     = flag.String("model", "deepseek-chat", "Name of the model used by the specialist agents")
	rootModelName = flag.String("root-model", "", "Name of the model used by the root agent (defaults to -model)")
	streaming     = flag.Bool("streaming", true, "Enable streaming mode for responses")
	showTool      = flag.Bool("show-tool", false, "Show tool outputs in the transcript")
	timeAPI       = flag.String("time-api", "", "Override the World Time API base URL")
	timeTimeout   = flag.Duration("time-timeout", 6*time.Second, "Timeout for remote time lookups")
)

func main() {
	flag.Parse()

	fmt.Printf("🚀 fxassist\n")
	fmt.Printf("Model: %s\n", *modelName)
	fmt.Printf("Available tools: current_time, payment_fee, exchange_rate, currency-agent(agent_tool)\n")
	fmt.Println(strings.Repeat("=", 50))

	chat := &assistantChat{
		modelName:     *modelName,
		rootModelName: *rootModelName,
		streaming:     *streaming,
		showTool:      *showTool,
	}

	if err := chat.run(); err != nil {
		log.Fatalf("Chat failed: %v", err)
	}
}

// assistantChat manages the interactive conversation.
type assistantChat struct {
	modelName     string
	rootModelName string
	streaming     bool
	showTool      bool
	runner        runner.Runner
	userID        string
	sessionID     string
}

// run sets up the runner and starts the chat loop.
func (c *assistantChat) run() error {
	ctx := context.Background()
	c.setup()
	return c.startChat(ctx)
}

// setup assembles the agent and the runner.
func (c *assistantChat) setup() {
	var clockOpts []worldclock.Option
	if *timeAPI != "" {
		clockOpts = append(clockOpts, worldclock.WithBaseURL(*timeAPI))
	}
	clockOpts = append(clockOpts, worldclock.WithTimeout(*timeTimeout))

	rootAgent := assistant.New(assistant.Config{
		ModelName:     c.modelName,
		RootModelName: c.rootModelName,
		Streaming:     c.streaming,
		ClockOptions:  clockOpts,
	})

	c.runner = runner.NewRunner("fxassist", rootAgent)
	c.userID = "user"
	c.sessionID = fmt.Sprintf("chat-session-%s", uuid.NewString())

	fmt.Printf("✅ Chat ready! Session: %s\n\n", c.sessionID)
}

// startChat runs the interactive conversation loop.
func (c *assistantChat) startChat(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("💡 Special commands:")
	fmt.Println("   /new   - Start a new session")
	fmt.Println("   /exit  - End the conversation")
	fmt.Println()

	for {
		fmt.Print("👤 You: ")
		if !scanner.Scan() {
			break
		}

		userInput := strings.TrimSpace(scanner.Text())
		if userInput == "" {
			continue
		}

		switch strings.ToLower(userInput) {
		case "/exit":
			fmt.Println("👋 Goodbye!")
			return nil
		case "/new":
			c.sessionID = fmt.Sprintf("chat-session-%s", uuid.NewString())
			fmt.Printf("🔄 New session started: %s\n\n", c.sessionID)
			continue
		}

		if err := c.processMessage(ctx, userInput); err != nil {
			fmt.Printf("❌ Error: %v\n", err)
		}

		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input scanner error: %w", err)
	}
	return nil
}

// processMessage handles a single message exchange.
func (c *assistantChat) processMessage(ctx context.Context, userMessage string) error {
	eventChan, err := c.runner.Run(ctx, c.userID, c.sessionID, model.NewUserMessage(userMessage))
	if err != nil {
		return fmt.Errorf("failed to run agent: %w", err)
	}

	fmt.Print("🤖 Assistant: ")
	for ev := range eventChan {
		c.handleEvent(ev)
	}
	fmt.Println()
	return nil
}

// handleEvent prints a single event from the runner.
func (c *assistantChat) handleEvent(ev *event.Event) {
	if ev.Error != nil {
		fmt.Printf("\n❌ Error: %s\n", ev.Error.Message)
		return
	}
	if ev.Response == nil || len(ev.Response.Choices) == 0 {
		return
	}
	choice := ev.Response.Choices[0]

	if len(choice.Message.ToolCalls) > 0 {
		fmt.Printf("\n🔧 Tool calls:\n")
		for _, tc := range choice.Message.ToolCalls {
			fmt.Printf("   • %s %s\n", tc.Function.Name, string(tc.Function.Arguments))
		}
		return
	}

	if ev.Object == model.ObjectTypeToolResponse {
		if c.showTool && choice.Message.Content != "" {
			fmt.Printf("\n🛠️  tool> %s\n", strings.TrimSpace(choice.Message.Content))
		}
		return
	}

	// Sub-agent deltas are labeled so delegation stays visible.
	if choice.Delta.Content != "" {
		if ev.Author != assistant.RootAgentName {
			fmt.Printf("\n[%s] %s", ev.Author, choice.Delta.Content)
			return
		}
		fmt.Print(choice.Delta.Content)
	}
}
