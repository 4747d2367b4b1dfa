package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"desktop-assistant/internal/application/service"
	"desktop-assistant/internal/di"
	"desktop-assistant/internal/infrastructure/env"
)

var (
	voiceMode bool
	textMode  bool
	wakeMode  bool
	wakeWord  string
	language  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Desktop AI assistant with local action dispatch",
		Long: "A desktop assistant that forwards utterances to a language model and\n" +
			"executes the actions the model requests through a fixed set of local\n" +
			"capabilities (apps, keyboard, mouse, clipboard, screenshots, shell, web search).",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&voiceMode, "voice", false, "speak replies aloud")
	rootCmd.Flags().BoolVar(&textMode, "text", false, "text mode (default)")
	rootCmd.Flags().BoolVar(&wakeMode, "wake", false, "only respond to utterances starting with the wake word")
	rootCmd.Flags().StringVar(&wakeWord, "wake-word", service.DefaultWakeWord, "custom wake word")
	rootCmd.Flags().StringVar(&language, "language", "en", "speech language code")
	rootCmd.MarkFlagsMutuallyExclusive("voice", "text")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}

	container, err := di.NewContainer(di.Config{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
		Voice:    voiceMode,
		Language: language,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer container.Close()

	console := container.Console
	console.ShowInfo("=== Assistant ready ===")
	if wakeMode {
		console.ShowInfo(fmt.Sprintf("Wake mode ON. Address the assistant with %q.", wakeWord))
	}
	console.ShowInfo("Type 'quit' to exit.")

	ctx := context.Background()

	for {
		line, err := console.ReadLine("You: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				console.ShowInfo("\nExiting...")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			continue
		}

		if service.IsExitPhrase(line) {
			console.ShowInfo("Goodbye!")
			container.Speaker.Say(ctx, "Goodbye!")
			return nil
		}

		if wakeMode {
			rest, addressed := service.StripWakeWord(line, wakeWord)
			if !addressed {
				continue
			}
			line = rest
		}

		answer, err := container.Turn.HandleTurn(ctx, line)
		if err != nil {
			// The turn is lost but the session survives; the next
			// utterance starts fresh against the same transcript.
			container.Logger.Error("Turn failed", "error", err)
			console.ShowError(err)
			container.Speaker.Say(ctx, "There was an error talking to the model.")
			continue
		}

		console.ShowAnswer(answer)
		if err := container.Speaker.Say(ctx, answer); err != nil {
			container.Logger.Warn("Speech synthesis failed", "error", err)
		}
	}
}
