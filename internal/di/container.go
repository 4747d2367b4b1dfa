package di

import (
	"fmt"

	"desktop-assistant/internal/adapter/capability"
	"desktop-assistant/internal/application/port/input"
	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/application/service"
	"desktop-assistant/internal/domain/entity"
	"desktop-assistant/internal/infrastructure/clipboard"
	robotgodesktop "desktop-assistant/internal/infrastructure/desktop/robotgo"
	"desktop-assistant/internal/infrastructure/llm/openrouter"
	"desktop-assistant/internal/infrastructure/logger"
	"desktop-assistant/internal/infrastructure/prompts"
	"desktop-assistant/internal/infrastructure/search/duckduckgo"
	"desktop-assistant/internal/infrastructure/shell"
	"desktop-assistant/internal/infrastructure/speech"
	"desktop-assistant/internal/infrastructure/userinteraction"
	"desktop-assistant/internal/usecase/dispatcher"
	"desktop-assistant/internal/usecase/turn"
)

type Config struct {
	APIKey   string
	Model    string
	BaseURL  string
	Voice    bool
	Language string
}

type Container struct {
	Turn       input.TurnHandler
	Transcript *entity.Transcript
	Console    *userinteraction.Console
	Speaker    output.SpeakerPort
	Logger     output.LoggerPort

	speaker *speech.Speaker
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewAdapter()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.Model, cfg.BaseURL)
	llmCfg.Logger = log
	llm := openrouter.NewAdapter(llmCfg)

	console := userinteraction.NewConsole()

	registry := service.NewCapabilityRegistry()
	registerCapabilities(registry, log)

	systemPrompt, err := prompts.GenerateSystemPrompt(registry)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}
	transcript := entity.NewTranscript(systemPrompt)

	dispatch := dispatcher.New(registry, service.NewConfirmationPolicy(), console, log)
	turnUC := turn.New(llm, service.NewActionParser(), dispatch, transcript, log)

	c := &Container{
		Turn:       turnUC,
		Transcript: transcript,
		Console:    console,
		Speaker:    speech.NopSpeaker{},
		Logger:     log,
	}

	if cfg.Voice {
		c.speaker = speech.NewSpeaker(cfg.Language, log)
		c.Speaker = c.speaker
	}

	return c, nil
}

func (c *Container) Close() {
	if c.speaker != nil {
		c.speaker.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerCapabilities(registry output.CapabilityRegistry, log output.LoggerPort) {
	desktop := robotgodesktop.NewAdapter(log)
	clip := clipboard.NewAdapter()
	sh := shell.NewAdapter(log)
	search := duckduckgo.NewAdapter(log)

	registry.Register(capability.NewOpenAppCapability(sh, log))
	registry.Register(capability.NewTypeTextCapability(desktop, log))
	registry.Register(capability.NewPressCapability(desktop, log))
	registry.Register(capability.NewHotkeyCapability(desktop, log))
	registry.Register(capability.NewMoveMouseCapability(desktop, log))
	registry.Register(capability.NewClickCapability(desktop, log))
	registry.Register(capability.NewScrollCapability(desktop, log))
	registry.Register(capability.NewScreenshotCapability(desktop, log))
	registry.Register(capability.NewSearchWebCapability(search, log))
	registry.Register(capability.NewReadClipboardCapability(clip, log))
	registry.Register(capability.NewWriteClipboardCapability(clip, log))
	registry.Register(capability.NewSystemCommandCapability(sh, log))
}
