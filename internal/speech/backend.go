package speech

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrTerminated is returned by a backend used after Terminate.
var ErrTerminated = errors.New("speech backend terminated")

// Voice describes a selectable voice.
type Voice struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Lang string `json:"lang" yaml:"lang"`
}

// DefaultVoices are offered when no other voice list is supplied.
var DefaultVoices = []Voice{
	{ID: "V1", Name: "Mei (normal)", Lang: "ja"},
	{ID: "V2", Name: "M001", Lang: "ja"},
	{ID: "V3", Name: "Mei (happy)", Lang: "ja"},
	{ID: "V4", Name: "Mei (bashful)", Lang: "ja"},
}

// VoiceProperty carries per-utterance prosody settings.
type VoiceProperty struct {
	Pitch         int
	Inflection    int
	Volume        int
	Speed         float64
	CharacterMode bool
}

// Backend synthesizes speech. Speak may return before playback ends.
type Backend interface {
	Initialize(v Voice) error
	Speak(text, lang string, index *int, prop VoiceProperty) error
	Stop() error
	Pause(on bool) error
	IsSpeaking() bool
	Terminate() error
}

// ConsoleBackend writes each utterance as a "[lang] text" line.
type ConsoleBackend struct {
	mu         sync.Mutex
	w          io.Writer
	voice      Voice
	paused     bool
	terminated bool
}

// NewConsoleBackend creates a backend printing to w.
func NewConsoleBackend(w io.Writer) *ConsoleBackend {
	return &ConsoleBackend{w: w}
}

// Initialize implements Backend.
func (b *ConsoleBackend) Initialize(v Voice) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.voice = v
	b.terminated = false
	return nil
}

// Voice returns the voice set by the last Initialize.
func (b *ConsoleBackend) Voice() Voice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.voice
}

// Speak implements Backend.
func (b *ConsoleBackend) Speak(text, lang string, index *int, prop VoiceProperty) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.terminated {
		return ErrTerminated
	}
	if _, err := fmt.Fprintf(b.w, "[%s] %s\n", lang, text); err != nil {
		return fmt.Errorf("writing utterance: %w", err)
	}
	return nil
}

// Stop implements Backend.
func (b *ConsoleBackend) Stop() error { return nil }

// Pause implements Backend.
func (b *ConsoleBackend) Pause(on bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paused = on
	return nil
}

// Paused reports the last Pause state.
func (b *ConsoleBackend) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// IsSpeaking implements Backend. Console output is never pending.
func (b *ConsoleBackend) IsSpeaking() bool { return false }

// Terminate implements Backend.
func (b *ConsoleBackend) Terminate() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.terminated = true
	return nil
}
