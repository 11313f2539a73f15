package speech

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/f3rmion/kanaspell/internal/reading"
)

// Speller converts text into its spelled-out reading.
type Speller interface {
	Spell(text string) string
}

// Settings are the adjustable driver parameters. Values range from 0 to 100.
type Settings struct {
	Rate       int
	RateBoost  bool
	Pitch      int
	Inflection int
	Volume     int
}

// DefaultSettings match a freshly started driver.
var DefaultSettings = Settings{Rate: 30, Pitch: 50, Inflection: 50, Volume: 100}

// Driver feeds speech sequences to a Backend.
type Driver struct {
	backend Backend
	speller Speller
	locale  reading.LocaleProvider
	logger  *slog.Logger
	voices  []Voice

	mu        sync.Mutex
	voiceID   string
	settings  Settings
	lastIndex *int
}

// Options configures a Driver.
type Options struct {
	// Voices lists the selectable voices. Defaults to DefaultVoices.
	Voices []Voice
	// VoiceID selects the initial voice. Defaults to "V2".
	VoiceID string
	// Settings overrides DefaultSettings when non-nil.
	Settings *Settings
	Logger   *slog.Logger
}

// NewDriver initializes backend with the selected voice. speller is used
// for Japanese text in character mode. locale supplies the default language.
func NewDriver(backend Backend, speller Speller, locale reading.LocaleProvider, opts Options) (*Driver, error) {
	d := &Driver{
		backend:  backend,
		speller:  speller,
		locale:   locale,
		logger:   opts.Logger,
		voices:   opts.Voices,
		voiceID:  opts.VoiceID,
		settings: DefaultSettings,
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.locale == nil {
		d.locale = reading.StaticLocale("ja")
	}
	if len(d.voices) == 0 {
		d.voices = DefaultVoices
	}
	if d.voiceID == "" {
		d.voiceID = "V2"
	}
	if opts.Settings != nil {
		d.settings = clampSettings(*opts.Settings)
	}

	v, ok := d.findVoice(d.voiceID)
	if !ok {
		return nil, fmt.Errorf("unknown voice %q", d.voiceID)
	}
	if err := backend.Initialize(v); err != nil {
		return nil, fmt.Errorf("initializing backend: %w", err)
	}
	return d, nil
}

func clamp(v int) int {
	return max(0, min(100, v))
}

func clampSettings(s Settings) Settings {
	s.Rate = clamp(s.Rate)
	s.Pitch = clamp(s.Pitch)
	s.Inflection = clamp(s.Inflection)
	s.Volume = clamp(s.Volume)
	return s
}

// Speed converts a 0-100 rate to a speed multiplier. Rate boost triples the
// upper end of the range.
func Speed(rate int, boost bool) float64 {
	top := 2.0
	if boost {
		top = 6.0
	}
	return 0.5 + float64(clamp(rate))/100*(top-0.5)
}

// Settings returns the current settings.
func (d *Driver) Settings() Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settings
}

// SetRate sets the speaking rate.
func (d *Driver) SetRate(rate int) {
	d.mu.Lock()
	d.settings.Rate = clamp(rate)
	d.mu.Unlock()
}

// SetRateBoost toggles the extended rate range. The rate value is kept.
func (d *Driver) SetRateBoost(on bool) {
	d.mu.Lock()
	d.settings.RateBoost = on
	d.mu.Unlock()
}

// SetPitch sets the voice pitch.
func (d *Driver) SetPitch(pitch int) {
	d.mu.Lock()
	d.settings.Pitch = clamp(pitch)
	d.mu.Unlock()
}

// SetInflection sets the amount of intonation.
func (d *Driver) SetInflection(v int) {
	d.mu.Lock()
	d.settings.Inflection = clamp(v)
	d.mu.Unlock()
}

// SetVolume sets the output volume.
func (d *Driver) SetVolume(v int) {
	d.mu.Lock()
	d.settings.Volume = clamp(v)
	d.mu.Unlock()
}

// Voices returns the selectable voices.
func (d *Driver) Voices() []Voice {
	out := make([]Voice, len(d.voices))
	copy(out, d.voices)
	return out
}

// Voice returns the current voice ID.
func (d *Driver) Voice() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.voiceID
}

func (d *Driver) findVoice(id string) (Voice, bool) {
	for _, v := range d.voices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

// SetVoice switches to voice id, restarting the backend. Rate and volume
// carry over. Unknown IDs are ignored.
func (d *Driver) SetVoice(id string) error {
	d.logger.Debug("set voice", "id", id)
	v, ok := d.findVoice(id)
	if !ok {
		d.logger.Debug("unknown voice", "id", id)
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.voiceID == id {
		return nil
	}
	if err := d.backend.Terminate(); err != nil {
		return fmt.Errorf("terminating backend: %w", err)
	}
	if err := d.backend.Initialize(v); err != nil {
		return fmt.Errorf("initializing voice %s: %w", id, err)
	}
	d.voiceID = id
	return nil
}

// LastIndex returns the index of the most recently spoken chunk.
func (d *Driver) LastIndex() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastIndex == nil {
		return 0, false
	}
	return *d.lastIndex, true
}

// defaultLanguage returns the host language, shortening any Japanese
// variant to "ja".
func (d *Driver) defaultLanguage() string {
	lang := reading.NormalizeLocale(d.locale.CurrentLocale())
	if lang == "" {
		return "ja"
	}
	return lang
}

// Speak processes seq in order. Text is spoken in the current language;
// in character mode Japanese text is spelled out first.
func (d *Driver) Speak(ctx context.Context, seq []Command) error {
	defLang := d.defaultLanguage()
	lang := defLang
	spell := false
	var index *int

	for _, item := range seq {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch c := item.(type) {
		case Text:
			text := string(c)
			if spell && lang == "ja" && d.speller != nil {
				text = d.speller.Spell(text)
			}
			if err := d.speakText(text, lang, index, spell); err != nil {
				return err
			}
		case Index:
			i := int(c)
			index = &i
		case CharacterMode:
			spell = bool(c)
		case LangChange:
			if c == "" {
				lang = defLang
			} else {
				lang = reading.NormalizeLocale(string(c))
			}
		default:
			d.logger.Warn("unsupported speech command", "kind", item.Kind(), "command", item)
		}
	}
	return nil
}

func (d *Driver) speakText(text, lang string, index *int, spell bool) error {
	d.mu.Lock()
	s := d.settings
	d.mu.Unlock()

	prop := VoiceProperty{
		Pitch:         s.Pitch,
		Inflection:    s.Inflection,
		Volume:        s.Volume,
		Speed:         Speed(s.Rate, s.RateBoost),
		CharacterMode: spell,
	}
	if err := d.backend.Speak(text, lang, index, prop); err != nil {
		return fmt.Errorf("speaking %q: %w", text, err)
	}
	if index != nil {
		d.mu.Lock()
		i := *index
		d.lastIndex = &i
		d.mu.Unlock()
	}
	return nil
}

// Cancel stops speech in progress.
func (d *Driver) Cancel() error { return d.backend.Stop() }

// Pause pauses or resumes speech.
func (d *Driver) Pause(on bool) error { return d.backend.Pause(on) }

// IsSpeaking reports whether the backend is still speaking.
func (d *Driver) IsSpeaking() bool { return d.backend.IsSpeaking() }

// Terminate shuts the backend down.
func (d *Driver) Terminate() error { return d.backend.Terminate() }
