package speech

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type utterance struct {
	text  string
	lang  string
	index *int
	prop  VoiceProperty
}

type recordingBackend struct {
	said       []utterance
	inits      []Voice
	terminates int
	speakErr   error
	initErr    error
}

func (b *recordingBackend) Initialize(v Voice) error {
	b.inits = append(b.inits, v)
	return b.initErr
}

func (b *recordingBackend) Speak(text, lang string, index *int, prop VoiceProperty) error {
	if b.speakErr != nil {
		return b.speakErr
	}
	b.said = append(b.said, utterance{text, lang, index, prop})
	return nil
}

func (b *recordingBackend) Stop() error      { return nil }
func (b *recordingBackend) Pause(bool) error { return nil }
func (b *recordingBackend) IsSpeaking() bool { return false }
func (b *recordingBackend) Terminate() error { b.terminates++; return nil }

type upperSpeller struct{}

func (upperSpeller) Spell(text string) string { return "<" + text + ">" }

type otherCommand struct{}

func (otherCommand) Kind() string { return "beep" }

func newTestDriver(t *testing.T, locale string) (*Driver, *recordingBackend) {
	t.Helper()
	b := &recordingBackend{}
	d, err := NewDriver(b, upperSpeller{}, reading.StaticLocale(locale), Options{})
	require.NoError(t, err)
	return d, b
}

func TestNewDriver(t *testing.T) {
	d, b := newTestDriver(t, "ja_JP")
	require.Len(t, b.inits, 1)
	assert.Equal(t, "V2", b.inits[0].ID)
	assert.Equal(t, "V2", d.Voice())
	assert.Equal(t, DefaultSettings, d.Settings())

	_, err := NewDriver(&recordingBackend{}, nil, nil, Options{VoiceID: "nope"})
	assert.ErrorContains(t, err, "unknown voice")

	_, err = NewDriver(&recordingBackend{initErr: errors.New("no engine")}, nil, nil, Options{})
	assert.ErrorContains(t, err, "no engine")
}

func TestDriverSpeak(t *testing.T) {
	d, b := newTestDriver(t, "ja_JP")

	seq := []Command{
		Text("こんにちは"),
		Index(4),
		CharacterMode(true),
		Text("あ"),
		LangChange("en_US"),
		Text("a"),
		otherCommand{},
		LangChange(""),
		CharacterMode(false),
		Text("end"),
	}
	require.NoError(t, d.Speak(context.Background(), seq))

	require.Len(t, b.said, 4)
	assert.Equal(t, "こんにちは", b.said[0].text)
	assert.Equal(t, "ja", b.said[0].lang)
	assert.Nil(t, b.said[0].index)
	assert.False(t, b.said[0].prop.CharacterMode)

	assert.Equal(t, "<あ>", b.said[1].text)
	require.NotNil(t, b.said[1].index)
	assert.Equal(t, 4, *b.said[1].index)
	assert.True(t, b.said[1].prop.CharacterMode)

	// spelling applies to Japanese only
	assert.Equal(t, "a", b.said[2].text)
	assert.Equal(t, "en", b.said[2].lang)
	assert.True(t, b.said[2].prop.CharacterMode)

	assert.Equal(t, "end", b.said[3].text)
	assert.Equal(t, "ja", b.said[3].lang)
	assert.False(t, b.said[3].prop.CharacterMode)

	idx, ok := d.LastIndex()
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestDriverSpeakErrors(t *testing.T) {
	d, b := newTestDriver(t, "ja")
	b.speakErr = errors.New("device busy")
	err := d.Speak(context.Background(), []Command{Text("x")})
	assert.ErrorIs(t, err, b.speakErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Speak(ctx, []Command{Text("x")}), context.Canceled)

	_, ok := d.LastIndex()
	assert.False(t, ok)
}

func TestDriverProsody(t *testing.T) {
	d, b := newTestDriver(t, "ja")
	d.SetPitch(80)
	d.SetInflection(-5)
	d.SetVolume(250)
	d.SetRate(100)
	d.SetRateBoost(true)

	require.NoError(t, d.Speak(context.Background(), []Command{Text("x")}))
	p := b.said[0].prop
	assert.Equal(t, 80, p.Pitch)
	assert.Equal(t, 0, p.Inflection)
	assert.Equal(t, 100, p.Volume)
	assert.InDelta(t, 6.0, p.Speed, 1e-9)

	d.SetRateBoost(false)
	assert.Equal(t, 100, d.Settings().Rate)
}

func TestSpeed(t *testing.T) {
	assert.InDelta(t, 0.5, Speed(0, false), 1e-9)
	assert.InDelta(t, 2.0, Speed(100, false), 1e-9)
	assert.InDelta(t, 0.5, Speed(-10, true), 1e-9)
	assert.Greater(t, Speed(50, true), Speed(50, false))
}

func TestSetVoice(t *testing.T) {
	d, b := newTestDriver(t, "ja")
	d.SetRate(70)
	d.SetVolume(40)

	require.NoError(t, d.SetVoice("V1"))
	assert.Equal(t, "V1", d.Voice())
	assert.Equal(t, 1, b.terminates)
	require.Len(t, b.inits, 2)
	assert.Equal(t, "V1", b.inits[1].ID)
	assert.Equal(t, 70, d.Settings().Rate)
	assert.Equal(t, 40, d.Settings().Volume)

	// same voice and unknown voices leave the backend alone
	require.NoError(t, d.SetVoice("V1"))
	require.NoError(t, d.SetVoice("V99"))
	assert.Equal(t, 1, b.terminates)
	assert.Equal(t, "V1", d.Voice())
	assert.Len(t, d.Voices(), len(DefaultVoices))
}

func TestConsoleBackend(t *testing.T) {
	var buf bytes.Buffer
	b := NewConsoleBackend(&buf)
	d, err := NewDriver(b, upperSpeller{}, reading.StaticLocale("en"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "V2", b.Voice().ID)

	require.NoError(t, d.Speak(context.Background(), []Command{
		Text("hello"),
		LangChange("ja"),
		CharacterMode(true),
		Text("あ"),
	}))
	assert.Equal(t, "[en] hello\n[ja] <あ>\n", buf.String())

	require.NoError(t, d.Pause(true))
	assert.True(t, b.Paused())
	assert.False(t, d.IsSpeaking())
	require.NoError(t, d.Cancel())

	require.NoError(t, d.Terminate())
	assert.ErrorIs(t, d.Speak(context.Background(), []Command{Text("x")}), ErrTerminated)
}

func TestParseScript(t *testing.T) {
	script := `# greeting
こんにちは
@index 2
@char on
カナ
@lang en
  indented text

@lang
@char off
`
	seq, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []Command{
		Text("こんにちは"),
		Index(2),
		CharacterMode(true),
		Text("カナ"),
		LangChange("en"),
		Text("  indented text"),
		LangChange(""),
		CharacterMode(false),
	}, seq)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"@char maybe", "line 1: @char"},
		{"ok\n@index x", "line 2: bad index"},
		{"@volume 3", "unknown directive @volume"},
	}
	for _, tt := range tests {
		_, err := ParseScript(strings.NewReader(tt.script))
		assert.ErrorContains(t, err, tt.want)
	}
}

func TestCommandStrings(t *testing.T) {
	assert.Equal(t, "@index 3", Index(3).String())
	assert.Equal(t, "@char on", CharacterMode(true).String())
	assert.Equal(t, "@char off", CharacterMode(false).String())
	assert.Equal(t, "@lang en", LangChange("en").String())
	assert.Equal(t, "text", Text("x").Kind())
}
