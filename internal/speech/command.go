// Package speech drives a speech backend from a stream of text and control
// commands, spelling Japanese text character by character when requested.
package speech

import "fmt"

// Command is one item of a speech sequence.
type Command interface {
	Kind() string
}

// Text is a chunk of text to speak.
type Text string

// Index marks the position reached once the following text is spoken.
type Index int

// CharacterMode switches character-by-character spelling on or off.
type CharacterMode bool

// LangChange switches the language of the following text. An empty value
// returns to the default language.
type LangChange string

func (Text) Kind() string          { return "text" }
func (Index) Kind() string         { return "index" }
func (CharacterMode) Kind() string { return "char" }
func (LangChange) Kind() string    { return "lang" }

func (t Text) String() string { return string(t) }
func (i Index) String() string { return fmt.Sprintf("@index %d", int(i)) }

func (c CharacterMode) String() string {
	if c {
		return "@char on"
	}
	return "@char off"
}

func (l LangChange) String() string { return "@lang " + string(l) }
