package speech

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseScript reads a line-oriented speech script:
//
//	@lang en      switch language (bare "@lang" restores the default)
//	@char on|off  toggle character mode
//	@index 3      set the index for following text
//	# comment
//	any other non-empty line is spoken text
func ParseScript(r io.Reader) ([]Command, error) {
	var seq []Command
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.HasPrefix(trimmed, "@") {
			seq = append(seq, Text(line))
			continue
		}

		directive, arg, _ := strings.Cut(trimmed[1:], " ")
		arg = strings.TrimSpace(arg)
		switch directive {
		case "lang":
			seq = append(seq, LangChange(arg))
		case "char":
			switch arg {
			case "on":
				seq = append(seq, CharacterMode(true))
			case "off":
				seq = append(seq, CharacterMode(false))
			default:
				return nil, fmt.Errorf("line %d: @char wants on or off, got %q", lineNo, arg)
			}
		case "index":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad index %q: %w", lineNo, arg, err)
			}
			seq = append(seq, Index(n))
		default:
			return nil, fmt.Errorf("line %d: unknown directive @%s", lineNo, directive)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return seq, nil
}
