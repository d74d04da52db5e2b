package event

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName renders a note number in scientific pitch notation, treating
// MIDI note 60 as C4 (the common "middle C = C4" convention).
func NoteName(n values.U7) string {
	v := int(n)
	octave := v/12 - 1
	name := noteNames[v%12]
	return fmt.Sprintf("%s%d", name, octave)
}

// ParseNoteName parses scientific pitch notation ("C4", "F#3", "Gb5") into
// a note number, rejecting names outside the representable 0..127 range.
func ParseNoteName(s string) (values.U7, error) {
	if s == "" {
		return 0, midierr.NewMalformed("NoteName", -1, "empty note name")
	}
	letter := s[0]
	idx := strings.IndexByte("CDEFGAB", upper(letter))
	if idx < 0 {
		return 0, midierr.NewMalformed("NoteName", -1, "unrecognised pitch letter")
	}
	semis := []int{0, 2, 4, 5, 7, 9, 11}[idx]
	rest := s[1:]
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			semis++
		} else {
			semis--
		}
		rest = rest[1:]
	}
	if rest == "" {
		return 0, midierr.NewMalformed("NoteName", -1, "missing octave")
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, midierr.NewMalformedf("NoteName", -1, "invalid octave: %v", err)
	}
	raw := (octave+1)*12 + semis
	if raw < 0 || raw > 127 {
		return 0, midierr.NewOutOfRange("NoteName", int64(raw), 127)
	}
	return values.NewU7(uint8(raw)), nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
