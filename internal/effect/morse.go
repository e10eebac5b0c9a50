package effect

import (
	"fmt"
	"strings"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Tick counts for the Morse expansion. A dot is one lit tick, a dash
// three; one dark tick follows every symbol, two more separate letters
// and a word break adds its own dark tick plus a four-tick gap.
const (
	dotTicks      = 1
	dashTicks     = 3
	symbolGap     = 1
	letterGap     = 2
	wordSpaceTick = 1
	wordGap       = 4

	// trailing dark ticks so the crawl does not wrap straight into a
	// repeat of the message
	messageTail = 7
)

var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--",
	'\'': ".----.", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'@': ".--.-.",
}

// Morse crawls a message, encoded as Morse ticks, across the target
// range: one tick per LED, the whole pattern advancing one tick per
// step. The expansion happens once at construction; the per-step work
// is a single modular walk over the precomputed sequence.
type Morse struct {
	sp  span
	seq []pixel.Pixel
}

func NewMorse(start, end int, color pixel.Pixel, message string) (*Morse, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	ticks, err := ExpandMessage(message)
	if err != nil {
		return nil, err
	}
	seq := make([]pixel.Pixel, len(ticks))
	for i, on := range ticks {
		if on {
			seq[i] = color
		} else {
			seq[i] = pixel.Black
		}
	}
	return &Morse{sp: sp, seq: seq}, nil
}

// ExpandMessage converts a message to its cyclic on/off tick sequence.
// Case is normalised to upper before lookup; a character with no Morse
// encoding is an error, never silently dropped.
func ExpandMessage(message string) ([]bool, error) {
	var ticks []bool
	dark := func(n int) {
		for i := 0; i < n; i++ {
			ticks = append(ticks, false)
		}
	}
	for _, r := range strings.ToUpper(message) {
		if r == ' ' {
			dark(wordSpaceTick + wordGap)
			continue
		}
		code, ok := morseTable[r]
		if !ok {
			return nil, fmt.Errorf("effect: unsupported symbol %q in message", r)
		}
		for _, sym := range code {
			n := dotTicks
			if sym == '-' {
				n = dashTicks
			}
			for i := 0; i < n; i++ {
				ticks = append(ticks, true)
			}
			dark(symbolGap)
		}
		dark(letterGap)
	}
	if len(ticks) == 0 {
		return nil, fmt.Errorf("effect: empty message")
	}
	dark(messageTail)
	return ticks, nil
}

func (m *Morse) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	n := len(m.seq)
	for i := m.sp.lo(); i <= m.sp.hi(); i++ {
		s.Set(i, m.seq[(i+step)%n])
	}
	return m.sp.size()
}

func (m *Morse) Validate(numLED, stepsPerCycle int) error {
	return m.sp.validate(numLED)
}
