package score

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPitch is returned when a pitch string cannot be parsed.
var ErrInvalidPitch = errors.New("invalid pitch")

// Semitone offsets of the natural letters within an octave, C = 0.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MIDI parses scientific pitch notation into a MIDI note number (C4 = 60).
// Accepted forms: letter, optional accidental ('#' or 'b'), octave digits
// (which may be negative, e.g. "C-1" = 0).
func MIDI(pitch string) (int, error) {
	if len(pitch) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}

	semitone, ok := letterSemitones[pitch[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}

	rest := pitch[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, pitch)
	}

	midi := (octave+1)*12 + semitone
	if midi < 0 || midi > 127 {
		return 0, fmt.Errorf("%w: %q out of MIDI range", ErrInvalidPitch, pitch)
	}
	return midi, nil
}

// MIDISequence converts notes to MIDI numbers, skipping unparseable pitches.
func MIDISequence(notes []Note) []int {
	seq := make([]int, 0, len(notes))
	for _, n := range notes {
		midi, err := MIDI(n.Pitch)
		if err != nil {
			continue
		}
		seq = append(seq, midi)
	}
	return seq
}

// Intervals returns the successive differences of a MIDI sequence.
func Intervals(seq []int) []int {
	if len(seq) < 2 {
		return nil
	}
	out := make([]int, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out[i-1] = seq[i] - seq[i-1]
	}
	return out
}

// MeanPitch returns the mean MIDI number of the parseable notes, or 0 when
// none parse.
func MeanPitch(notes []Note) float64 {
	seq := MIDISequence(notes)
	if len(seq) == 0 {
		return 0
	}
	sum := 0
	for _, m := range seq {
		sum += m
	}
	return float64(sum) / float64(len(seq))
}

// MeanDuration returns the mean note duration in beats, or 0 for no notes.
func MeanDuration(notes []Note) float64 {
	if len(notes) == 0 {
		return 0
	}
	var sum float64
	for _, n := range notes {
		sum += n.Duration
	}
	return sum / float64(len(notes))
}
