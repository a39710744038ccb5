package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the audio context sample rate
const SampleRate = 44100

type stream interface {
	io.ReadSeeker
	Length() int64
}

// MusicLoader creates looping music players
type MusicLoader struct {
	loader  *Loader
	context *audio.Context
}

// NewMusicLoader creates a music loader. ctx must be the process-wide
// audio context.
func NewMusicLoader(l *Loader, ctx *audio.Context) *MusicLoader {
	return &MusicLoader{loader: l, context: ctx}
}

// LoadMusic returns a player that loops p forever
func (m *MusicLoader) LoadMusic(p string) (*audio.Player, error) {
	data, err := m.loader.ReadFile(p)
	if err != nil {
		return nil, err
	}

	s, err := decode(m.context.SampleRate(), p, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(s, s.Length())
	player, err := m.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player %s: %w", p, err)
	}
	return player, nil
}

func decode(sampleRate int, p string, data []byte) (stream, error) {
	ext := strings.ToLower(filepath.Ext(p))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		return s, nil

	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		return s, nil

	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode mp3 %s: %w", p, err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}
