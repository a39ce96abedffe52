package simviewer

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // oto.FormatFloat32LE
)

// AudioSystem plays short procedurally generated cues (wall bump,
// tile reached) the same way the teacher's AudioSystem plays its
// sound effects: a stereo float32 oto context fed one-shot players.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

func NewAudioSystem() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

func (a *AudioSystem) play(samples []byte, volume float64) {
	if a == nil || len(samples) == 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	go func() {
		reader := &sampleReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayBump plays a short low thud for a wall collision.
func (a *AudioSystem) PlayBump() { a.play(genTone(140, 0.08, 0.9), 0.6) }

// PlayChirp plays a short rising chirp for a discrete move completing.
func (a *AudioSystem) PlayChirp() { a.play(genTone(880, 0.05, 0.0), 0.4) }

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// genTone synthesizes a decaying sine tone at freq Hz, durationSec
// long, sliding down by slideDown*freq Hz over its length.
func genTone(freq, durationSec, slideDown float64) []byte {
	n := int(durationSec * sampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 8)
		f := freq * (1 - slideDown*p)
		s := math.Sin(2*math.Pi*f*t) * env * 0.7
		putStereoF32(buf, i, s)
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
