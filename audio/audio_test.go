package audio

import (
	"bytes"
	"errors"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// TestGenerateEverySound verifies each effect renders, starts silent and fades out
func TestGenerateEverySound(t *testing.T) {
	for st := core.SoundNone + 1; st < core.SoundTypeCount; st++ {
		buf := generateSound(st)
		if len(buf) == 0 {
			t.Errorf("Sound %d: expected samples, got none", st)
			continue
		}
		if buf[0] != 0 {
			t.Errorf("Sound %d: expected silent first sample, got %f", st, buf[0])
		}
		if last := math.Abs(buf[len(buf)-1]); last > 0.05 {
			t.Errorf("Sound %d: expected faded tail, got %f", st, last)
		}
		for i, v := range buf {
			if math.Abs(v) > 2 {
				t.Fatalf("Sound %d: sample %d out of range: %f", st, i, v)
			}
		}
	}
}

// TestGenerateIsDeterministic verifies noise is seeded per effect
func TestGenerateIsDeterministic(t *testing.T) {
	a := generateSound(core.SoundApocalypse)
	b := generateSound(core.SoundApocalypse)
	if len(a) != len(b) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical renders, differ at sample %d", i)
		}
	}
}

// TestGenerateNoneIsSilent verifies out-of-range sounds render nothing
func TestGenerateNoneIsSilent(t *testing.T) {
	if buf := generateSound(core.SoundNone); buf != nil {
		t.Errorf("Expected nil for SoundNone, got %d samples", len(buf))
	}
	if buf := newSoundCache().get(core.SoundTypeCount + 3); buf != nil {
		t.Errorf("Expected nil for unknown sound, got %d samples", len(buf))
	}
}

// TestGainsFollowListener verifies distance fade and stereo pan
func TestGainsFollowListener(t *testing.T) {
	ae := NewAudioEngine(&AudioConfig{Enabled: true, MasterVolume: 1, Positional: true}, zerolog.Nop())
	ae.SetListener(core.Point{X: 10, Y: 10})

	l, r, ok := ae.gains(core.SoundFirebolt, core.Point{X: 10, Y: 10})
	if !ok || l != 1 || r != 1 {
		t.Errorf("Expected full centered gain, got %f/%f ok=%v", l, r, ok)
	}

	l, r, ok = ae.gains(core.SoundFirebolt, core.Point{X: 15, Y: 10})
	if !ok || r <= l {
		t.Errorf("Expected louder right channel, got %f/%f", l, r)
	}

	_, _, ok = ae.gains(core.SoundFirebolt, core.Point{X: 10, Y: 10 + parameter.AudioHearingRadius})
	if ok {
		t.Error("Expected effect past the hearing radius to be dropped")
	}

	ae.config.Positional = false
	l, r, ok = ae.gains(core.SoundFirebolt, core.Point{X: 25, Y: 10})
	if !ok || l != r {
		t.Errorf("Expected flat gain without positional audio, got %f/%f", l, r)
	}
}

// TestMixerStepWritesFrames verifies one period of interleaved stereo output
func TestMixerStepWritesFrames(t *testing.T) {
	var out bytes.Buffer
	m := NewMixer(&out, newSoundCache())
	m.start(cue{sound: core.SoundFireImpactLarge, gainL: 1})

	if err := m.step(); err != nil {
		t.Fatalf("Expected step to succeed, got %v", err)
	}
	if want := parameter.AudioBufferSamples * parameter.AudioBytesPerFrame; out.Len() != want {
		t.Fatalf("Expected %d bytes, got %d", want, out.Len())
	}

	frames := out.Bytes()
	var leftEnergy, rightEnergy int
	for i := 0; i < len(frames); i += parameter.AudioBytesPerFrame {
		if frames[i] != 0 || frames[i+1] != 0 {
			leftEnergy++
		}
		if frames[i+2] != 0 || frames[i+3] != 0 {
			rightEnergy++
		}
	}
	if leftEnergy == 0 {
		t.Error("Expected signal on the left channel")
	}
	if rightEnergy != 0 {
		t.Errorf("Expected silent right channel, got %d non-zero frames", rightEnergy)
	}

	for i := 0; i < 20; i++ {
		_ = m.step()
	}
	if len(m.voices) != 0 {
		t.Errorf("Expected finished voices removed, got %d", len(m.voices))
	}
}

// TestMixerVoiceBudget verifies the oldest voice is cut at the cap
func TestMixerVoiceBudget(t *testing.T) {
	m := NewMixer(&bytes.Buffer{}, newSoundCache())
	for i := 0; i < parameter.AudioMaxVoices+3; i++ {
		m.start(cue{sound: core.SoundMagic, gainL: 1, gainR: 1})
	}
	if len(m.voices) != parameter.AudioMaxVoices {
		t.Errorf("Expected %d voices, got %d", parameter.AudioMaxVoices, len(m.voices))
	}
	if played := m.Stats().Played; played != uint64(parameter.AudioMaxVoices+3) {
		t.Errorf("Expected %d played, got %d", parameter.AudioMaxVoices+3, played)
	}
}

// failWriter rejects every write
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// TestMixerStepReportsClosedPipe verifies write failures map to ErrPipeClosed
func TestMixerStepReportsClosedPipe(t *testing.T) {
	m := NewMixer(failWriter{}, newSoundCache())
	if err := m.step(); !errors.Is(err, ErrPipeClosed) {
		t.Errorf("Expected ErrPipeClosed, got %v", err)
	}
}

// TestMutedEngineDropsEffects verifies nothing is queued while muted
func TestMutedEngineDropsEffects(t *testing.T) {
	ae := NewAudioEngine(&AudioConfig{Enabled: false, MasterVolume: 1}, zerolog.Nop())
	if err := ae.StartWithWriter(&bytes.Buffer{}); err != nil {
		t.Fatalf("Expected start, got %v", err)
	}
	defer ae.Stop()

	if ae.IsEnabled() {
		t.Error("Expected muted engine to report disabled")
	}
	ae.PlayAt(core.SoundFirebolt, core.Point{})
	if len(ae.mixer.cues) != 0 {
		t.Errorf("Expected empty queue, got %d", len(ae.mixer.cues))
	}
	if err := ae.StartWithWriter(&bytes.Buffer{}); !errors.Is(err, ErrRunning) {
		t.Errorf("Expected ErrRunning on second start, got %v", err)
	}
}

// TestDetectBackendNone verifies the sentinel when no player binary exists
func TestDetectBackendNone(t *testing.T) {
	if runtime.GOOS == "freebsd" {
		t.Skip("OSS device may exist")
	}
	orig := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	defer func() { lookPath = orig }()

	if _, err := DetectBackend(); !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("Expected ErrNoAudioBackend, got %v", err)
	}
}

// TestDetectBackendPriority verifies the first available binary wins with the configured rate
func TestDetectBackendPriority(t *testing.T) {
	orig := lookPath
	lookPath = func(bin string) (string, error) {
		if bin == "aplay" || bin == "ffplay" {
			return "/usr/bin/" + bin, nil
		}
		return "", errors.New("not found")
	}
	defer func() { lookPath = orig }()

	b, err := DetectBackend()
	if err != nil {
		t.Fatalf("Expected backend, got %v", err)
	}
	if b.Kind != BackendALSA || b.Path != "/usr/bin/aplay" {
		t.Errorf("Expected aplay, got %s at %s", b.Name, b.Path)
	}
}

// TestEngineGoesSilentOnWriteFailure verifies a broken output stops effects but keeps the engine running
func TestEngineGoesSilentOnWriteFailure(t *testing.T) {
	ae := NewAudioEngine(&AudioConfig{Enabled: true, MasterVolume: 1}, zerolog.Nop())
	if err := ae.StartWithWriter(failWriter{}); err != nil {
		t.Fatalf("Expected start, got %v", err)
	}
	defer ae.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ae.IsEnabled() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ae.IsEnabled() {
		t.Fatal("Expected engine to go silent after the write failure")
	}
	if !ae.IsRunning() {
		t.Error("Expected silent engine to still report running")
	}
}

// TestBackendKindNames verifies log names and the out-of-range fallback
func TestBackendKindNames(t *testing.T) {
	if got := BackendPipeWire.String(); got != "pipewire" {
		t.Errorf("Expected pipewire, got %s", got)
	}
	if got := BackendKind(42).String(); got != "unknown" {
		t.Errorf("Expected unknown, got %s", got)
	}
}
