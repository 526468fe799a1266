package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/vi-missile/parameter"
)

// candidate is a player binary and the flags that make it read raw s16le stereo from stdin
// The table order is the detection priority
type candidate struct {
	kind BackendKind
	bin  string
	args func(rate string) []string
}

var candidates = []candidate{
	{BackendPulse, "pacat", func(rate string) []string {
		return []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}
	}},
	{BackendPipeWire, "pw-cat", func(rate string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", func(rate string) []string {
		return []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}
	}},
	{BackendSoX, "play", func(rate string) []string {
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}
	}},
	{BackendFFplay, "ffplay", func(rate string) []string {
		return []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate,
			"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet"}
	}},
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// DetectBackend returns the first player binary found on PATH
// FreeBSD falls back to writing /dev/dsp
func DetectBackend() (*Backend, error) {
	rate := strconv.Itoa(parameter.AudioSampleRate)
	for _, c := range candidates {
		path, err := lookPath(c.bin)
		if err != nil {
			continue
		}
		return &Backend{Kind: c.kind, Name: c.bin, Path: path, Args: c.args(rate)}, nil
	}

	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &Backend{Kind: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
