package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// BackendKind identifies how samples leave the process
type BackendKind uint8

const (
	BackendPulse BackendKind = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS // Direct device write, no player process
)

var backendNames = [...]string{"pulse", "pipewire", "alsa", "sox", "ffplay", "oss"}

func (k BackendKind) String() string {
	if int(k) < len(backendNames) {
		return backendNames[k]
	}
	return "unknown"
}

// Backend is a detected player binary, or the OSS device
type Backend struct {
	Kind BackendKind
	Name string
	Path string
	Args []string
}

var (
	ErrNoAudioBackend = errors.New("audio: no player binary or device found")
	ErrPipeClosed     = errors.New("audio: output closed")
	ErrRunning        = errors.New("audio: engine already started")
)

// output is an opened backend
// exited delivers the player process result, it is nil for devices
type output struct {
	w      io.WriteCloser
	cmd    *exec.Cmd
	exited chan error
}

func openOutput(b *Backend) (*output, error) {
	if b.Kind == BackendOSS {
		f, err := os.OpenFile(b.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", b.Path, err)
		}
		return &output{w: f}, nil
	}

	cmd := exec.Command(b.Path, b.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s stdin: %w", b.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start %s: %w", b.Name, err)
	}
	o := &output{w: stdin, cmd: cmd, exited: make(chan error, 1)}
	go func() { o.exited <- cmd.Wait() }()
	return o, nil
}

func (o *output) close() {
	_ = o.w.Close()
	if o.cmd != nil && o.cmd.Process != nil {
		_ = o.cmd.Process.Kill()
	}
}
