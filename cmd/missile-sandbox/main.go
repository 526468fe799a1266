package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/audio"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/config"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/journal"
	"github.com/lixenwraith/vi-missile/logging"
	"github.com/lixenwraith/vi-missile/render"
	"github.com/lixenwraith/vi-missile/sandbox"
	"github.com/lixenwraith/vi-missile/status"
)

var (
	configFlag    = flag.String("config", "", "Config file (toml, yaml or json)")
	ticksFlag     = flag.Int("ticks", 0, "Run headless for this many ticks and exit")
	kindFlag      = flag.String("kind", "fireball", "Initial spell kind")
	levelFlag     = flag.Int("spell-level", 5, "Spell level of cast missiles")
	logFileFlag   = flag.String("log", "", "Log file for interactive mode")
	noAudioFlag   = flag.Bool("no-audio", false, "Disable sound")
	listKindsFlag = flag.Bool("kinds", false, "List spell kinds and exit")
	dumpFlag      = flag.Bool("dump", false, "Dump the final missile registry after a headless run")
)

// command is a cast request from the input goroutine, offset from the player
type command struct {
	kind   component.Kind
	offset core.Displacement
	clear  bool
}

func main() {
	flag.Parse()

	if *listKindsFlag {
		for k := component.Kind(0); k < component.KindCount; k++ {
			fmt.Printf("%3d  %s\n", k, k)
		}
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	kind, ok := component.KindByName(*kindFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown kind %q, see -kinds\n", *kindFlag)
		os.Exit(1)
	}

	if *ticksFlag > 0 {
		if err := runHeadless(cfg, kind, *ticksFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Sandbox: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runInteractive(cfg, kind); err != nil {
		fmt.Fprintf(os.Stderr, "Sandbox: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless casts kind in every direction once and steps the simulation
func runHeadless(cfg config.Config, kind component.Kind, ticks int) error {
	log := logging.New(logging.Config{Level: cfg.Log.Level, Console: cfg.Log.Console, Out: os.Stderr})

	s, err := sandbox.New(cfg, nil, log)
	if err != nil {
		return err
	}
	defer s.Close()

	p := s.Player()
	for d := core.Direction(0); d < core.DirectionCount; d++ {
		off := d.Offset()
		s.Cast(kind, core.Point{X: p.Tile.X + off.DX*6, Y: p.Tile.Y + off.DY*6}, *levelFlag)
	}
	for i := 0; i < ticks; i++ {
		s.Step()
	}
	for _, frame := range s.Outbox.Take() {
		log.Debug().Int("bytes", len(frame)).Msg("Network command")
	}

	if *dumpFlag {
		journal.Dump(os.Stdout, sandbox.Snapshot(s.Missiles.Missiles()))
	}

	log.Info().
		Int64("tick", s.World.Tick).
		Int("live", s.Missiles.Count()).
		Int("reactions", len(s.Reactions.Log)).
		Msg("Headless run complete")
	return s.JournalErr()
}

func runInteractive(cfg config.Config, kind component.Kind) (err error) {
	var out io.Writer = io.Discard
	if *logFileFlag != "" {
		f, ferr := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		out = f
	}
	log := logging.New(logging.Config{Level: cfg.Log.Level, Out: out})

	var sound engine.Sound
	if cfg.Audio.Enabled && !*noAudioFlag {
		ae := audio.NewAudioEngine(audio.DefaultAudioConfig(), log)
		if aerr := ae.Start(); aerr != nil {
			log.Warn().Err(aerr).Msg("Continuing without audio")
		} else {
			defer ae.Stop()
			sound = ae
		}
	}

	s, err := sandbox.New(cfg, sound, log)
	if err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	commands := make(chan command, 16)
	renderer := render.NewRenderer(screen)
	var cursor atomic.Pointer[core.Displacement]
	cursor.Store(&core.Displacement{DX: 5})

	s.Scheduler.After = chain(s.Scheduler.After, func(uint64) {
		applyCommands(s, commands)
		f := s.Frame()
		renderer.Draw(f)
		drawCursor(screen, renderer.Origin(f), f.Focus, *cursor.Load())
		screen.Show()
	})

	go handleInput(ctx, cancel, screen, s, commands, &cursor, kind, log)

	if err := s.Scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return s.JournalErr()
}

// applyCommands turns pending input into queued events for the next tick
func applyCommands(s *sandbox.Session, commands <-chan command) {
	for {
		select {
		case c := <-commands:
			if c.clear {
				s.ClearLevel()
				continue
			}
			p := s.Player()
			s.Cast(c.kind, core.Point{X: p.Tile.X + c.offset.DX, Y: p.Tile.Y + c.offset.DY}, *levelFlag)
		default:
			return
		}
	}
}

// chain runs a then b
func chain(a, b func(uint64)) func(uint64) {
	if a == nil {
		return b
	}
	return func(t uint64) {
		a(t)
		b(t)
	}
}

// drawCursor marks the target tile relative to the focus
func drawCursor(screen tcell.Screen, origin, focus core.Point, off core.Displacement) {
	x := focus.X + off.DX - origin.X
	y := focus.Y + off.DY - origin.Y
	_, sh := screen.Size()
	if y >= sh-1 {
		return
	}
	screen.SetContent(x, y, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
}

// handleInput translates keys into commands, the world is only touched by the scheduler goroutine
func handleInput(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, s *sandbox.Session,
	commands chan<- command, cursor *atomic.Pointer[core.Displacement], kind component.Kind, log zerolog.Logger) {
	cur := *cursor.Load()
	selected := s.World.Status.Labels.Get(status.SelectedKind)
	selected.Store(kind.String())
	for ctx.Err() == nil {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			cancel()
			return
		case tcell.KeyUp:
			cur.DY--
		case tcell.KeyDown:
			cur.DY++
		case tcell.KeyLeft:
			cur.DX--
		case tcell.KeyRight:
			cur.DX++
		case tcell.KeyTab:
			kind = (kind + 1) % component.KindCount
			log.Debug().Str("kind", kind.String()).Msg("Selected kind")
		case tcell.KeyBacktab:
			kind = (kind + component.KindCount - 1) % component.KindCount
		case tcell.KeyRune:
			switch key.Rune() {
			case 'q':
				cancel()
				return
			case ' ', 'f':
				sendCommand(commands, command{kind: kind, offset: cur}, log)
			case 'c':
				sendCommand(commands, command{clear: true}, log)
			case 'p':
				if s.Scheduler.IsPaused() {
					s.Scheduler.Resume()
				} else {
					s.Scheduler.Pause()
				}
			}
		}
		cursor.Store(&cur)
		selected.Store(kind.String())
	}
}

func sendCommand(commands chan<- command, c command, log zerolog.Logger) {
	select {
	case commands <- c:
	default:
		log.Warn().Msg("Command queue full")
	}
}
