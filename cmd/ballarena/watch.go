package main

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/audio"
	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/engine"
	"github.com/lixenwraith/ballarena/parameter"
	"github.com/lixenwraith/ballarena/registry"
	"github.com/lixenwraith/ballarena/viewer"
	"github.com/lixenwraith/ballarena/vmath"
)

// runWatch plays one match in real time on the terminal until it ends or the user quits
func runWatch(ctx context.Context, cfg *config.Config, reg *registry.Registry, left, right []string, seed uint64, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	sink := audio.NewSink(audio.ConfigFromEnv(), log)
	if err := sink.Start(); err != nil {
		log.WithError(err).Warn("continuing without audio")
	}
	defer sink.Close()

	view := viewer.New(screen)
	m, err := engine.NewMatch(cfg, reg, left, right, vmath.NewFastRand(matchSeed(seed, 0)),
		engine.WithLogger(log), engine.WithVisual(view), engine.WithAudio(sink))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case keys <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-keys:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if isQuit(ev) {
						cancel()
						return
					}
					if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
						sink.ToggleMute()
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		}
	}()

	res, err := m.Play(ctx, engine.TickInterval(parameter.MatchTickRate), view.Draw)
	if err != nil {
		if ctx.Err() != nil {
			// User quit before the match ended
			return nil
		}
		return err
	}
	log.WithFields(logrus.Fields{
		"outcome": res.Outcome.String(),
		"frames":  res.Frames,
	}).Info("watched match finished")

	// Hold the final frame until the user quits
	<-ctx.Done()
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
