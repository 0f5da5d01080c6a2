package app

import (
	"fmt"
	"os"
	"time"

	"github.com/bvisness/keycast/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxEventsPerFrame bounds how many queued events one frame may process
// before drawing.
const maxEventsPerFrame = 256

func Main() {
	s, err := LoadSettings(GetSettingsPath())
	if err != nil {
		logger.Warnf("using default settings: %v", err)
	}
	if err := SetupLogging(s.LogLevel); err != nil {
		logger.Warn(err)
	}
	CurrentSettings = s

	cfg, err := s.CoreConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowTransparent | rl.FlagWindowUndecorated | rl.FlagWindowTopmost | rl.FlagWindowMousePassthrough)
	rl.InitWindow(1, 1, "keycast")
	defer rl.CloseWindow()

	monitor := rl.GetCurrentMonitor()
	rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
	rl.SetWindowPosition(0, 0)
	// Frame pacing doubles as the presenter's idle pause.
	rl.SetTargetFPS(int32(time.Second / cfg.IdlePause))

	skin := DefaultSkin()
	renderer := NewRenderer(skin, float64(s.IconX), float64(s.IconY), RaylibMeasure(skin.FontSize))

	source := StartHookSource(renderer.IconRect, 1024)
	defer source.Close()

	cfg.Pointer = func() (float64, float64) {
		pos := rl.GetMousePosition()
		return float64(pos.X), float64(pos.Y)
	}
	presenter := core.NewPresenter(cfg, source, renderer)
	logger.Infof("overlay running; click the mouse icon at %d,%d to quit", s.IconX, s.IconY)

	for !rl.WindowShouldClose() && !renderer.Quit() {
		frame(presenter, renderer)
	}
}

func frame(p *core.Presenter, r *Renderer) {
	defer recoverFrame("frame")

	p.Drain(maxEventsPerFrame)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Blank)
	r.Draw()
	rl.EndDrawing()
}
