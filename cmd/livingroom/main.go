package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/leterax/go-livingroom/internal/openglhelper"
	"github.com/leterax/go-livingroom/pkg/camera"
	"github.com/leterax/go-livingroom/pkg/config"
	"github.com/leterax/go-livingroom/pkg/controls"
	"github.com/leterax/go-livingroom/pkg/render"
	"github.com/leterax/go-livingroom/pkg/scene"
)

// cliFlags holds the command line settings; the override flags only take
// effect when set explicitly
type cliFlags struct {
	level   logLevelFlag
	config  *string
	width   *int
	height  *int
	vsync   *bool
	program *string
	fan     *bool
	logFile *string
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{level: logLevelFlag{value: slog.LevelInfo}}
	fs.Var(&f.level, "loglevel", "set log level")
	f.config = fs.String("config", "", "Path to a YAML config file")
	f.width = fs.Int("width", 0, "Window width (overrides config)")
	f.height = fs.Int("height", 0, "Window height (overrides config)")
	f.vsync = fs.Bool("vsync", true, "Synchronise buffer swaps with the display (overrides config)")
	f.program = fs.String("program", "", "Shader program for the frame loop: scene or constant (overrides config)")
	f.fan = fs.Bool("fan", false, "Start with the fan switched on (overrides config)")
	f.logFile = fs.String("logfile", "", "Write logs to this file with rotation instead of the console")
	return f
}

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	flags := registerFlags(flag.CommandLine)
	flag.Parse()
	os.Exit(run(flag.CommandLine, flags))
}

// run returns the process exit status: 0 on a normal close, -1 on startup failure
func run(fs *flag.FlagSet, flags *cliFlags) int {
	setupLogging(flags.level.value, *flags.logFile)

	cfg, err := loadConfig(fs, flags)
	if err != nil {
		fmt.Println(err)
		return -1
	}
	slog.Info("Starting living room", "width", cfg.Window.Width, "height", cfg.Window.Height, "program", cfg.Render.Program)

	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		VSync:   cfg.Window.VSync,
		GLMajor: cfg.Window.GLMajor,
		GLMinor: cfg.Window.GLMinor,
	})
	if err != nil {
		fmt.Println(err)
		return -1
	}

	fan := scene.NewFan(cfg.Scene.FanStep, cfg.Scene.FanDegreesPerSecond)
	fan.SetOn(cfg.Scene.FanOn)
	state := controls.NewAppState(camera.NewController(cfg.CameraOptions()), fan)

	renderer, err := render.NewRenderer(window, state, controls.NewHandler(cfg.Controls.LegacyToggles), render.Options{
		Program:    cfg.Render.Program,
		ShaderDir:  cfg.Render.ShaderDir,
		ClearColor: mgl32.Vec4(cfg.Render.ClearColor),
		ApplyKnobs: cfg.Scene.ApplyKnobs,
	})
	if err != nil {
		window.Close()
		fmt.Println(err)
		return -1
	}

	renderer.Run()
	return 0
}

// loadConfig reads the optional config file and applies the flags set on fs on top
func loadConfig(fs *flag.FlagSet, flags *cliFlags) (config.Config, error) {
	cfg := config.Default()
	if *flags.config != "" {
		var err error
		cfg, err = config.Load(*flags.config)
		if err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *flags.width
		case "height":
			cfg.Window.Height = *flags.height
		case "vsync":
			cfg.Window.VSync = *flags.vsync
		case "program":
			cfg.Render.Program = *flags.program
		case "fan":
			cfg.Scene.FanOn = *flags.fan
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func setupLogging(level slog.Level, logFile string) {
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
