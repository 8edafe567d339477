// Command viewer opens a window and flies a free camera through an instanced grid of a textured OBJ model.
//
// Controls: W/A/S/D or the arrow keys move, Space and Left Shift rise and sink, dragging with the
// left mouse button looks around, the scroll wheel dollies and Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/config"
	"github.com/Carmen-Shannon/oxy-viewer/engine/instance"
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
	"github.com/Carmen-Shannon/oxy-viewer/engine/logger"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func init() {
	// GLFW and the wgpu surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile = flag.String("config", "viewer.yaml", "Configuration file path")
		modelFile  = flag.String("model", "", "OBJ model to display (overrides scene.model)")
		perRow     = flag.Int("instances", 0, "Instances per grid row (overrides scene.instances_per_row)")
		profile    = flag.Bool("profile", false, "Log frame statistics once per second")
		software   = flag.Bool("software", false, "Force the software fallback adapter")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *modelFile != "" {
		cfg.Scene.Model = *modelFile
	}
	if *perRow > 0 {
		cfg.Scene.InstancesPerRow = *perRow
	}
	if cfg.Scene.Model == "" {
		return errors.New("no model given: pass -model or set scene.model")
	}

	log, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	mdl, err := loader.NewLoader(loader.BackendTypeOBJ, loader.WithLogger(log)).Load(cfg.Scene.Model)
	if err != nil {
		return err
	}

	grid := instance.NewGrid(instance.WithLogger(log))
	instances := grid.Build(cfg.Scene.InstancesPerRow, cfg.Scene.InstanceSpacing)
	grid.Stop()

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	presentMode, err := renderer.ParsePresentMode(cfg.Renderer.PresentMode)
	if err != nil {
		return err
	}
	width, height := uint32(win.Width()), uint32(win.Height())
	rend, err := renderer.NewRenderer(win.SurfaceDescriptor(), width, height,
		renderer.WithClearColor(cfg.Renderer.ClearColor),
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(*software),
		renderer.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer rend.Release()

	if err := rend.UploadModel(mdl); err != nil {
		return fmt.Errorf("failed to upload model: %w", err)
	}
	if err := rend.UploadInstances(instances); err != nil {
		return fmt.Errorf("failed to upload instances: %w", err)
	}

	pos := cfg.Camera.Position
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(rend),
		engine.WithCamera(camera.NewCamera(
			camera.WithPosition(pos[0], pos[1], pos[2]),
			camera.WithYaw(mgl32.DegToRad(cfg.Camera.Yaw)),
			camera.WithPitch(mgl32.DegToRad(cfg.Camera.Pitch)),
		)),
		engine.WithProjection(camera.NewProjection(
			camera.WithFovY(mgl32.DegToRad(cfg.Camera.FovY)),
			camera.WithZNear(cfg.Camera.ZNear),
			camera.WithZFar(cfg.Camera.ZFar),
			camera.WithSize(width, height),
		)),
		engine.WithController(camera.NewCameraController(
			camera.WithMoveSpeed(cfg.Controller.MoveSpeed),
			camera.WithLookSensitivity(cfg.Controller.LookSensitivity),
			camera.WithScrollSensitivity(cfg.Controller.ScrollSensitivity),
		)),
		engine.WithProfiling(*profile),
		engine.WithLogger(log),
	)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		log.Info("shutdown signal received")
		eng.Quit()
	}()

	log.Info("viewer starting",
		zap.String("model", cfg.Scene.Model),
		zap.Int("instances", len(instances)),
		zap.Int("triangles", mdl.TriangleCount()),
	)
	eng.Run()
	return nil
}
