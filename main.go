package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/warpzone/assets"
	"github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/fonts"
	"github.com/automoto/warpzone/scenes"
	"github.com/automoto/warpzone/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

func NewGame(scene Scene, watcher *config.Watcher) *Game {
	return &Game{
		bounds:  image.Rectangle{},
		scene:   scene,
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	if g.watcher != nil {
		g.watcher.Drain(reloadTuning, func(err error) {
			log.Printf("[config] Warning: tuning watcher: %v", err)
		})
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func reloadTuning(path string) error {
	if err := config.ReloadTuning(path); err != nil {
		return err
	}
	log.Printf("[config] reloaded %s", path)
	return nil
}

// levelSource picks the embedded levels unless path names a file on disk
func levelSource(path string) (fs.FS, string) {
	if path == "" {
		return assets.LevelFS, config.Level.Default
	}
	if _, err := os.Stat(path); err == nil {
		return os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}
	return assets.LevelFS, path
}

func main() {
	debug := flag.Bool("debug", config.Debug.ShowColliders, "Draw collision outlines and zone labels")
	levelPath := flag.String("level", "", "TMX level to load (file on disk or path inside the embedded levels)")
	tuningPath := flag.String("tuning", "", "YAML tuning file applied over the defaults")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	panel := flag.Bool("panel", config.Debug.ShowPanel, "Show the warp panel at startup (toggle with F1)")
	flag.Parse()

	config.Debug.ShowColliders = *debug
	config.Debug.ShowPanel = *panel
	config.Debug.TuningPath = *tuningPath
	config.Debug.WatchTuning = *watch

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	var watcher *config.Watcher
	if config.Debug.TuningPath != "" && config.Debug.WatchTuning {
		w, err := config.NewWatcher(config.Debug.TuningPath)
		if err != nil {
			log.Printf("[config] Warning: could not watch %s: %v", config.Debug.TuningPath, err)
		} else {
			watcher = w
			defer func() { _ = watcher.Close() }()
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Persistence failures only cost the resume point
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	fsys, path := levelSource(*levelPath)
	scene, err := scenes.NewWarpScene(fsys, path)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Grid.TickRate)

	if err := ebiten.RunGame(NewGame(scene, watcher)); err != nil {
		log.Fatal(err)
	}
}
