package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"os"
	"os/signal"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	_ "lifegrid/internal/seeders"
	"lifegrid/internal/sim"
	"lifegrid/internal/statefile"
)

func main() {
	cfg := app.NewConfig()
	gens := flag.Int("gens", 100, "generations to simulate")
	out := flag.String("out", "", "directory for the final board (default: -save-dir)")
	snapshot := flag.String("png", "", "also write the final frame to this PNG file")
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	alive, dead, err := cfg.Colors()
	if err != nil {
		log.Fatal(err)
	}

	state, err := app.LoadState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	px := state.Config.PixelSize()
	fb := render.NewFramebuffer(px.W, px.H)
	ctrl := sim.New(state, fb)
	ctrl.SetColors(alive, dead)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := ctrl.Run(ctx, sim.NewQuitAfter(*gens)); err != nil {
		log.Printf("interrupted: %v", err)
	}
	st := ctrl.Status()
	log.Printf("generation %d population %d in %s", st.Generation, st.Population, time.Since(start).Round(time.Millisecond))

	dir := *out
	if dir == "" {
		dir = cfg.SaveDir
	}
	path, err := statefile.NewDir(dir).Save(ctrl.State().Grid, ctrl.State().Config)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s", path)

	if *snapshot != "" {
		if err := writePNG(*snapshot, fb); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *snapshot)
	}
}

func writePNG(path string, fb *render.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
