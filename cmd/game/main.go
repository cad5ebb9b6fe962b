// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"undefended/internal/app"
	"undefended/internal/audio"
	"undefended/internal/config"
	"undefended/internal/defs"
	"undefended/internal/save"
	"undefended/internal/state"
)

func main() {
	// --- Флаги командной строки ---
	dataDir := flag.String("data", "", "Directory with level.yaml, waves.yaml and towers.yaml (embedded data if empty)")
	seed := flag.Int64("seed", 0, "Seed for the starfield, 0 means current time")
	skipMenu := flag.Bool("skip-menu", false, "Start directly in the game state for development")
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	mute := flag.Bool("mute", false, "Disable audio output")
	flag.Parse()

	// --- Загрузка определений ---
	lib, err := defs.LoadAll(*dataDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// --- Звук и сохранения ---
	audioManager := audio.NewManager()
	if !*mute {
		if err := audioManager.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	defer audioManager.Close()
	saveManager := save.Open()

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	shared := state.NewShared(app.NewGame(lib), audioManager, saveManager)
	shared.Seed = *seed
	shared.SkipMenu = *skipMenu
	defer shared.Models.Cleanup()

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, shared))

	lastUpdateTime := time.Now()

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Update(deltaTime)

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}
}
