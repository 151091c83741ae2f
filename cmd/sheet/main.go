package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sheet-engine/internal/config"
	"github.com/KirkDiggler/sheet-engine/internal/repositories/sheets"
	sheetsvc "github.com/KirkDiggler/sheet-engine/internal/services/sheet"
)

var rootCmd = &cobra.Command{
	Use:          "sheet",
	Short:        "D&D 3.5e character sheet recompute engine",
	Long:         "Keeps the derived fields of YAML character sheets (ability modifiers, skill totals, attack bonuses, carrying capacity) consistent with their hand-entered values.",
	SilenceUsage: true,
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	rootCmd.AddCommand(validateCmd, recomputeCmd, applyCmd, saveCmd, getCmd, listCmd, deleteCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds a service without storage, enough for local file work.
func newService() sheetsvc.Service {
	return sheetsvc.NewService(&sheetsvc.ServiceConfig{})
}

// newStoreService builds a service backed by Redis per the environment.
func newStoreService() (sheetsvc.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cleanup := func() {
		_ = client.Close()
	}

	svc := sheetsvc.NewService(&sheetsvc.ServiceConfig{
		Repository: sheets.NewRedis(client),
	})
	return svc, cleanup, nil
}
