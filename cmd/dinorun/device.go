package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/device"
)

var (
	flagDeviceAddr string
	flagHistory    int
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Run a stand-in for the paired device",
	Long: `Start an HTTP server that accepts the moves the game forwards.

POST /move with direction=l|r|w records a move; anything else gets 400.
GET /moves returns the recorded moves as JSON.

Point notify.url at this server to play without the hardware:

  dinorun device --addr :8080
  # configs/dinorun.yaml: notify.url: http://localhost:8080/move`,
	Args: cobra.NoArgs,
	RunE: runDevice,
}

func init() {
	deviceCmd.Flags().StringVar(&flagDeviceAddr, "addr", ":8080", "Listen address (host:port)")
	deviceCmd.Flags().IntVar(&flagHistory, "history", device.DefaultHistory, "Number of moves to keep")
}

func runDevice(_ *cobra.Command, _ []string) error {
	out, closeLog, err := openLogOutput(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if !flagDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := device.NewServer(newLogger(out, "device"), flagHistory)
	if err := srv.ListenAndServe(flagDeviceAddr); err != nil {
		return fmt.Errorf("device server: %w", err)
	}
	return nil
}
