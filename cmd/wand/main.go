package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	wandcmd "github.com/NathanSnail/rand-wand/internal/cmd/wand"
)

func main() {
	cfg, err := wandcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WAND] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := wandcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
