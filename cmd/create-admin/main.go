package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/database"
	"github.com/TauhidOSD/yoga-master-server/internal/logger"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	govalidator "github.com/go-playground/validator/v10"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := repository.NewUserRepository(client.Database(cfg.MongoDatabase))

	// ─── CLI Input ─────────────────────────────────────────────────────
	// Prompts are only printed for an interactive terminal so the command
	// can also be fed from a pipe.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	reader := bufio.NewReader(os.Stdin)

	if interactive {
		fmt.Println("=== Create Admin User ===")
	}

	name := prompt(reader, interactive, "Enter Name: ")
	if name == "" {
		fmt.Println("Error: Name is required")
		os.Exit(1)
	}

	email := prompt(reader, interactive, "Enter Email: ")
	if err := govalidator.New().Var(email, "required,email"); err != nil {
		fmt.Println("Error: a valid email is required")
		os.Exit(1)
	}

	ack, err := userRepo.UpsertAdmin(ctx, name, email)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	if ack.UpsertedCount > 0 {
		fmt.Printf("Admin %s created.\n", email)
	} else {
		fmt.Printf("User %s promoted to admin.\n", email)
	}
}

func prompt(r *bufio.Reader, interactive bool, label string) string {
	if interactive {
		fmt.Print(label)
	}
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
