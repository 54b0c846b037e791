package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"

	anthropicclient "tldrbot/clients/anthropic"
	discordclient "tldrbot/clients/discord"
	"tldrbot/config"
	"tldrbot/handlers"
	"tldrbot/services/messages"
	"tldrbot/services/summarizer"
	"tldrbot/usecases/tldr"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Create the shared Discord session
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Initialize clients
	discordClient := discordclient.NewDiscordClient(session)
	botUser, err := discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to validate Discord credentials: %w", err)
	}
	log.Printf("✅ Authenticated as bot user %s (ID: %s)", botUser.Username, botUser.ID)

	summarizerClient := anthropicclient.NewAnthropicClient(
		cfg.AnthropicAPIKey,
		cfg.SummarizerConfig.Model,
		cfg.SummarizerConfig.MaxOutputTokens,
		cfg.SummarizerConfig.Temperature,
		cfg.SummarizerConfig.RequestTimeout,
	)

	// Initialize services and the pipeline
	messagesService := messages.NewMessagesService(discordClient)
	summarizerService := summarizer.NewSummarizerService(
		summarizerClient,
		cfg.SummarizerConfig.PromptCharBudget,
	)
	tldrUseCase := tldr.NewTLDRUseCase(messagesService, summarizerService)

	discordHandler := handlers.NewDiscordEventsHandler(session, tldrUseCase, cfg.InvocationTimeout)
	if err := discordHandler.StartBot(); err != nil {
		return err
	}
	defer discordHandler.StopBot()

	// Health check endpoint for deployment probes
	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Health endpoint listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
