// Command moodmatch-agent runs the MoodMatch A2A recommendation agent.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/book"
	"github.com/moodmatch/moodmatch-agent/internal/conversation"
	"github.com/moodmatch/moodmatch-agent/internal/db"
	"github.com/moodmatch/moodmatch-agent/internal/movie"
	"github.com/moodmatch/moodmatch-agent/internal/music"
	"github.com/moodmatch/moodmatch-agent/internal/recommend"
	"github.com/moodmatch/moodmatch-agent/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	ctx := context.Background()

	// The mood analyzer is required; providers degrade individually.
	analyzerCfg, err := analyzer.LoadConfig()
	if err != nil {
		return err
	}
	moodAnalyzer := analyzer.New(analyzerCfg)

	var musicProvider recommend.MusicProvider
	musicCfg, err := music.LoadConfig()
	switch {
	case err == nil:
		svc, err := music.NewService(ctx, musicCfg)
		if err != nil {
			return fmt.Errorf("creating music service: %w", err)
		}
		musicProvider = svc
	case errors.Is(err, music.ErrMissingClientID), errors.Is(err, music.ErrMissingClientSecret):
		log.Printf("music provider disabled: %v", err)
	default:
		return err
	}

	var movieProvider recommend.MovieProvider
	movieCfg, err := movie.LoadConfig()
	switch {
	case err == nil:
		movieProvider = movie.NewService(movieCfg)
	case errors.Is(err, movie.ErrMissingAPIKey):
		log.Printf("movie provider disabled: %v", err)
	default:
		return err
	}

	bookProvider := book.NewService(book.LoadConfig())

	recommender := recommend.NewService(musicProvider, movieProvider, bookProvider)

	var database *db.DB
	var recorder a2a.TaskRecorder
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err = db.New(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("connecting database: %w", err)
		}
		defer database.Close()
		recorder = database
		log.Println("task persistence: postgres")
	}

	var history a2a.HistoryStore
	switch {
	case os.Getenv("REDIS_URL") != "":
		store, err := conversation.NewRedisStoreFromURL(ctx, os.Getenv("REDIS_URL"))
		if err != nil {
			return fmt.Errorf("connecting conversation store: %w", err)
		}
		defer store.Close()
		history = store
		log.Println("conversation store: redis")
	case database != nil:
		history = conversation.NewPostgresStore(database)
		log.Println("conversation store: postgres")
	default:
		history = conversation.NewMemoryStore()
		log.Println("conversation store: memory")
	}

	agent := a2a.NewAgent(moodAnalyzer, recommender, history, recorder)

	addr := web.DefaultAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = "0.0.0.0:" + port
	}

	var stats web.StatsSource
	if database != nil {
		stats = database.Recommendations()
	}

	server := web.NewServer(web.ServerConfig{
		Addr:  addr,
		Agent: agent,
		Stats: stats,
	})

	return server.Run()
}
