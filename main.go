package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/tcherry92/gameday-channels/controller"
	"github.com/tcherry92/gameday-channels/db"
	"github.com/tcherry92/gameday-channels/discord"
	"github.com/tcherry92/gameday-channels/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatal("DISCORD_TOKEN is required")
	}
	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("APP_ID is required")
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("error creating data dir: %v", err)
	}

	seasonFile := os.Getenv("NFL_2025_FILE")
	if seasonFile == "" {
		seasonFile = filepath.Join("data", "nfl_2025.json")
	}

	freeWeekLimit := 18 // free tier covers a full regular season
	if v := os.Getenv("FREE_WEEK_LIMIT"); v != "" {
		freeWeekLimit, err = strconv.Atoi(v)
		if err != nil {
			log.Fatalf("error parsing FREE_WEEK_LIMIT: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(filepath.Join(dataDir, "gameday.db"))
	if err != nil {
		log.Fatalf("cannot open DB: %v", err)
	}

	ctrl, err := controller.New(clock, db, seasonFile)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	bot, err := discord.New(discord.Config{
		Token:         token,
		AppID:         appID,
		DevGuildID:    os.Getenv("GUILD_ID"),
		ProSKUID:      os.Getenv("GUILD_PRO_SKU_ID"),
		FreeWeekLimit: freeWeekLimit,
	}, ctrl)
	if err != nil {
		log.Fatalf("error creating discord bot: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Connect the bot to the discord gateway
	wg.Add(1)
	bot.Run(shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()

	if err := db.Close(); err != nil {
		log.Printf("error closing DB: %v", err)
	}
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
