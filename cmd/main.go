package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/telebot.v3"

	"compounding-bot/internal/bot"
	"compounding-bot/internal/config"
	"compounding-bot/internal/logger"
	"compounding-bot/internal/reminder"
	"compounding-bot/internal/storage"
	"compounding-bot/internal/tracker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}
	appLogger := logger.New(cfg.LogLevel)

	storageInstance := storage.NewStorage(cfg.DataFile, appLogger)
	trk := tracker.New(storageInstance, cfg.Location)

	botSettings := telebot.Settings{
		Token:  cfg.BotToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	botAPI, err := telebot.NewBot(botSettings)
	if err != nil {
		appLogger.Fatalf("error creating bot instance: %v", err)
	}

	bot.RegisterHandlers(botAPI, storageInstance, trk, cfg, appLogger)

	scheduler := reminder.NewScheduler(botAPI, storageInstance, appLogger, cfg.Location, cfg.ReminderHour, cfg.ReminderMinute)
	if err := scheduler.Start(); err != nil {
		appLogger.Fatalf("error starting reminder scheduler: %v", err)
	}
	defer scheduler.Stop()

	appLogger.Info("bot start")
	botAPI.Start()
}
