// Package main is the menyvecka command line tool. It scans menu-page text
// for a Swedish weekday mention and a week token and prints what it found.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"menyvecka/internal/config"
	"menyvecka/internal/logger"
	"menyvecka/internal/week"
	"menyvecka/internal/weekday"
)

func main() {
	textFlag := flag.String("text", "", "menu text to scan (reads stdin when empty)")
	dateFlag := flag.String("date", "", "reference date as YYYYMMDD (defaults to today)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	loc, err := cfg.Location()
	if err != nil {
		log.Error("failed to load timezone", slog.Any("error", err))
		os.Exit(1)
	}
	now := time.Now().In(loc)
	if *dateFlag != "" {
		now, err = time.ParseInLocation("20060102", *dateFlag, loc)
		if err != nil {
			log.Error("failed to parse -date", slog.Any("error", err))
			os.Exit(1)
		}
	}

	text := *textFlag
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Error("failed to read stdin", slog.Any("error", err))
			os.Exit(1)
		}
		text = string(data)
	}

	day := weekday.ExtractFromText(text)
	weekNum := week.ExtractWeekNumberAt(text, now)

	log.Debug("scanned menu text",
		slog.Int("bytes", len(text)),
		slog.String("weekday", day),
		slog.Int("week", weekNum),
	)

	if day == "" {
		fmt.Println("weekday: (none found)")
	} else if weekday.IsTodayOn(day, now) {
		fmt.Printf("weekday: %s (idag)\n", day)
	} else {
		fmt.Printf("weekday: %s\n", day)
	}
	fmt.Printf("week:    %d\n", weekNum)
	fmt.Printf("today:   %s\n", week.FormatDate(now))
}
