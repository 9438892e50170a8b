package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
	"github.com/farxc/bolsa_atleta_wrapper/internal/ingest"
	"github.com/farxc/bolsa_atleta_wrapper/internal/logger"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

func createFileIfNotExist(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		return file.Close()
	}
	return nil
}

func main() {
	const component = "Main"

	csvPathPtr := flag.String("csv", "bolsa_atleta.csv", "Path to the source CSV file")
	dbPathPtr := flag.String("db", "bolsa_atleta.db", "Path to the SQLite database file")
	logLevelPtr := flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	appLogger := logger.New(*logLevelPtr)

	// Configure log output format
	log.SetFlags(0) // Remove default timestamp since we add our own

	starting_time := time.Now()
	appLogger.Info(component, "Application starting: startTime=%s", starting_time.Format(time.RFC3339))

	if err := createFileIfNotExist(*dbPathPtr); err != nil {
		appLogger.Fatal(component, "Failed to create database file: path=%s error=%v", *dbPathPtr, err)
		return
	}

	guardian, err := db.Open(*dbPathPtr)
	if err != nil {
		appLogger.Fatal(component, "Database open failed: error=%v", err)
		return
	}
	defer guardian.Close()
	appLogger.Info(component, "Database handle established: path=%s", *dbPathPtr)

	storage := store.NewStorage(guardian)
	ctx := context.Background()

	if err := storage.Ingest.Migrate(ctx); err != nil {
		appLogger.Fatal(component, "Schema migration failed: error=%v", err)
		return
	}

	df, err := ingest.OpenFileAndDecode(*csvPathPtr)
	if err != nil {
		appLogger.Fatal(component, "Failed to read CSV: path=%s error=%v", *csvPathPtr, err)
		return
	}
	appLogger.Info(component, "CSV decoded: path=%s rows=%d", *csvPathPtr, df.Nrow())

	loader := ingest.NewLoader(storage, appLogger)
	loaded, err := loader.Load(ctx, df)
	if err != nil {
		appLogger.Fatal(component, "Data load failed: error=%v", err)
		return
	}

	timeTaken := time.Since(starting_time)
	appLogger.Info(component, "Application completed successfully: rowsLoaded=%d duration=%.2f seconds", loaded, timeTaken.Seconds())
}
