package main

import (
	"errors"
	"log"

	"github.com/farxc/bolsa_atleta_wrapper/internal/db"
	"github.com/farxc/bolsa_atleta_wrapper/internal/env"
	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		dbPath: env.GetString("DB_PATH", "bolsa_atleta.db"),
		topN:   env.GetInt("TOP_N", 10),
	}

	guardian, err := db.Open(cfg.dbPath)
	if err != nil {
		if errors.Is(err, db.ErrStoreNotFound) {
			log.Fatalf("database file %s does not exist, run the ETL first", cfg.dbPath)
		}
		log.Panic(err)
	}
	defer guardian.Close()
	log.Printf("Database handle established on %s", cfg.dbPath)

	storage := store.NewStorage(guardian)

	app := &application{
		config: cfg,
		store:  *storage,
	}

	mux := app.mount()

	log.Fatal(app.run(mux))
}
