package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sprachey/Blogspot/config"
	"github.com/Sprachey/Blogspot/database"
	"github.com/Sprachey/Blogspot/site"
)

func main() {
	_ = database.GetDB() // force database initialization
	r := site.NewRouter()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	addr := config.Get().Addr
	go func() {
		log.Printf("Running on http://localhost%s", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	// Close the database connection
	database.CloseDB()
}
