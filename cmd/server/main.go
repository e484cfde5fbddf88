package main

import (
	"flag"
	"os"

	"carlettos_chess/internal/httpx"
	"carlettos_chess/internal/logging"
)

func main() {
	addr := flag.String("addr", getenv("CCHESS_ADDR", ":8080"), "listen address")
	preset := flag.String("preset", getenv("CCHESS_PRESET", "full"), "starting board: classic, full or display")
	flag.Parse()

	srv, err := httpx.NewServer(*preset)
	if err != nil {
		logging.Fatal("server init", err, nil)
	}
	if err := srv.Listen(*addr); err != nil {
		logging.Fatal("server stopped", err, nil)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
