package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/ytget/spotify-streamer/internal/mockcatalog"
)

func main() {
	port := getenv("PORT", "3006")
	requireToken := flag.Bool("require-token", false, "reject catalog requests without a bearer token")
	flag.Parse()

	srv := mockcatalog.NewServer(mockcatalog.DefaultFixtures())
	srv.RequireToken(*requireToken)

	log.Printf("mock catalog listening on :%s", port)
	if err := http.ListenAndServe(":"+port, srv.Router()); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
