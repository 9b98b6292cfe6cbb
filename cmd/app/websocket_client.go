package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vestalumina/vls-api/internal/api/dto"
)

// Tails the live action log as an admin.
func main() {
	host := flag.String("host", "localhost:10000", "API host")
	version := flag.String("version", "v2", "API version path segment")
	actionType := flag.String("type", "", "only show entries of this action type")
	actor := flag.String("actor", "", "only show entries by this actor email")
	raw := flag.Bool("json", false, "print entries as received")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-host localhost:10000] [-type create_tenant] [-actor email] [-json] <ID_TOKEN>")
	}

	url := fmt.Sprintf("ws://%s/api/%s/action-log/stream", *host, *version)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))

	log.Printf("Connecting to %s...", url)
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("Failed to connect: %v (HTTP %d)", err, resp.StatusCode)
		}
		log.Fatal("Failed to connect: ", err)
	}
	defer conn.Close()
	if resp.Header.Get("X-API-Deprecated") == "true" {
		log.Printf("Warning: API %s is deprecated, sunset %s", *version, resp.Header.Get("X-API-Sunset-Date"))
	}

	filter := entryFilter{ActionType: *actionType, ActorEmail: *actor}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.Println("Read error:", err)
				}
				return
			}

			var entry dto.ActionLogResponse
			if err := json.Unmarshal(message, &entry); err != nil {
				log.Println("Skipping malformed entry:", err)
				continue
			}
			if !filter.matches(&entry) {
				continue
			}
			if *raw {
				fmt.Println(string(message))
			} else {
				fmt.Println(formatEntry(&entry))
			}
		}
	}()

	log.Println("Connected. Waiting for action log entries...")
	select {
	case <-done:
	case <-ctx.Done():
		log.Println("Disconnecting...")
		if err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")); err != nil {
			log.Println("Write close:", err)
			return
		}
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
