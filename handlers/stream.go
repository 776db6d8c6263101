package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/realtime"
)

// Collections exposed to live clients. The per-user mirror is not
// streamable; clients read their own document.
var streamableCollections = map[string]bool{
	"products":   true,
	"categories": true,
	"brands":     true,
	"orders":     true,
	"discounts":  true,
	"blogs":      true,
}

// Most recent subscriber per collection, kept for the health endpoint.
var (
	streamMu   sync.Mutex
	streamSubs = map[string]*realtime.Subscriber{}
)

// StreamCollection serves full-collection snapshots over SSE. Each
// event supersedes the previous one; a reconnecting client just starts
// over from a fresh initial snapshot.
func StreamCollection(c echo.Context) error {
	name := c.Param("collection")
	if !streamableCollections[name] {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
	}

	sub := realtime.NewSubscriber(database.DB.Collection(name))
	streamMu.Lock()
	streamSubs[name] = sub
	streamMu.Unlock()
	snapshots, err := sub.Watch(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to open stream"})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for snap := range snapshots {
		payload, err := json.Marshal(snap)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return nil
		}
		resp.Flush()
	}

	return nil
}

// StreamHealth reports the state of the most recent stream opened on a
// collection. A collection nobody has streamed yet reports an idle
// zero state.
func StreamHealth(c echo.Context) error {
	name := c.Param("collection")
	if !streamableCollections[name] {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown collection"})
	}

	streamMu.Lock()
	sub := streamSubs[name]
	streamMu.Unlock()

	if sub == nil {
		return c.JSON(http.StatusOK, realtime.Health{})
	}
	return c.JSON(http.StatusOK, sub.GetHealth())
}
