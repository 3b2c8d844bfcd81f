// Package notify streams per-tick snapshots to external display clients
// over WebSocket. It is one of the collaborators that read engine state;
// nothing here is consulted by the dynamics loop.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/san-kum/moldyn/internal/engine"
)

// Broadcaster fans per-tick snapshots out to all connected WebSocket
// clients. It implements engine.Observer; snapshots are queued and
// broadcast from a dedicated goroutine so a slow client never stalls a
// tick. When the queue is full the snapshot is dropped — clients always
// want the latest state, not a backlog.
type Broadcaster struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	events   chan engine.Snapshot
	done     chan struct{}
	wg       sync.WaitGroup
	closed   bool
}

func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		clients: make(map[*websocket.Conn]bool),
		events:  make(chan engine.Snapshot, 64),
		done:    make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// OnTick queues a snapshot for broadcast, dropping it if the queue is
// full.
func (b *Broadcaster) OnTick(snap engine.Snapshot) {
	select {
	case b.events <- snap:
	default:
	}
}

// Handler upgrades an HTTP request to a WebSocket subscription.
func (b *Broadcaster) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			conn.Close()
			return
		}
		b.clients[conn] = true
		b.mu.Unlock()

		// Reader loop only detects client departure; inbound
		// messages are discarded.
		go func() {
			defer b.dropClient(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close disconnects all clients and stops the broadcast goroutine.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for conn := range b.clients {
		conn.Close()
	}
	b.clients = make(map[*websocket.Conn]bool)
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
	return nil
}

func (b *Broadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return
		case snap := <-b.events:
			b.broadcast(snap)
		}
	}
}

func (b *Broadcaster) broadcast(snap engine.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}

	b.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.dropClient(conn)
		}
	}
}

func (b *Broadcaster) dropClient(conn *websocket.Conn) {
	b.mu.Lock()
	if b.clients[conn] {
		delete(b.clients, conn)
		conn.Close()
	}
	b.mu.Unlock()
}
