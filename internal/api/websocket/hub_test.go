package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubBroadcastFansOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := &Client{hub: hub, send: make(chan []byte, 1)}
	b := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- a
	hub.register <- b

	hub.Broadcast([]byte("frame"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "frame" {
				t.Errorf("msg = %q", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("send channel still open after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount = %d", hub.ClientCount())
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{hub: hub, send: make(chan []byte)} // unbuffered, never read
	hub.register <- slow

	hub.Broadcast([]byte("one"))

	// The slow client's channel gets closed rather than blocking the hub.
	select {
	case _, ok := <-slow.send:
		if ok {
			t.Fatal("expected closed channel for slow client")
		}
	case <-time.After(time.Second):
		t.Fatal("hub blocked on slow client")
	}
}

func TestLiveGamesEndToEnd(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := NewServer(hub)
	ts := httptest.NewServer(http.HandlerFunc(srv.handleLiveGames))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Registration races the broadcast; wait for the hub to see the client.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	hub.Broadcast([]byte(`{"type": "gameUpdate"}`))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != `{"type": "gameUpdate"}` {
		t.Errorf("msg = %q", msg)
	}
}
