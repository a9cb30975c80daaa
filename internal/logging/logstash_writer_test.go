package logging

import (
	"bufio"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"
)

func TestLogstashWriterFramesLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}
	defer ln.Close()

	lines := make(chan string, 4)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	w, err := NewLogstashWriter(ln.Addr().String(), WithService("focotour-test"))
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte("2025/10/20 18:00:00 server started\n")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if _, err := w.Write([]byte(`api 2025/10/20 {"method":"GET","status":200}` + "\n")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	first := readLine(t, lines)
	var env map[string]string
	if err := json.Unmarshal([]byte(first), &env); err != nil {
		t.Fatalf("expected JSON envelope, got %q", first)
	}
	if env["service"] != "focotour-test" || !strings.Contains(env["message"], "server started") || env["@timestamp"] == "" {
		t.Fatalf("unexpected envelope %v", env)
	}

	second := readLine(t, lines)
	if second != `{"method":"GET","status":200}` {
		t.Fatalf("expected JSON line passed through, got %q", second)
	}
}

func readLine(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for logstash line")
		return ""
	}
}

func TestLogstashWriterDropsWhileUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewLogstashWriter(addr, WithDialTimeout(50*time.Millisecond), WithRetryInterval(time.Minute))
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	n, err := w.Write([]byte("lost line"))
	if err != nil || n != len("lost line") {
		t.Fatalf("expected silent drop, got %d %v", n, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := w.Write([]byte("after close")); err == nil {
		t.Fatalf("expected error after close")
	}
}

func TestNewLogstashWriterRequiresAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  "); err == nil {
		t.Fatalf("expected error for empty address")
	}
}
