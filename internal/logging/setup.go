package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the standard logger at stderr, and at Logstash too when
// logstashAddr is set. The returned closer releases the Logstash connection.
func Setup(prefix, logstashAddr, service string) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		log.SetPrefix(prefix + " ")
	}

	if strings.TrimSpace(logstashAddr) == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}
	writer, err := NewLogstashWriter(logstashAddr, WithService(service))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("logstash disabled: %v", err)
		return nopCloser{}
	}
	log.SetOutput(io.MultiWriter(os.Stderr, writer))
	log.Printf("mirroring logs to logstash at %s", logstashAddr)
	return writer
}
