package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"staffing-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is cleaned up even when the
// run is interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received interrupt signal, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
