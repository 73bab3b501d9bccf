package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain makes sure the shared container is purged even when interrupted
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("interrupted, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

func TestFactorySetProducesUniqueUsers(t *testing.T) {
	fs := NewFactorySet()
	a, b := fs.User.Create(), fs.User.Create()
	if a.ID == b.ID || a.Email == b.Email {
		t.Fatalf("factory returned duplicate users: %s %s", a.Email, b.Email)
	}
}
