package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToastService_LastWriteWins(t *testing.T) {
	s := NewToastService(nil)
	defer s.Stop()

	s.Post("Threads failed to load.")
	s.Post("Sync completed.")

	// A new toast overwrites the unread previous one; nothing queues.
	assert.Equal(t, "Sync completed.", s.Current())
}

func TestToastService_Dismiss(t *testing.T) {
	s := NewToastService(nil)
	defer s.Stop()

	s.Post("Accounts failed to load.")
	s.Dismiss()

	assert.Empty(t, s.Current())
}

func TestToastService_IgnoresEmptyMessage(t *testing.T) {
	s := NewToastService(nil)
	defer s.Stop()

	s.Post("Sync completed.")
	s.Post("")

	assert.Equal(t, "Sync completed.", s.Current())
}

func TestToastService_AutoDismissNeverClearsNewerToast(t *testing.T) {
	s := NewToastService(nil)
	defer s.Stop()

	s.Post("first")
	firstGen := s.gen
	s.Post("second")

	// The first toast's timer fires after the second was posted; it
	// must not clear the newer message.
	s.dismissIfCurrent(firstGen)
	assert.Equal(t, "second", s.Current())

	s.dismissIfCurrent(s.gen)
	assert.Empty(t, s.Current())
}

func TestToastService_NotifiesSubscribers(t *testing.T) {
	s := NewToastService(nil)
	defer s.Stop()

	var seen []string
	s.Subscribe(func(msg string) { seen = append(seen, msg) })

	s.Post("one")
	s.Post("two")
	s.Dismiss()

	assert.Equal(t, []string{"one", "two", ""}, seen)
}
