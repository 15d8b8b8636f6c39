package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"interview-prep-be/pkg/interview"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := interview.NewSession(uuid.New(), interview.Context{
		Role:       "Backend Engineer",
		Experience: "3 years",
		Skills:     []string{"go"},
	})
	if _, err := session.AttachQuestion("What is a goroutine?"); err != nil {
		t.Fatal(err)
	}

	if err := store.Put(ctx, session); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, session.Id)
	if err != nil {
		t.Fatal(err)
	}
	if got.State() != interview.StateAwaitingAnswer {
		t.Errorf("state = %s, want %s", got.State(), interview.StateAwaitingAnswer)
	}
	if got.Levels[0].Questions[0].Text != "What is a goroutine?" {
		t.Errorf("question text lost in round trip")
	}
}

func TestGetMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), uuid.New())
	if !interview.IsKind(err, interview.KindNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := interview.NewSession(uuid.New(), interview.Context{Role: "SRE"})
	if err := store.Put(ctx, session); err != nil {
		t.Fatal(err)
	}

	first, err := store.Get(ctx, session.Id)
	if err != nil {
		t.Fatal(err)
	}
	first.CurrentLevel = 3

	second, err := store.Get(ctx, session.Id)
	if err != nil {
		t.Fatal(err)
	}
	if second.CurrentLevel != 1 {
		t.Error("mutating a loaded session leaked into the store")
	}
}
