package memory

import (
	"sync"
	"testing"
)

// Interface compliance (compile-time assertion)
var _ Store = (*InMemoryStore)(nil)

func TestInMemoryStore_AddAndHistory(t *testing.T) {
	store := NewInMemoryStore()

	messages, err := store.History("s1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty history, got %#v", messages)
	}

	if err := store.Add("s1", Message{Role: "human", Content: "hi"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Add("s1", Message{Role: "ai", Content: "hello"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	messages, _ = store.History("s1", 0)
	if len(messages) != 2 || messages[0].Content != "hi" || messages[1].Role != "ai" {
		t.Fatalf("unexpected history: %#v", messages)
	}
}

func TestInMemoryStore_HistoryLimit(t *testing.T) {
	store := NewInMemoryStore()
	for _, content := range []string{"a", "b", "c", "d"} {
		_ = store.Add("s1", Message{Role: "human", Content: content})
	}

	messages, _ := store.History("s1", 2)
	if len(messages) != 2 || messages[0].Content != "c" || messages[1].Content != "d" {
		t.Fatalf("expected last two messages, got %#v", messages)
	}
}

func TestInMemoryStore_CopyIsolation(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Add("s1", Message{Role: "human", Content: "hi"})

	messages, _ := store.History("s1", 0)
	messages[0].Content = "changed"

	again, _ := store.History("s1", 0)
	if again[0].Content != "hi" {
		t.Fatalf("expected copy isolation, got %q", again[0].Content)
	}
}

func TestInMemoryStore_Clear(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Add("s1", Message{Role: "human", Content: "hi"})
	_ = store.Add("s2", Message{Role: "human", Content: "other"})

	if err := store.Clear("s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	messages, _ := store.History("s1", 0)
	if len(messages) != 0 {
		t.Fatalf("expected cleared session, got %#v", messages)
	}
	messages, _ = store.History("s2", 0)
	if len(messages) != 1 {
		t.Fatalf("clear must not touch other sessions, got %#v", messages)
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = store.Add("shared", Message{Role: "human", Content: "m"})
				_, _ = store.History("shared", 5)
			}
		}()
	}
	wg.Wait()

	messages, _ := store.History("shared", 0)
	if len(messages) != 200 {
		t.Fatalf("expected 200 messages, got %d", len(messages))
	}
}

func TestFormatHistory(t *testing.T) {
	got := FormatHistory([]Message{
		{Role: "human", Content: "hi"},
		{Role: "ai", Content: "hello"},
	})
	want := "human: hi\nai: hello"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatHistory_Empty(t *testing.T) {
	if got := FormatHistory(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
