package session

import (
	"sync"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()

	st := NewStore()

	if _, ok := st.Get(1); ok {
		t.Fatalf("expected no session for fresh store")
	}

	st.Set(1, Session{Step: AwaitingName})
	sess, ok := st.Get(1)
	if !ok {
		t.Fatalf("expected session")
	}
	if sess.Step != AwaitingName {
		t.Fatalf("unexpected step: %v", sess.Step)
	}

	st.Set(1, Session{Step: AwaitingDate, Name: "Иван"})
	sess, ok = st.Get(1)
	if !ok || sess.Step != AwaitingDate || sess.Name != "Иван" {
		t.Fatalf("unexpected session after advance: %+v ok=%v", sess, ok)
	}

	// A second chat does not see the first chat's session.
	if _, ok := st.Get(2); ok {
		t.Fatalf("session leaked across chats")
	}

	st.Delete(1)
	if _, ok := st.Get(1); ok {
		t.Fatalf("expected session to be deleted")
	}
	st.Delete(1) // idempotent
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			st.Set(chatID, Session{Step: AwaitingName})
			st.Get(chatID)
			st.Delete(chatID)
		}(int64(i))
	}
	wg.Wait()
}
