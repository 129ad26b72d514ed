package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/config"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/domain"
	store "github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/repository"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/telemetry"
)

type stubCompletion struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletion) Complete(ctx context.Context, userMessage string) (string, error) {
	s.calls++
	return s.reply, s.err
}

// failingStore injects append failures per role while delegating everything
// else to a real store.
type failingStore struct {
	store.Store
	failRole domain.Role
}

func (f *failingStore) AppendMessage(ctx context.Context, userID string, role domain.Role, text string) (*domain.Message, error) {
	if role == f.failRole {
		return nil, errors.New("store unavailable")
	}
	return f.Store.AppendMessage(ctx, userID, role, text)
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestService(t *testing.T, st store.Store, cc *stubCompletion) *Service {
	t.Helper()
	tracer, meter := telemetry.Noop()
	return New(st, cc, &config.Config{}, zerolog.Nop(), tracer, meter)
}

func TestChatHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	cc := &stubCompletion{reply: "Try resting and hydration."}
	svc := newTestService(t, st, cc)

	reply, err := svc.Chat(ctx, "u1", "I have a headache")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Try resting and hydration." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if cc.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", cc.calls)
	}

	messages, err := st.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected exactly 2 messages, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleUser || messages[0].Content != "I have a headache" {
		t.Fatalf("unexpected first message: %+v", messages[0])
	}
	if messages[1].Role != domain.RoleAssistant || messages[1].Content != "Try resting and hydration." {
		t.Fatalf("unexpected second message: %+v", messages[1])
	}
	if messages[1].CreatedAt.Before(messages[0].CreatedAt) {
		t.Fatalf("assistant message predates user message")
	}
}

func TestChatEmptyMessage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	cc := &stubCompletion{reply: "unused"}
	svc := newTestService(t, st, cc)

	if _, err := svc.Chat(ctx, "u1", ""); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if cc.calls != 0 {
		t.Fatalf("completion must not run for empty message")
	}

	messages, err := st.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected zero store writes, got %d", len(messages))
	}
}

func TestChatCompletionFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	cc := &stubCompletion{err: errors.New("upstream timeout")}
	svc := newTestService(t, st, cc)

	reply, err := svc.Chat(ctx, "u1", "fever")
	if err != nil {
		t.Fatalf("Chat must succeed on completion failure, got %v", err)
	}
	if reply != FallbackNotice {
		t.Fatalf("expected fallback notice, got %q", reply)
	}

	messages, err := st.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[1].Content != FallbackNotice {
		t.Fatalf("persisted assistant message must equal the fallback notice, got %q", messages[1].Content)
	}
}

func TestChatUserAppendFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	st := &failingStore{Store: newTestStore(t), failRole: domain.RoleUser}
	cc := &stubCompletion{reply: "unused"}
	svc := newTestService(t, st, cc)

	if _, err := svc.Chat(ctx, "u1", "hello"); err == nil {
		t.Fatalf("expected error when user append fails")
	}
	if cc.calls != 0 {
		t.Fatalf("completion must not run after user append failure")
	}
}

func TestChatAssistantAppendFailureKeepsUserMessage(t *testing.T) {
	ctx := context.Background()
	inner := newTestStore(t)
	st := &failingStore{Store: inner, failRole: domain.RoleAssistant}
	cc := &stubCompletion{reply: "advice"}
	svc := newTestService(t, st, cc)

	if _, err := svc.Chat(ctx, "u1", "hello"); err == nil {
		t.Fatalf("expected error when assistant append fails")
	}

	// No rollback: the user message written before the failure remains.
	messages, err := inner.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 1 || messages[0].Role != domain.RoleUser {
		t.Fatalf("expected lone user message, got %+v", messages)
	}
}

func TestHistoryAfterTurns(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	cc := &stubCompletion{reply: "ok"}
	svc := newTestService(t, st, cc)

	const turns = 5
	for i := 0; i < turns; i++ {
		if _, err := svc.Chat(ctx, "u1", "question"); err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
	}

	messages, err := svc.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(messages) != 2*turns {
		t.Fatalf("expected %d messages, got %d", 2*turns, len(messages))
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].CreatedAt.Before(messages[i-1].CreatedAt) {
			t.Fatalf("timestamps decreased at index %d", i)
		}
	}
	for i := 0; i < len(messages); i += 2 {
		if messages[i].Role != domain.RoleUser || messages[i+1].Role != domain.RoleAssistant {
			t.Fatalf("unexpected pair order at index %d: %+v", i, messages[i:i+2])
		}
	}
}
