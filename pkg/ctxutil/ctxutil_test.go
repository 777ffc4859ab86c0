package ctxutil

import (
	"context"
	"testing"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

func TestWithPrincipal_And_PrincipalFromCtx(t *testing.T) {
	t.Parallel()

	p := domain.Principal{UserID: 42, Username: "alice", Roles: []domain.Role{domain.RoleAdmin}}
	ctx := WithPrincipal(context.Background(), p)

	got, ok := PrincipalFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid principal")
	}
	if got.UserID != 42 || got.Username != "alice" || !got.IsAdmin() {
		t.Fatalf("expected alice/42/admin, got %+v", got)
	}

	id, ok := UserIDFromCtx(ctx)
	if !ok || id != 42 {
		t.Fatalf("expected user id 42, got %d (ok=%v)", id, ok)
	}
}

func TestPrincipalFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if _, ok := PrincipalFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
	if id, ok := UserIDFromCtx(context.Background()); ok || id != 0 {
		t.Fatalf("expected 0/false, got %d/%v", id, ok)
	}
}

func TestPrincipalFromCtx_ZeroUserID(t *testing.T) {
	t.Parallel()

	ctx := WithPrincipal(context.Background(), domain.Principal{Username: "ghost"})

	if _, ok := PrincipalFromCtx(ctx); ok {
		t.Fatal("expected ok=false for principal without user id")
	}
}

func TestPrincipalFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("principal"), "alice")

	if _, ok := PrincipalFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
