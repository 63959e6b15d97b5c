package request

import "testing"

func TestOAuthCallbackRequest(t *testing.T) {
	r := OAuthCallbackRequest{Code: "  1000.abc  ", State: "s"}
	if got := r.ResolveCode(); got != "1000.abc" {
		t.Fatalf("expected trimmed code, got %q", got)
	}
	if r.Denied() {
		t.Fatalf("expected consent granted")
	}

	denied := OAuthCallbackRequest{Error: "access_denied"}
	if !denied.Denied() {
		t.Fatalf("expected consent denied")
	}
	if denied.ResolveCode() != "" {
		t.Fatalf("expected empty code")
	}
}
