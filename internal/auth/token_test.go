package auth

import (
	"testing"
	"time"

	"github.com/emrebkr/vendcare/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	user := model.User{ID: "u1", Name: "Mehmet", Role: model.RoleRouteman}
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if principal.UserID != "u1" || principal.Name != "Mehmet" || principal.Role != model.RoleRouteman {
		t.Errorf("unexpected principal %+v", principal)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	parser := NewParser("secret-b")

	token, err := issuer.Issue(model.User{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(model.User{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestParse_Garbage(t *testing.T) {
	parser := NewParser("test-secret")
	if _, err := parser.Parse("not.a.token"); err == nil {
		t.Error("malformed token must be rejected")
	}
}
