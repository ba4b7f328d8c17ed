package chat

import (
	"context"
	"strings"
	"testing"

	"fashionfuel/internal/catalog"
	"fashionfuel/internal/shopapi"
)

func TestReplyWithoutAPIKeyIsOffline(t *testing.T) {
	cat := catalog.New(shopapi.New("http://127.0.0.1:0"))
	s, err := NewService(context.Background(), "", "gemini-1.5-flash", cat)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got := s.Reply(context.Background(), "sid", "any outfit ideas?")
	if got != offlineReply {
		t.Fatalf("want the offline reply, got %q", got)
	}
}

func TestSystemPromptListsCatalogWithTokenInstruction(t *testing.T) {
	cat := catalog.New(shopapi.New("http://127.0.0.1:0"))
	s, err := NewService(context.Background(), "", "gemini-1.5-flash", cat)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	prompt := s.systemPrompt()
	if !strings.Contains(prompt, "[PRODUCT:<id>]") {
		t.Fatal("prompt must teach the product token format")
	}
	if !strings.Contains(prompt, "Fashion Fuel") {
		t.Fatal("prompt must identify the store")
	}
}
