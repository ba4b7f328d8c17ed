package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fashionfuel/internal/catalog"
	applog "fashionfuel/internal/log"
)

const (
	// Offline reply when no API key is configured.
	offlineReply = "I'm sorry, I'm currently in offline mode. How can I help you today?"
	// Canned reply on any upstream failure; chat stays usable for the next message.
	troubleReply = "I'm having a little trouble connecting right now. Please try again in a moment!"

	maxOutputTokens = 200
	maxTurns        = 20
)

// Service answers chat messages with Gemini, grounding the model on the
// cached catalog and instructing it to emit [PRODUCT:<id>] tokens when it
// recommends a specific product.
type Service struct {
	client  *genai.Client
	model   string
	catalog *catalog.Slice

	mu       sync.Mutex
	sessions map[string][]*genai.Content
}

func NewService(ctx context.Context, apiKey, model string, cat *catalog.Slice) (*Service, error) {
	s := &Service{model: model, catalog: cat, sessions: map[string][]*genai.Content{}}
	if apiKey == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// Reply sends the user's utterance with the session's prior turns and
// returns the model's text. Failures never propagate: the caller always
// gets a usable reply string.
func (s *Service) Reply(ctx context.Context, sid, message string) string {
	if s.client == nil {
		return offlineReply
	}

	model := s.client.GenerativeModel(s.model)
	model.SetMaxOutputTokens(maxOutputTokens)

	cs := model.StartChat()
	cs.History = s.historyFor(sid)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		applog.NonFatal(nil, "chat.send.fail", err, map[string]any{"sid": sid})
		return troubleReply
	}
	text := responseText(resp)
	if text == "" {
		return troubleReply
	}
	s.remember(sid, message, text)
	return text
}

// historyFor returns the seed prompt plus the session's recorded turns.
func (s *Service) historyFor(sid string) []*genai.Content {
	seed := []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text(s.systemPrompt())}},
		{Role: "model", Parts: []genai.Part{genai.Text("Understood. I am the Fashion Fuel AI assistant. How can I help our customers today?")}},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(seed, s.sessions[sid]...)
}

func (s *Service) remember(sid, userMsg, modelMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := append(s.sessions[sid],
		&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(userMsg)}},
		&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(modelMsg)}},
	)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	s.sessions[sid] = turns
}

// systemPrompt serializes the catalog as a flat list so the model can
// recommend real products by id.
func (s *Service) systemPrompt() string {
	var b strings.Builder
	b.WriteString(`You are an AI assistant for "Fashion Fuel", a modern e-commerce platform.
Your goal is to help users with their fashion-related questions, product inquiries, shipping, and returns.
Be friendly, helpful, and professional. Keep responses concise and engaging.

When you recommend a specific product from the catalog below, reference it with the exact token [PRODUCT:<id>] so the store can render it inline. Never invent product ids.

Catalog:
`)
	for _, p := range s.catalog.Items() {
		fmt.Fprintf(&b, "- id=%s title=%q category=%s price=%.2f\n", p.ID, p.Title, p.Category, p.Price)
	}
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

// Segments renders a reply for the UI: plain text interleaved with product
// cards resolved against the cached catalog.
func (s *Service) Segments(text string) []Segment {
	return ParseSegments(text, s.catalog.Lookup)
}

func (s *Service) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
