package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skyfare/flightbooking/internal/llm"
	"github.com/skyfare/flightbooking/internal/service/flights"
)

// systemPrompt pins the model to a JSON-only reply the bridge can parse.
const systemPrompt = `You are a flight booking assistant. Respond in JSON ONLY with:
{
  "reply_text": "...",
  "intent": "search_flights"|"book_flight"|"ask_for_details"|"none",
  "parameters": { ... }
}
If user asks to search flights, set intent to search_flights and parameters { origin, destination, date }.
If user asks to book, set intent to book_flight and parameters { flightId }.
Do not include any additional keys. Use ISO date strings.`

const (
	IntentSearchFlights = "search_flights"
	IntentBookFlight    = "book_flight"
	IntentAskForDetails = "ask_for_details"
	IntentNone          = "none"
)

type ChatUseCase interface {
	HandleMessage(ctx context.Context, message, sessionID string) (*Reply, error)
}

type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

type Reply struct {
	ReplyText  string         `json:"reply_text"`
	Intent     string         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
}

type ChatService struct {
	completer Completer
	flights   flights.FlightUseCase
}

func NewChatService(completer Completer, flightSvc flights.FlightUseCase) *ChatService {
	return &ChatService{completer: completer, flights: flightSvc}
}

// HandleMessage is stateless: sessionID is accepted for API compatibility
// but no conversation state is kept. A reply that fails to parse as JSON
// degrades to a plain-text echo with intent "none". For a search_flights
// intent with origin and destination present, the catalog results are
// spliced into parameters.flights; book_flight is left to the client.
func (s *ChatService) HandleMessage(ctx context.Context, message, sessionID string) (*Reply, error) {
	raw, err := s.completer.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		return nil, err
	}

	var reply Reply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return &Reply{ReplyText: raw, Intent: IntentNone, Parameters: map[string]any{}}, nil
	}
	if reply.Parameters == nil {
		reply.Parameters = map[string]any{}
	}

	if reply.Intent == IntentSearchFlights {
		origin, _ := reply.Parameters["origin"].(string)
		destination, _ := reply.Parameters["destination"].(string)
		date, _ := reply.Parameters["date"].(string)
		if origin != "" && destination != "" {
			found, err := s.flights.Search(ctx, origin, destination, date)
			if err != nil {
				return nil, err
			}
			reply.Parameters["flights"] = found
			if reply.ReplyText == "" {
				reply.ReplyText = fmt.Sprintf("Found %d flights.", len(found))
			}
		}
	}

	return &reply, nil
}

var _ ChatUseCase = (*ChatService)(nil)
