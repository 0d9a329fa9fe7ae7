package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/flightbooking/internal/service/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockChatUseCase struct {
	mock.Mock
}

func (m *MockChatUseCase) HandleMessage(ctx context.Context, message, sessionID string) (*chat.Reply, error) {
	args := m.Called(ctx, message, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Reply), args.Error(1)
}

func TestChatHandler_message(t *testing.T) {
	mockService := &MockChatUseCase{}
	handler := NewChatHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/chat/message", strings.NewReader(`{"message":"flights from DEL to BOM","session_id":"s1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("HandleMessage", c.Request.Context(), "flights from DEL to BOM", "s1").
		Return(&chat.Reply{ReplyText: "Found 2 flights.", Intent: chat.IntentSearchFlights, Parameters: map[string]any{}}, nil)

	handler.message(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var reply chat.Reply
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, chat.IntentSearchFlights, reply.Intent)
}

func TestChatHandler_message_missingBody(t *testing.T) {
	handler := NewChatHandler(&MockChatUseCase{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/chat/message", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.message(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
