package controllers

import (
	"context"

	"github.com/venoajie/trading-web-project/src/clients/librarian"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/repositories"
	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
)

const noAnswer = "No answer found."

type AIControllerI interface {
	Chat(ctx context.Context, user *models.User, req *schemas.AIChatRequest) (*schemas.AIChatResponse, error)
}

type AIController struct {
	LibrarianClient librarian.LibrarianServiceClientI
	Conversations   repositories.ConversationRepository
}

func NewAIController(librarianClient librarian.LibrarianServiceClientI, conversations repositories.ConversationRepository) *AIController {
	return &AIController{LibrarianClient: librarianClient, Conversations: conversations}
}

// Chat proxies the prompt to the Librarian and records the turn. A Librarian
// failure is returned as is and nothing is stored.
func (c *AIController) Chat(ctx context.Context, user *models.User, req *schemas.AIChatRequest) (*schemas.AIChatResponse, error) {
	logger := utils.LoggerFromContext(ctx)
	if req.ConversationID != nil {
		logger.WithField("conversation_id", *req.ConversationID).
			Debug("conversation_id supplied; starting a new conversation")
	}

	response, err := c.LibrarianClient.Query(ctx, user.ID.String(), req.Prompt, nil)
	if err != nil {
		return nil, err
	}

	saved, err := c.Conversations.Save(ctx, user.ID, req.Prompt, response)
	if err != nil {
		logger.WithError(err).Error("failed to save conversation")
		return nil, err
	}

	answer, ok := response.Answer()
	if !ok {
		answer = noAnswer
	}
	return &schemas.AIChatResponse{
		Answer:         answer,
		ConversationID: saved.ID.String(),
		Sources:        response.Sources(),
	}, nil
}
