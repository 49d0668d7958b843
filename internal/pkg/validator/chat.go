package validator

import (
	"fmt"
	"strings"

	"github.com/majestic/ai-backend/internal/entity"
)

// Validator validates incoming API requests.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateChat validates and normalizes a chat request in place.
func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return fmt.Errorf("%w: query cannot be empty", entity.ErrInvalidInput)
	}

	req.CompanyID = strings.TrimSpace(req.CompanyID)
	if req.CompanyID == "" {
		return fmt.Errorf("%w: company_id", entity.ErrMissingField)
	}

	if req.UserID != "" {
		trimmed := strings.TrimSpace(req.UserID)
		if trimmed == "" {
			return fmt.Errorf("%w: user_id cannot be blank if provided", entity.ErrInvalidInput)
		}
		req.UserID = trimmed
	}

	return nil
}

// ValidateReset checks that a reset request carries at least one key and
// returns the conversation key to clear.
func (v *Validator) ValidateReset(req *entity.ResetChatRequest) (string, error) {
	userID := strings.TrimSpace(req.UserID)
	companyID := strings.TrimSpace(req.CompanyID)

	if userID == "" && companyID == "" {
		return "", fmt.Errorf("%w: user_id or company_id required", entity.ErrMissingField)
	}
	if userID != "" {
		return userID, nil
	}
	return companyID, nil
}
