package entity

// ChatRequest is the POST /chat request body.
type ChatRequest struct {
	Query          string `json:"query"`
	CompanyID      string `json:"company_id"`
	UserID         string `json:"user_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ConversationKey returns the key the turn history is grouped under:
// the user id when supplied, otherwise the company id (shared mode).
func (r *ChatRequest) ConversationKey() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.CompanyID
}

// ChatResponse is the POST /chat success body.
type ChatResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id,omitempty"`
	OK             bool   `json:"ok"`
	Timestamp      string `json:"timestamp"`
}

// ChatErrorResponse is the POST /chat failure body.
type ChatErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	OK     bool   `json:"ok"`
}

// ResetChatRequest is the POST /chat/reset request body. At least one of
// the two identifiers must be present.
type ResetChatRequest struct {
	UserID    string `json:"user_id,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
}

// ResetChatResponse is the POST /chat/reset success body.
type ResetChatResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ChatHealthResponse is the GET /health body of the chat service.
type ChatHealthResponse struct {
	Status           string `json:"status"`
	ActiveCompanies  int    `json:"active_companies"`
	EmbeddingBackend string `json:"embedding_backend"`
	EmbeddingModel   string `json:"embedding_model"`
	LLMModel         string `json:"llm_model"`
	Timestamp        string `json:"timestamp"`
}
