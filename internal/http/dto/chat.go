package dto

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply   string `json:"reply"`
	Emotion string `json:"emotion,omitempty"`
}

type AssistantResponse struct {
	Response string `json:"response"`
}
