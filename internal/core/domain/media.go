package domain

// ImageUpload is the payload returned after an image was uploaded and analysed.
type ImageUpload struct {
	SessionID   string `json:"sessionId"`
	Explanation string `json:"explanation"`
	OCRText     string `json:"ocrText"`
	ImageURL    string `json:"imageUrl"`
}

// ImageAnalysis is the stored analysis of an uploaded image.
type ImageAnalysis struct {
	Explanation string `json:"explanation"`
	OCRText     string `json:"ocrText"`
	ImageURL    string `json:"imageUrl"`
}

// ImageSession is one entry of the image analysis history.
type ImageSession struct {
	SessionID   string `json:"sessionId"`
	ImageURL    string `json:"imageUrl"`
	Explanation string `json:"explanation,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ImageAnswer is the answer to a follow-up question about an image.
type ImageAnswer struct {
	Answer    string `json:"answer"`
	SessionID string `json:"sessionId,omitempty"`
}

type VoiceTranscription struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId,omitempty"`
}

type VoiceSynthesis struct {
	AudioURL  string `json:"audioUrl"`
	SessionID string `json:"sessionId,omitempty"`
}

type VoiceChatResponse struct {
	Transcription string `json:"transcription"`
	AIResponse    string `json:"aiResponse"`
	AudioURL      string `json:"audioUrl,omitempty"`
	SessionID     string `json:"sessionId"`
}
