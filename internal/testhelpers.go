package internal

// CreateTestTranscript builds a two-message transcript fixture for tests.
func CreateTestTranscript(sessionID string) *Transcript {
	return CreateTestTranscriptWithMessages(sessionID, []Message{
		{ID: 1, SessionID: sessionID, Role: RoleUser, Content: "hello", CreatedAt: "2024-01-01 10:00:00"},
		{ID: 2, SessionID: sessionID, Role: RoleAssistant, Content: "hi there", CreatedAt: "2024-01-01 10:00:01"},
	})
}

// CreateTestTranscriptWithMessages builds a transcript fixture with the
// given messages.
func CreateTestTranscriptWithMessages(sessionID string, messages []Message) *Transcript {
	return &Transcript{SessionID: sessionID, Messages: messages}
}
