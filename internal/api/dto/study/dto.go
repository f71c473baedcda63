package study

type RecordSessionRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

type SessionResponse struct {
	SessionID int64 `json:"session_id"`
}
