package account

type MessageResponse struct {
	Message string `json:"message"`
}
