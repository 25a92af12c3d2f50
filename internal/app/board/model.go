package board

import "messageboard/internal/app/thread"

type BoardListResponse struct {
	Boards []thread.BoardSummary `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
