package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const maxBodySize = 1 << 10

var errMalformedBody = errors.New("malformed request body")

// SessionResponse is the JSON view of a session.
type SessionResponse struct {
	ID      string                      `json:"id"`
	Board   [tictactoe.BoardSize]string `json:"board"`
	Turn    string                      `json:"turn"`
	Status  string                      `json:"status"`
	Winner  string                      `json:"winner,omitempty"`
	Message string                      `json:"message"`
}

type MoveRequest struct {
	Position *int `json:"position"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newSessionResponse(session *entity.Session) SessionResponse {
	result := session.Result()

	response := SessionResponse{
		ID:      session.ID,
		Turn:    string(session.Game.Turn),
		Status:  result.Outcome.String(),
		Winner:  string(result.Winner),
		Message: session.StatusText(),
	}

	for i, cell := range session.Game.Board {
		response.Board[i] = string(cell)
	}

	return response
}

func (that *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.NewSession(r.Context())
	if err != nil {
		that.writeError(w, "NewSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (that *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "GetSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) handleMakeMove(w http.ResponseWriter, r *http.Request) {
	var request MoveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&request); err != nil {
		that.writeError(w, "MakeMove", fmt.Errorf("%w: %w", errMalformedBody, err))
		return
	}

	if request.Position == nil {
		that.writeError(w, "MakeMove", fmt.Errorf("%w: position is required", errMalformedBody))
		return
	}

	session, err := that.sessions.MakeMove(r.Context(), r.PathValue("id"), *request.Position)
	if err != nil {
		that.writeError(w, "MakeMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.ResetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "ResetSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "EndSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statusCode - maps application errors to HTTP statuses.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errMalformedBody),
		errors.Is(err, tictactoe.ErrInvalidPosition),
		errors.Is(err, apperror.ErrEmptySessionID):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, tictactoe.ErrCellOccupied),
		errors.Is(err, tictactoe.ErrGameOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(code)
	}

	that.writeJSON(w, code, ErrorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
