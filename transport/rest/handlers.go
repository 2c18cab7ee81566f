package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
	"github.com/gridplay/tictactoe-engine/internal/repository"
)

type createSessionRequest struct {
	ID string `json:"id,omitempty"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type sessionResponse struct {
	ID            string             `json:"id"`
	Board         engine.Board       `json:"board"`
	CurrentPlayer engine.Mark        `json:"current_player"`
	IsOver        bool               `json:"is_over"`
	Status        string             `json:"status"`
	Winner        engine.Mark        `json:"winner,omitempty"`
	Line          *engine.Line       `json:"line,omitempty"`
	Move          *engine.MoveResult `json:"move,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleCreateSession")

	// the body is optional: without an id a fresh session is started
	var req createSessionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	session, err := that.sessions.GetOrCreateSession(r.Context(), req.ID)
	if err != nil {
		log.Error("failed to get or create session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(session, nil))
}

func (that *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGetSession")

	session, err := that.sessions.GetSession(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if err != nil {
		log.Error("failed to get session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(session, nil))
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleMove")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeError(w, http.StatusBadRequest, "cell is required")
		return
	}

	session, result, err := that.sessions.ApplyMove(r.Context(), r.PathValue("id"), *req.Cell)

	switch {
	case err == nil:
	case errors.Is(err, repository.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
		return
	case errors.Is(err, engine.ErrInvalidIndex):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, engine.ErrCellOccupied), errors.Is(err, engine.ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
		return
	default:
		log.Error("failed to make move", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to make move")
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(session, &result))
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleReset")

	session, err := that.sessions.Reset(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if err != nil {
		log.Error("failed to reset session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset session")
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(session, nil))
}

func (that *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleEndSession")

	if err := that.sessions.EndSession(r.Context(), r.PathValue("id")); err != nil {
		log.Error("failed to end session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// newSessionResponse derives the render-ready view of a session. The outcome
// comes from the board, never from the stored flags.
func newSessionResponse(session *entity.Session, move *engine.MoveResult) sessionResponse {
	status, winner, line := engine.Evaluate(session.State.Board)

	resp := sessionResponse{
		ID:            session.ID,
		Board:         session.State.Board,
		CurrentPlayer: session.State.CurrentPlayer,
		IsOver:        session.State.IsOver,
		Status:        status,
		Move:          move,
	}

	if status == engine.StatusWon {
		resp.Winner = winner
		resp.Line = &line
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
