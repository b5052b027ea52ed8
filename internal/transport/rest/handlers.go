package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const maxBodyBytes = 1 << 12

type analysisRequest struct {
	Board  [9]string     `json:"board"`
	Player entity.Player `json:"player"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createAnalysis(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "createAnalysis")

	var req analysisRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	board, err := entity.BoardFromMarks(req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	analysis, err := that.analysisService.Analyze(r.Context(), board, req.Player)
	if err != nil {
		log.Debug("analysis rejected", "error", err)
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, analysis)
}

func (that *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := that.analysisService.GetAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, analysis)
}

func (that *Server) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := that.analysisService.DeleteAnalysis(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrInvalidBoard), errors.Is(err, apperror.ErrInvalidPlayer):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrAnalysisNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrReportsDisabled):
		status = http.StatusNotImplemented
	default:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
