// Package v1 exposes the encounter service as a JSON HTTP API.
package v1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
)

// Config holds the handler's dependencies.
type Config struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EncounterService == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// Handler routes HTTP requests to the encounter service.
type Handler struct {
	service encounter.Service
}

// NewHandler creates a new v1 API handler.
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.EncounterService}, nil
}

// Routes assembles the router for the v1 API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/saves", h.handleCreateSave)
		r.Get("/saves/{saveID}", h.handleGetSave)
		r.Get("/saves/{saveID}/archive", h.handleListArchive)

		r.Post("/encounters", h.handleStartEncounter)
		r.Get("/encounters/{encounterID}", h.handleGetEncounter)
		r.Post("/encounters/{encounterID}/resume", h.handleResumeEncounter)
		r.Post("/encounters/{encounterID}/actions", h.handleExecuteAction)
		r.Post("/encounters/{encounterID}/commit", h.handleCommitEncounter)
		r.Post("/encounters/{encounterID}/discard", h.handleDiscardEncounter)

		r.Get("/archive/{encounterID}", h.handleArchivedEncounter)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *Handler) handleCreateSave(w http.ResponseWriter, r *http.Request) {
	// The body is optional; an empty POST creates a save with defaults.
	var req createSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.service.CreateSave(r.Context(), &encounter.CreateSaveInput{
		HeroName: req.HeroName,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, saveResponse{Save: toSaveJSON(out.Save)})
}

func (h *Handler) handleGetSave(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetSave(r.Context(), &encounter.GetSaveInput{
		SaveID: chi.URLParam(r, "saveID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, saveResponse{Save: toSaveJSON(out.Save)})
}

func (h *Handler) handleStartEncounter(w http.ResponseWriter, r *http.Request) {
	var req startEncounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := &encounter.StartEncounterInput{
		SaveID:   req.SaveID,
		EnemyIDs: req.EnemyIDs,
	}
	if req.Seed != nil {
		seed, err := strconv.ParseUint(*req.Seed, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "seed must be a decimal unsigned integer")
			return
		}
		input.Seed = &seed
	}

	out, err := h.service.StartEncounter(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, encounterResponse{View: toViewJSON(out.View)})
}

func (h *Handler) handleGetEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetEncounter(r.Context(), &encounter.GetEncounterInput{
		EncounterID: chi.URLParam(r, "encounterID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, encounterResponse{View: toViewJSON(out.View)})
}

func (h *Handler) handleResumeEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ResumeEncounter(r.Context(), &encounter.ResumeEncounterInput{
		EncounterID: chi.URLParam(r, "encounterID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resumeResponse{
		View:    toViewJSON(out.View),
		Resumed: out.Resumed,
	})
}

func (h *Handler) handleExecuteAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.service.ExecuteAction(r.Context(), &encounter.ExecuteActionInput{
		EncounterID: chi.URLParam(r, "encounterID"),
		Action: encounter.Action{
			Kind:     encounter.ActionKind(req.Kind),
			TargetID: req.TargetID,
			CardID:   req.CardID,
			EnemyID:  req.EnemyID,
		},
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, actionResponse{
		View:        toViewJSON(out.View),
		Action:      toActionResult(out.Action),
		EnemyAction: toEnemyActionJSON(out.EnemyAction),
	})
}

func (h *Handler) handleCommitEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CommitEncounter(r.Context(), &encounter.CommitEncounterInput{
		EncounterID: chi.URLParam(r, "encounterID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, commitResponse{
		Save:   toSaveJSON(out.Save),
		Result: toResultJSON(*out.Result),
	})
}

func (h *Handler) handleDiscardEncounter(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DiscardEncounter(r.Context(), &encounter.DiscardEncounterInput{
		EncounterID: chi.URLParam(r, "encounterID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, discardResponse{Discarded: true})
}

func (h *Handler) handleListArchive(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query(), "limit")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt(r.URL.Query(), "offset")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	out, err := h.service.ListArchive(r.Context(), &encounter.ListArchiveInput{
		SaveID: chi.URLParam(r, "saveID"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	results := make([]resultJSON, len(out.Results))
	for i, rec := range out.Results {
		results[i] = toResultJSON(rec)
	}
	h.writeJSON(w, http.StatusOK, archiveListResponse{Results: results})
}

func (h *Handler) handleArchivedEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetArchivedEncounter(r.Context(), &encounter.GetArchivedEncounterInput{
		EncounterID: chi.URLParam(r, "encounterID"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, archivedEncounterResponse{
		Result:  toResultJSON(*out.Result),
		Changes: toChangesJSON(out.Changes),
	})
}

// queryInt parses an optional integer query parameter, zero when absent.
func queryInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError translates a service error into its HTTP shape.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	h.writeError(w, errors.GetCode(err).HTTPStatus(), err.Error())
}
