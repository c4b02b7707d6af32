package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/folioforge/portfolio-backend/autosave"
	"github.com/folioforge/portfolio-backend/errs"
	"github.com/folioforge/portfolio-backend/models"
	"github.com/folioforge/portfolio-backend/services"
	"github.com/folioforge/portfolio-backend/transform"
)

// Payloads above this are rejected outright; a wizard document is orders of
// magnitude smaller.
const maxPayloadBytes = 2 * 1024 * 1024

// portfolioStore is the slice of the repository the portfolio handler needs.
type portfolioStore interface {
	FindByUserID(userID uuid.UUID) (*models.Portfolio, error)
	SaveRaw(userID uuid.UUID, raw *models.RawPortfolio) error
	Publish(id uuid.UUID, url string) error
	Unpublish(id uuid.UUID) error
}

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      portfolioStore
	scheduler *autosave.Scheduler
}

func newPortfolioHandler(repo portfolioStore, scheduler *autosave.Scheduler) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		scheduler: scheduler,
	}
}

// getPortfolio returns the caller's wizard document. A user who has never
// saved gets a fresh empty document rather than a 404: the builder treats
// both the same way.
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		raw, _, err := h.loadRaw(identity.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if raw == nil {
			raw = &models.RawPortfolio{SelectedTemplate: models.TemplateBusiness}
		}

		h.responder.WriteJSON(w, raw)
	}
}

// savePortfolio replaces the caller's document in full. Saves are always
// whole-record: the request body is the new truth, column by column.
func (h portfolioHandler) savePortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		raw, err := decodeRawPortfolio(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.repo.SaveRaw(identity.ID, raw); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, raw)
	}
}

// saveDraft feeds the debounced auto-save path. The write is acknowledged
// immediately; persistence happens after the quiet period elapses.
func (h portfolioHandler) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		raw, err := decodeRawPortfolio(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.scheduler.Notify(identity.ID, raw)

		// headers are committed with the status line, so the content type
		// must be set first
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusAccepted)
		h.responder.WriteJSON(w, map[string]any{
			"status": h.scheduler.Status(identity.ID),
		})
	}
}

// autosaveStatus exposes the tri-state save indicator the builder polls.
func (h portfolioHandler) autosaveStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": h.scheduler.Status(identity.ID),
		})
	}
}

type publishRequest struct {
	Method string `json:"method"`
}

// publish flips the portfolio live and mints its public URL. Publishing an
// effectively empty portfolio is rejected the same way the preview gate
// rejects it.
func (h portfolioHandler) publish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req publishRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&req); err != nil && err != io.EOF {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		// pending draft edits must land before the published snapshot is read
		if err := h.scheduler.Flush(r.Context(), identity.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "portfolio", err))
			return
		}

		raw, portfolio, err := h.loadRaw(identity.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if portfolio == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("portfolio not found"))
			return
		}
		if !transform.HasPreviewContent(raw) {
			h.responder.WriteError(w, errs.NewBadRequestError("portfolio has no content to publish"))
			return
		}

		// the download target hands back the resume file and leaves the
		// published flag alone
		if req.Method == services.PublishMethodDownload {
			h.writeResume(w, raw)
			return
		}

		url := services.PublishURL(req.Method, raw.FullName())
		if err := h.repo.Publish(portfolio.ID, url); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("publish", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"is_published":  true,
			"published_url": url,
		})
	}
}

func (h portfolioHandler) unpublish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		portfolio, err := h.repo.FindByUserID(identity.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio", err))
			return
		}
		if portfolio == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("portfolio not found"))
			return
		}

		if err := h.repo.Unpublish(portfolio.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("unpublish", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"is_published": false,
		})
	}
}

// export streams a plain-text resume built from the sparse transform of the
// caller's document.
func (h portfolioHandler) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		raw, _, err := h.loadRaw(identity.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.writeResume(w, raw)
	}
}

func (h portfolioHandler) writeResume(w http.ResponseWriter, raw *models.RawPortfolio) {
	model := transform.Transform(raw, transform.ModeSparse)
	text := services.ResumeText(model)
	filename := services.ExportFilename(raw.FullName())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(text)); err != nil {
		h.logger.Error().Err(err).Msg("error writing export")
	}
}

func (h portfolioHandler) loadRaw(userID uuid.UUID) (*models.RawPortfolio, *models.Portfolio, error) {
	portfolio, err := h.repo.FindByUserID(userID)
	if err != nil {
		return nil, nil, wrapDatabaseError("find", "portfolio", err)
	}
	raw, err := portfolio.Raw()
	if err != nil {
		return nil, nil, errs.NewInternalErrorWithCause("unpacking portfolio", err)
	}
	return raw, portfolio, nil
}

// decodeRawPortfolio validates the body against the portfolio schema before
// unmarshaling it, so the transform layer never sees a shape it cannot hold.
func decodeRawPortfolio(r *http.Request) (*models.RawPortfolio, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		return nil, errs.NewMalformedPayloadError("portfolio", err)
	}

	if err := models.ValidateRawPayload(body); err != nil {
		return nil, errs.NewSchemaViolationError(err.Error())
	}

	var raw models.RawPortfolio
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errs.NewInvalidJSONError(err)
	}
	return &raw, nil
}
