package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/folioforge/portfolio-backend/cache"
	"github.com/folioforge/portfolio-backend/errs"
	"github.com/folioforge/portfolio-backend/models"
	"github.com/folioforge/portfolio-backend/templates"
	"github.com/folioforge/portfolio-backend/transform"
)

// previewCache is the slice of the ephemeral store the preview handler needs.
type previewCache interface {
	StashPreview(ctx context.Context, bundle *cache.PreviewBundle) (string, error)
	TakePreview(ctx context.Context, token string) (*cache.PreviewBundle, error)
	SaveCustomizations(ctx context.Context, userID uuid.UUID, templateID string, overrides map[string]string) error
	Customizations(ctx context.Context, userID uuid.UUID, templateID string) (map[string]string, error)
}

type previewHandler struct {
	responder Responder
	logger    zerolog.Logger
	cache     previewCache
}

func newPreviewHandler(store previewCache) previewHandler {
	logger := log.With().Str("handlerName", "previewHandler").Logger()

	return previewHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cache:     store,
	}
}

type previewRequest struct {
	Data           *models.RawPortfolio `json:"data"`
	Template       string               `json:"template"`
	Mode           string               `json:"mode"`
	Customizations map[string]string    `json:"customizations,omitempty"`
}

type previewResponse struct {
	HTML     string `json:"html"`
	Template string `json:"template"`
	Mode     string `json:"mode"`
}

// render transforms the posted document and renders it through the chosen
// template. The document never touches persistence here: previewing edits
// that were not saved yet is the point.
func (h previewHandler) render() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		// query params win over body fields so a preview URL alone can pick
		// the template and mode
		if v := r.URL.Query().Get("template"); v != "" {
			req.Template = v
		}
		if v := r.URL.Query().Get("mode"); v != "" {
			req.Mode = v
		}

		renderer, ok := templates.Get(req.Template)
		if !ok {
			renderer = templates.Default()
		}

		mode := transform.ParseMode(req.Mode)
		model := transform.Transform(req.Data, mode)

		var buf bytes.Buffer
		if err := renderer.Render(&buf, model, req.Customizations); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("rendering preview", err))
			return
		}

		h.responder.WriteJSON(w, previewResponse{
			HTML:     buf.String(),
			Template: renderer.ID(),
			Mode:     mode.String(),
		})
	}
}

// stash parks a preview bundle for a separately opened preview surface and
// returns the one-time claim token.
func (h previewHandler) stash() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bundle cache.PreviewBundle
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&bundle); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if bundle.Template == "" {
			bundle.Template = models.TemplateBusiness
		}

		token, err := h.cache.StashPreview(r.Context(), &bundle)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("stashing preview", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

// claim hands the stashed bundle to its one reader. A second claim of the
// same token finds nothing, as does an expired one.
func (h previewHandler) claim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")
		if token == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing token"))
			return
		}

		bundle, err := h.cache.TakePreview(r.Context(), token)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("claiming preview", err))
			return
		}
		if bundle == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("preview not found or already claimed"))
			return
		}

		h.responder.WriteJSON(w, bundle)
	}
}

// getCustomizations returns the caller's stored overrides for one template,
// empty when nothing was customized yet.
func (h previewHandler) getCustomizations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		templateID, err := validTemplateID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		overrides, err := h.cache.Customizations(r.Context(), identity.ID, templateID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("loading customizations", err))
			return
		}
		if overrides == nil {
			overrides = map[string]string{}
		}

		h.responder.WriteJSON(w, overrides)
	}
}

func (h previewHandler) putCustomizations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		templateID, err := validTemplateID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var overrides map[string]string
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&overrides); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := h.cache.SaveCustomizations(r.Context(), identity.ID, templateID, overrides); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("saving customizations", err))
			return
		}

		h.responder.WriteJSON(w, overrides)
	}
}

func validTemplateID(r *http.Request) (string, error) {
	templateID := chi.URLParam(r, "templateID")
	if _, ok := templates.Get(templateID); !ok {
		return "", errs.NewBadRequestError("unknown template")
	}
	return templateID, nil
}
