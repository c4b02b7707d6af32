package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/folioforge/portfolio-backend/errs"
	"github.com/folioforge/portfolio-backend/models"
	"github.com/folioforge/portfolio-backend/wizard"
)

type wizardHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newWizardHandler() wizardHandler {
	logger := log.With().Str("handlerName", "wizardHandler").Logger()

	return wizardHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

type transitionRequest struct {
	State  wizard.State         `json:"state"`
	Action string               `json:"action"`
	Method string               `json:"method,omitempty"`
	Form   *models.RawPortfolio `json:"form,omitempty"`
}

type transitionResponse struct {
	State             wizard.State       `json:"state"`
	CompletedSections []wizard.SectionID `json:"completed_sections"`
	RequiredComplete  bool               `json:"required_complete"`
}

// transition validates one wizard move against the posted form. The state
// machine is stateless on the server: the client sends where it is, the
// server answers where it may go.
func (h wizardHandler) transition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if req.State.Step == 0 {
			req.State = wizard.NewState()
		}

		var (
			next wizard.State
			err  error
		)
		switch req.Action {
		case "next":
			next, err = wizard.Next(req.State, req.Form)
		case "prev":
			next, err = wizard.Prev(req.State)
		case "choose_input_method":
			next = wizard.ChooseInputMethod(req.State, req.Method)
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("action", "must be next, prev or choose_input_method"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, transitionError(err))
			return
		}

		h.responder.WriteJSON(w, transitionResponse{
			State:             next,
			CompletedSections: wizard.CompletedSections(req.Form),
			RequiredComplete:  wizard.RequiredComplete(req.Form),
		})
	}
}

// transitionError maps state machine refusals onto HTTP statuses. Gate
// refusals are conflicts with the current data, not malformed requests.
func transitionError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrRequiredIncomplete),
		errors.Is(err, wizard.ErrNotEnoughData),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrAtLastStep):
		return errs.NewConflictError(err.Error())
	case errors.Is(err, wizard.ErrUnknownStep), errors.Is(err, wizard.ErrUnknownSection):
		return errs.NewBadRequestError(err.Error())
	default:
		return err
	}
}
