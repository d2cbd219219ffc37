package handlers

import (
	"errors"
	"net/http"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/service"
)

type ContentHandler struct {
	svc *service.ContentService
}

func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

type createEducationCardRequest struct {
	Row      int            `json:"row"`
	Col      int            `json:"col"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Sections map[string]any `json:"sections,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Image    string         `json:"image,omitempty"`
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *ContentHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListEducationCards(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list education cards")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

func (h *ContentHandler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var req createEducationCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card := &domain.EducationCard{
		Row:      req.Row,
		Col:      req.Col,
		Title:    req.Title,
		Text:     req.Text,
		Sections: req.Sections,
		Tags:     req.Tags,
		ImageSVG: req.Image,
	}
	if err := h.svc.CreateEducationCard(r.Context(), card); err != nil {
		writeContentError(w, err, "failed to create education card")
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *ContentHandler) RandomFunFact(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.RandomFunFact(r.Context())
	if err != nil {
		writeContentError(w, err, "failed to get fun fact")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *ContentHandler) CreateFunFact(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f := &domain.FunFact{FunFact: req.Text}
	if err := h.svc.CreateFunFact(r.Context(), f); err != nil {
		writeContentError(w, err, "failed to create fun fact")
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *ContentHandler) ChromosomeInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.ChromosomeInfo(r.Context())
	if err != nil {
		writeContentError(w, err, "failed to get chromosome info")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *ContentHandler) SetChromosomeInfo(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := &domain.ChromosomeInfo{ChromosomeInfo: req.Text}
	if err := h.svc.SetChromosomeInfo(r.Context(), info); err != nil {
		writeContentError(w, err, "failed to save chromosome info")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func writeContentError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTextRequired),
		errors.Is(err, service.ErrInvalidPosition):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
