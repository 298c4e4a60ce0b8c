// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/questboard/questboard/metrics"
	"github.com/questboard/questboard/middleware"
	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/voting"
)

type VoteHandler struct {
	voting *voting.Service
}

func NewVoteHandler(svc *voting.Service) *VoteHandler {
	return &VoteHandler{voting: svc}
}

// Submit handles POST /vote
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		metrics.RecordVote("malformed")
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	meta := voting.Meta{
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	err := h.voting.Submit(r.Context(), req.CampaignID, req.Fingerprint, meta)
	switch {
	case errors.Is(err, voting.ErrMalformed):
		metrics.RecordVote("malformed")
		middleware.ErrorResponse(w, http.StatusBadRequest, "campaignId and fingerprint are required")
		return
	case errors.Is(err, voting.ErrCampaignNotFound):
		// Same message whether the campaign is missing or unpublished.
		metrics.RecordVote("not_found")
		middleware.ErrorResponse(w, http.StatusNotFound, "Campaign not found")
		return
	case errors.Is(err, voting.ErrAlreadyVoted):
		metrics.RecordVote("duplicate")
		middleware.ErrorResponse(w, http.StatusConflict, "Already voted")
		return
	case err != nil:
		metrics.RecordVote("error")
		slog.Error("vote submission failed", "error", err, "campaign_id", req.CampaignID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	metrics.RecordVote("accepted")
	slog.Info("vote accepted", "campaign_id", req.CampaignID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{Success: true})
}
