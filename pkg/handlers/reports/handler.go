package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/royalty-atlas/pkg/adapters"
	"github.com/de-tools/royalty-atlas/pkg/models/api"
	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"github.com/de-tools/royalty-atlas/pkg/services/billing"
	"github.com/de-tools/royalty-atlas/pkg/services/config"
	"github.com/de-tools/royalty-atlas/pkg/services/royalty"
	"github.com/rs/zerolog"
)

const maxRequestBytes = 16 << 20

type Handler struct {
	billing billing.Service
}

func NewHandler(billing billing.Service) *Handler {
	return &Handler{billing: billing}
}

func (h *Handler) CreatePaymentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.billing.PaymentSummary(ctx, toInput(req))
	if err != nil {
		logger.Error().
			Err(err).
			Str("franchise", req.FranchiseNumber).
			Msg("failed to calculate payment summary")
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapPaymentSummaryDomainToApi(summary))
}

func (h *Handler) CreateVolumeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := h.billing.VolumeReport(ctx, toInput(req))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to build volume report")
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapVolumeReportDomainToApi(report))
}

func (h *Handler) ListFranchises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.billing.ListFranchises(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to list franchise profiles")
		writeError(w, statusFor(err), err.Error())
		return
	}

	response := make([]api.Franchise, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, adapters.MapFranchiseProfileDomainToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (api.ReportsRequest, bool) {
	var req api.ReportsRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return api.ReportsRequest{}, false
	}
	return req, true
}

func toInput(req api.ReportsRequest) billing.Input {
	return billing.Input{
		Profile: req.Profile,
		Franchise: domain.FranchiseInfo{
			Number:     req.FranchiseNumber,
			Department: req.DepartmentName,
			Owner:      req.OwnerName,
		},
		Period:    domain.Period{Month: req.PeriodMonth, Year: req.PeriodYear},
		Title:     req.Title,
		LastMonth: req.LastMonth,
		YTD:       req.YTD,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, billing.ErrMissingReport):
		return http.StatusBadRequest
	case errors.Is(err, config.ErrProfileNotFound), errors.Is(err, billing.ErrNoProfiles):
		return http.StatusNotFound
	case errors.Is(err, royalty.ErrNoTierMatched):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
