package handler

import (
	"errors"
	"net/http"

	financesdomain "estudios-app-go/internal/domain/finances"
	"github.com/go-chi/chi/v5"
)

type createPeriodRequest struct {
	Name       string `json:"name"`
	Factor     string `json:"factor"`
	Multiplies bool   `json:"multiplies"`
}

type createTransactionRequest struct {
	PeriodID string `json:"period_id"`
	Amount   string `json:"amount"`
	IsIncome bool   `json:"is_income"`
	Note     string `json:"note"`
	Income   *struct {
		DateReceived string  `json:"date_received"`
		Type         string  `json:"type"`
		TutorID      *string `json:"tutor_id"`
	} `json:"income"`
}

type updateTransactionRequest struct {
	PeriodID string `json:"period_id"`
	Amount   string `json:"amount"`
	Note     string `json:"note"`
}

type totalsResponse struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetTotal      string `json:"net_total"`
}

func (h *Handlers) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req createPeriodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	factor, err := parseAmount(req.Factor)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid factor")
		return
	}

	period, err := h.Finances.CreatePeriod(r.Context(), financesdomain.CreatePeriodInput{
		Name:       req.Name,
		Factor:     factor,
		Multiplies: req.Multiplies,
	})
	if err != nil {
		if errors.Is(err, financesdomain.ErrInvalidFactor) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("periods.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, period)
}

func (h *Handlers) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.Finances.ListPeriods(r.Context())
	if err != nil {
		h.log.InternalError("periods.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid amount")
		return
	}

	input := financesdomain.CreateTransactionInput{
		FamilyID: familyID,
		PeriodID: req.PeriodID,
		Amount:   amount,
		IsIncome: req.IsIncome,
		Note:     req.Note,
	}
	if req.Income != nil {
		dateReceived, err := parseDateRequired(req.Income.DateReceived)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid date received")
			return
		}
		input.Income = &financesdomain.IncomeDetails{
			DateReceived: dateReceived,
			Type:         req.Income.Type,
			TutorID:      req.Income.TutorID,
		}
	}

	transaction, err := h.Finances.CreateTransaction(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, financesdomain.ErrFamilyNotFound),
			errors.Is(err, financesdomain.ErrPeriodNotFound):
			writeNotFound(w)
		case errors.Is(err, financesdomain.ErrNegativeAmount),
			errors.Is(err, financesdomain.ErrInvalidIncomeType),
			errors.Is(err, financesdomain.ErrNotIncome):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("transactions.create: create failed", err, "family_id", familyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, transaction)
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	transactionID := chi.URLParam(r, "transaction_id")

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid amount")
		return
	}

	transaction, err := h.Finances.UpdateTransaction(r.Context(), financesdomain.UpdateTransactionInput{
		ID:       transactionID,
		FamilyID: familyID,
		PeriodID: req.PeriodID,
		Amount:   amount,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, financesdomain.ErrTransactionNotFound),
			errors.Is(err, financesdomain.ErrPeriodNotFound):
			writeNotFound(w)
		case errors.Is(err, financesdomain.ErrNegativeAmount):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("transactions.update: update failed", err, "transaction_id", transactionID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, transaction)
}

func (h *Handlers) DeactivateTransaction(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	transactionID := chi.URLParam(r, "transaction_id")

	if err := h.Finances.DeactivateTransaction(r.Context(), familyID, transactionID); err != nil {
		if errors.Is(err, financesdomain.ErrTransactionNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("transactions.deactivate: deactivate failed", err, "transaction_id", transactionID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	transactions, err := h.Finances.ListTransactions(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, financesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("transactions.list: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func (h *Handlers) FamilyTotals(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	totals, err := h.Finances.FamilyTotals(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, financesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("totals.get: aggregation failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, totalsResponse{
		TotalIncome:   totals.Income.StringFixed(2),
		TotalExpenses: totals.Expenses.StringFixed(2),
		NetTotal:      totals.Net.StringFixed(2),
	})
}
