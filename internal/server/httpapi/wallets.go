package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/spende/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type createWalletRequest struct {
	Name     *string  `json:"name"`
	Currency *string  `json:"currency"`
	Rational *float64 `json:"rational"`
}

func (r *createWalletRequest) validate() error {
	switch {
	case r.Name == nil:
		return missingField("name")
	case r.Currency == nil:
		return missingField("currency")
	}
	return checkRational(r.Rational)
}

type updateWalletRequest struct {
	Name     *string  `json:"name"`
	Currency *string  `json:"currency"`
	Rational *float64 `json:"rational"`
}

func (r *updateWalletRequest) validate() error {
	return checkRational(r.Rational)
}

// checkRational rejects a scaling factor that is present but not positive.
func checkRational(v *float64) error {
	if v != nil && !(*v > 0) {
		return fmt.Errorf("field `rational` must be positive, got %g", *v)
	}
	return nil
}

func (h *Handler) listWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.wallets.List(r.Context(), mustUser(r).ID)
	if err != nil {
		h.fail(w, r, opListWallets, err)
		return
	}
	writeData(w, http.StatusOK, wallets)
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.wallets.Get(r.Context(), mustUser(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, opGetWallet, err)
		return
	}
	writeData(w, http.StatusOK, wallet)
}

func (h *Handler) createWallet(w http.ResponseWriter, r *http.Request) {
	var req createWalletRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, opCreateWallet, err)
		return
	}

	wallet, err := h.wallets.Create(r.Context(), mustUser(r).ID, services.NewWallet{
		Name:     *req.Name,
		Currency: *req.Currency,
		Rational: req.Rational,
	})
	if err != nil {
		h.fail(w, r, opCreateWallet, err)
		return
	}
	writeData(w, http.StatusOK, wallet)
}

func (h *Handler) updateWallet(w http.ResponseWriter, r *http.Request) {
	var req updateWalletRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, opUpdateWallet, err)
		return
	}

	wallet, err := h.wallets.Update(r.Context(), mustUser(r).ID, chi.URLParam(r, "id"), services.WalletUpdate{
		Name:     req.Name,
		Currency: req.Currency,
		Rational: req.Rational,
	})
	if err != nil {
		h.fail(w, r, opUpdateWallet, err)
		return
	}
	writeData(w, http.StatusOK, wallet)
}

func (h *Handler) deleteWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.wallets.Delete(r.Context(), mustUser(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, opDeleteWallet, err)
		return
	}
	writeData(w, http.StatusOK, wallet)
}
