package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoonjothiV/grocerywebsites/billing"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/store"
	"github.com/PoonjothiV/grocerywebsites/utils"
)

// BillController renders and exports receipts
type BillController struct {
	Store    *store.Store
	Renderer *billing.Renderer
	Email    *utils.EmailService // nil when mailing is not configured
}

// NewBillController creates a new BillController
func NewBillController(st *store.Store, renderer *billing.Renderer, email *utils.EmailService) *BillController {
	return &BillController{Store: st, Renderer: renderer, Email: email}
}

// DownloadBill renders the user's current cart as a PDF receipt. The cart
// is left untouched; a rendering failure is reported and nothing changes.
func (bc *BillController) DownloadBill(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bill := billing.NewBill(
		bc.Store.Lines(user.ID),
		user.Name,
		bc.Store.SelectedAddress(user.ID),
		models.PaymentCOD,
		time.Now(),
	)
	bc.servePDF(w, bill)
}

// manualBillInput mirrors the bill generator form: free-typed items rather
// than cart entries.
type manualBillInput struct {
	CustomerName  string               `json:"customerName"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Items         []struct {
		Name     string          `json:"name"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	} `json:"items"`
}

// CreateBill renders a receipt from explicitly supplied items.
func (bc *BillController) CreateBill(w http.ResponseWriter, r *http.Request) {
	if _, _, err := requestIdentity(r); err != nil {
		writeError(w, err)
		return
	}

	var input manualBillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	lines := make([]models.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			writeError(w, store.ErrInvalidQuantity)
			return
		}
		lines = append(lines, models.LineItem{
			Product:   models.Product{Name: item.Name, OfferPrice: item.Price},
			Quantity:  item.Quantity,
			LineTotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	method := input.PaymentMethod
	if !method.Valid() {
		method = models.PaymentCOD
	}
	bill := billing.NewBill(lines, input.CustomerName, nil, method, time.Now())
	bc.servePDF(w, bill)
}

// EmailBill renders the current cart and mails the receipt to the user.
func (bc *BillController) EmailBill(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if bc.Email == nil {
		http.Error(w, "Email is not configured", http.StatusServiceUnavailable)
		return
	}

	bill := billing.NewBill(
		bc.Store.Lines(user.ID),
		user.Name,
		bc.Store.SelectedAddress(user.ID),
		models.PaymentCOD,
		time.Now(),
	)

	var buf bytes.Buffer
	if err := bc.Renderer.Render(&buf, bill); err != nil {
		writeError(w, err)
		return
	}
	if err := bc.Email.SendReceiptEmail(user.Email, bill, buf.Bytes()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Receipt emailed"})
}

// servePDF writes the rendered bill as a download with its deterministic
// filename.
func (bc *BillController) servePDF(w http.ResponseWriter, bill models.Bill) {
	var buf bytes.Buffer
	if err := bc.Renderer.Render(&buf, bill); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+billing.Filename(bill.CustomerName)+`"`)
	w.Write(buf.Bytes())
}
