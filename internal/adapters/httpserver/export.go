package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleOrdersExport streams an XLSX snapshot of all orders for offline
// bookkeeping in the admin panel.
func (s *Server) handleOrdersExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	orders, err := s.orders.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("export orders")
		writeError(w, 500, "Failed to export orders")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Orders"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeError(w, 500, "Failed to export orders")
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Customer", "Email", "Phone", "Address", "Total", "Status", "Payment", "Created"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		values := []any{
			o.ID.String(),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.ShippingAddress,
			o.TotalAmount.StringFixed(2),
			string(o.Status),
			string(o.PaymentStatus),
			o.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s.xlsx", time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}
