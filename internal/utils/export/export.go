// Package export flattens view models into downloadable CSV or JSON payloads.
// Records are serialized as-is; no aggregation or gap-filling happens here.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// Dataset is a flat, header-plus-rows representation ready for CSV writing.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// WriteCSV streams the dataset as RFC 4180 CSV.
func WriteCSV(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// StockDataset flattens currency stock rows.
func StockDataset(stock []domain.CurrencyStock) Dataset {
	ds := Dataset{
		Headers: []string{"currency", "buy_price", "sell_price", "available_stock", "updated_at"},
		Rows:    make([][]string, 0, len(stock)),
	}
	for _, s := range stock {
		ds.Rows = append(ds.Rows, []string{
			s.Currency,
			s.BuyPrice.String(),
			s.SellPrice.String(),
			s.AvailableStock.String(),
			formatTimestamp(s.UpdatedAt),
		})
	}
	return ds
}

// MovementsDataset flattens stock movement rows.
func MovementsDataset(movements []domain.StockMovement) Dataset {
	ds := Dataset{
		Headers: []string{"created_at", "currency", "kind", "amount", "reason", "actor"},
		Rows:    make([][]string, 0, len(movements)),
	}
	for _, m := range movements {
		ds.Rows = append(ds.Rows, []string{
			formatTimestamp(m.CreatedAt),
			m.Currency,
			string(m.Kind),
			m.Amount.String(),
			m.Reason,
			m.Actor,
		})
	}
	return ds
}

// OperationsDataset flattens exchange operations. Unsettled numeric fields
// export as empty cells, not zeros.
func OperationsDataset(ops []domain.ExchangeOperation) Dataset {
	ds := Dataset{
		Headers: []string{
			"operation_number", "created_at", "counterparty", "status",
			"input_amount", "input_currency", "output_amount", "output_currency",
			"rate", "gross_profit_usd", "margin_percent",
		},
		Rows: make([][]string, 0, len(ops)),
	}
	for _, op := range ops {
		ds.Rows = append(ds.Rows, []string{
			op.OperationNumber,
			formatTimestamp(op.CreatedAt),
			op.CounterpartyName,
			string(op.Status),
			nullDecimalCell(op.InputAmount),
			op.InputCurrency,
			nullDecimalCell(op.OutputAmount),
			op.OutputCurrency,
			nullDecimalCell(op.Rate),
			nullDecimalCell(op.GrossProfitUSD),
			nullDecimalCell(op.MarginPercent),
		})
	}
	return ds
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func nullDecimalCell(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
