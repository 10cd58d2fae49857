package tradestats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Realized gains export columns.
const (
	colSymbol = iota
	colName
	colClosedDate
	colOpenedDate
	colQuantity
	colProceedsPerShare
	colCostPerShare
	colProceeds
	colCostBasis
	colGainLoss
	colGainLossPercent
	colLongTermGainLoss
	colShortTermGainLoss
	colTerm
	colUnadjustedCostBasis
	colWashSale
	colDisallowedLoss
	colTransactionClosedDate
	colTransactionCostBasis
	colTotalTransactionGainLoss
	colTotalTransactionGainLossPercent
	colLTTransactionGainLoss
	colLTTransactionGainLossPercent
	colSTTransactionGainLoss
	colSTTransactionGainLossPercent
)

// ParseTradesCSV parses a realized gains export.
//
// The first row is a free text summary, the second row holds the column names
// and every other row is a realized trade. Blank rows are ignored. Rows without
// a symbol, an opened date or a closed date are skipped and reported in
// [TradeFile.Skipped]. Numbers that cannot be read are zero.
//
// Quoting follows RFC 4180: a misplaced or unterminated quote makes the whole
// file invalid, the error wraps [ErrInvalidFileStructure].
//
// If no trade can be read the returned error wraps [ErrEmptyResult], and the
// partially filled file is still returned.
func ParseTradesCSV(r io.Reader) (*TradeFile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	file := &TradeFile{}
	for index := 0; ; index++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read CSV: %w", ErrInvalidFileStructure, err)
		}
		line, _ := reader.FieldPos(0)

		switch index {
		case 0:
			file.Summary = strings.TrimSpace(row[0])
			continue
		case 1:
			file.Header = row
			continue
		}
		if isBlank(row) {
			continue
		}
		trade, err := parseTradeRow(line, row)
		if err != nil {
			slog.Warn("skipping realized gains row", "row", line, "error", err)
			file.Skipped = append(file.Skipped, Skip{Row: line, Err: err})
			continue
		}
		file.Trades = append(file.Trades, trade)
	}

	if len(file.Trades) == 0 {
		return file, fmt.Errorf("realized gains export (%d rows skipped): %w", len(file.Skipped), ErrEmptyResult)
	}
	return file, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseTradeRow converts one data row, line is used for error reporting.
func parseTradeRow(line int, row []string) (TradeRecord, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	symbol := strings.ToUpper(cell(colSymbol))
	for _, required := range []struct {
		field string
		value string
	}{
		{"symbol", symbol},
		{"opened date", cell(colOpenedDate)},
		{"closed date", cell(colClosedDate)},
	} {
		if required.value == "" {
			return TradeRecord{}, &MalformedRowError{Row: line, Field: required.field, Reason: "missing required field"}
		}
	}

	opened, err := ParseDate(cell(colOpenedDate))
	if err != nil {
		return TradeRecord{}, &MalformedRowError{Row: line, Field: "opened date", Reason: "cannot parse", Err: err}
	}
	closed, err := ParseDate(cell(colClosedDate))
	if err != nil {
		return TradeRecord{}, &MalformedRowError{Row: line, Field: "closed date", Reason: "cannot parse", Err: err}
	}

	return TradeRecord{
		Symbol:                          symbol,
		Name:                            cell(colName),
		Opened:                          opened,
		Closed:                          closed,
		Quantity:                        ParseQuantity(cell(colQuantity)),
		ProceedsPerShare:                ParseAmount(cell(colProceedsPerShare)),
		CostPerShare:                    ParseAmount(cell(colCostPerShare)),
		Proceeds:                        ParseAmount(cell(colProceeds)),
		CostBasis:                       ParseAmount(cell(colCostBasis)),
		GainLoss:                        ParseAmount(cell(colGainLoss)),
		GainLossPercent:                 parsePercent(cell(colGainLossPercent)),
		LongTermGainLoss:                ParseAmount(cell(colLongTermGainLoss)),
		ShortTermGainLoss:               ParseAmount(cell(colShortTermGainLoss)),
		Term:                            ParseTerm(cell(colTerm)),
		UnadjustedCostBasis:             ParseAmount(cell(colUnadjustedCostBasis)),
		WashSale:                        cell(colWashSale),
		DisallowedLoss:                  ParseAmount(cell(colDisallowedLoss)),
		TransactionClosed:               cell(colTransactionClosedDate),
		TransactionCostBasis:            ParseAmount(cell(colTransactionCostBasis)),
		TotalTransactionGainLoss:        ParseAmount(cell(colTotalTransactionGainLoss)),
		TotalTransactionGainLossPercent: parsePercent(cell(colTotalTransactionGainLossPercent)),
		LTTransactionGainLoss:           ParseAmount(cell(colLTTransactionGainLoss)),
		LTTransactionGainLossPercent:    parsePercent(cell(colLTTransactionGainLossPercent)),
		STTransactionGainLoss:           ParseAmount(cell(colSTTransactionGainLoss)),
		STTransactionGainLossPercent:    parsePercent(cell(colSTTransactionGainLossPercent)),
		DaysInTrade:                     max(0, opened.DaysUntil(closed)),
	}, nil
}
