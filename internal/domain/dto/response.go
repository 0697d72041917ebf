package dto

import (
	"github.com/guttosm/finpulse/internal/domain/models"
)

// wireDateLayout is the on-the-wire date format for every endpoint.
const wireDateLayout = "2006-01-02"

// NoRecordMessage is the business-level "empty result" signal. It travels in
// info.error with HTTP 200; it is not a transport error.
const NoRecordMessage = "No record found for given parameters."

// Info carries the error slot present in every response envelope.
// An empty string means success.
type Info struct {
	Error string `json:"error"`
}

// Pagination describes the window applied to a listing response.
//
// Pages is ceil(Count/Limit); a zero Count yields zero Pages.
type Pagination struct {
	Count int `json:"count" example:"42"`
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"5"`
	Pages int `json:"pages" example:"9"`
}

// RecordResponse is the wire shape of a single financial_data row.
//
// Prices are serialized as decimal strings, never as JSON numbers, so clients
// are not exposed to binary floating point.
type RecordResponse struct {
	Symbol     string `json:"symbol" example:"AAPL"`
	Date       string `json:"date" example:"2023-01-31"`
	OpenPrice  string `json:"open_price" example:"142.28"`
	ClosePrice string `json:"close_price" example:"144.29"`
	Volume     int64  `json:"volume" example:"65874459"`
}

// SummaryResponse is the wire shape of the statistics endpoint payload.
type SummaryResponse struct {
	StartDate              string `json:"start_date" example:"2023-01-01"`
	EndDate                string `json:"end_date" example:"2023-01-31"`
	Symbol                 string `json:"symbol" example:"AAPL"`
	AverageDailyOpenPrice  string `json:"average_daily_open_price" example:"140.07"`
	AverageDailyClosePrice string `json:"average_daily_close_price" example:"141.33"`
	AverageDailyVolume     int64  `json:"average_daily_volume" example:"70436452"`
}

// ListResponse is the success envelope of GET /api/financial_data.
type ListResponse struct {
	Data       []RecordResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
	Info       Info             `json:"info"`
}

// StatisticsResponse is the success envelope of GET /api/statistics.
type StatisticsResponse struct {
	Data SummaryResponse `json:"data"`
	Info Info            `json:"info"`
}

// ErrorResponse is the uniform failure envelope used for every 4xx/5xx.
// Data is always an empty list and Pagination an empty object, matching the
// success envelope's shape without its content.
type ErrorResponse struct {
	Data       []RecordResponse `json:"data"`
	Pagination struct{}         `json:"pagination"`
	Info       Info             `json:"info"`
}

// NewRecordResponse maps a domain Record to its wire representation.
// This is the single, explicit mapping point for records; no reflection-based
// encoding is involved.
func NewRecordResponse(r models.Record) RecordResponse {
	return RecordResponse{
		Symbol:     r.Symbol,
		Date:       r.Date.Format(wireDateLayout),
		OpenPrice:  r.OpenPrice.StringFixed(2),
		ClosePrice: r.ClosePrice.StringFixed(2),
		Volume:     r.Volume,
	}
}

// NewSummaryResponse maps a domain Summary to its wire representation.
// Averages are rendered with exactly two fractional digits.
func NewSummaryResponse(s models.Summary) SummaryResponse {
	return SummaryResponse{
		StartDate:              s.StartDate.Format(wireDateLayout),
		EndDate:                s.EndDate.Format(wireDateLayout),
		Symbol:                 s.Symbol,
		AverageDailyOpenPrice:  s.AverageOpenPrice.StringFixed(2),
		AverageDailyClosePrice: s.AverageClosePrice.StringFixed(2),
		AverageDailyVolume:     s.AverageVolume,
	}
}

// NewListResponse assembles the listing envelope. An empty record set keeps
// data as an empty list and flags NoRecordMessage in info.error.
func NewListResponse(records []models.Record, pagination Pagination) ListResponse {
	data := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		data = append(data, NewRecordResponse(r))
	}

	resp := ListResponse{Data: data, Pagination: pagination}
	if len(records) == 0 {
		resp.Info.Error = NoRecordMessage
	}
	return resp
}

// NewStatisticsResponse assembles the statistics envelope. matched is the
// number of records the summary was computed over; zero flags NoRecordMessage
// while the zero-valued summary, window included, is still returned.
func NewStatisticsResponse(summary models.Summary, matched int) StatisticsResponse {
	resp := StatisticsResponse{Data: NewSummaryResponse(summary)}
	if matched == 0 {
		resp.Info.Error = NoRecordMessage
	}
	return resp
}

// NewErrorResponse builds the uniform failure envelope around a
// human-readable message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Data: []RecordResponse{},
		Info: Info{Error: message},
	}
}
