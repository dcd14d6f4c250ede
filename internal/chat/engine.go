package chat

import (
	"context"
	"time"

	"github.com/sportivaid/arena-booking/internal/models"
)

// DataProvider supplies the catalog data the responders quote.
type DataProvider interface {
	Venue(ctx context.Context) (*models.Venue, error)
	ListSports(ctx context.Context) ([]models.Sport, error)
	ListFields(ctx context.Context) ([]models.Field, error)
	RevenueSummary(ctx context.Context) (*RevenueSummary, error)
	ActivePrompt(ctx context.Context) (*models.SystemPrompt, error)
}

// SlotSource answers "which slots are taken" for a field/date. The
// availability use case implements it, cache included.
type SlotSource interface {
	BookedSlots(ctx context.Context, fieldID uint, date string) ([]string, error)
}

type RevenueSummary struct {
	RevenueToday float64 `json:"revenue_today"`
	RevenueMonth float64 `json:"revenue_month"`
	CountToday   int64   `json:"count_today"`
	CountMonth   int64   `json:"count_month"`
}

type Action struct {
	Type    string         `json:"type"`
	Label   string         `json:"label,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Reply struct {
	Message  string   `json:"message"`
	Actions  []Action `json:"actions"`
	Intent   Intent   `json:"intent"`
	Entities Entities `json:"entities"`
}

type Input struct {
	Message  string
	UserRole string
	Now      time.Time
}

type Engine struct {
	data  DataProvider
	slots SlotSource
}

func NewEngine(data DataProvider, slots SlotSource) *Engine {
	return &Engine{data: data, slots: slots}
}
