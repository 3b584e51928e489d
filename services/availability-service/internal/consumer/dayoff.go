package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/storage"
	"github.com/segmentio/kafka-go"
)

// TopicDayOffApproved carries time-off approvals from the people service.
const TopicDayOffApproved = "people.dayoff.approved.v1"

type dayOffApprovedPayload struct {
	RequestID    string `json:"request_id"`
	ContractorID string `json:"contractor_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

func parseDayOffApproved(value []byte) (model.DayOff, error) {
	var payload dayOffApprovedPayload
	if err := json.Unmarshal(value, &payload); err != nil {
		return model.DayOff{}, fmt.Errorf("decode dayoff payload: %w", err)
	}
	if payload.RequestID == "" || payload.ContractorID == "" {
		return model.DayOff{}, fmt.Errorf("dayoff payload missing request_id or contractor_id")
	}
	start, err := model.ParseDate(payload.StartDate)
	if err != nil {
		return model.DayOff{}, fmt.Errorf("dayoff start_date: %w", err)
	}
	end, err := model.ParseDate(payload.EndDate)
	if err != nil {
		return model.DayOff{}, fmt.Errorf("dayoff end_date: %w", err)
	}
	if end.Before(start) {
		return model.DayOff{}, fmt.Errorf("dayoff range inverted: %s after %s", payload.StartDate, payload.EndDate)
	}
	return model.DayOff{
		ID:           payload.RequestID,
		ContractorID: payload.ContractorID,
		StartDate:    start,
		EndDate:      end,
		Status:       "approved",
		Reason:       payload.Reason,
	}, nil
}

// NewDayOffHandler mirrors approved day-off requests into the local cache so
// occurrence expansion and feasibility see them without a cross-service call.
func NewDayOffHandler(repo *storage.Repository, logger *slog.Logger) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		off, err := parseDayOffApproved(msg.Value)
		if err != nil {
			return err
		}
		if err := repo.UpsertDayOff(ctx, off); err != nil {
			return fmt.Errorf("upsert dayoff: %w", err)
		}
		logger.Info("day off recorded",
			"request_id", off.ID,
			"contractor_id", off.ContractorID,
			"start_date", off.StartDate.Format(model.DateLayout),
			"end_date", off.EndDate.Format(model.DateLayout),
		)
		return nil
	}
}
