package consumer

import (
	"testing"
	"time"

	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/model"
)

func TestNextReadBackoff(t *testing.T) {
	cases := []struct {
		current time.Duration
		want    time.Duration
	}{
		{0, readBackoffMin},
		{readBackoffMin, 2 * time.Second},
		{4 * time.Second, 8 * time.Second},
		{16 * time.Second, readBackoffMax},
		{readBackoffMax, readBackoffMax},
	}
	for _, tc := range cases {
		if got := nextReadBackoff(tc.current); got != tc.want {
			t.Fatalf("nextReadBackoff(%v) = %v, want %v", tc.current, got, tc.want)
		}
	}
}

func TestParseDayOffApproved(t *testing.T) {
	payload := []byte(`{
		"request_id": "req-1",
		"contractor_id": "c-1",
		"start_date": "2026-05-04",
		"end_date": "2026-05-08",
		"reason": "vacation"
	}`)

	off, err := parseDayOffApproved(payload)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if off.ID != "req-1" || off.ContractorID != "c-1" {
		t.Fatalf("unexpected ids: %s %s", off.ID, off.ContractorID)
	}
	if !off.StartDate.Equal(model.NewDate(2026, time.May, 4)) {
		t.Fatalf("unexpected start date: %v", off.StartDate)
	}
	if !off.EndDate.Equal(model.NewDate(2026, time.May, 8)) {
		t.Fatalf("unexpected end date: %v", off.EndDate)
	}
	if off.Status != "approved" {
		t.Fatalf("unexpected status: %s", off.Status)
	}
	if off.Reason != "vacation" {
		t.Fatalf("unexpected reason: %s", off.Reason)
	}
}

func TestParseDayOffApprovedRejects(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `not-json`},
		{"missing request_id", `{"contractor_id":"c-1","start_date":"2026-05-04","end_date":"2026-05-08"}`},
		{"missing contractor_id", `{"request_id":"req-1","start_date":"2026-05-04","end_date":"2026-05-08"}`},
		{"bad start date", `{"request_id":"req-1","contractor_id":"c-1","start_date":"05/04/2026","end_date":"2026-05-08"}`},
		{"inverted range", `{"request_id":"req-1","contractor_id":"c-1","start_date":"2026-05-08","end_date":"2026-05-04"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseDayOffApproved([]byte(tc.payload)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
