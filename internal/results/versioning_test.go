package results

import (
	"errors"
	"testing"
	"time"
)

func TestChainFirstResult(t *testing.T) {
	v, err := Chain(nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Version != 1 {
		t.Errorf("Version = %d, want 1", v.Version)
	}
	if v.OriginalResultID != "" {
		t.Errorf("OriginalResultID = %q, want empty", v.OriginalResultID)
	}
	if v.RetakenAt != nil {
		t.Errorf("RetakenAt = %v, want nil", v.RetakenAt)
	}
	if v.TotalAssessments != 1 || v.RetakeCount != 0 {
		t.Errorf("counters = %d/%d, want 1/0", v.TotalAssessments, v.RetakeCount)
	}
}

func TestChainSecondResult(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	prior := &PriorMeta{
		EarliestResultID:  "res-001",
		LatestCompletedAt: now.Add(-10 * 24 * time.Hour),
		TotalAssessments:  1,
		RetakeCount:       0,
	}

	v, err := Chain(prior, now)
	if err != nil {
		t.Fatal(err)
	}
	if v.Version != 2 {
		t.Errorf("Version = %d, want 2", v.Version)
	}
	if v.OriginalResultID != "res-001" {
		t.Errorf("OriginalResultID = %q, want res-001", v.OriginalResultID)
	}
	if v.RetakenAt == nil || !v.RetakenAt.Equal(now) {
		t.Errorf("RetakenAt = %v, want %v", v.RetakenAt, now)
	}
	if v.TotalAssessments != 2 || v.RetakeCount != 1 {
		t.Errorf("counters = %d/%d, want 2/1", v.TotalAssessments, v.RetakeCount)
	}
}

func TestChainLinksEarliestNotLatest(t *testing.T) {
	prior := &PriorMeta{
		EarliestResultID:  "res-001", // the chain head stays the first ever result
		LatestCompletedAt: time.Now(),
		TotalAssessments:  4,
		RetakeCount:       3,
	}
	v, err := Chain(prior, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if v.Version != 5 || v.OriginalResultID != "res-001" || v.RetakeCount != 4 {
		t.Errorf("Chain = %+v, want version 5 linked to res-001 with retake count 4", v)
	}
}

func TestChainRejectsMalformedPrior(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		prior *PriorMeta
	}{
		{"missing completedAt", &PriorMeta{EarliestResultID: "res-001", TotalAssessments: 1}},
		{"missing earliest id", &PriorMeta{LatestCompletedAt: now, TotalAssessments: 1}},
		{"zero totalAssessments", &PriorMeta{EarliestResultID: "res-001", LatestCompletedAt: now}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Chain(tt.prior, now)
			var inv *ErrInvalidPriorResult
			if !errors.As(err, &inv) {
				t.Errorf("Chain error = %v, want ErrInvalidPriorResult", err)
			}
		})
	}
}
