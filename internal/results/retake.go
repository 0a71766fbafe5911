package results

import "time"

// Cooldown is the minimum gap between a completed assessment and the
// next attempt.
const Cooldown = 7 * 24 * time.Hour

// Eligibility is the derived retake status for a respondent.
type Eligibility struct {
	CanRetake      bool       `json:"can_retake"`
	NextRetakeDate *time.Time `json:"next_retake_date,omitempty"`
}

// RetakeEligibility computes eligibility at now from the most recent
// completion. A nil latestCompletedAt means the respondent has never
// completed the assessment and may always take it. The boundary is
// inclusive: a respondent becomes eligible the instant now reaches
// NextRetakeDate.
func RetakeEligibility(latestCompletedAt *time.Time, now time.Time) Eligibility {
	if latestCompletedAt == nil {
		return Eligibility{CanRetake: true}
	}
	next := latestCompletedAt.Add(Cooldown)
	return Eligibility{
		CanRetake:      !now.Before(next),
		NextRetakeDate: &next,
	}
}
