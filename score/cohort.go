package score

import (
	"fmt"
	"strings"
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

// CohortBenchmarks are rough reference values for the user's demographic
// cohort. Estimates for general reference only, not clinical targets.
type CohortBenchmarks struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
	BMIMin    float64 `json:"bmi_min"`
	BMIMax    float64 `json:"bmi_max"`
}

type CohortUserValues struct {
	Systolic  *float64 `json:"systolic"`
	Diastolic *float64 `json:"diastolic"`
	BMI       *float64 `json:"bmi"`
}

type CohortComparison struct {
	CohortLabel string           `json:"cohort_label"`
	Benchmarks  CohortBenchmarks `json:"benchmarks"`
	User        CohortUserValues `json:"user"`
	Summary     string           `json:"summary"`
	Note        string           `json:"note"`
}

func ageYears(dob *time.Time, now time.Time) *int {
	if dob == nil {
		return nil
	}
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return &years
}

func ageBand(age *int) string {
	switch {
	case age == nil:
		return "Unknown age"
	case *age < 40:
		return "Under 40"
	case *age < 60:
		return "40-59"
	default:
		return "60+"
	}
}

func cohortBenchmarks(sex string, age *int) CohortBenchmarks {
	baseSys, baseDia := 120.0, 76.0
	switch sex {
	case "male":
		baseSys, baseDia = 122, 78
	case "female":
		baseSys, baseDia = 118, 74
	}

	adj := 0.0
	if age != nil {
		if *age >= 60 {
			adj = 8
		} else if *age >= 40 {
			adj = 4
		}
	}

	return CohortBenchmarks{
		Systolic:  baseSys + adj,
		Diastolic: baseDia + float64(int(adj*0.4+0.5)),
		BMIMin:    18.5,
		BMIMax:    24.9,
	}
}

// ComputeCohortComparison benchmarks the user's latest BP and BMI against
// rough demographic reference values derived from the profile.
func ComputeCohortComparison(profile schema.AccountProfile, latestBP, latestWeight *schema.Measurement, now time.Time) CohortComparison {
	age := ageYears(profile.DateOfBirth, now)
	benchmarks := cohortBenchmarks(profile.Sex, age)

	user := CohortUserValues{}
	if latestBP != nil {
		user.Systolic = latestBP.Payload.Systolic
		user.Diastolic = latestBP.Payload.Diastolic
	}
	if latestWeight != nil && latestWeight.Payload.Kg != nil &&
		profile.HeightCM != nil && *profile.HeightCM > 0 {
		meters := *profile.HeightCM / 100
		bmi := *latestWeight.Payload.Kg / (meters * meters)
		user.BMI = &bmi
	}

	parts := []string{}
	if user.Systolic != nil && user.Diastolic != nil {
		parts = append(parts, fmt.Sprintf("Your BP is %.0f/%.0f vs cohort %.0f/%.0f.",
			*user.Systolic, *user.Diastolic, benchmarks.Systolic, benchmarks.Diastolic))
	}
	if user.BMI != nil {
		parts = append(parts, fmt.Sprintf("BMI %.1f vs healthy %.1f-%.1f.", *user.BMI, benchmarks.BMIMin, benchmarks.BMIMax))
	}

	summary := "Add BP/weight and profile details to see your cohort comparison."
	if len(parts) > 0 {
		summary = strings.Join(parts, " ")
	}

	sexLabel := profile.Sex
	if sexLabel == "" {
		sexLabel = "unspecified"
	}

	return CohortComparison{
		CohortLabel: fmt.Sprintf("%s · %s", ageBand(age), sexLabel),
		Benchmarks:  benchmarks,
		User:        user,
		Summary:     summary,
		Note:        "Benchmarks are estimates for general reference only.",
	}
}
