package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

func TestComputeRollingStatisticsSeries(t *testing.T) {
	tests := []struct {
		name    string
		quitAgo int
		wantLen int
	}{
		{"quit inside window", 10, 11},
		{"quit today", 0, 1},
		{"quit before window", 100, constants.RollingWindowDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeRollingStatistics(profileQuitDaysAgo(tt.quitAgo), nil, nil, testNow)
			if len(st.Daily) != tt.wantLen {
				t.Fatalf("len(Daily) = %d, want %d", len(st.Daily), tt.wantLen)
			}
			for i := 1; i < len(st.Daily); i++ {
				if !st.Daily[i].Date.After(st.Daily[i-1].Date) {
					t.Fatalf("series not ordered oldest to newest at %d", i)
				}
			}
			last := st.Daily[len(st.Daily)-1].Date
			if last.Day() != testNow.Day() {
				t.Errorf("last day = %v, want today", last)
			}
		})
	}
}

func TestComputeRollingStatisticsCounts(t *testing.T) {
	profile := profileQuitDaysAgo(20)
	slipUps := []models.SlipUp{
		{Timestamp: testNow.Add(-time.Hour), Location: "With Coffee", CravingStrength: 4},
		{Timestamp: testNow.AddDate(0, 0, -1), Location: "With Coffee", CravingStrength: 4},
		{Timestamp: testNow.AddDate(0, 0, -2), Location: "At Work", CravingStrength: 2},
		{Timestamp: testNow.AddDate(0, 0, -2), CravingStrength: 5},
		{Timestamp: testNow.AddDate(0, 0, -3)},
	}
	conquests := []models.Conquest{
		{Timestamp: testNow, Points: constants.ConquestPoints},
		{Timestamp: testNow.Add(-2 * time.Hour), Points: constants.ConquestPoints},
	}

	st := ComputeRollingStatistics(profile, slipUps, conquests, testNow)

	today := st.Daily[len(st.Daily)-1]
	if today.SlipUps != 1 || today.Conquests != 2 {
		t.Errorf("today = %+v, want 1 slip-up and 2 conquests", today)
	}
	if twoAgo := st.Daily[len(st.Daily)-3]; twoAgo.SlipUps != 2 {
		t.Errorf("two days ago slip-ups = %d, want 2", twoAgo.SlipUps)
	}

	if !approxEqual(st.AverageDailySlipUps, 5.0/20) {
		t.Errorf("AverageDailySlipUps = %v, want 0.25", st.AverageDailySlipUps)
	}
	if !approxEqual(st.ReductionRate, (10-0.25)/10*100) {
		t.Errorf("ReductionRate = %v", st.ReductionRate)
	}
	if st.QuitPoints != 20 || st.TotalConquests != 2 || st.TotalSlipUps != 5 {
		t.Errorf("totals = %d points, %d conquests, %d slip-ups", st.QuitPoints, st.TotalConquests, st.TotalSlipUps)
	}

	wantLocations := []LocationCount{
		{constants.UnspecifiedLocation, 2},
		{"With Coffee", 2},
		{"At Work", 1},
	}
	if len(st.Locations) != len(wantLocations) {
		t.Fatalf("Locations = %+v", st.Locations)
	}
	for i, want := range wantLocations {
		if st.Locations[i] != want {
			t.Errorf("Locations[%d] = %+v, want %+v", i, st.Locations[i], want)
		}
	}

	wantStrengths := []int{0, 1, 0, 2, 1}
	for i, want := range wantStrengths {
		if st.CravingStrengths[i].Strength != i+1 || st.CravingStrengths[i].Count != want {
			t.Errorf("CravingStrengths[%d] = %+v, want count %d", i, st.CravingStrengths[i], want)
		}
	}
}

func TestComputeRollingStatisticsTopLocations(t *testing.T) {
	var slipUps []models.SlipUp
	for i, loc := range constants.Locations {
		for n := 0; n <= i; n++ {
			slipUps = append(slipUps, models.SlipUp{Timestamp: testNow.Add(-time.Hour), Location: loc})
		}
	}

	st := ComputeRollingStatistics(profileQuitDaysAgo(30), slipUps, nil, testNow)
	if len(st.Locations) != constants.TopLocations {
		t.Fatalf("len(Locations) = %d, want %d", len(st.Locations), constants.TopLocations)
	}
	if st.Locations[0].Location != "Other" || st.Locations[0].Count != len(constants.Locations) {
		t.Errorf("top location = %+v", st.Locations[0])
	}
}

func TestComputeRollingStatisticsEmpty(t *testing.T) {
	st := ComputeRollingStatistics(profileQuitDaysAgo(0), nil, nil, testNow)
	if st.AverageDailySlipUps != 0 {
		t.Errorf("AverageDailySlipUps = %v, want 0", st.AverageDailySlipUps)
	}
	if st.ReductionRate != 100 {
		t.Errorf("ReductionRate = %v, want 100", st.ReductionRate)
	}
	if len(st.Locations) != 0 {
		t.Errorf("Locations = %+v, want empty", st.Locations)
	}
}
