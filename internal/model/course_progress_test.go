package model

import "testing"

func TestNextProgress(t *testing.T) {
	tests := []struct {
		name        string
		current     ProgressStatus
		testType    TestType
		score       int
		passing     int
		want        ProgressStatus
		wantChanged bool
	}{
		{"pre from not started", ProgressNotStarted, TestTypePre, 0, 70, ProgressInProgress, true},
		{"pre with perfect score", ProgressNotStarted, TestTypePre, 100, 70, ProgressInProgress, true},
		{"pre already in progress", ProgressInProgress, TestTypePre, 50, 70, ProgressInProgress, false},
		{"pre regresses complete", ProgressComplete, TestTypePre, 0, 70, ProgressInProgress, true},
		{"post at threshold", ProgressInProgress, TestTypePost, 70, 70, ProgressComplete, true},
		{"post above threshold", ProgressInProgress, TestTypePost, 90, 70, ProgressComplete, true},
		{"post below threshold", ProgressInProgress, TestTypePost, 69, 70, ProgressInProgress, false},
		{"post fail from not started", ProgressNotStarted, TestTypePost, 0, 70, ProgressNotStarted, false},
		{"post already complete", ProgressComplete, TestTypePost, 100, 70, ProgressComplete, false},
		{"post custom threshold", ProgressNotStarted, TestTypePost, 50, 50, ProgressComplete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NextProgress(tt.current, tt.testType, tt.score, tt.passing)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("NextProgress(%q, %q, %d, %d) = (%q, %v), want (%q, %v)",
					tt.current, tt.testType, tt.score, tt.passing, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestStartProgress(t *testing.T) {
	tests := []struct {
		name        string
		current     ProgressStatus
		want        ProgressStatus
		wantChanged bool
	}{
		{"from not started", ProgressNotStarted, ProgressInProgress, true},
		{"already in progress", ProgressInProgress, ProgressInProgress, false},
		{"never regresses complete", ProgressComplete, ProgressComplete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := StartProgress(tt.current)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("StartProgress(%q) = (%q, %v), want (%q, %v)",
					tt.current, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestValidProgressStatus(t *testing.T) {
	for _, s := range []ProgressStatus{ProgressNotStarted, ProgressInProgress, ProgressComplete} {
		if !ValidProgressStatus(s) {
			t.Errorf("ValidProgressStatus(%q) = false, want true", s)
		}
	}
	if ValidProgressStatus("done") {
		t.Error(`ValidProgressStatus("done") = true, want false`)
	}
}
