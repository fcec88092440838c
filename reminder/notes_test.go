package reminder

import "testing"

func TestParseResume(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantHour int
		wantOK   bool
	}{
		{
			name:     "resume hour present",
			html:     `<div class="generatedMssg">Round 2 suspended, play will resume at 3:00 p.m.</div>`,
			wantHour: 3,
			wantOK:   true,
		},
		{
			name:   "no resume time in note",
			html:   `<div class="generatedMssg">Round 1 delayed due to inclement weather</div>`,
			wantOK: false,
		},
		{
			name:   "empty note",
			html:   "",
			wantOK: false,
		},
		{
			// The pattern is a single digit; "at 10:" not matching is a
			// known upstream limitation, not something to widen silently.
			name:   "double-digit hour does not match",
			html:   `play will resume at 10:00 a.m.`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseResume(tt.html)
			if got.HasResumeTime != tt.wantOK {
				t.Fatalf("HasResumeTime = %v, want %v", got.HasResumeTime, tt.wantOK)
			}
			if got.HasResumeTime && got.ResumeHour != tt.wantHour {
				t.Errorf("ResumeHour = %d, want %d", got.ResumeHour, tt.wantHour)
			}
		})
	}
}
