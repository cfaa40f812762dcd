package filter

import (
	"strings"
	"testing"
)

func TestParseExclusion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Exclusion
		wantErr bool
	}{
		{
			name:  "simple column and value",
			input: "Tm=TOT",
			want:  Exclusion{Column: "Tm", Value: "TOT"},
		},
		{
			name:  "column whitespace trimmed",
			input: "  Tm  =TOT",
			want:  Exclusion{Column: "Tm", Value: "TOT"},
		},
		{
			name:  "value kept verbatim",
			input: "Tm= TOT ",
			want:  Exclusion{Column: "Tm", Value: " TOT "},
		},
		{
			name:  "empty value allowed",
			input: "Pos=",
			want:  Exclusion{Column: "Pos", Value: ""},
		},
		{
			name:  "value may contain equals sign",
			input: "Note=a=b",
			want:  Exclusion{Column: "Note", Value: "a=b"},
		},
		{
			name:    "missing equals sign",
			input:   "TOT",
			wantErr: true,
		},
		{
			name:    "empty column",
			input:   "=TOT",
			wantErr: true,
		},
		{
			name:    "whitespace-only column",
			input:   "   =TOT",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExclusion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExclusion(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseExclusions(t *testing.T) {
	got, err := ParseExclusions([]string{"Tm=TOT", "Rk=Rk"})
	if err != nil {
		t.Fatalf("ParseExclusions failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 exclusions, got %d", len(got))
	}
	if got[0].Column != "Tm" || got[1].Value != "Rk" {
		t.Errorf("unexpected exclusions: %+v", got)
	}
}

func TestParseExclusionsReportsBadInput(t *testing.T) {
	_, err := ParseExclusions([]string{"Tm=TOT", "bogus"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the bad expression, got: %v", err)
	}
}
