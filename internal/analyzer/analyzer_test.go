package analyzer

import (
	"reflect"
	"testing"
)

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Analysis
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"primary_mood": "happy", "intensity": 7, "immediate_need": "match", "multi_mood": false, "secondary_moods": [], "confidence": 0.9}`,
			want: Analysis{
				PrimaryMood:   "happy",
				Intensity:     7,
				ImmediateNeed: "match",
				Confidence:    0.9,
			},
		},
		{
			name: "fenced json",
			content: "```json\n" +
				`{"primary_mood": "Heartbroken", "intensity": 8, "context": "breakup", "immediate_need": "PROCESS", "multi_mood": true, "secondary_moods": ["Sad", " lonely "], "confidence": 0.95}` +
				"\n```",
			want: Analysis{
				PrimaryMood:    "heartbroken",
				Intensity:      8,
				Context:        "breakup",
				ImmediateNeed:  "process",
				MultiMood:      true,
				SecondaryMoods: []string{"sad", "lonely"},
				Confidence:     0.95,
			},
		},
		{
			name:    "intensity clamped",
			content: `{"primary_mood": "hyper", "intensity": 14, "immediate_need": "channel", "confidence": 1.5}`,
			want: Analysis{
				PrimaryMood:   "hyper",
				Intensity:     10,
				ImmediateNeed: "channel",
				Confidence:    1,
			},
		},
		{
			name:    "missing need defaults to match",
			content: `{"primary_mood": "content", "intensity": 5, "confidence": 0.8}`,
			want: Analysis{
				PrimaryMood:   "content",
				Intensity:     5,
				ImmediateNeed: "match",
				Confidence:    0.8,
			},
		},
		{
			name:    "secondary moods dropped when not multi",
			content: `{"primary_mood": "sad", "intensity": 6, "immediate_need": "process", "multi_mood": false, "secondary_moods": ["lonely"], "confidence": 0.7}`,
			want: Analysis{
				PrimaryMood:   "sad",
				Intensity:     6,
				ImmediateNeed: "process",
				Confidence:    0.7,
			},
		},
		{
			name:    "missing primary mood",
			content: `{"intensity": 5, "immediate_need": "match"}`,
			wantErr: true,
		},
		{
			name:    "invalid need",
			content: `{"primary_mood": "happy", "intensity": 5, "immediate_need": "therapy"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "I think the user is happy.",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnalysis(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAnalysis(%q) expected error, got %+v", tt.content, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAnalysis(%q) error: %v", tt.content, err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("parseAnalysis = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestAnalysisMoods(t *testing.T) {
	a := &Analysis{PrimaryMood: "heartbroken", SecondaryMoods: []string{"sad", "lonely"}}
	want := []string{"heartbroken", "sad", "lonely"}
	if got := a.Moods(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moods() = %v, want %v", got, want)
	}
}
