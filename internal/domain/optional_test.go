package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	type body struct {
		EndYear Optional[FlexInt]   `json:"endYear"`
		Rating  Optional[FlexFloat] `json:"rating"`
		Notes   Optional[string]    `json:"notes"`
	}

	tests := []struct {
		name        string
		input       string
		wantEndSet  bool
		wantEndNull bool
		wantEnd     int
		wantRating  *float64
		wantNotes   *string
	}{
		{
			name:  "absent keys",
			input: `{}`,
		},
		{
			name:        "explicit null and empty string",
			input:       `{"endYear": null, "notes": ""}`,
			wantEndSet:  true,
			wantEndNull: true,
		},
		{
			name:       "numeric strings",
			input:      `{"endYear": "2023", "rating": "8.5", "notes": "rewatch"}`,
			wantEndSet: true,
			wantEnd:    2023,
			wantRating: ptr(8.5),
			wantNotes:  ptr("rewatch"),
		},
		{
			name:       "numbers",
			input:      `{"endYear": 2021, "rating": 7}`,
			wantEndSet: true,
			wantEnd:    2021,
			wantRating: ptr(7.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))
			require.Equal(t, tt.wantEndSet, b.EndYear.Set)
			require.Equal(t, tt.wantEndNull, b.EndYear.Null)
			if b.EndYear.Present() {
				require.Equal(t, tt.wantEnd, int(b.EndYear.Value))
			}
			if tt.wantRating != nil {
				require.NotNil(t, b.Rating.Ptr())
				require.InDelta(t, *tt.wantRating, float64(*b.Rating.Ptr()), 0.001)
			} else {
				require.Nil(t, b.Rating.Ptr())
			}
			require.Equal(t, tt.wantNotes, b.Notes.Ptr())
		})
	}
}

func TestFlexInt_Invalid(t *testing.T) {
	var v FlexInt
	require.Error(t, json.Unmarshal([]byte(`"next year"`), &v))
}

func TestSettings_Maintenance(t *testing.T) {
	s := &Settings{AIChatMaintenance: true}
	require.True(t, s.Maintenance(ToolAIChat))
	require.False(t, s.Maintenance(ToolDownloader))
	require.False(t, s.Maintenance(ToolImageTools))
}

func ptr[T any](v T) *T {
	return &v
}
