package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeInput(t *testing.T, body string, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), dst))
}

func TestNewProject(t *testing.T) {
	var in ProjectInput
	decodeInput(t, `{"title":""}`, &in)
	_, err := NewProject(&in)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "Title is required", vErr.Message)

	in = ProjectInput{}
	decodeInput(t, `{"title":"Site","tags":null,"displayOrder":"3","liveUrl":"https://naotica.studio"}`, &in)
	p, err := NewProject(&in)
	require.NoError(t, err)
	require.Equal(t, "Site", p.Title)
	require.Equal(t, "Web App", p.Category)
	require.Equal(t, []string{}, p.Tags)
	require.Equal(t, 3, p.DisplayOrder)
	require.Equal(t, "https://naotica.studio", *p.LiveURL)
	require.Nil(t, p.GithubURL)
}

func TestProjectApply(t *testing.T) {
	live := "https://old.example.com"
	p := &Project{Title: "Old", Category: "Tool", LiveURL: &live, Tags: []string{"Go"}}

	var in ProjectInput
	decodeInput(t, `{"title":"","category":"","liveUrl":null,"featured":true}`, &in)
	p.Apply(&in)

	require.Equal(t, "Old", p.Title)
	require.Equal(t, "Tool", p.Category)
	require.Nil(t, p.LiveURL)
	require.True(t, p.Featured)
	require.Equal(t, []string{"Go"}, p.Tags)
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantEnd *int
	}{
		{name: "missing year", body: `{"placeName":"Agency"}`, wantErr: true},
		{name: "zero year", body: `{"placeName":"Agency","startYear":0}`, wantErr: true},
		{name: "missing place", body: `{"startYear":2020}`, wantErr: true},
		{name: "ongoing", body: `{"placeName":"Agency","startYear":"2020","endYear":null}`},
		{name: "ended", body: `{"placeName":"Agency","startYear":2020,"endYear":"2022"}`, wantEnd: ptr(2022)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ServiceInput
			decodeInput(t, tt.body, &in)

			s, err := NewService(&in)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, "Place name and start year are required", err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, 2020, s.StartYear)
			require.Equal(t, tt.wantEnd, s.EndYear)
		})
	}
}

func TestServiceApply_EndYear(t *testing.T) {
	s := &Service{PlaceName: "Agency", StartYear: 2020, EndYear: ptr(2021)}

	var absent ServiceInput
	decodeInput(t, `{"description":"Frontend work"}`, &absent)
	s.Apply(&absent)
	require.Equal(t, ptr(2021), s.EndYear)
	require.Equal(t, "Frontend work", s.Description)

	var cleared ServiceInput
	decodeInput(t, `{"endYear":""}`, &cleared)
	s.Apply(&cleared)
	require.Nil(t, s.EndYear)
	require.Equal(t, 2020, s.StartYear)
}

func TestWatchlistItem(t *testing.T) {
	var in WatchlistInput
	decodeInput(t, `{"title":"Arrival","year":"2016","rating":8,"recommended":true}`, &in)
	item, err := NewWatchlistItem(&in)
	require.NoError(t, err)
	require.Equal(t, WatchlistMovie, item.Type)
	require.Equal(t, ptr(2016), item.Year)
	require.Equal(t, 8.0, *item.Rating)
	require.True(t, item.Recommended)

	var update WatchlistInput
	decodeInput(t, `{"type":"series","rating":0}`, &update)
	require.NoError(t, item.Apply(&update))
	require.Equal(t, WatchlistSeries, item.Type)
	require.Nil(t, item.Rating)

	var bad WatchlistInput
	decodeInput(t, `{"type":"podcast"}`, &bad)
	require.Error(t, item.Apply(&bad))
	require.Equal(t, WatchlistSeries, item.Type)
}

func TestSettingsApplyPatch(t *testing.T) {
	s := &Settings{ContactEmail: "hello@naotica.studio", ImageToolsMaintenance: true}

	var patch map[string]json.RawMessage
	decodeInput(t, `{
		"aiChatMaintenance": true,
		"imageToolsMaintenance": "false",
		"downloaderMaintenance": null,
		"contactEmail": 42,
		"githubUrl": "https://github.com/naotica",
		"unknown": true
	}`, &patch)
	s.ApplyPatch(patch)

	require.True(t, s.AIChatMaintenance)
	require.True(t, s.ImageToolsMaintenance)
	require.False(t, s.DownloaderMaintenance)
	require.Equal(t, "hello@naotica.studio", s.ContactEmail)
	require.Equal(t, "https://github.com/naotica", s.GithubURL)
}
