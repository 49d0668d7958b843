package youtube

import (
	"testing"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func track(lang, kind string) entity.YouTubeCaptionTrack {
	return entity.YouTubeCaptionTrack{
		BaseURL:      "https://example.com/captions/" + lang,
		LanguageCode: lang,
		Kind:         kind,
	}
}

func langs(tracks []entity.YouTubeCaptionTrack) []string {
	out := make([]string, 0, len(tracks))
	for _, t := range tracks {
		key := t.LanguageCode
		if t.Kind == "asr" {
			key += "-auto"
		}
		out = append(out, key)
	}
	return out
}

func TestOrderTracksManualBeforeAuto(t *testing.T) {
	got := orderTracks([]entity.YouTubeCaptionTrack{
		track("en", "asr"),
		track("fr", ""),
		track("en", ""),
	})

	assert.Equal(t, []string{"en", "fr", "en-auto"}, langs(got))
}

func TestOrderTracksLanguagePreference(t *testing.T) {
	got := orderTracks([]entity.YouTubeCaptionTrack{
		track("de", ""),
		track("ar", ""),
		track("en", ""),
	})

	assert.Equal(t, []string{"en", "ar", "de"}, langs(got))
}

func TestFlattenTranscript(t *testing.T) {
	transcript := &entity.YouTubeTranscript{
		Events: []entity.YouTubeTranscriptEvent{
			{Segs: []entity.YouTubeTranscriptSeg{{UTF8: "hello "}, {UTF8: "world"}}},
			{}, // timing-only event, no segments
			{Segs: []entity.YouTubeTranscriptSeg{{UTF8: "\nagain\n"}}},
		},
	}

	assert.Equal(t, "hello world again", FlattenTranscript(transcript))
}

func TestFlattenTranscriptEmpty(t *testing.T) {
	assert.Equal(t, "", FlattenTranscript(&entity.YouTubeTranscript{}))
}
