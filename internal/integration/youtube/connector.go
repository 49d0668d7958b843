package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/majestic/ai-backend/internal/config"
	"github.com/majestic/ai-backend/internal/entity"
	"github.com/majestic/ai-backend/internal/extractor"
	"github.com/majestic/ai-backend/internal/integration/common"
	pkghttp "github.com/majestic/ai-backend/pkg/http"
	"go.uber.org/zap"
)

// A transcript shorter than this is considered unusable and the next
// candidate language is tried instead.
const minTranscriptLength = 50

// Connector fetches caption transcripts through YouTube's player API.
type Connector struct {
	config    config.YouTubeConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.YouTubeConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Transcript returns the flattened caption text of a video. Manually
// authored tracks are preferred over auto-generated ones, and languages are
// tried in the order: en, ar, then anything else available.
func (c *Connector) Transcript(ctx context.Context, videoID string) (string, error) {
	tracks, err := c.listCaptionTracks(ctx, videoID)
	if err != nil {
		return "", err
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("%w: enable captions (CC) on the video", entity.ErrNoCaptions)
	}

	for _, track := range orderTracks(tracks) {
		text, err := c.fetchTranscript(ctx, track)
		if err != nil {
			ctxzap.Warn(ctx, "failed to fetch caption track",
				zap.String("language", track.LanguageCode),
				zap.Error(err),
			)
			continue
		}

		if len(text) < minTranscriptLength {
			ctxzap.Warn(ctx, "transcript too short",
				zap.String("language", track.LanguageCode),
				zap.Int("length", len(text)),
			)
			continue
		}

		ctxzap.Info(ctx, "transcript extracted",
			zap.String("language", track.LanguageCode),
			zap.Int("length", len(text)),
		)
		return text, nil
	}

	return "", fmt.Errorf("%w: found caption tracks but none yielded usable text", entity.ErrNoCaptions)
}

func (c *Connector) listCaptionTracks(ctx context.Context, videoID string) ([]entity.YouTubeCaptionTrack, error) {
	req := &entity.YouTubePlayerRequest{
		Context: entity.YouTubeClientContext{
			Client: entity.YouTubeClient{
				ClientName:    c.config.ClientName,
				ClientVersion: c.config.ClientVersion,
			},
		},
		VideoID: videoID,
	}

	var resp entity.YouTubePlayerResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.PlayerEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch video info: %v", entity.ErrExtraction, err)
	}

	if status := resp.PlayabilityStatus.Status; status != "" && status != "OK" {
		return nil, fmt.Errorf("%w: video is %s: %s",
			entity.ErrExtraction, strings.ToLower(status), resp.PlayabilityStatus.Reason)
	}

	return resp.Captions.TracklistRenderer.CaptionTracks, nil
}

func (c *Connector) fetchTranscript(ctx context.Context, track entity.YouTubeCaptionTrack) (string, error) {
	url := track.BaseURL
	// Ask for the structured json3 payload when the track offers a choice.
	if !strings.Contains(url, "fmt=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "fmt=json3"
	}

	var transcript entity.YouTubeTranscript
	if err := c.connector.DoRequest(ctx, http.MethodGet, "", nil, &transcript, pkghttp.WithURL(url)); err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}

	return FlattenTranscript(&transcript), nil
}

// FlattenTranscript joins every caption segment into a single
// whitespace-normalized string.
func FlattenTranscript(t *entity.YouTubeTranscript) string {
	var parts []string
	for _, event := range t.Events {
		for _, seg := range event.Segs {
			if seg.UTF8 != "" {
				parts = append(parts, seg.UTF8)
			}
		}
	}
	return extractor.CollapseWhitespace(strings.Join(parts, " "))
}

// orderTracks sorts candidate tracks by preference: manual before
// auto-generated, and within each group en, then ar, then the rest in their
// reported order.
func orderTracks(tracks []entity.YouTubeCaptionTrack) []entity.YouTubeCaptionTrack {
	var manual, auto []entity.YouTubeCaptionTrack
	for _, t := range tracks {
		if t.Kind == "asr" {
			auto = append(auto, t)
		} else {
			manual = append(manual, t)
		}
	}

	ordered := make([]entity.YouTubeCaptionTrack, 0, len(tracks))
	ordered = append(ordered, byLanguagePreference(manual)...)
	ordered = append(ordered, byLanguagePreference(auto)...)
	return ordered
}

func byLanguagePreference(tracks []entity.YouTubeCaptionTrack) []entity.YouTubeCaptionTrack {
	out := make([]entity.YouTubeCaptionTrack, 0, len(tracks))
	for _, lang := range []string{"en", "ar"} {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				out = append(out, t)
			}
		}
	}
	for _, t := range tracks {
		if t.LanguageCode != "en" && t.LanguageCode != "ar" {
			out = append(out, t)
		}
	}
	return out
}
