package entity

// YouTube innertube wire types. Only the fields the caption extractor needs
// are modelled.

type YouTubePlayerRequest struct {
	Context YouTubeClientContext `json:"context"`
	VideoID string               `json:"videoId"`
}

type YouTubeClientContext struct {
	Client YouTubeClient `json:"client"`
}

type YouTubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

type YouTubePlayerResponse struct {
	PlayabilityStatus YouTubePlayability `json:"playabilityStatus"`
	Captions          YouTubeCaptions    `json:"captions"`
}

type YouTubePlayability struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type YouTubeCaptions struct {
	TracklistRenderer YouTubeTracklist `json:"playerCaptionsTracklistRenderer"`
}

type YouTubeTracklist struct {
	CaptionTracks []YouTubeCaptionTrack `json:"captionTracks"`
}

// YouTubeCaptionTrack describes one caption track. Kind is "asr" for
// auto-generated tracks and empty for manually authored ones.
type YouTubeCaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind,omitempty"`
}

// YouTubeTranscript is the json3 caption payload: a flat list of timed
// events, each carrying text segments.
type YouTubeTranscript struct {
	Events []YouTubeTranscriptEvent `json:"events"`
}

type YouTubeTranscriptEvent struct {
	Segs []YouTubeTranscriptSeg `json:"segs,omitempty"`
}

type YouTubeTranscriptSeg struct {
	UTF8 string `json:"utf8"`
}
