// Package banner turns a journey snapshot into social media banners.
package banner

import (
	errorvalues "github.com/limbo/ascent/internal/error_values"
)

type Format struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

const DefaultFormat = "twitter-header"

var formats = []Format{
	{Name: "twitter-header", Width: 1500, Height: 500},
	{Name: "linkedin-banner", Width: 1584, Height: 396},
	{Name: "instagram-square", Width: 1080, Height: 1080},
	{Name: "story", Width: 1080, Height: 1920},
	{Name: "twitter-post", Width: 1200, Height: 675},
	{Name: "linkedin-post", Width: 1200, Height: 627},
}

func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

func FormatByName(name string) (Format, error) {
	if name == "" {
		name = DefaultFormat
	}
	for _, f := range formats {
		if f.Name == name {
			return f, nil
		}
	}
	return Format{}, errorvalues.ErrUnknownFormat
}

// Landscape formats get the wide single row layout variants.
func (f Format) Landscape() bool {
	return f.Width > f.Height
}
