package entity

import "strings"

type MediaKind string

const (
	Photo MediaKind = "photo"
	Video MediaKind = "video"
)

func KindOf(contentType string) MediaKind {
	if strings.HasPrefix(contentType, "video/") {
		return Video
	}
	return Photo
}
