package models

import (
	"fmt"
	"time"
)

// BrandItemType tags the variant of a brand kit entry.
type BrandItemType string

const (
	BrandText    BrandItemType = "text"
	BrandHashtag BrandItemType = "hashtag"
	BrandKeyword BrandItemType = "keyword"
	BrandFile    BrandItemType = "file"
)

// BrandItem is one entry in the shared brand kit. The file variant carries
// FileURL/FileName; the other variants are pure text. One struct holds all
// variants so the wire shape stays flat, with Validate enforcing which
// fields each variant may use.
type BrandItem struct {
	ID      string        `bson:"_id,omitempty" json:"id"`
	Type    BrandItemType `bson:"type" json:"type"`
	Content string        `bson:"content" json:"content"`
	Tags    []string      `bson:"tags,omitempty" json:"tags,omitempty"`

	// file variant only
	FileURL  string `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	FileName string `bson:"file_name,omitempty" json:"fileName,omitempty"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the brand item's collection identity.
func (b BrandItem) EntityID() string { return b.ID }

// Validate checks the variant shape.
func (b BrandItem) Validate() error {
	switch b.Type {
	case BrandText, BrandHashtag, BrandKeyword:
		if b.FileURL != "" || b.FileName != "" {
			return fmt.Errorf("brand item type %q must not carry file fields", b.Type)
		}
	case BrandFile:
		if b.FileURL == "" || b.FileName == "" {
			return fmt.Errorf("brand item type %q requires fileUrl and fileName", b.Type)
		}
	default:
		return fmt.Errorf("unknown brand item type %q", b.Type)
	}
	if b.Content == "" {
		return fmt.Errorf("brand item content is required")
	}
	return nil
}
