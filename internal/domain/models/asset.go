package models

import "time"

// Common asset categories. Category is an open enum: any string is accepted
// and unknown values group under an "other" bucket in the UI.
const (
	AssetCategoryIcons        = "icons"
	AssetCategoryFlyers       = "flyers"
	AssetCategoryInfographics = "infographics"
	AssetCategoryWebShots     = "web-screenshots"
	AssetCategoryOther        = "other"
)

// Asset is a shared file reference (icon, flyer, screenshot, ...).
// The file itself lives wherever URL points; the record is only metadata.
type Asset struct {
	ID         string   `bson:"_id,omitempty" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Category   string   `bson:"category" json:"category"`
	URL        string   `bson:"url" json:"url"`
	UploadedBy string   `bson:"uploaded_by" json:"uploadedBy"`
	Date       string   `bson:"date" json:"date"`
	Size       string   `bson:"size,omitempty" json:"size,omitempty"`
	Tags       []string `bson:"tags,omitempty" json:"tags,omitempty"`

	Created time.Time `bson:"created_at" json:"-"`
}

// EntityID returns the asset's collection identity.
func (a Asset) EntityID() string { return a.ID }
