package entity

import (
	"database/sql"

	"github.com/trailpoint/backend/pkg/enum"
)

type AttractionCategory string

var (
	CategoryMuseum    = enum.New(AttractionCategory("museum"))
	CategoryPark      = enum.New(AttractionCategory("park"))
	CategoryMonument  = enum.New(AttractionCategory("monument"))
	CategoryGallery   = enum.New(AttractionCategory("gallery"))
	CategoryLandmark  = enum.New(AttractionCategory("landmark"))
	CategoryViewpoint = enum.New(AttractionCategory("viewpoint"))
)

type Attraction struct {
	Base

	Name        string
	Description []byte `gorm:"type:longtext"`

	// Category is immutable once a category_milestone reward references it.
	// The management surface owns that invariant; this engine only reads it.
	Category AttractionCategory

	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64

	IsActive bool
}
