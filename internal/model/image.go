package model

// Target widths used when picking album art for a track.
const (
	SmallImageWidth    = 200
	LargeImageWidth    = 640
	ImageSizeTolerance = 100
)

// Image is one size variant of a catalog picture.
type Image struct {
	Width  int
	Height int
	URL    string
}

// ImageMatch records how SelectImage arrived at its choice.
type ImageMatch int

const (
	// MatchNone means there were no images to choose from
	MatchNone ImageMatch = iota

	// MatchExact means an image had exactly the requested width
	MatchExact

	// MatchWithinTolerance means the first image within ImageSizeTolerance was used
	MatchWithinTolerance

	// MatchFallback means the first (largest) image was used
	MatchFallback
)

// String returns the string representation of ImageMatch
func (m ImageMatch) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchExact:
		return "exact"
	case MatchWithinTolerance:
		return "within-tolerance"
	case MatchFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// SelectImage picks the image closest to the requested width. An exact width
// wins; otherwise the first image (in list order) whose width lies within
// ImageSizeTolerance of size on both sides; otherwise the first image, which
// the catalog lists largest first.
func SelectImage(images []Image, size int) (Image, ImageMatch) {
	if len(images) == 0 {
		return Image{}, MatchNone
	}

	for _, img := range images {
		if img.Width == size {
			return img, MatchExact
		}
	}

	for _, img := range images {
		if img.Width >= size-ImageSizeTolerance && img.Width <= size+ImageSizeTolerance {
			return img, MatchWithinTolerance
		}
	}

	return images[0], MatchFallback
}

// SelectArtistPhoto picks one photo for an artist row. With three or more
// variants the second smallest is used, so the row gets neither the tiny
// thumbnail nor the full-size picture; with one or two the smallest (last).
func SelectArtistPhoto(images []Image) (Image, bool) {
	switch n := len(images); {
	case n == 0:
		return Image{}, false
	case n > 2:
		return images[n-2], true
	default:
		return images[n-1], true
	}
}
