package ui

import "sync"

const LazyImageSelector = "img[data-src]"

// Image is an img element waiting for its real source.
type Image struct {
	Selector string
	DataSrc  string
}

type IntersectionEntry struct {
	Image          Image
	IsIntersecting bool
}

// LazyImages swaps in an image's data-src the first time it scrolls into view.
// Without intersection support images are left as rendered.
type LazyImages struct {
	supported bool

	mu       sync.Mutex
	observed map[string]Image
}

func NewLazyImages(intersectionSupported bool) *LazyImages {
	return &LazyImages{
		supported: intersectionSupported,
		observed:  make(map[string]Image),
	}
}

// Observe starts watching images and reports how many are now watched.
func (l *LazyImages) Observe(images ...Image) int {
	if !l.supported {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, img := range images {
		if img.DataSrc == "" {
			continue
		}
		l.observed[img.Selector] = img
	}
	return len(l.observed)
}

// Intersect loads every observed image that entered the viewport and stops
// watching it.
func (l *LazyImages) Intersect(entries []IntersectionEntry) []Change {
	l.mu.Lock()
	defer l.mu.Unlock()

	var changes []Change
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		img, ok := l.observed[e.Image.Selector]
		if !ok {
			continue
		}
		changes = append(changes,
			Change{Kind: ChangeSetAttr, Target: img.Selector, Name: "src", Value: img.DataSrc},
			Change{Kind: ChangeRemoveClass, Target: img.Selector, Name: "lazy"},
		)
		delete(l.observed, img.Selector)
	}
	return changes
}

func (l *LazyImages) Observed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.observed)
}
