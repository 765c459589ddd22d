package scaffold

import (
	"fmt"
	"strings"
)

// Platform selects the UI vocabulary substituted into view and builder
// templates.
type Platform int

const (
	// PlatformUIKit is the default iOS vocabulary.
	PlatformUIKit Platform = iota
	// PlatformCocoa is the macOS vocabulary.
	PlatformCocoa
)

// Vocabulary holds the platform-specific identifiers used by templates.
type Vocabulary struct {
	Framework          string // imported UI framework
	StoryboardType     string
	ViewControllerType string // base class of the generated view controller
	InstantiateMethod  string // storyboard method that instantiates a controller by identifier
}

var vocabularies = map[Platform]Vocabulary{
	PlatformUIKit: {
		Framework:          "UIKit",
		StoryboardType:     "UIStoryboard",
		ViewControllerType: "UIViewController",
		InstantiateMethod:  "instantiateViewController",
	},
	PlatformCocoa: {
		Framework:          "Cocoa",
		StoryboardType:     "NSStoryboard",
		ViewControllerType: "NSViewController",
		InstantiateMethod:  "instantiateController",
	},
}

var platformNames = map[Platform]string{
	PlatformUIKit: "uikit",
	PlatformCocoa: "cocoa",
}

// ParsePlatform maps a setting value to a Platform. The empty string
// selects the default.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uikit":
		return PlatformUIKit, nil
	case "cocoa":
		return PlatformCocoa, nil
	}
	return PlatformUIKit, fmt.Errorf("unknown platform %q (want uikit or cocoa)", s)
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// Vocabulary returns the identifiers for p. Unknown platforms fall back to
// the UIKit vocabulary.
func (p Platform) Vocabulary() Vocabulary {
	if v, ok := vocabularies[p]; ok {
		return v
	}
	return vocabularies[PlatformUIKit]
}
