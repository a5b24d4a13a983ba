package debugpdf

// Config holds the drawing options
type Config struct {
	MaxSide   float64    // longest page side in points, source pages are scaled to it
	LineWidth float64    // outline width in points
	Labels    bool       // print reading-order indexes
	Font      FontConfig // label font
	Column1   RGB        // outline color of the upper tier
	Column2   RGB        // outline color of the lower tier
	Baseline  RGB        // color of the baseline rule
}

// RGB is a drawing color
type RGB struct{ R, G, B int }

// DefaultConfig returns A4-sized pages with labels
func DefaultConfig() Config {
	return Config{
		MaxSide:   842, // A4 height
		LineWidth: 0.8,
		Labels:    true,
		Font:      DefaultFont,
		Column1:   RGB{0, 90, 200},
		Column2:   RGB{200, 40, 40},
		Baseline:  RGB{0, 150, 0},
	}
}

// FontConfig contains font settings for labels
type FontConfig struct {
	Name        string  // Font name (e.g., "Helvetica")
	Style       string  // Font style ("", "B", "I", "BI")
	Size        float64 // Font size in points
	AscentRatio float64 // Vertical positioning ratio
}

// DefaultFont is a core font, so no font files are needed
var DefaultFont = FontConfig{
	Name:        "Helvetica",
	Style:       "",
	Size:        7,
	AscentRatio: 0.718,
}
