package manifest

// AllSources is the color key meaning "applies to every source"
const AllSources = "."

// Manifest is the document consumed by the rendering pipeline.
// Field order follows the sorted JSON key order.
type Manifest struct {
	Info    Info     `json:"info"`
	Sources []string `json:"sources"`
	Version string   `json:"version"`
}

// Info carries the publishing metadata of a manifest.
// Field order follows the sorted JSON key order.
type Info struct {
	Account  string            `json:"account"`
	Bidx     []int             `json:"bidx,omitempty"`
	Color    map[string]string `json:"color,omitempty"`
	CRS      string            `json:"crs,omitempty"`
	Date     string            `json:"date"`
	License  string            `json:"license"`
	Nodata   []int             `json:"ndv,omitempty"`
	Notes    string            `json:"notes"`
	Product  string            `json:"product"`
	Tilesets []string          `json:"tilesets"`
}

// Fields holds already validated inputs for Build.
// Zero values of the optional fields mean "not supplied".
type Fields struct {
	Sources  []string
	Tilesets []string
	Account  string
	License  string
	Product  string
	Date     string
	Notes    string

	Bidx   []int
	CRS    string
	Color  string
	Nodata []int
}
