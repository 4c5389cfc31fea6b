// Package manifest renders a FrontendIntegration into the intermediate
// Manifest document consumed by the external build service. The Manifest
// is never persisted as a standalone resource; it is serialized once to
// send to the build service and once to hash.
package manifest

// Manifest is the versioned, pure-transform output of rendering an FI.
type Manifest struct {
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Routes      []Route  `json:"routes"`
	Menus       []Menu   `json:"menus"`
	Locales     []string `json:"locales"`
	Pages       []Page   `json:"pages"`
	Build       Build    `json:"build"`
}

// Route is one mount point, emitted once per menu placement.
type Route struct {
	Path   string `json:"path"`
	PageID string `json:"pageId"`
}

// Menu is one menu entry, emitted once per menu placement.
type Menu struct {
	Parent string `json:"parent"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Order  int    `json:"order"`
}

// Page is the componentsTree root plus data sources for one placement.
type Page struct {
	ID             string        `json:"id"`
	EntryComponent string        `json:"entryComponent"`
	Meta           PageMeta      `json:"meta"`
	DataSources    []DataSource  `json:"dataSources,omitempty"`
	Root           ComponentNode `json:"root"`
}

// PageMeta carries the page's mount path and display title.
type PageMeta struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// DataSource is one named data source a page's component tree can bind
// against (e.g. "columns", "pageState" for crd-type pages).
type DataSource struct {
	ID     string                 `json:"id"`
	Type   string                 `json:"type"`
	Config map[string]interface{} `json:"config"`
	Args   []Binding              `json:"args,omitempty"`
}

// Binding is a prop value bound to a named data source's output.
type Binding struct {
	Type         string      `json:"type"`
	Source       string      `json:"source"`
	Bind         string      `json:"bind"`
	DefaultValue interface{} `json:"defaultValue,omitempty"`
}

// ComponentNode is one node of a page's component tree (the page root).
type ComponentNode struct {
	ID    string                 `json:"id"`
	Type  string                 `json:"type"`
	Props map[string]interface{} `json:"props"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// Build is the build block every Manifest carries, target information for
// the build service.
type Build struct {
	Target     string `json:"target"`
	ModuleName string `json:"moduleName"`
	Systemjs   bool   `json:"systemjs"`
}
